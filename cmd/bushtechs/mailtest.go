// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/email"
)

var mailtestCmd = &cobra.Command{
	Use:   "mailtest <email>",
	Short: "Test email configuration and send a test message",
	Long: `Test the email service by sending a test message to the specified address.
This command checks SMTP configuration and provides detailed diagnostics.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		testEmail := args[0]

		fmt.Println("========================================")
		fmt.Println("BushTechs Email Service Diagnostic")
		fmt.Println("========================================")
		fmt.Println()

		fmt.Println("1. Checking environment variables...")
		smtp := os.Getenv("SMTP")
		smtpPort := os.Getenv("SMTP_PORT")
		emailFrom := os.Getenv("EMAIL")
		smtpSecret := os.Getenv("SMTP_SECRET")

		fmt.Printf("   SMTP:        %s\n", maskIfEmpty(smtp))
		fmt.Printf("   SMTP_PORT:   %s\n", maskIfEmpty(smtpPort))
		fmt.Printf("   EMAIL:       %s\n", maskIfEmpty(emailFrom))
		fmt.Printf("   SMTP_SECRET: %s\n", maskPassword(smtpSecret))
		fmt.Println()

		if smtp == "" || smtpPort == "" || emailFrom == "" || smtpSecret == "" {
			fmt.Println("ERROR: Missing required environment variables")
			fmt.Println()
			fmt.Println("Required environment variables:")
			fmt.Println("  export SMTP=\"smtp.example.com\"")
			fmt.Println("  export SMTP_PORT=\"587\"")
			fmt.Println("  export EMAIL=\"noreply@yourdomain.com\"")
			fmt.Println("  export SMTP_SECRET=\"your-password\"")
			os.Exit(1)
		}

		fmt.Println("Environment variables are set")
		fmt.Println()

		fmt.Println("2. Checking port configuration...")
		switch smtpPort {
		case "587":
			fmt.Println("   Using port 587 (STARTTLS)")
		case "465":
			fmt.Println("   Using port 465 (Implicit TLS)")
		default:
			fmt.Printf("   WARNING: Unusual port %s (standard ports are 587 or 465)\n", smtpPort)
		}
		fmt.Println()

		fmt.Println("3. Initializing email service...")
		svc, err := email.NewEmailService()
		if err != nil {
			fmt.Printf("ERROR: Failed to initialize email service: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Email service initialized")
		fmt.Println()

		fmt.Printf("4. Sending test email to %s...\n", testEmail)
		subject := "BushTechs Email Test"
		body := fmt.Sprintf(`Hello,

This is a test email from the BushTechs server.

If you received this email, your email configuration is working correctly!

Test Details:
- Sent at: %s
- From: %s
- SMTP Server: %s:%s

BushTechs Email Service`, time.Now().Format("2006-01-02 15:04:05 MST"), emailFrom, smtp, smtpPort)

		if err := svc.SendEmail(testEmail, subject, body); err != nil {
			fmt.Println("ERROR: Failed to send test email")
			fmt.Println()
			fmt.Printf("  %v\n", err)
			fmt.Println()

			errorStr := err.Error()
			switch {
			case strings.Contains(errorStr, "tls: first record does not look like a TLS handshake"):
				fmt.Println("  TLS Handshake Error:")
				fmt.Println("  - The port and TLS method do not match")
				fmt.Println("  - Port 587 uses STARTTLS, port 465 uses implicit TLS")
			case strings.Contains(errorStr, "535") || strings.Contains(errorStr, "Authentication failed"):
				fmt.Println("  Authentication Error:")
				fmt.Println("  - Check your EMAIL and SMTP_SECRET are correct")
				fmt.Println("  - For Gmail, use an App Password, not your account password")
			case strings.Contains(errorStr, "550") || strings.Contains(errorStr, "Relaying denied"):
				fmt.Println("  Relay Denied Error:")
				fmt.Println("  - Verify EMAIL matches an authorized sending address")
				fmt.Println("  - Check your SPF record includes your server IP")
			case strings.Contains(errorStr, "connection refused") || strings.Contains(errorStr, "no such host"):
				fmt.Println("  Connection Error:")
				fmt.Println("  - Verify the SMTP hostname is correct")
				fmt.Println("  - Check firewall allows outbound connections on port", smtpPort)
			case strings.Contains(errorStr, "timeout"):
				fmt.Println("  Timeout Error:")
				fmt.Println("  - Connection to the SMTP server timed out")
				fmt.Println("  - Verify the SMTP server is reachable")
			}
			os.Exit(1)
		}

		fmt.Println("Test email sent successfully!")
		fmt.Println()
		fmt.Printf("Check %s for the test message.\n", testEmail)
		fmt.Println("If you don't see it within a few minutes, check your spam folder.")
	},
}

func init() {
	rootCmd.AddCommand(mailtestCmd)
}

// maskIfEmpty returns the value or "(not set)" if empty
func maskIfEmpty(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

// maskPassword returns a masked version of the password for display
func maskPassword(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + "****" + s[len(s)-2:]
}
