// SPDX-License-Identifier: MIT
package email

import (
	"crypto/tls"
	"fmt"
	"log"
	"net/smtp"
	"os"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/models"
)

type EmailService struct {
	host     string
	port     string
	email    string
	password string
}

// NewEmailService reads SMTP settings from the environment. Missing
// settings are an error; callers treat that as "notifications off".
func NewEmailService() (*EmailService, error) {
	host := os.Getenv("SMTP")
	port := os.Getenv("SMTP_PORT")
	email := os.Getenv("EMAIL")
	password := os.Getenv("SMTP_SECRET")

	if host == "" || port == "" || email == "" || password == "" {
		return nil, fmt.Errorf("missing SMTP configuration in environment")
	}

	return &EmailService{
		host:     host,
		port:     port,
		email:    email,
		password: password,
	}, nil
}

func (es *EmailService) SendEmail(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%s", es.host, es.port)

	// STARTTLS for port 587, implicit TLS otherwise (465)
	var client *smtp.Client
	var err error

	if es.port == "587" {
		client, err = smtp.Dial(addr)
		if err != nil {
			return fmt.Errorf("failed to dial SMTP: %w", err)
		}
		defer client.Close()

		tlsconfig := &tls.Config{
			ServerName: es.host,
		}
		if err = client.StartTLS(tlsconfig); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	} else {
		tlsconfig := &tls.Config{
			ServerName: es.host,
		}

		conn, err := tls.Dial("tcp", addr, tlsconfig)
		if err != nil {
			return fmt.Errorf("failed to dial SMTP: %w", err)
		}
		defer conn.Close()

		client, err = smtp.NewClient(conn, es.host)
		if err != nil {
			return fmt.Errorf("failed to create SMTP client: %w", err)
		}
		defer client.Close()
	}

	if err := client.Auth(smtp.PlainAuth("", es.email, es.password, es.host)); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err := client.Mail(es.email); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}
	defer w.Close()

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s", es.email, to, subject, body)
	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	// Some SMTP servers return non-standard success messages on QUIT;
	// the message has been accepted by this point either way
	if err := client.Quit(); err != nil {
		log.Printf("SMTP QUIT returned non-standard response (email was sent): %v", err)
	}

	log.Printf("Email sent to %s: %s", to, subject)
	return nil
}

// SendContactNotification forwards a contact form submission to the
// site owner's inbox
func (es *EmailService) SendContactNotification(to string, sub *models.ContactSubmission) error {
	subject, body := ContactNotification(sub)
	return es.SendEmail(to, subject, body)
}

// ContactNotification builds the subject and body for a contact form
// notification
func ContactNotification(sub *models.ContactSubmission) (subject, body string) {
	subject = fmt.Sprintf("New contact form submission from %s", sub.Name)
	body = fmt.Sprintf(`A new message arrived through the website contact form.

Name: %s
Email: %s
Phone: %s
Service: %s

Message:
%s

Reply directly to %s to get in touch.`,
		sub.Name, sub.Email, sub.Phone, sub.ServiceType, sub.Message, sub.Email)
	return subject, body
}

// SendErrorNotification alerts an admin about a server-side failure
func (es *EmailService) SendErrorNotification(adminEmail, subject, errorMsg string) error {
	body := fmt.Sprintf(`Admin Alert,

An error occurred on the BushTechs site:

%s

Please investigate and take appropriate action.`, errorMsg)

	return es.SendEmail(adminEmail, fmt.Sprintf("BushTechs Error: %s", subject), body)
}
