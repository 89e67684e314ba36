// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/config"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/remote"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/session"
)

// contentItem covers the listable fields shared by every content kind.
// Kinds that lack a field just leave it empty.
type contentItem struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Name   string `json:"name"`
	Author string `json:"author"`
	Status string `json:"status"`
	Role   string `json:"role"`
}

func (i contentItem) label() string {
	for _, s := range []string{i.Title, i.Name, i.Author} {
		if s != "" {
			return s
		}
	}
	return "(untitled)"
}

// contentKind maps a CLI kind name onto its API endpoints
type contentKind struct {
	path      string
	adminPath string
	required  []string
}

var contentKinds = map[string]contentKind{
	"projects":     {path: "/api/projects", adminPath: "/api/admin/projects", required: []string{"title", "description"}},
	"services":     {path: "/api/services", adminPath: "/api/admin/services", required: []string{"title", "description"}},
	"team":         {path: "/api/team", adminPath: "/api/admin/team", required: []string{"name", "role"}},
	"partners":     {path: "/api/partners", required: []string{"name"}},
	"testimonials": {path: "/api/testimonials", required: []string{"author", "text"}},
}

var (
	contentServer string
	contentFields []string
	contentImage  string
)

func serverURL() string {
	if contentServer != "" {
		return contentServer
	}
	return "http://localhost:" + config.GetString("server.http_port")
}

func sessionManager() *session.Manager {
	return session.NewManager(serverURL(), config.GetString("storage.state_dir"))
}

func collectionFor(kind string) (*remote.Collection[contentItem], error) {
	k, ok := contentKinds[kind]
	if !ok {
		names := make([]string, 0, len(contentKinds))
		for name := range contentKinds {
			names = append(names, name)
		}
		return nil, fmt.Errorf("unknown kind %q (known: %s)", kind, strings.Join(names, ", "))
	}

	return remote.New[contentItem](remote.Config{
		BaseURL:   serverURL(),
		Path:      k.path,
		AdminPath: k.adminPath,
		Session:   sessionManager(),
		Required:  k.required,
	}, func(i contentItem) uint { return i.ID }), nil
}

func parseFields(pairs []string) (remote.Fields, error) {
	fields := remote.Fields{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid field %q, expected key=value", pair)
		}
		fields[key] = value
	}
	return fields, nil
}

func loadImage(path string) (*remote.ImageFile, error) {
	if path == "" {
		return nil, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return &remote.ImageFile{Name: filepath.Base(path), Content: content}, nil
}

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Manage site content over the API",
	Long: `Headless counterpart of the admin panel. Lists and edits projects,
services, team members, partners, and testimonials through the same API
the panel uses. Requires a login first (bushtechs content login).`,
}

var contentLoginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Log in and store the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		fmt.Print("Enter password: ")
		var password string
		fmt.Scanln(&password)

		sess, err := sessionManager().Login(cmd.Context(), args[0], password)
		if err != nil {
			return err
		}

		fmt.Printf("Logged in as %s\n", sess.User.Name)
		return nil
	},
}

var contentLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		sessionManager().Logout()
		fmt.Println("Logged out")
		return nil
	},
}

var contentListCmd = &cobra.Command{
	Use:   "list <kind>",
	Short: "List items of a content kind",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		col, err := collectionFor(args[0])
		if err != nil {
			return err
		}
		if err := col.Load(cmd.Context()); err != nil {
			return err
		}

		items := col.Items()
		if len(items) == 0 {
			fmt.Println("No items")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSTATUS")
		for _, item := range items {
			status := item.Status
			if status == "" {
				status = item.Role
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", item.ID, item.label(), status)
		}
		return w.Flush()
	},
}

var contentCreateCmd = &cobra.Command{
	Use:   "create <kind>",
	Short: "Create an item from --field key=value pairs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		col, err := collectionFor(args[0])
		if err != nil {
			return err
		}
		fields, err := parseFields(contentFields)
		if err != nil {
			return err
		}
		image, err := loadImage(contentImage)
		if err != nil {
			return err
		}

		if err := col.Create(cmd.Context(), fields, image); err != nil {
			return err
		}

		fmt.Printf("Created, %d items total\n", len(col.Items()))
		return nil
	},
}

var contentUpdateCmd = &cobra.Command{
	Use:   "update <kind> <id>",
	Short: "Update an item from --field key=value pairs",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		col, err := collectionFor(args[0])
		if err != nil {
			return err
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		fields, err := parseFields(contentFields)
		if err != nil {
			return err
		}
		image, err := loadImage(contentImage)
		if err != nil {
			return err
		}

		// The collection only mutates known ids; load first.
		if err := col.Load(cmd.Context()); err != nil {
			return err
		}
		if err := col.Update(cmd.Context(), id, fields, image); err != nil {
			return err
		}

		fmt.Printf("Updated item %d\n", id)
		return nil
	},
}

var contentDeleteCmd = &cobra.Command{
	Use:   "delete <kind> <id>",
	Short: "Delete an item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		col, err := collectionFor(args[0])
		if err != nil {
			return err
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}

		if err := col.Load(cmd.Context()); err != nil {
			return err
		}
		if err := col.Remove(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Printf("Deleted item %d\n", id)
		return nil
	},
}

func parseID(s string) (uint, error) {
	var id uint
	if _, err := fmt.Sscanf(s, "%d", &id); err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func init() {
	contentCmd.PersistentFlags().StringVar(&contentServer, "server", "", "API base URL (default http://localhost:<http_port>)")
	contentCreateCmd.Flags().StringArrayVar(&contentFields, "field", nil, "field as key=value, repeatable")
	contentCreateCmd.Flags().StringVar(&contentImage, "image", "", "path to an image attachment")
	contentUpdateCmd.Flags().StringArrayVar(&contentFields, "field", nil, "field as key=value, repeatable")
	contentUpdateCmd.Flags().StringVar(&contentImage, "image", "", "path to an image attachment")

	contentCmd.AddCommand(contentLoginCmd)
	contentCmd.AddCommand(contentLogoutCmd)
	contentCmd.AddCommand(contentListCmd)
	contentCmd.AddCommand(contentCreateCmd)
	contentCmd.AddCommand(contentUpdateCmd)
	contentCmd.AddCommand(contentDeleteCmd)
	rootCmd.AddCommand(contentCmd)
}
