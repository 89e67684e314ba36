package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/backup"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/config"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage database backups",
	Long:  "Create, list, restore, and prune database backups",
}

func backupManager() (*backup.Manager, string, error) {
	if err := initConfig(); err != nil {
		return nil, "", err
	}
	return backup.NewManager(config.GetString("backups.path")), config.GetString("database.path"), nil
}

var backupNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Create a backup immediately",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, dbPath, err := backupManager()
		if err != nil {
			return err
		}

		name, err := manager.CreateBackup(dbPath)
		if err != nil {
			return err
		}

		fmt.Printf("Backup created: %s\n", name)
		return nil
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available backups, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, _, err := backupManager()
		if err != nil {
			return err
		}

		names, err := manager.List()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No backups found")
			return nil
		}

		for _, name := range names {
			line := name
			if info, err := os.Stat(filepath.Join(manager.BackupPath, name)); err == nil {
				line = fmt.Sprintf("%s  %s  %s", name, info.ModTime().Format("2006-01-02 15:04:05"), formatBytes(info.Size()))
			}
			fmt.Println(line)
		}
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <filename>",
	Short: "Restore the database from a backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, dbPath, err := backupManager()
		if err != nil {
			return err
		}

		filename := args[0]
		fmt.Printf("WARNING: This will overwrite the database at %s.\n", dbPath)
		fmt.Printf("Restore from '%s'? (type 'yes' to confirm): ", filename)

		var confirmation string
		fmt.Scanln(&confirmation)
		if confirmation != "yes" {
			fmt.Println("Restore cancelled.")
			return nil
		}

		if err := manager.Restore(filename, dbPath); err != nil {
			return err
		}

		fmt.Printf("Successfully restored from %s\n", filename)
		return nil
	},
}

var backupPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old backups beyond the retention count",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, _, err := backupManager()
		if err != nil {
			return err
		}

		keep := config.GetInt("backups.retention")
		if err := manager.Prune(keep); err != nil {
			return err
		}

		fmt.Printf("Pruned to %d most recent backups\n", keep)
		return nil
	},
}

// formatBytes converts bytes to human-readable format
func formatBytes(bytes int64) string {
	units := []string{"B", "KB", "MB", "GB"}
	size := float64(bytes)

	for _, unit := range units {
		if size < 1024.0 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024.0
	}

	return fmt.Sprintf("%.2f TB", size)
}

func init() {
	backupCmd.AddCommand(backupNowCmd)
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	backupCmd.AddCommand(backupPruneCmd)
	rootCmd.AddCommand(backupCmd)
}
