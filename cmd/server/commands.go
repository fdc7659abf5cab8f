package main

import (
	"fmt"

	"github.com/potatolake/internal/db"
	"github.com/potatolake/internal/logging"
	"github.com/potatolake/internal/seed"
	"github.com/spf13/cobra"
)

var (
	adminUsername string
	adminPassword string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create every page and the starter fish species and DNR links",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := bootstrap(); err != nil {
			return err
		}
		result, err := seed.Run(db.DB)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d fish species and %d DNR links\n", result.FishSpecies, result.DnrLinks)
		return nil
	},
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account or reset its password",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := bootstrap(); err != nil {
			return err
		}
		if err := db.SetPassword(db.DB, adminUsername, adminPassword); err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		logging.Info().Str("username", adminUsername).Msg("admin credentials saved")
		fmt.Fprintf(cmd.OutOrStdout(), "admin %q saved\n", adminUsername)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(createAdminCmd)

	createAdminCmd.Flags().StringVar(&adminUsername, "username", "", "Admin username (required)")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Admin password (required)")
	_ = createAdminCmd.MarkFlagRequired("username")
	_ = createAdminCmd.MarkFlagRequired("password")
}
