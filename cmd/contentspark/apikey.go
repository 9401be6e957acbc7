package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thinkscotty/contentspark/internal/auth"
)

func newAPIKeyCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apikey",
		Short: "Manage the HTTP API key",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "regenerate",
		Short: "Create a new API key; the previous one stops working",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.close()

			key, err := auth.GenerateToken()
			if err != nil {
				return fmt.Errorf("generate api key: %w", err)
			}
			hash, err := auth.HashKey(key)
			if err != nil {
				return fmt.Errorf("hash api key: %w", err)
			}
			if err := a.db.SetSetting(auth.SettingKey, hash); err != nil {
				return fmt.Errorf("store api key hash: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), key)
			fmt.Fprintln(cmd.ErrOrStderr(), "Store this key now; it cannot be shown again.")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "disable",
		Short: "Remove the API key and leave the API open",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.close()

			return a.db.SetSetting(auth.SettingKey, "")
		},
	})

	return cmd
}
