package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thinkscotty/contentspark/internal/models"
	"github.com/thinkscotty/contentspark/internal/state"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the display theme",
	}
	cmd.AddCommand(newThemeShowCmd(flags))
	cmd.AddCommand(newThemeSetCmd(flags))
	return cmd
}

func newThemeShowCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current theme",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.close()

			fmt.Fprintln(cmd.OutOrStdout(), a.renderer().Theme(a.store.Theme()))
			return nil
		},
	}
}

func newThemeSetCmd(flags *rootFlags) *cobra.Command {
	var (
		mode   string
		accent string
		toggle bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the theme mode or accent colour",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var actions []state.Action
			if toggle {
				actions = append(actions, state.ToggleThemeMode{})
			}
			if mode != "" {
				m := models.ThemeMode(mode)
				if !m.Valid() {
					return fmt.Errorf("unknown theme mode %q (light or dark)", mode)
				}
				actions = append(actions, state.SetThemeMode{Mode: m})
			}
			if accent != "" {
				c := models.AccentColor(accent)
				if !c.Valid() {
					return fmt.Errorf("unknown accent %q (%v)", accent, models.AccentColors)
				}
				actions = append(actions, state.SetAccent{Accent: c})
			}
			if len(actions) == 0 {
				return errors.New("nothing to change: pass --mode, --accent or --toggle")
			}

			a, err := openApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.close()

			for _, act := range actions {
				a.store.Dispatch(cmd.Context(), act)
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.renderer().Theme(a.store.Theme()))
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Theme mode: light or dark")
	cmd.Flags().StringVar(&accent, "accent", "", "Accent colour: indigo, green or purple")
	cmd.Flags().BoolVar(&toggle, "toggle", false, "Switch between light and dark")
	return cmd
}
