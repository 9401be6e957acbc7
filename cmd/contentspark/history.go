package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thinkscotty/contentspark/internal/i18n"
)

func newHistoryCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear generated content",
	}
	cmd.AddCommand(newHistoryListCmd(flags))
	cmd.AddCommand(newHistoryClearCmd(flags))
	return cmd
}

func newHistoryListCmd(flags *rootFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List generated content, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.close()

			h := a.store.History()
			if limit > 0 && len(h) > limit {
				h = h[:limit]
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.renderer().History(h, a.msgs))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most N items (0 for all)")
	return cmd
}

func newHistoryClearCmd(flags *rootFlags) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the whole history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.close()

			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", a.msgs.T(i18n.ConfirmClear))
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				switch strings.ToLower(strings.TrimSpace(answer)) {
				case "y", "yes", "c", "có", "co":
				default:
					return nil
				}
			}

			a.studio.ClearHistory(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), a.renderer().History(a.store.History(), a.msgs))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
