package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thinkscotty/contentspark/internal/i18n"
	"github.com/thinkscotty/contentspark/internal/models"
	"github.com/thinkscotty/contentspark/internal/studio"
)

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate content and add it to the history",
	}
	cmd.AddCommand(newGeneratePostCmd(flags))
	cmd.AddCommand(newGenerateTextCmd(flags))
	cmd.AddCommand(newGenerateQuotesCmd(flags))
	return cmd
}

func newGeneratePostCmd(flags *rootFlags) *cobra.Command {
	var (
		req       studio.PostRequest
		tone      string
		style     string
		fromTrend int
	)

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Generate a social post with an image",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx, flags)
			if err != nil {
				return err
			}
			defer a.close()

			if fromTrend > 0 {
				trends, err := a.studio.Trends(ctx)
				if err != nil {
					return err
				}
				if fromTrend > len(trends) {
					return fmt.Errorf("trend %d out of range (1-%d)", fromTrend, len(trends))
				}
				req.Topic = trends[fromTrend-1].Keyword
			}
			req.Tone = models.Tone(tone)
			req.ImageStyle = models.ImageStyle(style)

			fmt.Fprintln(cmd.ErrOrStderr(), a.msgs.T(i18n.Generating))
			post, err := a.studio.CreateSocialPost(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.renderer().Post(post))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Topic, "topic", "", "Topic of the post")
	cmd.Flags().StringVar(&tone, "tone", string(models.ToneProvocative), "Tone of the post")
	cmd.Flags().StringVar(&style, "style", string(models.StyleEditorialVector), "Image style")
	cmd.Flags().IntVar(&fromTrend, "from-trend", 0, "Use the keyword of trending topic N as the topic")
	return cmd
}

func newGenerateTextCmd(flags *rootFlags) *cobra.Command {
	var req studio.IllustratedRequest

	cmd := &cobra.Command{
		Use:   "text",
		Short: "Generate a short illustrated paragraph",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx, flags)
			if err != nil {
				return err
			}
			defer a.close()

			fmt.Fprintln(cmd.ErrOrStderr(), a.msgs.T(i18n.Generating))
			item, err := a.studio.CreateIllustratedText(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.renderer().Illustrated(item))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Topic, "topic", "", "Topic or idea")
	return cmd
}

func newGenerateQuotesCmd(flags *rootFlags) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "quotes",
		Short: "Generate a list of quotes in a category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx, flags)
			if err != nil {
				return err
			}
			defer a.close()

			fmt.Fprintln(cmd.ErrOrStderr(), a.msgs.T(i18n.Generating))
			set, err := a.studio.CreateQuotes(ctx, studio.QuotesRequest{Category: models.QuoteCategory(category)})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.renderer().Quotes(set))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", string(models.QuoteTrending), "Quote category")
	return cmd
}

func newTrendsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "trends",
		Short: "List the current trending topics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx, flags)
			if err != nil {
				return err
			}
			defer a.close()

			trends, err := a.studio.Trends(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.renderer().Trends(trends))
			return nil
		},
	}
}
