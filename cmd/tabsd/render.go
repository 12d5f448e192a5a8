package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/tabs/pkg/render"
)

func renderCmd(flags *globalFlags) *cobra.Command {
	var (
		pretty   bool
		noClient bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the page with tab groups in their initial state",
		Long: `Render the page to stdout with every tab group initialized.

Examples:
  tabsd render --page index.html
  tabsd render --page index.html --no-client > static.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			page, err := loadPage(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			doc, coll, err := buildDocument(page, cfg)
			if coll == nil {
				return err
			}
			if err != nil {
				warn(cmd.ErrOrStderr(), "some tab groups were skipped; run 'tabsd check' for details")
			}

			rc := render.RendererConfig{Pretty: pretty, Indent: "  "}
			return render.NewStreamingRenderer(cmd.OutOrStdout(), rc).
				RenderPage(doc, render.PageConfig{DisableClient: noClient})
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")
	cmd.Flags().BoolVar(&noClient, "no-client", false, "Omit the client script tag")

	return cmd
}
