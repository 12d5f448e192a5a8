package main

import "github.com/spf13/cobra"

func checkCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "List the page's tab groups and report broken ones",
		Long: `Check builds every tab group on the page and lists them.

It exits non-zero if the configuration is invalid or any group
cannot be built (no buttons, or buttons and panels that do not pair up).`,
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

			_, coll, buildErr := buildDocument(page, cfg)
			if coll == nil {
				return buildErr
			}

			out := cmd.OutOrStdout()
			for i, g := range coll.Groups() {
				label := g.Root().Tag
				if id, ok := g.Root().Attribute("id"); ok {
					label += "#" + id
				}
				info(out, "group %d  %-20s %d tabs, active %d", i+1, label, g.Len(), g.Active())
			}
			if buildErr != nil {
				return buildErr
			}
			success(out, "%d tab groups OK", coll.Len())
			return nil
		},
	}
}
