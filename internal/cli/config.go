package cli

import (
	"fmt"
	"time"

	"datefield-cli/internal/datefield"
	"datefield-cli/internal/monthname"
	"datefield-cli/internal/store"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change global settings (~/.datefield/config.json)",
	}
	cmd.AddCommand(newConfigShowCmd(app))
	cmd.AddCommand(newConfigSetCmd(app))
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the config file and the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := store.ConfigPath()
			if err != nil {
				return writeErr(cmd, err)
			}
			today, err := app.resolveToday(time.Now())
			if err != nil {
				return writeErr(cmd, err)
			}
			cfg := app.config()
			tag := datefield.ResolveLocale(app.locale())
			return writeOut(cmd, app, map[string]any{
				"data": cfg,
				"meta": map[string]any{
					"path":             path,
					"effectiveMinYear": app.minYearFor(today),
					"effectiveLocale":  tag.String(),
					"monthNameLocale":  monthname.Match(tag),
				},
			})
		},
	}
}

func newConfigSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Set a config field (minYear|locale|timezone|monthNames|tui.profile)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := cfg.Set(args[0], args[1]); err != nil {
				return writeErr(cmd, fmt.Errorf("config set: %w", err))
			}
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}
			app.cfg = cfg
			app.logger.Info("config updated", "field", args[0])
			return writeOut(cmd, app, map[string]any{"data": cfg})
		},
	}
}
