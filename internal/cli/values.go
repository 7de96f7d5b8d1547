package cli

import (
	"context"
	"path/filepath"
	"time"

	"datefield-cli/internal/datefield"
	"datefield-cli/internal/store"

	"github.com/spf13/cobra"
)

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func newValuesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "values",
		Short: "Stored date values bound to field keys (read, write, history)",
	}
	cmd.AddCommand(newValuesGetCmd(app))
	cmd.AddCommand(newValuesSetCmd(app))
	cmd.AddCommand(newValuesDeleteCmd(app))
	cmd.AddCommand(newValuesListCmd(app))
	cmd.AddCommand(newValuesHistoryCmd(app))
	cmd.AddCommand(newValuesExportCmd(app))
	cmd.AddCommand(newValuesImportCmd(app))
	return cmd
}

func newValuesGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Show the stored value for a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.valueStore()
			if err != nil {
				return writeErr(cmd, err)
			}
			v, ok, err := s.Get(cmdContext(cmd), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if !ok {
				return writeErr(cmd, errNotFound("value", args[0]))
			}
			return writeOut(cmd, app, map[string]any{"data": v})
		},
	}
}

func newValuesSetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "set <key> <YYYY-MM-DD>",
		Short: "Store a value for a key (must be selectable unless --force)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			d, ok := datefield.ParseISODate(value)
			if !ok {
				return writeErr(cmd, invalidDateError{input: value, reason: "expected YYYY-MM-DD"})
			}
			if !force {
				today, err := app.resolveToday(time.Now())
				if err != nil {
					return writeErr(cmd, err)
				}
				if err := datefield.CheckDate(d, today, app.minYearFor(today)); err != nil {
					return writeErr(cmd, err)
				}
			}

			s, err := app.valueStore()
			if err != nil {
				return writeErr(cmd, err)
			}
			v, err := s.Put(cmdContext(cmd), key, value)
			if err != nil {
				return writeErr(cmd, err)
			}
			app.logger.Info("stored", "key", v.Key, "value", v.Value)
			return writeOut(cmd, app, map[string]any{"data": v})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the range check (the value must still be YYYY-MM-DD)")
	return cmd
}

func newValuesDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "Delete the stored value for a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.valueStore()
			if err != nil {
				return writeErr(cmd, err)
			}
			deleted, err := s.Delete(cmdContext(cmd), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if !deleted {
				return writeErr(cmd, errNotFound("value", args[0]))
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"key": args[0], "deleted": true}})
		},
	}
}

func newValuesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all stored values (sorted by key)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.valueStore()
			if err != nil {
				return writeErr(cmd, err)
			}
			vs, err := s.List(cmdContext(cmd))
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": vs})
		},
	}
}

func newValuesHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <key>",
		Short: "Show recent changes of a key (newest first; null value = deleted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.valueStore()
			if err != nil {
				return writeErr(cmd, err)
			}
			hs, err := s.History(cmdContext(cmd), args[0], limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": hs})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries (0 = all)")
	return cmd
}

func newValuesExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Write all stored values to a JSONL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.valueStore()
			if err != nil {
				return writeErr(cmd, err)
			}
			vs, err := s.List(cmdContext(cmd))
			if err != nil {
				return writeErr(cmd, err)
			}
			path := filepath.Clean(args[0])
			if err := store.WriteValuesJSONL(path, vs); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"path": path, "exported": len(vs)}})
		},
	}
}

func newValuesImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Store every value from a JSONL file (existing keys are overwritten)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Clean(args[0])
			vs, err := store.ReadValuesJSONL(path)
			if err != nil {
				return writeErr(cmd, err)
			}
			s, err := app.valueStore()
			if err != nil {
				return writeErr(cmd, err)
			}
			n, err := s.Import(cmdContext(cmd), vs)
			if err != nil {
				return writeErr(cmd, err)
			}
			app.logger.Info("imported values", "path", path, "count", n)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"path": path, "imported": n}})
		},
	}
}
