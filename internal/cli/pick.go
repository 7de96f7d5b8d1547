package cli

import (
	"errors"
	"strings"
	"time"

	"datefield-cli/internal/datefield"
	"datefield-cli/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// runPicker is swapped out in tests.
var runPicker = tui.Run

func newPickCmd(app *App) *cobra.Command {
	var (
		title   string
		initial string
		last    bool
	)

	cmd := &cobra.Command{
		Use:   "pick [key]",
		Short: "Pick a date interactively (year, month and day columns with typeahead)",
		Long: `Open the three-column picker.

With a key, the picker starts from the stored value and a confirmed date
is written back to the value store. Without a key the result is only
printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := app.resolveToday(time.Now())
			if err != nil {
				return writeErr(cmd, err)
			}

			ctx := cmdContext(cmd)

			s, err := app.valueStore()
			if err != nil {
				return writeErr(cmd, err)
			}
			state, err := s.LoadTUIState()
			if err != nil {
				return writeErr(cmd, err)
			}

			key := ""
			if len(args) == 1 {
				key = strings.TrimSpace(args[0])
			} else if last {
				k, ok := state.LastKey()
				if !ok {
					return writeErr(cmd, errNotFound("recent key", "--last"))
				}
				key = k
			}

			seed := strings.TrimSpace(initial)
			if seed == "" && key != "" {
				v, ok, err := s.Get(ctx, key)
				if err != nil {
					return writeErr(cmd, err)
				}
				if ok {
					seed = v.Value
				}
			}
			if seed != "" {
				if _, ok := datefield.ParseISODate(seed); !ok {
					app.logger.Warn("ignoring unparseable initial value", "value", seed)
				}
			}

			if title == "" {
				title = key
			}
			profile := ""
			if c := app.config().TUI; c != nil {
				profile = c.Profile
			}

			res, err := runPicker(tui.Options{
				Title:   title,
				Today:   today,
				MinYear: app.minYearFor(today),
				Months:  app.monthOptions(nil),
				Initial: datefield.SelectionFromISO(seed),
				Profile: profile,
				Focus:   state.LastFocus[key],
			}, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.ErrOrStderr()))
			if err != nil {
				return writeErr(cmd, err)
			}

			var value *string
			if res.OK {
				value = &res.Value
				if key != "" {
					if _, err := s.Put(ctx, key, res.Value); err != nil {
						return writeErr(cmd, err)
					}
					app.logger.Info("stored", "key", key, "value", res.Value)
				}
			}
			if key != "" {
				if res.OK {
					state.TouchKey(key)
				}
				if state.LastFocus == nil {
					state.LastFocus = map[string]string{}
				}
				state.LastFocus[key] = res.Focus
				if err := s.SaveTUIState(state); err != nil {
					app.logger.Warn("save picker state", "err", err)
				}
			}

			data := map[string]any{
				"value":     value,
				"cancelled": res.Cancelled,
			}
			if key != "" {
				data["key"] = key
			}
			if err := writeOut(cmd, app, map[string]any{"data": data}); err != nil {
				return err
			}
			if res.Cancelled {
				return errPickCancelled
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title shown above the columns (default: the key)")
	cmd.Flags().StringVar(&initial, "initial", "", "Initial value (YYYY-MM-DD); overrides the stored value")
	cmd.Flags().BoolVar(&last, "last", false, "Reuse the most recently picked key")
	return cmd
}

var errPickCancelled = errors.New("cancelled")
