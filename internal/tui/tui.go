package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the picker until the user confirms or cancels.
func Run(opts Options, progOpts ...tea.ProgramOption) (Result, error) {
	applyColorProfilePreference(opts.Profile)

	final, err := tea.NewProgram(newPickerModel(opts), progOpts...).Run()
	if err != nil {
		return Result{}, err
	}
	m, ok := final.(pickerModel)
	if !ok {
		return Result{}, fmt.Errorf("unexpected picker model %T", final)
	}
	return m.result(), nil
}
