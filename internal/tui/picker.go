package tui

import (
	"strconv"
	"strings"

	"datefield-cli/internal/datefield"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type pickerField int

const (
	fieldYear pickerField = iota
	fieldMonth
	fieldDay
	fieldCount
)

func (f pickerField) String() string {
	switch f {
	case fieldYear:
		return "Year"
	case fieldMonth:
		return "Month"
	case fieldDay:
		return "Day"
	default:
		return "?"
	}
}

// Options configures a picker run. The host resolves today, the minimum
// year and the month labels; the picker only applies the range policy.
type Options struct {
	Title   string
	Today   datefield.DateParts
	MinYear int
	Months  []datefield.MonthOption
	Initial datefield.Selection
	Profile string
	// Focus names the column focused at start ("year", "month", "day").
	Focus string
}

// Result is the outcome of a picker run. Value is set only when the user
// confirmed a complete selection.
type Result struct {
	Value     string
	OK        bool
	Cancelled bool
	// Focus is the column focused when the picker closed.
	Focus string
}

type pickerOption struct {
	value int
	label string
}

type pickerModel struct {
	opts Options
	keys keyMap

	sel     datefield.Selection
	focus   pickerField
	queries [fieldCount]string
	cursors [fieldCount]int
	input   textinput.Model

	width  int
	status string

	done      bool
	cancelled bool
}

func newPickerModel(opts Options) pickerModel {
	if opts.MinYear == 0 {
		opts.MinYear = 1900
	}
	opts.MinYear = datefield.ClampMinYear(opts.MinYear, opts.Today)
	if len(opts.Months) == 0 {
		opts.Months = datefield.BuildMonthOptions(nil, "", nil)
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter"
	ti.CharLimit = 16
	ti.Focus()

	m := pickerModel{
		opts:  opts,
		keys:  defaultKeyMap(),
		sel:   datefield.ReconcileSelection(opts.Initial, opts.Today, opts.MinYear),
		input: ti,
		width: 80,
	}
	for f := fieldYear; f < fieldCount; f++ {
		m.cursors[f] = m.indexOfSelected(f)
	}
	if f, ok := parseField(opts.Focus); ok {
		m.focus = f
	}
	return m
}

func parseField(s string) (pickerField, bool) {
	for f := fieldYear; f < fieldCount; f++ {
		if strings.EqualFold(strings.TrimSpace(s), f.String()) {
			return f, true
		}
	}
	return fieldYear, false
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) selected(f pickerField) *int {
	switch f {
	case fieldYear:
		return m.sel.Year
	case fieldMonth:
		return m.sel.Month
	default:
		return m.sel.Day
	}
}

func (m pickerModel) dayDisabled() bool {
	return m.sel.Month == nil
}

// options returns the visible rows of column f: availability first, then the typeahead query.
func (m pickerModel) options(f pickerField) []pickerOption {
	today := m.opts.Today
	q := m.queries[f]
	switch f {
	case fieldYear:
		years := datefield.FilterYearOptions(datefield.BuildYearOptions(m.opts.MinYear, today.Year), q)
		return intOptions(years, 4)
	case fieldMonth:
		months := datefield.FilterMonthOptions(datefield.AvailableMonths(m.opts.Months, m.sel.Year, today), q)
		out := make([]pickerOption, 0, len(months))
		for _, mo := range months {
			out = append(out, pickerOption{value: mo.Value, label: mo.Label})
		}
		return out
	default:
		if m.dayDisabled() {
			return nil
		}
		days := datefield.FilterNumberOptions(datefield.AvailableDays(m.sel.Year, m.sel.Month, today), q)
		return intOptions(days, 2)
	}
}

func intOptions(ns []int, width int) []pickerOption {
	out := make([]pickerOption, 0, len(ns))
	for _, n := range ns {
		s := strconv.Itoa(n)
		for len(s) < width {
			s = "0" + s
		}
		out = append(out, pickerOption{value: n, label: s})
	}
	return out
}

func (m pickerModel) indexOfSelected(f pickerField) int {
	cur := m.selected(f)
	if cur == nil {
		return 0
	}
	for i, o := range m.options(f) {
		if o.value == *cur {
			return i
		}
	}
	return 0
}

func (m *pickerModel) clampCursor(f pickerField) {
	n := len(m.options(f))
	if m.cursors[f] >= n {
		m.cursors[f] = n - 1
	}
	if m.cursors[f] < 0 {
		m.cursors[f] = 0
	}
}

func (m *pickerModel) setFocus(f pickerField) {
	m.queries[m.focus] = m.input.Value()
	m.focus = (f + fieldCount) % fieldCount
	m.input.SetValue(m.queries[m.focus])
	m.input.CursorEnd()
	m.clampCursor(m.focus)
}

func (m *pickerModel) setSelected(f pickerField, v *int) {
	switch f {
	case fieldYear:
		m.sel.Year = v
	case fieldMonth:
		m.sel.Month = v
		if v == nil {
			m.sel.Day = nil
		}
	default:
		m.sel.Day = v
	}
	m.sel = datefield.ReconcileSelection(m.sel, m.opts.Today, m.opts.MinYear)
	for g := fieldYear; g < fieldCount; g++ {
		if g != m.focus {
			m.cursors[g] = m.indexOfSelected(g)
		}
	}
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m pickerModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Confirm):
		if _, ok := m.sel.ISODate(); !ok {
			m.status = "choose a year, month and day first"
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.setFocus(m.focus + 1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.setFocus(m.focus - 1)
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.cursors[m.focus]--
		m.clampCursor(m.focus)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.cursors[m.focus]++
		m.clampCursor(m.focus)
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.setSelected(m.focus, nil)
		return m, nil
	case key.Matches(msg, m.keys.Select):
		return m.selectCursor()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.queries[m.focus] = v
		m.cursors[m.focus] = 0
	}
	return m, cmd
}

func (m pickerModel) selectCursor() (tea.Model, tea.Cmd) {
	if m.focus == fieldDay && m.dayDisabled() {
		m.status = "choose a month first"
		return m, nil
	}
	opts := m.options(m.focus)
	if len(opts) == 0 {
		m.status = "no match"
		return m, nil
	}
	m.clampCursor(m.focus)
	v := opts[m.cursors[m.focus]].value

	m.input.SetValue("")
	m.queries[m.focus] = ""
	m.setSelected(m.focus, datefield.Int(v))
	m.cursors[m.focus] = m.indexOfSelected(m.focus)
	if m.focus < fieldDay {
		m.setFocus(m.focus + 1)
	}
	return m, nil
}

func (m pickerModel) result() Result {
	focus := strings.ToLower(m.focus.String())
	if m.cancelled || !m.done {
		return Result{Cancelled: m.cancelled, Focus: focus}
	}
	v, ok := m.sel.ISODate()
	return Result{Value: v, OK: ok, Focus: focus}
}
