package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const visibleRows = 8

func (m pickerModel) columnWidth(f pickerField) int {
	switch f {
	case fieldMonth:
		w := 10
		for _, o := range m.opts.Months {
			if lw := xansi.StringWidth(o.Label); lw > w {
				w = lw
			}
		}
		if w > 18 {
			w = 18
		}
		return w + 2
	default:
		return 10
	}
}

// window returns the slice bounds of the rows shown around cursor.
func window(n, cursor, size int) (int, int) {
	if n <= size {
		return 0, n
	}
	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	if start+size > n {
		start = n - size
	}
	return start, start + size
}

func (m pickerModel) renderColumn(f pickerField) string {
	w := m.columnWidth(f)
	focused := m.focus == f

	lines := make([]string, 0, visibleRows+3)
	header := f.String()
	if cur := m.selected(f); cur != nil {
		header += ": " + m.labelFor(f, *cur)
	}
	lines = append(lines, styleHeader().Render(fit(header, w)))

	switch {
	case focused:
		lines = append(lines, fit(m.input.View(), w))
	case m.queries[f] != "":
		lines = append(lines, styleMuted().Render(fit("/ "+m.queries[f], w)))
	default:
		lines = append(lines, "")
	}

	if f == fieldDay && m.dayDisabled() {
		lines = append(lines, styleMuted().Render(fit("no month", w)))
	} else {
		opts := m.options(f)
		if len(opts) == 0 {
			lines = append(lines, styleMuted().Render(fit("no match", w)))
		}
		start, end := window(len(opts), m.cursors[f], visibleRows)
		cur := m.selected(f)
		for i := start; i < end; i++ {
			o := opts[i]
			marker := "  "
			if cur != nil && *cur == o.value {
				marker = "• "
			}
			row := fit(marker+o.label, w)
			switch {
			case focused && i == m.cursors[f]:
				row = styleCursorRow().Render(row)
			case cur != nil && *cur == o.value:
				row = styleChosen().Render(row)
			}
			lines = append(lines, row)
		}
	}
	for len(lines) < visibleRows+2 {
		lines = append(lines, "")
	}
	return styleColumn(focused).Width(w + 2).Render(strings.Join(lines, "\n"))
}

func (m pickerModel) labelFor(f pickerField, v int) string {
	if f == fieldMonth {
		for _, o := range m.opts.Months {
			if o.Value == v {
				return o.Label
			}
		}
	}
	width := 2
	if f == fieldYear {
		width = 4
	}
	return intOptions([]int{v}, width)[0].label
}

// fit pads or truncates s to exactly w cells.
func fit(s string, w int) string {
	if xansi.StringWidth(s) > w {
		return xansi.Truncate(s, w, "…")
	}
	return s + strings.Repeat(" ", w-xansi.StringWidth(s))
}

func (m pickerModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	var b strings.Builder
	if t := strings.TrimSpace(m.opts.Title); t != "" {
		b.WriteString(styleHeader().Render(t) + "\n")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderColumn(fieldYear),
		m.renderColumn(fieldMonth),
		m.renderColumn(fieldDay),
	))
	b.WriteString("\n")

	value := "—"
	if v, ok := m.sel.ISODate(); ok {
		value = v
	}
	b.WriteString("value: " + styleChosen().Render(value))
	if m.status != "" {
		b.WriteString("  " + styleStatus().Render(m.status))
	}
	b.WriteString("\n")

	help := m.keys.helpLine()
	if m.width > 0 && xansi.StringWidth(help) > m.width {
		help = xansi.Truncate(help, m.width, "…")
	}
	b.WriteString(styleMuted().Render(help) + "\n")
	return b.String()
}
