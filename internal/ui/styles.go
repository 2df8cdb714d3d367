// Package ui renders errands for the terminal: priority colors for plain
// listings and an interactive viewer.
package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/bdreece/errands/internal/errands"
)

// Styles colors output by priority.
type Styles struct {
	enabled  bool
	priority [errands.NumPriorities]lipgloss.Style
	title    lipgloss.Style
	faint    lipgloss.Style
	err      lipgloss.Style
}

// NewStyles builds styles for output written to w. Priorities missing from
// colors render unstyled. When enabled is false every style is plain.
func NewStyles(w io.Writer, colors map[errands.Priority]string, enabled bool) *Styles {
	r := lipgloss.NewRenderer(w)
	s := &Styles{
		enabled: enabled,
		title:   r.NewStyle(),
		faint:   r.NewStyle(),
		err:     r.NewStyle(),
	}
	for _, p := range errands.Priorities() {
		s.priority[p.Rank()] = r.NewStyle()
	}
	if !enabled {
		return s
	}

	s.title = s.title.Bold(true)
	s.faint = s.faint.Faint(true)
	s.err = s.err.Foreground(lipgloss.Color("9"))
	for _, p := range errands.Priorities() {
		style := s.priority[p.Rank()]
		if c, ok := colors[p]; ok && c != "" {
			style = style.Foreground(lipgloss.Color(c))
		}
		if p == errands.Emergency {
			style = style.Bold(true)
		}
		s.priority[p.Rank()] = style
	}
	return s
}

// Enabled reports whether colors are on.
func (s *Styles) Enabled() bool {
	return s.enabled
}

// Priority returns the style for p.
func (s *Styles) Priority(p errands.Priority) lipgloss.Style {
	if !p.Valid() {
		return s.faint
	}
	return s.priority[p.Rank()]
}

// Item renders an errand in its priority color.
func (s *Styles) Item(item errands.Item) string {
	if !s.enabled {
		return item.Text
	}
	return s.Priority(item.Priority).Render(item.Text)
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
