package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bdreece/errands/internal/errands"
)

// ErrNotTTY is returned by RunViewer when output is not a terminal.
var ErrNotTTY = errors.New("viewer requires a TTY")

// OpenFunc loads the list shown by the viewer and reports its path.
type OpenFunc func() (*errands.List, string, error)

// Viewer is a read-only bubbletea model over an errands list. It reloads
// the list on every tick so edits from other shells show up.
type Viewer struct {
	open         OpenFunc
	styles       *Styles
	tickInterval time.Duration

	list     *errands.List
	path     string
	loadErr  error
	filter   errands.Priority
	order    errands.Order
	showHelp bool
}

type tickMsg time.Time

// NewViewer returns a viewer that loads its list with open. An interval of
// zero disables periodic refresh.
func NewViewer(open OpenFunc, styles *Styles, interval time.Duration) *Viewer {
	return &Viewer{
		open:         open,
		styles:       styles,
		tickInterval: interval,
	}
}

// RunViewer runs v full screen on out until the user quits or ctx is done.
func RunViewer(ctx context.Context, out io.Writer, v *Viewer) error {
	if !IsTTY(out) {
		return ErrNotTTY
	}
	program := tea.NewProgram(v, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithOutput(out))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

func (v *Viewer) Init() tea.Cmd {
	v.refresh()
	return tickCmd(v.tickInterval)
}

func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "ctrl+c", "q", "esc":
			return v, tea.Quit
		case "r", "f5":
			v.refresh()
		case "o":
			if v.order == errands.Ascending {
				v.order = errands.Descending
			} else {
				v.order = errands.Ascending
			}
		case "h", "?":
			v.showHelp = !v.showHelp
		case "0":
			v.filter = errands.NoPriority
		case "1", "2", "3", "4", "5", "6":
			v.filter = errands.Priority(key[0] - '0')
		}
	case tickMsg:
		v.refresh()
		return v, tickCmd(v.tickInterval)
	}
	return v, nil
}

func (v *Viewer) View() string {
	var b strings.Builder
	v.writeTitle(&b)

	if v.showHelp {
		writeHelp(&b)
		v.writeFooter(&b)
		return b.String()
	}

	if v.loadErr != nil {
		b.WriteString(v.styles.err.Render("Error loading errands list:") + "\n")
		b.WriteString("  " + v.loadErr.Error() + "\n\n")
		v.writeFooter(&b)
		return b.String()
	}
	if v.list == nil {
		b.WriteString("Loading...\n\n")
		v.writeFooter(&b)
		return b.String()
	}

	v.writeOverview(&b)
	v.writeItems(&b)
	v.writeFooter(&b)
	return b.String()
}

func tickCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		return nil
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (v *Viewer) refresh() {
	l, path, err := v.open()
	if err != nil {
		v.loadErr = err
		v.list = nil
		return
	}
	v.loadErr = nil
	v.list = l
	v.path = path
}

func (v *Viewer) writeTitle(b *strings.Builder) {
	title := "errands"
	if v.path != "" {
		title += " - " + v.path
	}
	b.WriteString(v.styles.title.Render(title) + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func (v *Viewer) writeOverview(b *strings.Builder) {
	counts := make([]string, 0, errands.NumPriorities)
	for _, p := range errands.Priorities() {
		items, ok := v.list.Bucket(p)
		if !ok {
			continue
		}
		counts = append(counts, v.styles.Priority(p).Render(fmt.Sprintf("%s: %d", p, len(items))))
	}
	if len(counts) == 0 {
		b.WriteString("  No buckets.\n\n")
		return
	}
	b.WriteString("  " + strings.Join(counts, "  ") + "\n\n")
}

func (v *Viewer) writeItems(b *strings.Builder) {
	if v.filter != errands.NoPriority {
		fmt.Fprintf(b, "Filter: %s (0 to clear)\n", v.filter)
	}
	fmt.Fprintf(b, "Order: %s (o to toggle)\n\n", v.order)

	items, err := v.list.Query(errands.ListOptions{Priority: v.filter, Order: v.order})
	if err != nil {
		b.WriteString("  " + err.Error() + "\n\n")
		return
	}
	if len(items) == 0 {
		b.WriteString("  Nothing to do.\n\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "  %-9s %s\n", item.Priority, v.styles.Item(item))
	}
	b.WriteString("\n")
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  r, F5        Refresh list\n")
	b.WriteString("  o            Toggle ascending/descending order\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
	for _, p := range errands.Priorities() {
		fmt.Fprintf(b, "  %d            Show only %s\n", p, p)
	}
	b.WriteString("  0            Clear filter\n\n")
}

func (v *Viewer) writeFooter(b *strings.Builder) {
	footer := "Press h for help | q to quit"
	if v.tickInterval > 0 {
		footer += fmt.Sprintf(" | Refreshing every %s", v.tickInterval)
	}
	b.WriteString(v.styles.faint.Render(footer) + "\n")
}
