package presenter

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"

	"todo/internal/domain"
)

const (
	// NameWidth is the column width names are truncated and padded to.
	NameWidth = 44

	// DefaultTimeFormat is the layout used for the timestamp column.
	DefaultTimeFormat = "2006-01-02 15:04:05"
)

const (
	idWidth     = 4
	statusWidth = 8
)

// Line is one rendered task. Every field is already truncated and padded, so
// callers can decorate them (colour) without breaking the column layout.
type Line struct {
	ID        string
	Name      string
	Status    string
	Timestamp string
	Done      bool
}

// String lays the fields out as a single plain-text row.
func (l Line) String() string {
	return fmt.Sprintf("%s | %s %s %s", l.ID, l.Name, l.Status, l.Timestamp)
}

// StatusLabel returns the fixed label for a completion flag.
func StatusLabel(done bool) string {
	if done {
		return string(domain.StatusDone)
	}
	return string(domain.StatusPending)
}

// Presenter turns tasks into display lines. It never reorders its input.
type Presenter struct {
	timeFormat string
	location   *time.Location
}

// New creates a presenter using timeFormat for timestamps, rendered in the
// local time zone. An empty format falls back to DefaultTimeFormat.
func New(timeFormat string) *Presenter {
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}
	return &Presenter{timeFormat: timeFormat, location: time.Local}
}

// WithLocation returns a copy of the presenter that renders timestamps in loc.
func (p *Presenter) WithLocation(loc *time.Location) *Presenter {
	clone := *p
	clone.location = loc
	return &clone
}

// Render produces one line per task, in the order given.
func (p *Presenter) Render(tasks []domain.Task) []Line {
	lines := make([]Line, 0, len(tasks))
	for _, task := range tasks {
		lines = append(lines, p.RenderTask(task))
	}
	return lines
}

// RenderTask renders a single task.
func (p *Presenter) RenderTask(task domain.Task) Line {
	return Line{
		ID:        fmt.Sprintf("%*d", idWidth, task.ID),
		Name:      fitName(task.Name),
		Status:    fmt.Sprintf("%-*s", statusWidth, StatusLabel(task.Done)),
		Timestamp: task.CreatedAt.In(p.location).Format(p.timeFormat),
		Done:      task.Done,
	}
}

// Render renders tasks with the default time format.
func Render(tasks []domain.Task) []Line {
	return New(DefaultTimeFormat).Render(tasks)
}

// fitName truncates name to NameWidth characters and then makes it exactly
// NameWidth terminal columns wide. Wide characters take two columns, so a
// name short enough in characters can still need cutting to keep the
// following columns aligned.
func fitName(name string) string {
	name = TruncateAt(name, NameWidth)
	if runewidth.StringWidth(name) > NameWidth {
		name = runewidth.Truncate(name, NameWidth, ellipsis)
	}
	return runewidth.FillRight(name, NameWidth)
}
