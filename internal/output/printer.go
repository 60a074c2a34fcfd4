package output

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"taskManager/internal/models/task"
	"taskManager/internal/taskstate"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const dateLayout = "Jan 2, 2006 3:04 PM"

// Printer рисует задачи и уведомления в терминал
type Printer struct {
	mtx    sync.Mutex // уведомления приходят из нескольких горутин
	out    io.Writer
	errOut io.Writer
	styles styles
	loc    *time.Location
}

// New - цвета определяются по out: в файл или пайп пишется простой текст
func New(out, errOut io.Writer) *Printer {
	return &Printer{
		out:    out,
		errOut: errOut,
		styles: newStyles(lipgloss.NewRenderer(out)),
		loc:    time.Local,
	}
}

func (p *Printer) Task(t *task.Task) string {
	header := strings.Join([]string{
		p.styles.title.Render(t.Title),
		p.styles.statusBadge(t.Status),
		p.styles.priorityBadge(t.Priority),
	}, " ")

	lines := []string{header}
	if desc := t.DescriptionText(); desc != "" {
		lines = append(lines, desc)
	}
	lines = append(lines,
		p.styles.muted.Render("Created: "+t.CreatedAt.In(p.loc).Format(dateLayout)),
		p.styles.muted.Render("ID: "+t.ID.String()),
	)
	return p.styles.card.Render(strings.Join(lines, "\n"))
}

// View печатает текущую страницу снимка
func (p *Printer) View(view taskstate.Snapshot) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	switch {
	case view.Loading && view.Total == 0:
		fmt.Fprintln(p.out, p.styles.muted.Render("Loading tasks..."))
		return
	case len(view.Tasks) == 0 && view.OutOfRange():
		fmt.Fprintln(p.out, p.styles.muted.Render(
			fmt.Sprintf("Page %d is empty, last page is %d.", view.Page, view.TotalPages)))
		return
	case len(view.Tasks) == 0:
		fmt.Fprintln(p.out, p.styles.muted.Render("No tasks match your filters."))
		return
	}

	for i := range view.Tasks {
		fmt.Fprintln(p.out, p.Task(&view.Tasks[i]))
	}
	fmt.Fprintln(p.out, p.styles.muted.Render(
		fmt.Sprintf("Page %d of %d (%d of %d tasks)", view.Page, view.TotalPages, view.Filtered, view.Total)))
}

// Notifier возвращает taskstate.Notifier, печатающий в errOut
func (p *Printer) Notifier() taskstate.Notifier {
	return notifier{p: p}
}

type notifier struct {
	p *Printer
}

func (n notifier) Success(msg string) {
	n.p.mtx.Lock()
	defer n.p.mtx.Unlock()
	fmt.Fprintln(n.p.errOut, n.p.styles.success.Render("✔ "+msg))
}

func (n notifier) Error(msg string, err error) {
	n.p.mtx.Lock()
	defer n.p.mtx.Unlock()
	fmt.Fprintln(n.p.errOut, n.p.styles.failure.Render("✖ "+msg))
}
