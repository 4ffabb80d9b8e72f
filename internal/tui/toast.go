package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
)

// toastSeverity selects the styling for a notification.
type toastSeverity int

const (
	toastNormal toastSeverity = iota
	toastDestructive
)

const toastLifetime = 3 * time.Second

// toast is a transient notification shown beneath the form.
type toast struct {
	id          int
	title       string
	description string
	severity    toastSeverity
}

// toastExpiredMsg removes a toast once its display time is up.
type toastExpiredMsg struct {
	id int
}

// pushToast queues a notification and schedules its expiry.
func (m Model) pushToast(t toast) (Model, tea.Cmd) {
	m.toastSeq++
	t.id = m.toastSeq
	m.toasts = append(m.toasts, t)
	return m, expireToastAfter(t.id)
}

func expireToastAfter(id int) tea.Cmd {
	return tea.Tick(toastLifetime, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m Model) handleToastExpired(id int) Model {
	var keep []toast
	for _, t := range m.toasts {
		if t.id != id {
			keep = append(keep, t)
		}
	}
	m.toasts = keep
	return m
}

// viewToasts renders the queue oldest first, reserving a line when
// empty so the footer does not shift.
func (m Model) viewToasts() string {
	if len(m.toasts) == 0 {
		return "\n"
	}

	var s string
	for _, t := range m.toasts {
		style := zstyle.StatusOK
		if t.severity == toastDestructive {
			style = zstyle.StatusErr
		}

		s += "    " + style.Render(t.title)
		if t.description != "" {
			s += "  " + zstyle.MutedText.Render(t.description)
		}
		s += "\n"
	}
	return s
}
