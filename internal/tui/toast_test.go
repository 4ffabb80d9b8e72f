package tui

import (
	"strings"
	"testing"
)

func TestPushToastAssignsSequentialIDs(t *testing.T) {
	m, _, _ := newTestModel()

	m, _ = m.pushToast(toast{title: "first"})
	m, _ = m.pushToast(toast{title: "second"})

	if len(m.toasts) != 2 {
		t.Fatalf("toasts = %d, want 2", len(m.toasts))
	}
	if m.toasts[0].id == m.toasts[1].id {
		t.Error("toast ids should be unique")
	}
	if m.toasts[0].title != "first" || m.toasts[1].title != "second" {
		t.Error("toasts should render oldest first")
	}
}

func TestToastExpiryRemovesOnlyMatching(t *testing.T) {
	m, _, _ := newTestModel()

	m, _ = m.pushToast(toast{title: "first"})
	m, _ = m.pushToast(toast{title: "second"})

	m = processMsg(t, m, toastExpiredMsg{id: m.toasts[0].id})

	if len(m.toasts) != 1 {
		t.Fatalf("toasts = %d, want 1", len(m.toasts))
	}
	if m.toasts[0].title != "second" {
		t.Errorf("remaining toast = %q, want second", m.toasts[0].title)
	}
}

func TestToastExpiryUnknownIDIsNoop(t *testing.T) {
	m, _, _ := newTestModel()
	m, _ = m.pushToast(toast{title: "only"})

	m = processMsg(t, m, toastExpiredMsg{id: 999})

	if len(m.toasts) != 1 {
		t.Errorf("toasts = %d, want 1", len(m.toasts))
	}
}

func TestToastViewRendersQueue(t *testing.T) {
	m, _, _ := newTestModel()

	if got := m.viewToasts(); got != "\n" {
		t.Errorf("empty queue view = %q, want reserved line", got)
	}

	m, _ = m.pushToast(toast{title: "address found", description: "Rua A, SP City/SP"})
	m, _ = m.pushToast(toast{title: "cnpj not found", severity: toastDestructive})

	view := m.viewToasts()
	if !strings.Contains(view, "address found") {
		t.Error("view missing normal toast")
	}
	if !strings.Contains(view, "Rua A, SP City/SP") {
		t.Error("view missing toast description")
	}
	if !strings.Contains(view, "cnpj not found") {
		t.Error("view missing destructive toast")
	}
}

func TestToastLifetimeCmdScheduled(t *testing.T) {
	m, _, _ := newTestModel()

	_, cmd := m.pushToast(toast{title: "first"})
	if cmd == nil {
		t.Error("push should schedule an expiry")
	}
}
