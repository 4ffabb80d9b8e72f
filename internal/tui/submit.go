package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/zpartner/internal/partner"
)

type submitPhase int

const (
	phaseIdle submitPhase = iota
	phaseValidating
	phaseSubmitting
)

// submitDelay stands in for the latency of a real backend.
const submitDelay = 1500 * time.Millisecond

// Persister is the boundary to whatever stores accepted partner
// records.
type Persister interface {
	Persist(ctx context.Context, d partner.Draft) error
}

// simulatedPersister waits out its delay and accepts the record.
type simulatedPersister struct {
	delay time.Duration
}

func (p simulatedPersister) Persist(ctx context.Context, _ partner.Draft) error {
	select {
	case <-time.After(p.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// submitResultMsg carries the outcome of the persistence call.
type submitResultMsg struct {
	err error
}

// submit validates the whole draft and hands it to the persister when
// clean. Validation failures land as field errors plus a notification.
func (m Model) submit() (Model, tea.Cmd) {
	m.phase = phaseValidating
	m.errors = partner.Validate(m.draft)

	if !m.errors.Valid() {
		m.phase = phaseIdle

		n := len(m.errors)
		noun := "fields"
		if n == 1 {
			noun = "field"
		}
		return m.pushToast(toast{
			title:       "form has errors",
			description: fmt.Sprintf("fix %d %s and try again", n, noun),
			severity:    toastDestructive,
		})
	}

	m.phase = phaseSubmitting
	d := m.draft
	p := m.persister

	return m, tea.Batch(
		func() tea.Msg {
			return submitResultMsg{err: p.Persist(context.Background(), d)}
		},
		m.spin.Tick,
	)
}

func (m Model) handleSubmitResult(msg submitResultMsg) (Model, tea.Cmd) {
	m.phase = phaseIdle

	if msg.err != nil {
		// keep the draft so nothing typed is lost
		return m.pushToast(toast{
			title:       "registration failed",
			description: msg.err.Error(),
			severity:    toastDestructive,
		})
	}

	name := m.draft.LegalName
	m.reset()

	return m.pushToast(toast{
		title:       "partner registered",
		description: name,
		severity:    toastNormal,
	})
}

// reset returns the form to its initial state after a successful
// submit. Bumping the sequences strands any lookup still in flight.
func (m *Model) reset() {
	m.draft = partner.NewDraft()
	m.errors = make(partner.FieldErrors)
	m.cepSeq++
	m.cepInFlight = false
	m.cnpjSeq++
	m.cnpjInFlight = false
	m.syncInputs()
	m.inputs[rowTaxID].Placeholder = taxPlaceholder(partner.Company)
}
