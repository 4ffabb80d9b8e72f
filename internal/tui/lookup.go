package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/zpartner/internal/partner"
	"github.com/zarlcorp/zpartner/internal/receitaws"
	"github.com/zarlcorp/zpartner/internal/viacep"
)

// addressResultMsg carries the outcome of a postal code lookup.
type addressResultMsg struct {
	seq  int
	code string
	addr *viacep.Address
	err  error
}

// companyResultMsg carries the outcome of a cnpj lookup.
type companyResultMsg struct {
	seq  int
	cnpj string
	comp *receitaws.Company
	err  error
}

// maybeLookup fires a registry lookup the moment its source field
// reaches a complete value. Lookups are never retried or canceled;
// the sequence number decides which response lands.
func (m *Model) maybeLookup(f partner.Field) tea.Cmd {
	switch f {
	case partner.FieldPostalCode:
		code := partner.Digits(m.draft.PostalCode)
		if len(code) != 8 {
			return nil
		}
		m.cepSeq++
		m.cepInFlight = true
		return lookupAddressCmd(m.lookupAddress, code, m.cepSeq)

	case partner.FieldTaxID:
		if m.draft.Personality != partner.Company {
			return nil
		}
		cnpj := partner.Digits(m.draft.TaxID)
		if len(cnpj) != 14 {
			return nil
		}
		m.cnpjSeq++
		m.cnpjInFlight = true
		return lookupCompanyCmd(m.lookupCompany, cnpj, m.cnpjSeq)
	}

	return nil
}

func lookupAddressCmd(fn func(context.Context, string) (*viacep.Address, error), code string, seq int) tea.Cmd {
	return func() tea.Msg {
		addr, err := fn(context.Background(), code)
		return addressResultMsg{seq: seq, code: code, addr: addr, err: err}
	}
}

func lookupCompanyCmd(fn func(context.Context, string) (*receitaws.Company, error), cnpj string, seq int) tea.Cmd {
	return func() tea.Msg {
		comp, err := fn(context.Background(), cnpj)
		return companyResultMsg{seq: seq, cnpj: cnpj, comp: comp, err: err}
	}
}

func (m Model) handleAddressResult(msg addressResultMsg) (Model, tea.Cmd) {
	// a newer lookup owns the postal code state
	if msg.seq != m.cepSeq {
		return m, nil
	}
	m.cepInFlight = false

	switch {
	case errors.Is(msg.err, viacep.ErrNotFound):
		return m.pushToast(toast{
			title:       "postal code not found",
			description: "no address for " + partner.FormatPostalCode(msg.code),
			severity:    toastDestructive,
		})

	case msg.err != nil:
		return m.pushToast(toast{
			title:       "postal code lookup failed",
			description: msg.err.Error(),
			severity:    toastDestructive,
		})
	}

	m.draft.Street = msg.addr.Street
	m.draft.Neighborhood = msg.addr.Neighborhood
	m.draft.City = msg.addr.City
	m.draft.State = partner.FormatState(msg.addr.State)
	m.syncInputs()

	return m.pushToast(toast{
		title:       "address found",
		description: addressSummary(msg.addr),
		severity:    toastNormal,
	})
}

func (m Model) handleCompanyResult(msg companyResultMsg) (Model, tea.Cmd) {
	// a newer lookup owns the cnpj state
	if msg.seq != m.cnpjSeq {
		return m, nil
	}
	m.cnpjInFlight = false

	var statusErr *receitaws.StatusError
	switch {
	case errors.As(msg.err, &statusErr):
		return m.pushToast(toast{
			title:       "cnpj not found",
			description: statusErr.Message,
			severity:    toastDestructive,
		})

	case msg.err != nil:
		return m.pushToast(toast{
			title:       "cnpj lookup failed",
			description: msg.err.Error(),
			severity:    toastDestructive,
		})
	}

	m.draft.LegalName = msg.comp.LegalName
	m.syncInputs()

	return m.pushToast(toast{
		title:       "company found",
		description: msg.comp.LegalName,
		severity:    toastNormal,
	})
}

func addressSummary(addr *viacep.Address) string {
	place := addr.City
	if addr.State != "" {
		place += "/" + addr.State
	}
	if addr.Street == "" {
		return place
	}
	return addr.Street + ", " + place
}
