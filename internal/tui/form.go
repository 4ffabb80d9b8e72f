package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zpartner/internal/partner"
)

// form rows, top to bottom
const (
	rowPersonality = iota
	rowTaxID
	rowLegalName
	rowPostalCode
	rowStreet
	rowNumber
	rowComplement
	rowNeighborhood
	rowCity
	rowState
	rowEmail
	rowPhone
	rowNote
	rowCount
)

// rowFields maps form rows to draft fields.
var rowFields = [rowCount]partner.Field{
	partner.FieldPersonality,
	partner.FieldTaxID,
	partner.FieldLegalName,
	partner.FieldPostalCode,
	partner.FieldStreet,
	partner.FieldNumber,
	partner.FieldComplement,
	partner.FieldNeighborhood,
	partner.FieldCity,
	partner.FieldState,
	partner.FieldEmail,
	partner.FieldPhone,
	partner.FieldNote,
}

// section headings rendered above these rows
var sectionTitles = map[int]string{
	rowPersonality: "partner",
	rowPostalCode:  "address",
	rowEmail:       "contact",
	rowNote:        "notes",
}

func newInputs() [rowCount]textinput.Model {
	var inputs [rowCount]textinput.Model

	for i := range rowCount {
		ti := textinput.New()
		ti.CharLimit = 256
		ti.Width = 40
		ti.Prompt = ""
		inputs[i] = ti
	}

	inputs[rowTaxID].Placeholder = taxPlaceholder(partner.Company)
	inputs[rowTaxID].CharLimit = 18
	inputs[rowPostalCode].Placeholder = "00000-000"
	inputs[rowPostalCode].CharLimit = 9
	inputs[rowState].Placeholder = "UF"
	inputs[rowState].CharLimit = 2
	inputs[rowState].Width = 6
	inputs[rowEmail].Placeholder = "name@company.com"
	inputs[rowPhone].Placeholder = "(00) 00000-0000"
	inputs[rowPhone].CharLimit = 15

	return inputs
}

func taxPlaceholder(p partner.Personality) string {
	if p == partner.Individual {
		return "000.000.000-00"
	}
	return "00.000.000/0000-00"
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyBack) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyTab) || msg.Type == tea.KeyDown {
		return m.nextRow(), nil
	}

	if msg.Type == tea.KeyUp || msg.Type == tea.KeyShiftTab {
		return m.prevRow(), nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		// enter advances; on the last row it submits
		if m.focus == rowCount-1 {
			return m.submit()
		}
		return m.nextRow(), nil
	}

	if msg.String() == "ctrl+s" {
		return m.submit()
	}

	if m.focus == rowPersonality {
		switch msg.String() {
		case " ", "left", "right":
			return m.cyclePersonality(), nil
		}
		return m, nil
	}

	return m.updateInput(msg)
}

func (m Model) nextRow() Model {
	return m.setFocus((m.focus + 1) % rowCount)
}

func (m Model) prevRow() Model {
	return m.setFocus((m.focus - 1 + rowCount) % rowCount)
}

// setFocus moves the cursor to a row, focusing its input when it has
// one. The personality row is a selector, not an input.
func (m Model) setFocus(row int) Model {
	if m.focus != rowPersonality {
		m.inputs[m.focus].Blur()
	}
	m.focus = row
	if row != rowPersonality {
		m.inputs[row].Focus()
	}
	return m
}

// cyclePersonality switches between company and individual. The tax id
// and legal name are cleared along with their errors because their
// meaning depends on the personality.
func (m Model) cyclePersonality() Model {
	next := partner.Individual
	if m.draft.Personality == partner.Individual {
		next = partner.Company
	}

	m.draft = partner.SwitchPersonality(m.draft, next)
	m.inputs[rowTaxID].SetValue("")
	m.inputs[rowTaxID].Placeholder = taxPlaceholder(next)
	m.inputs[rowLegalName].SetValue("")
	delete(m.errors, partner.FieldTaxID)
	delete(m.errors, partner.FieldLegalName)

	return m
}

func (m Model) updateInput(msg tea.Msg) (Model, tea.Cmd) {
	if m.focus == rowPersonality {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m.applyEdit(m.focus, cmd)
}

// applyEdit runs the edit pipeline for a row: apply the field's mask,
// write the value to the draft, clear the field's stale error, and
// fire any lookup the new value triggers.
func (m Model) applyEdit(row int, cmd tea.Cmd) (Model, tea.Cmd) {
	f := rowFields[row]

	raw := m.inputs[row].Value()
	formatted := partner.Format(f, m.draft.Personality, raw)
	if formatted != raw {
		m.inputs[row].SetValue(formatted)
	}

	if formatted == m.draft.Value(f) {
		return m, cmd
	}

	m.draft = m.draft.Set(f, formatted)
	delete(m.errors, f)

	if lookup := m.maybeLookup(f); lookup != nil {
		return m, tea.Batch(lookup, m.spin.Tick)
	}
	return m, cmd
}

// syncInputs copies the draft back into the input widgets after a
// lookup merge or a reset.
func (m *Model) syncInputs() {
	for row, f := range rowFields {
		if f == partner.FieldPersonality {
			continue
		}
		if v := m.draft.Value(f); m.inputs[row].Value() != v {
			m.inputs[row].SetValue(v)
		}
	}
}

func (m Model) viewForm() string {
	var s string

	done := partner.Completed(m.draft)
	for row := range rowCount {
		if title, ok := sectionTitles[row]; ok {
			s += "\n  " + zstyle.Subtitle.Render(title) + "\n"
		}
		s += m.viewRow(row, done)
	}

	s += "\n"
	s += m.viewProgress()
	s += m.viewStatus()
	s += m.viewToasts()

	return s
}

func (m Model) viewRow(row int, done map[partner.Field]bool) string {
	f := rowFields[row]

	cursor := "  "
	if row == m.focus {
		cursor = accentStyle.Render("▸") + " "
	}

	labelStyle := zstyle.MutedText
	if done[f] {
		labelStyle = zstyle.StatusOK
	}
	label := labelStyle.Render(fmt.Sprintf("%-14s", m.rowLabel(row)))

	var value string
	if row == rowPersonality {
		value = m.viewPersonality()
	} else {
		value = m.inputs[row].View()
	}

	line := "  " + cursor + label + value

	switch f {
	case partner.FieldPostalCode:
		if m.cepInFlight {
			line += " " + m.spin.View()
		}
	case partner.FieldTaxID:
		if m.cnpjInFlight {
			line += " " + m.spin.View()
		}
	}

	if msg, ok := m.errors[f]; ok {
		line += "  " + zstyle.StatusErr.Render(msg)
	}

	return line + "\n"
}

// viewPersonality renders the two personality options with the active
// one checked.
func (m Model) viewPersonality() string {
	opts := make([]string, 0, 2)

	for _, p := range []partner.Personality{partner.Company, partner.Individual} {
		check := "( )"
		if m.draft.Personality == p {
			check = "(x)"
		}

		opt := check + " " + p.Label()
		if m.draft.Personality == p {
			opt = zstyle.Highlight.Render(opt)
		}
		opts = append(opts, opt)
	}

	return strings.Join(opts, "   ")
}

func (m Model) rowLabel(row int) string {
	if row == rowTaxID {
		if m.draft.Personality == partner.Individual {
			return "cpf"
		}
		return "cnpj"
	}
	return rowFields[row].String()
}

func (m Model) viewProgress() string {
	done := len(partner.Completed(m.draft))
	bar := m.bar.ViewAs(partner.Progress(m.draft))
	count := zstyle.MutedText.Render(fmt.Sprintf("%d/%d required", done, len(partner.RequiredFields)))

	return "    " + bar + " " + count + "\n"
}

// viewStatus reserves a line for the submit state so the layout does
// not shift while registering.
func (m Model) viewStatus() string {
	if m.phase == phaseSubmitting {
		return "    " + m.spin.View() + " " + zstyle.MutedText.Render("registering partner...") + "\n"
	}
	return "\n"
}
