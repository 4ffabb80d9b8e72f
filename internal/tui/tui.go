// Package tui implements the root Bubble Tea model for zpartner: a
// single-page registration form with input masks, registry lookups,
// and a notification queue.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zpartner/internal/partner"
	"github.com/zarlcorp/zpartner/internal/receitaws"
	"github.com/zarlcorp/zpartner/internal/viacep"
)

var (
	accent      = lipgloss.Color("#00A878")
	accentStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)
)

// Model is the root TUI model: the draft being filled, its field
// errors, the lookups in flight, and the notification queue.
type Model struct {
	draft  partner.Draft
	inputs [rowCount]textinput.Model
	focus  int
	errors partner.FieldErrors

	lookupAddress func(ctx context.Context, code string) (*viacep.Address, error)
	lookupCompany func(ctx context.Context, cnpj string) (*receitaws.Company, error)

	// monotonic sequences so only the latest lookup response lands
	cepSeq       int
	cepInFlight  bool
	cnpjSeq      int
	cnpjInFlight bool

	phase     submitPhase
	persister Persister

	toasts   []toast
	toastSeq int

	spin spinner.Model
	bar  progress.Model

	// terminal dimensions
	width  int
	height int
}

// New creates the form model wired to the live registries and the
// simulated persister.
func New() Model {
	cep := viacep.NewClient()
	cnpj := receitaws.NewClient()

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = accentStyle

	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(30),
		progress.WithoutPercentage(),
	)

	return Model{
		draft:         partner.NewDraft(),
		inputs:        newInputs(),
		errors:        make(partner.FieldErrors),
		lookupAddress: cep.Lookup,
		lookupCompany: cnpj.Lookup,
		persister:     simulatedPersister{delay: submitDelay},
		spin:          s,
		bar:           bar,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.phase == phaseSubmitting {
			return m, nil
		}
		return m.handleKey(msg)

	case addressResultMsg:
		return m.handleAddressResult(msg)

	case companyResultMsg:
		return m.handleCompanyResult(msg)

	case submitResultMsg:
		return m.handleSubmitResult(msg)

	case toastExpiredMsg:
		return m.handleToastExpired(msg.id), nil

	case spinner.TickMsg:
		if !m.spinning() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m.updateInput(msg)
}

func (m Model) View() string {
	header := zstyle.RenderHeader("zpartner", "New Partner", accent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.focus))

	return "\n" + header + "\n" + sep + "\n" + m.viewForm() + "\n" + footer + "\n"
}

// helpFor returns keybinding pairs for the footer.
func helpFor(focus int) []zstyle.HelpPair {
	if focus == rowPersonality {
		return []zstyle.HelpPair{
			{Key: "space", Desc: "switch"},
			{Key: "tab", Desc: "next"},
			{Key: "ctrl+s", Desc: "submit"},
			{Key: "esc", Desc: "quit"},
		}
	}

	return []zstyle.HelpPair{
		{Key: "tab", Desc: "next"},
		{Key: "shift+tab", Desc: "prev"},
		{Key: "ctrl+s", Desc: "submit"},
		{Key: "esc", Desc: "quit"},
	}
}

// spinning reports whether anything is waiting on a background task.
func (m Model) spinning() bool {
	return m.cepInFlight || m.cnpjInFlight || m.phase == phaseSubmitting
}
