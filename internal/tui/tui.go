package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/munchkin/internal/catalog"
	"github.com/tatianab/munchkin/internal/config"
	"github.com/tatianab/munchkin/internal/engine"
	"github.com/tatianab/munchkin/internal/models"
	"github.com/tatianab/munchkin/internal/session"
	"go.uber.org/zap"
)

// DefaultSaveName is the save slot written after every command.
const DefaultSaveName = "current"

type sessionState int

const (
	statePlaying sessionState = iota
	stateError
)

type model struct {
	state     sessionState
	session   *session.Session
	saveDir   string
	saveName  string
	textInput textinput.Model
	viewport  viewport.Model
	err       error
	gameLog   string
	width     int
	height    int
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

func NewModel(s *session.Session, saveDir, saveName string) model {
	ti := textinput.New()
	ti.Placeholder = "draw 1 door"
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 60

	return model{
		state:     statePlaying,
		session:   s,
		saveDir:   saveDir,
		saveName:  saveName,
		textInput: ti,
		gameLog:   gameStyle.Bold(true).Render(fmt.Sprintf("Munchkin, %d players, seed %d", len(s.Players), s.Seed)) + "\n",
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.state != statePlaying {
				return m, nil
			}
			line := strings.TrimSpace(m.textInput.Value())
			if line == "" {
				return m, nil
			}
			m.textInput.Reset()

			switch line {
			case "/quit":
				return m, tea.Quit
			case "/save":
				m.appendAction(line)
				if err := m.save(); err != nil {
					m.appendError(err)
				} else {
					m.appendOutput(fmt.Sprintf("saved to %s", m.saveName))
				}
				return m, nil
			}

			m.appendAction(line)
			out, err := execute(m.session, line)
			if err != nil {
				m.appendError(err)
				return m, nil
			}
			m.appendOutput(out)
			if err := m.save(); err != nil {
				m.err = err
				m.state = stateError
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.logWidth()
		m.viewport.Height = msg.Height - 6
		m.viewport.SetContent(m.gameLog)
		m.viewport.GotoBottom()
	}

	if m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *model) logWidth() int {
	return int(float64(m.width) * 0.6)
}

func (m *model) appendAction(line string) {
	m.gameLog += "\n" + userStyle.Width(m.logWidth()).Render("> "+line) + "\n"
	m.refresh()
}

func (m *model) appendOutput(out string) {
	m.gameLog += gameStyle.Width(m.logWidth()).Render(out) + "\n"
	m.refresh()
}

func (m *model) appendError(err error) {
	m.gameLog += errorStyle.Width(m.logWidth()).Render("error: "+err.Error()) + "\n"
	m.refresh()
}

func (m *model) refresh() {
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

func (m *model) save() error {
	if m.saveDir == "" {
		return nil
	}
	return m.session.Save(m.saveDir, m.saveName)
}

func (m model) View() string {
	var s string

	switch m.state {
	case statePlaying:
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			m.renderState(),
		)
		help := helpStyle.Render("Commands: " + usage)

		s = lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			"\n"+m.textInput.View(),
			"\n"+help,
		)

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) renderState() string {
	stateWidth := int(float64(m.width) * 0.38)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(renderTable(m.session))
}

// renderTable describes every player and the piles.
func renderTable(s *session.Session) string {
	var b strings.Builder
	pm := s.Piles()
	b.WriteString(titleStyle.Render("PILES") + "\n")
	for _, kind := range []models.Affinity{models.Door, models.Treasure} {
		fmt.Fprintf(&b, "%s: %d (%d discarded)\n", kind, pm.Size(kind), pm.DiscardSize(kind))
	}
	for _, p := range s.Players {
		b.WriteString("\n" + renderPlayer(p))
	}
	return b.String()
}

func renderPlayer(p *models.Player) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("PLAYER %d", p.TurnNumber)) + "\n")
	fmt.Fprintf(&b, "Level %d, %s, %d gold\n", p.Level, p.Sex, p.Gold)
	fmt.Fprintf(&b, "Combat +%d, run away +%d\n", p.CombatBonus, p.RunAwayBonus)
	if p.ChickenOnHead {
		b.WriteString("Chicken on head\n")
	}
	fmt.Fprintf(&b, "Hand (%d/%d):\n", p.Hand.Len(), p.Hand.Limit())
	writeCards(&b, p.Hand.Cards())
	fmt.Fprintf(&b, "Equipped (races %d/%d, classes %d/%d):\n",
		p.Equipped.RaceCount(), p.Equipped.RaceLimit(), p.Equipped.ClassCount(), p.Equipped.ClassLimit())
	writeCards(&b, p.Equipped.Cards())
	return b.String()
}

func writeCards(b *strings.Builder, cards []*models.Card) {
	if len(cards) == 0 {
		b.WriteString("  (empty)\n")
		return
	}
	for i, c := range cards {
		fmt.Fprintf(b, "  %d. %s [%s]\n", i+1, engine.MonsterSummary(c), c.Category)
	}
}

// Run starts the inspector on s. Every command autosaves to saveDir/saveName.
func Run(s *session.Session, saveDir, saveName string) error {
	p := tea.NewProgram(NewModel(s, saveDir, saveName), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Start loads the configuration, deals a new game and runs the inspector.
func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	s, err := NewSession(cfg, logger)
	if err != nil {
		return err
	}
	return Run(s, cfg.SaveDir, DefaultSaveName)
}

// NewSession deals a game from cfg.
func NewSession(cfg *config.Config, logger *zap.Logger) (*session.Session, error) {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	return session.New(session.Options{Players: cfg.Players, Seed: cfg.Seed, Catalog: cat, Logger: logger})
}
