package cmd

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/go-drift/kinetic/pkg/motion"
	"github.com/go-drift/kinetic/pkg/profile"
)

var demoFlags struct {
	profile string
	rows    int
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Scroll a list interactively with the selected physics profile",
	Long: `Demo renders a scrollable list in the terminal and routes wheel and
key input through a kinetic position, so the feel of a profile can be
judged directly: wheel or j/k nudges, f/F flings, g/G jumps.`,
	RunE: runDemo,
}

func init() {
	f := demoCmd.Flags()
	f.StringVar(&demoFlags.profile, "profile", "list", "physics profile to scroll with")
	f.IntVar(&demoFlags.rows, "rows", 200, "number of rows in the demo list")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	file, err := profile.LoadOptional(profilesDir)
	if err != nil {
		return err
	}
	behavior, err := file.Build(demoFlags.profile)
	if err != nil {
		return err
	}

	model := newDemoModel(demoFlags.profile, behavior, demoFlags.rows)
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

// frameScheduler delivers position ticks from bubbletea frame messages,
// keeping drag input and trajectory ticks on the single program
// goroutine the way a UI event loop would.
type frameScheduler struct {
	tick  func()
	due   time.Time
	armed bool
}

// Bind attaches the position's tick callback, matching the
// motion.WithScheduler factory shape.
func (s *frameScheduler) Bind(tick func()) motion.Scheduler {
	s.tick = tick
	return s
}

func (s *frameScheduler) Start(period time.Duration) {
	s.armed = true
	s.due = time.Now().Add(period)
}

func (s *frameScheduler) Stop() {
	s.armed = false
}

func (s *frameScheduler) IsRunning() bool {
	return s.armed
}

// pump fires the pending tick once its period has elapsed. The tick
// handler re-arms or stops the scheduler itself.
func (s *frameScheduler) pump(now time.Time) {
	if s.armed && !now.Before(s.due) {
		s.tick()
	}
}

type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return frameMsg(t) })
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	rowStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type demoModel struct {
	name   string
	pos    *motion.Position
	sched  *frameScheduler
	rows   []string
	width  int
	height int
}

func newDemoModel(name string, b motion.Behavior, rowCount int) *demoModel {
	sched := &frameScheduler{}
	pos := motion.New(b, motion.WithScheduler(sched.Bind))
	rows := make([]string, rowCount)
	for i := range rows {
		rows[i] = fmt.Sprintf("row %4d", i)
	}
	return &demoModel{name: name, pos: pos, sched: sched, rows: rows}
}

func (m *demoModel) Init() tea.Cmd {
	return frameTick()
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.sched.pump(time.Time(msg))
		return m, frameTick()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.pos.SetLimits(motion.Range{Min: 0, Max: float64(max(0, len(m.rows)-m.viewRows()))})
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				m.pos.Nudge(-3)
			case tea.MouseButtonWheelDown:
				m.pos.Nudge(3)
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.pos.Nudge(-1)
		case "down", "j":
			m.pos.Nudge(1)
		case "f":
			m.fling(40)
		case "F":
			m.fling(-40)
		case "g":
			m.pos.SetValue(0)
		case "G":
			m.pos.SetValue(float64(len(m.rows)))
		}
		return m, nil
	}
	return m, nil
}

// fling fakes a fast drag sample so the behaviour sees a real release
// velocity, in rows per second.
func (m *demoModel) fling(rowsPerSecond float64) {
	m.pos.BeginDrag()
	m.pos.Drag(0)
	// Both samples land within the 5ms estimation floor, so the delta
	// divides out to exactly the requested velocity.
	m.pos.Drag(rowsPerSecond * 0.005)
	m.pos.EndDrag()
}

func (m *demoModel) viewRows() int {
	return max(1, m.height-4)
}

func (m *demoModel) View() string {
	if m.height == 0 {
		return "measuring terminal..."
	}

	view := m.viewRows()
	top := min(max(0, int(m.pos.Value())), max(0, len(m.rows)-view))

	var b strings.Builder
	for i := top; i < min(top+view, len(m.rows)); i++ {
		if i == top {
			b.WriteString(currentStyle.Render(m.rows[i]))
		} else {
			b.WriteString(rowStyle.Render(m.rows[i]))
		}
		b.WriteByte('\n')
	}

	panel := panelStyle.Width(max(20, m.width-4)).Render(strings.TrimRight(b.String(), "\n"))
	status := statusStyle.Render(fmt.Sprintf(
		"profile=%s  pos=%.1f  moving=%v  ·  j/k wheel scroll · f/F fling · g/G jump · q quit",
		m.name, m.pos.Value(), m.pos.IsMoving()))
	return lipgloss.JoinVertical(lipgloss.Left, panel, status)
}
