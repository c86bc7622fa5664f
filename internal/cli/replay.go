package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver"
	"github.com/SeamusWaldron/cubesolver/internal/storage"
)

var (
	replaySpeed float64
	replayStep  bool
	replayID    string
)

var replayCmd = &cobra.Command{
	Use:   "replay [scramble]",
	Short: "Replay a solve move by move",
	Long: `Replay a solve in an interactive view: the cube starts scrambled and
the solution plays move by move.

With a scramble argument the cube is solved first and the fresh solution
replayed. Without one the most recent recorded solve is replayed (or a
specific one with --id).

Usage:
  cubesolver replay                      # Replay the last recorded solve
  cubesolver replay --id <solve-id>      # Replay a specific solve
  cubesolver replay "R U R' U' F2 D"     # Solve and replay
  cubesolver replay --speed 2.0 --step`,
	RunE: runReplay,
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().Float64VarP(&replaySpeed, "speed", "s", 1.0, "Playback speed multiplier")
	replayCmd.Flags().BoolVarP(&replayStep, "step", "t", false, "Step through moves manually")
	replayCmd.Flags().StringVar(&replayID, "id", "", "Replay a recorded solve by ID")
}

func runReplay(cmd *cobra.Command, args []string) error {
	scramble, solution, err := replaySource(args)
	if err != nil {
		return err
	}

	model := newReplayModel(scramble, solution, replaySpeed, replayStep)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}
	return nil
}

// replaySource resolves what to replay: a fresh solve of the given
// scramble, or a recorded solve from history.
func replaySource(args []string) (scramble, solution []cubesolver.Move, err error) {
	if len(args) > 0 {
		scramble, err = cubesolver.ParseMoves(strings.Join(args, " "))
		if err != nil {
			return nil, nil, fmt.Errorf("invalid scramble: %w", err)
		}

		cube := cubesolver.New()
		cube.Apply(scramble...)

		s, err := newSolver()
		if err != nil {
			return nil, nil, err
		}
		solution, err = s.SolveWithin(cube, 30*time.Second)
		if err != nil {
			return nil, nil, fmt.Errorf("solve failed: %w", err)
		}
		return scramble, solution, nil
	}

	db, err := openDB()
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	var rec *storage.Solve
	if replayID != "" {
		rec, err = repo.Get(replayID)
	} else {
		rec, err = repo.GetLast()
	}
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, fmt.Errorf("no recorded solve found; run 'cubesolver solve' first")
	}

	scramble, err = cubesolver.ParseMoves(rec.Scramble)
	if err != nil {
		return nil, nil, fmt.Errorf("recorded scramble is invalid: %w", err)
	}
	solution, err = cubesolver.ParseMoves(rec.Solution)
	if err != nil {
		return nil, nil, fmt.Errorf("recorded solution is invalid: %w", err)
	}
	return scramble, solution, nil
}

// Replay model
type replayModel struct {
	scramble  []cubesolver.Move
	solution  []cubesolver.Move
	cube      *cubesolver.Cube
	moveIndex int
	speed     float64
	stepMode  bool
	paused    bool
	quitting  bool
}

func newReplayModel(scramble, solution []cubesolver.Move, speed float64, stepMode bool) *replayModel {
	cube := cubesolver.New()
	cube.Apply(scramble...)
	return &replayModel{
		scramble: scramble,
		solution: solution,
		cube:     cube,
		speed:    speed,
		stepMode: stepMode,
		paused:   stepMode, // Start paused in step mode
	}
}

type replayMoveMsg struct{ index int }

func (m *replayModel) Init() tea.Cmd {
	if m.stepMode {
		return nil // Wait for user input in step mode
	}
	return m.scheduleNextMove()
}

func (m *replayModel) scheduleNextMove() tea.Cmd {
	if m.moveIndex >= len(m.solution) {
		return nil
	}
	index := m.moveIndex
	delay := time.Duration(float64(600*time.Millisecond) / m.speed)
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return replayMoveMsg{index: index}
	})
}

func (m *replayModel) applyNext() {
	if m.moveIndex < len(m.solution) {
		m.cube.Apply(m.solution[m.moveIndex])
		m.moveIndex++
	}
}

func (m *replayModel) reset() {
	m.cube = cubesolver.New()
	m.cube.Apply(m.scramble...)
	m.moveIndex = 0
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n":
			if m.stepMode || m.paused {
				m.applyNext()
			} else {
				m.paused = !m.paused
				if !m.paused {
					return m, m.scheduleNextMove()
				}
			}

		case "p":
			m.paused = !m.paused
			if !m.paused && !m.stepMode {
				return m, m.scheduleNextMove()
			}

		case "r":
			m.reset()
			if !m.stepMode && !m.paused {
				return m, m.scheduleNextMove()
			}

		case "+", "=":
			m.speed *= 2
			if m.speed > 16 {
				m.speed = 16
			}

		case "-":
			m.speed /= 2
			if m.speed < 0.25 {
				m.speed = 0.25
			}
		}

	case replayMoveMsg:
		if !m.paused && msg.index == m.moveIndex {
			m.applyNext()
			return m, m.scheduleNextMove()
		}
	}

	return m, nil
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Solve Replay"))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Move %d/%d", m.moveIndex, len(m.solution))
	if m.paused {
		progress += " [PAUSED]"
	}
	if m.stepMode {
		progress += " [STEP MODE]"
	}
	b.WriteString(statusStyle.Render(progress))
	b.WriteString(fmt.Sprintf(" (%.1fx speed)\n\n", m.speed))

	b.WriteString(renderCube(m.cube))
	b.WriteString("\n")

	if m.cube.IsSolved() {
		b.WriteString(moveStyle.Render("SOLVED!"))
		b.WriteString("\n")
	} else if m.moveIndex < len(m.solution) {
		b.WriteString("Next: ")
		b.WriteString(moveStyle.Render(m.solution[m.moveIndex].Notation()))
		b.WriteString("\n")
	}

	if m.moveIndex > 0 {
		b.WriteString("Played: ")
		b.WriteString(moveStyle.Render(cubesolver.FormatMoves(m.solution[:m.moveIndex])))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "SPACE/n=next  p=pause  r=reset  +/-=speed  q=quit"
	if m.stepMode {
		help = "SPACE/n=next move  r=reset  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
