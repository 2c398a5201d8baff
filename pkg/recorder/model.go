// Package recorder runs the interactive prompt that records today's values.
//
// The prompt is a bubbletea program. It lists the tracked measurements,
// offers to add new ones (at least one is required), then asks for a value
// per measurement in collection order. Each accepted value is written into
// the collection immediately, so an interrupted session keeps what was
// entered before the interrupt.
package recorder

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/metric-tracker/pkg/components"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/data"
)

// ErrInterrupted is returned when the user quits with Ctrl+C or Esc.
var ErrInterrupted = errors.New("recorder: interrupted")

// sparkWidth is how many recent values the measurement list shows.
const sparkWidth = 14

type phase int

const (
	phaseConfirmAdd phase = iota
	phaseAddName
	phaseRequireName
	phaseUnit
	phaseValue
	phaseDone
)

// Model is the bubbletea model for one recording session. It writes into the
// collection it was created with.
type Model struct {
	c      *data.Collection
	today  data.Date
	styles Styles
	input  textinput.Model

	phase       phase
	unitReturn  phase // name phase to go back to after the unit prompt
	pendingName string
	keys        []string // measurement keys being asked for values
	idx         int

	history     []string
	recorded    int
	interrupted bool
}

// New creates a recording model for today.
func New(c *data.Collection, today data.Date, styles Styles) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 128
	ti.Focus()

	m := Model{c: c, today: today, styles: styles, input: ti}
	m.say(styles.Header.Render(fmt.Sprintf("=== Recording metrics for %s, %s ===",
		today.Weekday(), today)))
	m.say("")

	if keys := c.Keys(); len(keys) > 0 {
		m.say("Current metrics being tracked:")
		for i, key := range keys {
			line := fmt.Sprintf("%d. %s", i+1, key)
			if s, _ := c.Series(key); s.Len() > 0 {
				recent := s.LastN(sparkWidth)
				vals := make([]float64, len(recent))
				for i, o := range recent {
					vals[i] = o.Value
				}
				line += "  " + styles.Spark.Render(components.Sparkline(vals, sparkWidth)) +
					" " + components.Trend(vals)
			}
			m.say(line)
		}
		m.say("")
	}
	m.phase = phaseConfirmAdd
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.interrupted = true
			m.phase = phaseDone
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}
	if m.phase == phaseDone {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder
	for _, line := range m.history {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if m.phase != phaseDone {
		sb.WriteString(m.styles.Prompt.Render(m.prompt()))
		sb.WriteString(m.input.View())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Interrupted reports whether the session ended with Ctrl+C or Esc.
func (m Model) Interrupted() bool { return m.interrupted }

// Done reports whether the session has finished.
func (m Model) Done() bool { return m.phase == phaseDone }

// Recorded returns how many values were accepted.
func (m Model) Recorded() int { return m.recorded }

func (m Model) prompt() string {
	switch m.phase {
	case phaseConfirmAdd:
		return "Would you like to add any new metrics to track? (y/n): "
	case phaseAddName:
		return "Enter name of new metric (or press enter to stop adding): "
	case phaseRequireName:
		return "Enter name of metric to track (or press enter to stop): "
	case phaseUnit:
		return fmt.Sprintf("What unit is %s measured in? (e.g., kg, cm): ", m.pendingName)
	case phaseValue:
		return m.keys[m.idx] + ": "
	default:
		return ""
	}
}

// submit handles an Enter press for the current phase.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.phase == phaseDone {
		return m, nil
	}
	answer := strings.TrimSpace(m.input.Value())
	m.say(m.prompt() + answer)
	m.input.SetValue("")

	switch m.phase {
	case phaseConfirmAdd:
		if strings.EqualFold(answer, "y") {
			m.phase = phaseAddName
			return m, nil
		}
		return m.afterAdding()

	case phaseAddName, phaseRequireName:
		if answer == "" {
			if m.phase == phaseRequireName && m.c.Len() == 0 {
				m.say(m.styles.Error.Render("You must add at least one metric."))
				return m, nil
			}
			return m.afterAdding()
		}
		if m.tracked(answer) {
			m.say(m.styles.Error.Render(fmt.Sprintf("'%s' is already being tracked.", answer)))
			return m, nil
		}
		m.unitReturn = m.phase
		m.pendingName = answer
		m.phase = phaseUnit
		return m, nil

	case phaseUnit:
		key := data.MeasurementKey(m.pendingName, answer)
		m.phase = m.unitReturn
		m.pendingName = ""
		if m.c.Has(key) {
			m.say(m.styles.Error.Render(fmt.Sprintf("'%s' is already being tracked.", key)))
			return m, nil
		}
		if _, _, err := m.c.Add(key); err != nil {
			m.say(m.styles.Error.Render(err.Error()))
			return m, nil
		}
		m.say(m.styles.OK.Render(fmt.Sprintf("Added '%s' to tracked metrics.", key)))
		return m, nil

	case phaseValue:
		if answer != "" {
			v, err := strconv.ParseFloat(answer, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				m.say(m.styles.Error.Render("Please enter a valid number."))
				return m, nil
			}
			if err := m.c.Record(m.keys[m.idx], m.today, v); err != nil {
				m.say(m.styles.Error.Render(err.Error()))
				return m, nil
			}
			m.recorded++
		}
		m.idx++
		if m.idx >= len(m.keys) {
			return m.finish()
		}
		return m, nil
	}
	return m, nil
}

// afterAdding moves on from the add-metrics step: to the mandatory add loop
// when nothing is tracked yet, otherwise to value entry.
func (m Model) afterAdding() (tea.Model, tea.Cmd) {
	if m.c.Len() == 0 {
		if m.phase != phaseRequireName {
			m.say("")
			m.say("No metrics configured. Let's add some first.")
		}
		m.phase = phaseRequireName
		return m, nil
	}
	m.say("")
	m.say("Enter today's values (leave blank to skip):")
	m.keys = m.c.Keys()
	m.idx = 0
	m.phase = phaseValue
	return m, nil
}

func (m Model) finish() (tea.Model, tea.Cmd) {
	m.say("")
	m.say(m.styles.OK.Render("Today's recording completed."))
	m.phase = phaseDone
	return m, tea.Quit
}

// tracked reports whether name is already a measurement key. "Weight" next
// to "Weight (kg)" is allowed; the full key is checked again once the unit
// is known.
func (m Model) tracked(name string) bool {
	return m.c.Has(name)
}

// say appends a line to the transcript. history is reallocated so that
// copies of the model never share a backing array.
func (m *Model) say(line string) {
	h := make([]string, len(m.history), len(m.history)+1)
	copy(h, m.history)
	m.history = append(h, line)
}
