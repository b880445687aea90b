package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/nourish/internal/constants"
	"github.com/julianstephens/nourish/internal/engine"
	"github.com/julianstephens/nourish/internal/models"
	"github.com/julianstephens/nourish/internal/tui/components/meals"
	"github.com/julianstephens/nourish/internal/tui/components/water"
)

// reactionDoneMsg arrives once an avatar reaction has run its course.
type reactionDoneMsg struct{}

// chromeHeight is the room taken by tabs, avatar, banner and help.
const chromeHeight = 12

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		bodyHeight := max(msg.Height-chromeHeight-v, 3)
		m.meals.SetSize(msg.Width-h, bodyHeight)
		m.water.SetWidth(msg.Width - h)
		m.profile.SetSize(msg.Width-h, bodyHeight)
		return m, nil

	case reactionDoneMsg:
		return m, nil

	case meals.PlanDayMsg:
		cmd := m.openPlanForm()
		return m, cmd

	case meals.EatMealMsg:
		cmd := m.eat(msg.Meal)
		return m, cmd

	case water.DrinkMsg:
		m.engine.DrinkWater(context.Background())
		m.banner = banner{}
		cmd := m.observe()
		m.refresh()
		return m, cmd

	case water.ResetMsg:
		m.engine.ResetWater(context.Background())
		m.banner = banner{title: "Water count reset."}
		m.refresh()
		return m, nil
	}

	if m.state == StatePlanForm {
		return m.updatePlanForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab, m.keys.Right):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab, m.keys.Left):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateMeals:
		m.meals, cmd = m.meals.Update(msg)
	case StateWater:
		m.water, cmd = m.water.Update(msg)
	case StateProfile:
		m.profile, cmd = m.profile.Update(msg)
	}
	return m, cmd
}

func (m *Model) openPlanForm() tea.Cmd {
	m.planForm = &PlanFormModel{}
	if wake := m.engine.Snapshot().WakeUp; wake != nil {
		m.planForm.WakeUp = wake.String()
	}
	m.form = NewPlanForm(m.planForm)
	if m.state != StatePlanForm {
		m.lastTab = m.state
	}
	m.state = StatePlanForm
	return m.form.Init()
}

// NewPlanForm asks for the wake-up time.
func NewPlanForm(fm *PlanFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What time did you wake up?").
				Description("HH:MM, 24-hour clock").
				Placeholder("07:00").
				Value(&fm.WakeUp).
				Validate(func(s string) error {
					_, err := models.ParseClockTime(s)
					return err
				}),
		),
	)
}

func (m Model) updatePlanForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.lastTab
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		wake, err := models.ParseClockTime(m.planForm.WakeUp)
		if err != nil {
			m.form.State = huh.StateNormal
			break
		}
		m.engine.Plan(context.Background(), wake)
		cmds = append(cmds, m.observe())
		m.refresh()
		m.state = StateMeals
	case huh.StateAborted:
		m.state = m.lastTab
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) eat(meal models.MealID) tea.Cmd {
	err := m.engine.MarkEaten(context.Background(), meal)
	switch {
	case errors.Is(err, engine.ErrNoSchedule):
		m.avatar.React(engine.AffectSad, m.now(), constants.ReactionDuration)
		m.banner = banner{title: "No plan yet", body: "Press 'p' and enter your wake-up time.", isErr: true}
		return expireAfter(constants.ReactionDuration)
	case err != nil:
		m.banner = banner{title: err.Error(), isErr: true}
		return nil
	}

	m.banner = banner{}
	cmd := m.observe()
	m.refresh()
	return cmd
}

// observe feeds queued engine events to the avatar and the banner.
func (m *Model) observe() tea.Cmd {
	var longest time.Duration
	for _, ev := range m.queue.drain() {
		if d := m.avatar.Observe(ev); d > longest {
			longest = d
		}
		switch ev.Kind {
		case engine.EventPlanConfirmed:
			m.banner.title, m.banner.body = m.msgs.PlanConfirmed()
		case engine.EventStreakExtended:
			m.banner.title, m.banner.body = m.msgs.StreakExtended(ev.Count)
		case engine.EventReassurance:
			m.banner.title, m.banner.body = m.msgs.Reassurance()
		}
	}
	if longest == 0 {
		return nil
	}
	return expireAfter(longest)
}

func expireAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return reactionDoneMsg{} })
}
