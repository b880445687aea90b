package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/nourish/internal/engine"
	"github.com/julianstephens/nourish/internal/notifier"
	"github.com/julianstephens/nourish/internal/tui/components/meals"
	"github.com/julianstephens/nourish/internal/tui/components/profile"
	"github.com/julianstephens/nourish/internal/tui/components/water"
)

type SessionState int

const (
	StateMeals SessionState = iota
	StateWater
	StateProfile
	StatePlanForm
)

const tabCount = 3

type PlanFormModel struct {
	WakeUp string
}

// eventQueue collects engine events emitted during one Update call.
type eventQueue struct {
	events []engine.Event
}

func (q *eventQueue) push(ev engine.Event) {
	q.events = append(q.events, ev)
}

func (q *eventQueue) drain() []engine.Event {
	out := q.events
	q.events = nil
	return out
}

type Model struct {
	engine   *engine.Engine
	msgs     *notifier.Messages
	now      func() time.Time
	queue    *eventQueue
	state    SessionState
	lastTab  SessionState
	keys     KeyMap
	help     help.Model
	meals    meals.Model
	water    water.Model
	profile  profile.Model
	form     *huh.Form
	planForm *PlanFormModel
	avatar   engine.Avatar
	banner   banner
	quitting bool
	width    int
	height   int
}

type banner struct {
	title string
	body  string
	isErr bool
}

func NewModel(e *engine.Engine, msgs *notifier.Messages, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	q := &eventQueue{}
	e.Subscribe(q.push)

	m := Model{
		engine:  e,
		msgs:    msgs,
		now:     now,
		queue:   q,
		state:   StateMeals,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		meals:   meals.New(0, 0),
		water:   water.New(),
		profile: profile.New(0, 0),
	}
	m.refresh()
	return m
}

// refresh pushes the engine's day state into every tab.
func (m *Model) refresh() {
	s := m.engine.Snapshot()
	m.meals.SetDay(s)
	m.water.SetCount(s.Water)
	m.profile.SetDay(s)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateMeals:
		mk := m.meals.Keys()
		keys = append(keys, mk.Eat, mk.Plan)
	case StateWater:
		wk := m.water.Keys()
		keys = append(keys, wk.Drink, wk.Reset)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right}

	mk, wk := m.meals.Keys(), m.water.Keys()
	actions := []key.Binding{mk.Eat, mk.Plan, wk.Drink, wk.Reset}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	if !m.engine.Snapshot().HasPlan() {
		return func() tea.Msg { return meals.PlanDayMsg{} }
	}
	return nil
}
