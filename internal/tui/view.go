package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/nourish/internal/engine"
	"github.com/julianstephens/nourish/internal/models"
)

var faces = map[engine.Affect]string{
	engine.AffectNeutral:  "(•‿•)",
	engine.AffectHappy:    "(^‿^)",
	engine.AffectSad:      "(╥﹏╥)",
	engine.AffectEating:   "(•ᴗ•)🍴",
	engine.AffectDrinking: "(•ᴗ•)💧",
	engine.AffectSleeping: "(-‿-) zZ",
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateMeals:
		content = docStyle.Render(m.meals.View())
	case StateWater:
		content = docStyle.Render(m.water.View())
	case StateProfile:
		content = docStyle.Render(m.profile.View())
	case StatePlanForm:
		content = docStyle.Render(m.form.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewAvatar(),
		m.viewBanner(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.state
	if active == StatePlanForm {
		active = m.lastTab
	}
	var tabs []string
	for i, title := range []string{"Meals", "Water", "Profile"} {
		if active == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewAvatar() string {
	s := m.engine.Snapshot()
	affect := m.avatar.Current(m.now(), s)
	status := fmt.Sprintf("%d/%d meals · %d💧 · 🔥%d", s.Eaten.Count(), len(models.Meals), s.Water, s.Streak.Count)
	return avatarStyle.Render(lipgloss.JoinVertical(lipgloss.Center, faces[affect], status))
}

func (m Model) viewBanner() string {
	if m.banner.title == "" {
		return ""
	}
	title := bannerTitleStyle.Render(m.banner.title)
	if m.banner.isErr {
		title = dangerStyle.Render(m.banner.title)
	}
	if m.banner.body == "" {
		return title
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, bannerBodyStyle.Render(m.banner.body))
}
