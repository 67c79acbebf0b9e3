package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"pixelpulse/internal/state"
)

const sidebarWidth = 28

func (m Model) View() string {
	snap := m.store.Snapshot()
	p := m.store.Progress()

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSidebar(snap.Tab, p),
		" ",
		m.renderContent(snap),
	)

	var b strings.Builder
	b.WriteString(m.renderHeader(p))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.renderHelp(snap.Tab))
	return b.String()
}

func (m Model) renderHeader(p state.Progress) string {
	title := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("PixelPulse"),
		mutedStyle.Render("A minimal productivity dashboard (Tasks • Notes • Mood)"),
	)
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Tasks", fmt.Sprint(p.Total)),
		statCard("Done", fmt.Sprint(p.Done)),
		statCard("Progress", fmt.Sprintf("%d%%", p.Percent)),
	)
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(stats)
	if gap < 2 {
		return lipgloss.JoinVertical(lipgloss.Left, title, stats)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, strings.Repeat(" ", gap), stats)
}

func statCard(title, value string) string {
	return cardStyle.Render(mutedStyle.Render(title) + "\n" + titleStyle.Render(value))
}

func (m Model) renderSidebar(active state.Tab, p state.Progress) string {
	inner := sidebarWidth - 4
	var b strings.Builder
	b.WriteString(mutedStyle.Render("DASHBOARD"))
	b.WriteString("\n")
	for _, tab := range state.Tabs() {
		style := tabStyle
		if tab == active {
			style = activeTabStyle
		}
		b.WriteString(style.Width(inner).Render(tab.Title()))
		b.WriteString("\n")
	}

	pct := fmt.Sprintf("%d%%", p.Percent)
	label := "Task completion"
	pad := inner - lipgloss.Width(label) - lipgloss.Width(pct)
	if pad < 1 {
		pad = 1
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(label) + strings.Repeat(" ", pad) + titleStyle.Render(pct))
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(float64(p.Percent) / 100))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(wordwrap.String("Small progress daily → big results.", inner)))

	return panelStyle.Width(sidebarWidth).Render(b.String())
}

func (m Model) renderContent(snap state.State) string {
	tab := snap.Tab
	i := tabIndex(tab)
	w := m.contentWidth()

	var b strings.Builder
	b.WriteString(titleStyle.Render(tab.Title()))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(subtitle(tab)))
	b.WriteString("\n\n")
	b.WriteString(m.inputs[i].View())
	b.WriteString("  ")
	b.WriteString(accentStyle.Render("[+ Add]"))
	b.WriteString("\n\n")

	if snap.Len(tab) == 0 {
		b.WriteString(emptyStyle.Render(emptyText(tab)))
	} else {
		b.WriteString(m.renderEntries(snap, w-4))
	}
	return panelStyle.Width(w).Render(b.String())
}

func (m Model) renderEntries(snap state.State, width int) string {
	tab := snap.Tab
	cur := m.cursors[tabIndex(tab)]
	var rows []string
	for idx := 0; idx < snap.Len(tab); idx++ {
		prefix := "  "
		if idx == cur && m.mode != modeInput {
			prefix = accentStyle.Render("› ")
		}
		switch tab {
		case state.TabTasks:
			rows = append(rows, prefix+renderTask(snap.Tasks[idx]))
		case state.TabNotes:
			rows = append(rows, prefix+wrapEntry(snap.Notes[idx].Text, width))
		case state.TabMood:
			rows = append(rows, prefix+wrapEntry(snap.Moods[idx].Text, width))
		}
	}
	return strings.Join(rows, "\n")
}

func renderTask(t state.Task) string {
	if t.Done {
		return doneBoxStyle.Render("✓") + " " + doneStyle.Render(t.Text)
	}
	return mutedStyle.Render("○") + " " + t.Text
}

// wrapEntry wraps text and indents continuation lines under the cursor prefix.
func wrapEntry(text string, width int) string {
	if width < 10 {
		width = 10
	}
	lines := strings.Split(wordwrap.String(text, width), "\n")
	return strings.Join(lines, "\n  ")
}

func (m Model) renderHelp(tab state.Tab) string {
	switch m.mode {
	case modeInput:
		return m.help.ShortHelpView(m.keys.inputHelp())
	case modeConfirm:
		return mutedStyle.Render("y confirm • n cancel")
	}
	return m.help.ShortHelpView(m.keys.listHelp(tab == state.TabTasks))
}

func (m Model) contentWidth() int {
	w := m.width - sidebarWidth - 5
	if w < 30 {
		w = 30
	}
	return w
}

func subtitle(tab state.Tab) string {
	switch tab {
	case state.TabNotes:
		return "Save quick notes while studying."
	case state.TabMood:
		return "Log your mood and reflect on your day."
	}
	return "Track your daily goals in a clean UI."
}

func emptyText(tab state.Tab) string {
	switch tab {
	case state.TabNotes:
		return "No notes yet. Add one 📝"
	case state.TabMood:
		return "No mood logs yet. Add one 😊"
	}
	return "No tasks found. Add one ✨"
}
