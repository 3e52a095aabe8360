package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quickboard/internal/domain"
)

// View implements tea.Model
func (m *Model) View() string {
	if !m.visible {
		return m.idleView()
	}
	return m.overlayView()
}

// idleView is shown while the overlay is hidden
func (m *Model) idleView() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("quickboard"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Dim.Render(fmt.Sprintf("press %s to open, q to quit", activationKey)))
	b.WriteString("\n")
	b.WriteString(m.backendLine())
	return b.String()
}

// overlayView renders the quickboard
func (m *Model) overlayView() string {
	var b strings.Builder

	// Header: title, backend status, counts
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Title.Render("quickboard"),
		"  ",
		m.backendLine(),
	)
	b.WriteString(header)
	b.WriteString("\n")
	if m.online {
		b.WriteString(m.styles.Dim.Render(fmt.Sprintf(
			"%d items · %d clipboard · %d screenshots · %d text vectors",
			m.stats.TotalItems, m.stats.ClipboardItems, m.stats.ScreenshotItems, m.stats.TextVectors)))
		b.WriteString("\n")
	}

	// Query input and active filters
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Filter.Render(fmt.Sprintf("[filter: %s] [range: %s]", m.query.Filter, m.query.Range)))
	b.WriteString("\n\n")

	// Result list
	if len(m.items) == 0 {
		b.WriteString(m.styles.Dim.Render("no results"))
		b.WriteString("\n")
	} else {
		for i, item := range m.items {
			b.WriteString(m.renderItem(i, item))
			b.WriteString("\n")
		}
	}

	// Status line: last action or error
	b.WriteString("\n")
	if m.status != "" {
		if _, hasErr := m.errors.Last(); hasErr && strings.Contains(m.status, "failed") {
			b.WriteString(m.styles.ErrorLine.Render(m.status))
		} else {
			b.WriteString(m.styles.Status.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render(
		"↑/↓ select · enter copy · tab filter · shift+tab range · ctrl+o view · ctrl+d delete · esc dismiss"))

	return m.styles.Overlay.Render(b.String())
}

// renderItem renders one result row
func (m *Model) renderItem(i int, item domain.Item) string {
	text := item.Preview
	if text == "" {
		text = firstLine(item.Text)
	}
	text = truncate(text, 70)

	icon := "📋"
	if item.Source == domain.SourceScreenshot {
		icon = "🖼"
	}

	row := fmt.Sprintf("%s %s  %s", m.styles.Source.Render(icon), text, m.styles.Time.Render(item.ReadableTime))
	if item.Score != nil {
		row += "  " + m.styles.Score.Render(fmt.Sprintf("%.2f", *item.Score))
	}

	if i == m.sel.Index() {
		return m.styles.Selected.Render("▸ " + row)
	}
	return "  " + row
}

func (m *Model) backendLine() string {
	if m.online {
		return m.styles.Online.Render("● online")
	}
	return m.styles.Offline.Render("● offline")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
