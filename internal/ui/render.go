package ui

import (
	"fmt"
	"strings"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/theme"
	"go-weather/pkg/util/numberutils"

	"github.com/charmbracelet/lipgloss"
)

// View renders the dashboard
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.state == StateLoading {
		return m.renderLoading()
	}

	body := m.renderCities()
	return lipgloss.JoinVertical(lipgloss.Left, m.renderStatusBar(), m.renderErrorLine(), body)
}

func (m Model) renderLoading() string {
	text := fmt.Sprintf("%s Loading weather data...", m.spinner.View())
	return loadingStyle.
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(text)
}

// renderStatusBar shows connectivity, the data timestamp and the refresh control.
func (m Model) renderStatusBar() string {
	conn := "● online"
	if !m.online {
		conn = offlineStyle.Render("✕ offline")
	}

	updated := time.Now()
	if len(m.records) > 0 && !m.records[0].LastUpdated.IsZero() {
		updated = m.records[0].LastUpdated
	}
	stamp := updated.Local().Format("15:04")
	if m.zone.Abbreviation != "" {
		stamp = fmt.Sprintf("%s %s", stamp, m.zone.Abbreviation)
	}
	left := fmt.Sprintf("%s  %s", conn, stamp)

	var right string
	switch {
	case m.refreshing:
		right = m.spinner.View() + " refreshing"
	case !m.online:
		right = hintStyle.Faint(true).Render("r refresh  q quit")
	default:
		right = hintStyle.Render("r refresh  q quit")
	}

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return statusStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderErrorLine() string {
	if m.err == "" {
		return statusStyle.Width(m.width).Render("")
	}
	return errorStyle.Width(m.width).Render("! " + m.err)
}

func (m Model) renderCities() string {
	n := len(m.records)
	height := max(m.height-statusBarHeight, 0)
	if n == 0 || height == 0 {
		return ""
	}

	axis, _ := m.layoutAxis()
	offset := m.gesture.Offset()
	parts := make([]string, n)

	if axis == AxisHorizontal {
		for i, rec := range m.records {
			parts[i] = renderColumn(rec, share(m.width, n, i), height, offset)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}

	for i, rec := range m.records {
		parts[i] = renderBand(rec, m.width, share(height, n, i), offset)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// share splits total cells across n slots, giving the remainder to the first slots.
func share(total, n, i int) int {
	size := total / n
	if i < total%n {
		size++
	}
	return size
}

// renderColumn draws one city as a full-height column with centred text.
func renderColumn(rec entity.WeatherRecord, width, height int, offset float64) string {
	if width <= 0 {
		return ""
	}
	entry := theme.Lookup(rec.Condition)
	fg := lipgloss.Color(theme.TextContrast(rec.Condition).Hex())

	content := []string{
		entry.Glyph.Symbol(),
		rec.Abbreviation,
		temperature(rec.Temperature),
		describe(rec, entry),
		fmt.Sprintf("Feels %d°", rec.FeelsLike),
		"",
		fmt.Sprintf("%d%% %d", rec.Humidity, rec.WindSpeed),
	}
	top := numberutils.ClampInt((height-len(content))/2, 0, height)

	rows := make([]string, height)
	for r := range rows {
		line := ""
		if idx := r - top; numberutils.IsIntInRange(idx, 0, len(content)-1) {
			line = content[idx]
		}
		style := lipgloss.NewStyle().
			Width(width).
			MaxWidth(width).
			Align(lipgloss.Center).
			Background(lipgloss.Color(entry.Gradient.At(phase(r, height, offset)))).
			Foreground(fg)
		if r-top == 2 {
			style = style.Bold(true).Foreground(lipgloss.Color(theme.TemperatureColor(rec.Temperature)))
		}
		rows[r] = style.Render(line)
	}
	return strings.Join(rows, "\n")
}

// renderBand draws one city as a full-width band, for narrow terminals.
func renderBand(rec entity.WeatherRecord, width, height int, offset float64) string {
	if height <= 0 {
		return ""
	}
	entry := theme.Lookup(rec.Condition)
	fg := lipgloss.Color(theme.TextContrast(rec.Condition).Hex())

	lines := [][2]string{
		{fmt.Sprintf("%s %s  %s", entry.Glyph.Symbol(), rec.Abbreviation, describe(rec, entry)), temperature(rec.Temperature)},
		{fmt.Sprintf("  %d%%  %dkm/h", rec.Humidity, rec.WindSpeed), fmt.Sprintf("Feels %d°", rec.FeelsLike)},
	}
	top := max((height-len(lines))/2, 0)

	rows := make([]string, height)
	for r := range rows {
		bg := lipgloss.Color(entry.Gradient.At(phase(r, height, offset)))
		base := lipgloss.NewStyle().Background(bg).Foreground(fg)

		idx := r - top
		if !numberutils.IsIntInRange(idx, 0, len(lines)-1) {
			rows[r] = base.Width(width).Render("")
			continue
		}

		left := base.Render(" " + lines[idx][0])
		rightStyle := base
		if idx == 0 {
			rightStyle = base.Bold(true).Foreground(lipgloss.Color(theme.TemperatureColor(rec.Temperature)))
		}
		right := rightStyle.Render(lines[idx][1] + " ")
		gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)
		rows[r] = lipgloss.NewStyle().MaxWidth(width).Render(left + base.Render(strings.Repeat(" ", gap)) + right)
	}
	return strings.Join(rows, "\n")
}

// phase maps row r of n onto the gradient. A non-zero offset shifts it and wraps into [0, 1).
func phase(r, n int, offset float64) float64 {
	t := 0.0
	if n > 1 {
		t = float64(r) / float64(n-1)
	}
	if offset == 0 {
		return t
	}
	return numberutils.WrapUnit(t + offset)
}

func temperature(celsius int) string {
	return fmt.Sprintf("%d°", celsius)
}

// describe prefers the provider's description and falls back to the condition name.
func describe(rec entity.WeatherRecord, entry theme.Entry) string {
	if rec.Description != "" {
		return rec.Description
	}
	return entry.Name
}
