package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type theme struct {
	Title lipgloss.Style
	Key   lipgloss.Style
	Value lipgloss.Style
	Card  lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Key:   lipgloss.NewStyle().Faint(true),
		Value: lipgloss.NewStyle(),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}

type row struct {
	key   string
	value string
}

func kv(key string, value any) row {
	return row{key: key, value: fmt.Sprint(value)}
}

func renderCard(title string, rows []row) string {
	t := defaultTheme()
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r.key))
	}

	lines := []string{t.Title.Render(title)}
	for _, r := range rows {
		lines = append(lines, t.Key.Width(width).Render(r.key)+"  "+t.Value.Render(r.value))
	}
	return t.Card.Render(strings.Join(lines, "\n"))
}

// emit escreve o resultado como card ou JSON (--json).
func (g *globalFlags) emit(w io.Writer, v any, title string, rows []row) error {
	if g.jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, renderCard(title, rows))
	return err
}
