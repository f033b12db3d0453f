package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/wordtiles/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == FormatJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == FormatJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Match:
		o.printMatch(v)
	case response.Transition:
		o.printTransition(v)
	case response.MatchList:
		o.printMatchList(v)
	case response.Word:
		o.printWord(v)
	case HealthResult:
		o.printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func (o *Output) printMatch(m response.Match) {
	o.printf("Match: %s\n", m.ID)
	o.printf("Locale: %s\n", m.Locale)
	o.printf("Turn Source: %s\n", m.TurnSource)
	o.printf("Bag: %d tiles\n", m.BagCount)
	o.printState(m.State)

	o.printf("\n")
	o.printBoard(m.Board)

	o.printf("\nHands:\n")
	for _, h := range m.Hands {
		marker := " "
		if h.Player == m.State.Player {
			marker = "*"
		}
		o.printf(" %s %d: %s\n", marker, h.Player, formatTiles(h.Tiles))
	}
}

func (o *Output) printTransition(t response.Transition) {
	if t.Accepted {
		o.printf("Accepted\n")
	} else {
		o.printf("Rejected: nothing changed\n")
	}
	o.printMatch(t.Match)
}

func (o *Output) printState(s response.TurnState) {
	o.printf("State: %s (player %d)\n", s.Phase, s.Player)

	if p := s.Placing; p != nil {
		o.printf("Placing: %s from (%d,%d)\n", p.Direction, p.Origin.X, p.Origin.Y)
		o.printf("Placed: %s\n", formatTiles(p.Placed))
		if p.Cursor != nil {
			o.printf("Next cell: (%d,%d)\n", p.Cursor.X, p.Cursor.Y)
		}
	}
	if len(s.Choice) > 0 {
		o.printf("Swapping: %s\n", formatTiles(s.Choice))
	}
	if sw := s.Swap; sw != nil {
		o.printf("Revealed: %d/%d\n", len(sw.Revealed), len(sw.Pairs))
		for _, p := range sw.Pairs {
			o.printf("  [%d] %s -> %s\n", p.Slot, formatTile(p.From), formatTile(p.To))
		}
		if len(sw.Vacated) > 0 {
			o.printf("  Vacated: %s\n", formatTiles(sw.Vacated))
		}
	}
}

// printBoard renders letters, bonus markers on empty squares and dots
// elsewhere, each cell two characters wide
func (o *Output) printBoard(b response.Board) {
	if b.Cols == 0 || len(b.Cells) != b.Cols*b.Rows {
		return
	}

	var sb strings.Builder

	// Column headers
	sb.WriteString("    ")
	for x := 0; x < b.Cols; x++ {
		fmt.Fprintf(&sb, "%2d ", x)
	}
	sb.WriteString("\n")

	border := "   +" + strings.Repeat("---", b.Cols) + "+\n"
	sb.WriteString(border)

	for y := 0; y < b.Rows; y++ {
		fmt.Fprintf(&sb, "%2d |", y)
		for x := 0; x < b.Cols; x++ {
			fmt.Fprintf(&sb, "%2s ", cellText(b.Cells[y*b.Cols+x]))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)

	o.printf("%s", sb.String())
}

func cellText(c response.Cell) string {
	switch {
	case c.Kind == "letter" && c.Value == "":
		return "_"
	case c.Kind == "letter":
		return c.Value
	case c.Bonus != "":
		return c.Bonus
	default:
		return "."
	}
}

func formatTile(t response.Tile) string {
	value := t.Value
	if value == "" {
		value = "_"
	}
	return fmt.Sprintf("%s#%d", value, t.ID)
}

func formatTiles(tiles []response.Tile) string {
	if len(tiles) == 0 {
		return "-"
	}
	parts := make([]string, len(tiles))
	for i, t := range tiles {
		parts[i] = formatTile(t)
	}
	return strings.Join(parts, " ")
}

func (o *Output) printMatchList(l response.MatchList) {
	if len(l.Matches) == 0 {
		o.printf("No matches\n")
		return
	}
	for _, m := range l.Matches {
		o.printf("%s  %-6s %-17s %s\n", m.ID, m.Locale, m.Phase, m.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func (o *Output) printWord(w response.Word) {
	o.printf("Word: %s (%s)\n", w.Word, w.Locale)
	o.printf("Folded: %s\n", w.Folded)
	switch {
	case w.Valid:
		o.printf("Valid word\n")
	case w.Prefix:
		o.printf("Prefix of a known word\n")
	default:
		o.printf("Not found\n")
	}
}
