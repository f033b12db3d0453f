package storage

import "github.com/mcoot/wordtiles/internal/model"

// Summarize builds the listing entry for a match
func Summarize(m *model.Match) model.MatchSummary {
	summary := model.MatchSummary{
		ID:        m.ID,
		Locale:    m.Snapshot.Locale,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Snapshot.State != nil {
		summary.Phase = m.Snapshot.State.Phase()
	}
	return summary
}
