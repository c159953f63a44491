// Package report turns enriched games into the final sorted, categorized
// report and its summary aggregates.
package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/lepinkainen/cardscout/internal/enrich"
)

// Playtime category values. The long-playtime label carries the configured
// threshold, matching the CSV output format.
const (
	CategoryNeverPlayed = "Never Played"
	CategoryShort       = "Short Playtime (< 1 hr)"
	CategoryPlayed      = "Played"
)

// Row is one line of the final report. Immutable once built.
type Row struct {
	AppID              int     `json:"appid"`
	Name               string  `json:"name"`
	PlaytimeForeverMin int     `json:"playtime_forever_min"`
	PlaytimeForeverHrs float64 `json:"playtime_forever_hrs"`
	PlaytimeCategory   string  `json:"playtime_category"`
	HasTradingCards    string  `json:"has_trading_cards"`
	CardDropsRemaining string  `json:"card_drops_remaining"`
	AchievementsStatus string  `json:"achievements_status"`
}

// Summary holds the aggregate counts displayed after a query.
type Summary struct {
	TotalGames             int
	CardDropsRemaining     int
	AchievementsInProgress int
	AchievementsNotStarted int
}

// LongCategory returns the long-playtime label for the given threshold.
func LongCategory(longPlaytimeHours int) string {
	return fmt.Sprintf("Long Playtime (> %d hrs)", longPlaytimeHours)
}

// Build sorts the enriched games by name (stable, preserving input order for
// equal names) and projects each into a Row. Calling Build twice on the same
// input yields identical output; the input slice is not modified.
func Build(enriched []enrich.EnrichedGame, longPlaytimeHours int) []Row {
	sorted := make([]enrich.EnrichedGame, len(enriched))
	copy(sorted, enriched)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	rows := make([]Row, 0, len(sorted))
	for _, game := range sorted {
		rows = append(rows, Row{
			AppID:              game.AppID,
			Name:               game.Name,
			PlaytimeForeverMin: game.PlaytimeForever,
			PlaytimeForeverHrs: roundHours(game.PlaytimeForever),
			PlaytimeCategory:   classifyPlaytime(game.PlaytimeForever, longPlaytimeHours),
			HasTradingCards:    game.HasTradingCards,
			CardDropsRemaining: game.CardDropsRemaining,
			AchievementsStatus: game.AchievementsStatus,
		})
	}

	return rows
}

// Summarize computes the aggregate counts over a built report.
func Summarize(rows []Row) Summary {
	summary := Summary{TotalGames: len(rows)}
	for _, row := range rows {
		if row.CardDropsRemaining == enrich.Yes {
			summary.CardDropsRemaining++
		}
		switch row.AchievementsStatus {
		case enrich.StatusInProgress:
			summary.AchievementsInProgress++
		case enrich.StatusNotStarted:
			summary.AchievementsNotStarted++
		}
	}
	return summary
}

// classifyPlaytime buckets minutes into a category. The long-playtime rule
// is strictly greater-than: exactly the threshold counts as Played.
func classifyPlaytime(minutes, longPlaytimeHours int) string {
	switch {
	case minutes == 0:
		return CategoryNeverPlayed
	case minutes < 60:
		return CategoryShort
	case minutes > longPlaytimeHours*60:
		return LongCategory(longPlaytimeHours)
	default:
		return CategoryPlayed
	}
}

// roundHours converts minutes to hours rounded to two decimal places.
func roundHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}
