// Package enrich implements the per-game enrichment pipeline: trading-card
// eligibility, remaining card drops and achievement completion state.
package enrich

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/lepinkainen/cardscout/internal/ratelimit"
	"github.com/lepinkainen/cardscout/internal/steam"
)

// Yes/No values used for the card columns in the final report.
const (
	Yes = "Yes"
	No  = "No"
)

// Achievement status values.
const (
	StatusUnknown        = "Unknown"
	StatusNoAchievements = "No Achievements"
	StatusCompleted      = "Completed"
	StatusInProgress     = "In Progress"
	StatusNotStarted     = "Not Started"
)

// EnrichedGame is an OwnedGame plus the card and achievement columns.
// Instances are never mutated after Enrich returns them.
type EnrichedGame struct {
	steam.OwnedGame
	HasTradingCards    string `json:"has_trading_cards"`
	CardDropsRemaining string `json:"card_drops_remaining"`
	AchievementsStatus string `json:"achievements_status"`
}

// Lookup is the subset of the Steam client the engine needs.
type Lookup interface {
	GetGameBadgeLevels(ctx context.Context, steamID string, appID int) ([]steam.Badge, error)
	GetPlayerAchievements(ctx context.Context, steamID string, appID int) (*steam.PlayerStats, error)
}

// ProgressFunc is called after each game is processed.
type ProgressFunc func(current, total int, name string)

// Engine performs the sequential enrichment pass over a game library.
type Engine struct {
	lookup  Lookup
	limiter *ratelimit.Limiter

	// Progress is invoked after each processed game. Defaults to a slog line.
	Progress ProgressFunc
}

// NewEngine creates an enrichment engine. limiter paces the per-game
// lookups and may be nil to disable pacing (tests).
func NewEngine(lookup Lookup, limiter *ratelimit.Limiter) *Engine {
	return &Engine{
		lookup:  lookup,
		limiter: limiter,
		Progress: func(current, total int, name string) {
			slog.Info("Checking game", "current", current, "total", total, "game", name)
		},
	}
}

// Enrich produces exactly one EnrichedGame per input game, in input order.
// Secondary lookups are best-effort: a failed badge or achievement call
// degrades that game to conservative defaults and never aborts the batch.
// The only error returned is a cancelled context from the pacing limiter.
func (e *Engine) Enrich(ctx context.Context, steamID string, games []steam.OwnedGame, catalog map[string]struct{}) ([]EnrichedGame, error) {
	enriched := make([]EnrichedGame, 0, len(games))

	for i, game := range games {
		record := EnrichedGame{
			OwnedGame:          game,
			HasTradingCards:    No,
			CardDropsRemaining: No,
			AchievementsStatus: StatusUnknown,
		}

		if _, ok := catalog[strconv.Itoa(game.AppID)]; ok {
			record.HasTradingCards = Yes
			record.CardDropsRemaining = e.checkCardDrops(ctx, steamID, game)
		}

		record.AchievementsStatus = e.checkAchievements(ctx, steamID, game)

		enriched = append(enriched, record)
		e.Progress(i+1, len(games), game.Name)

		// Mandatory pause between games per the Steam API usage policy
		if err := e.limiter.Wait(ctx); err != nil {
			return enriched, err
		}
	}

	return enriched, nil
}

// checkCardDrops reports whether the first badge for the game still has card
// drops remaining. Any lookup failure is swallowed and counts as No.
func (e *Engine) checkCardDrops(ctx context.Context, steamID string, game steam.OwnedGame) string {
	badges, err := e.lookup.GetGameBadgeLevels(ctx, steamID, game.AppID)
	if err != nil {
		slog.Debug("Badge lookup failed", "game", game.Name, "error", err)
		return No
	}
	if len(badges) > 0 && badges[0].DropsRemaining > 0 {
		return Yes
	}
	return No
}

// checkAchievements classifies the player's achievement state for the game.
// Games without community-visible stats skip the remote call entirely.
func (e *Engine) checkAchievements(ctx context.Context, steamID string, game steam.OwnedGame) string {
	if !game.HasCommunityVisibleStats {
		return StatusNoAchievements
	}

	stats, err := e.lookup.GetPlayerAchievements(ctx, steamID, game.AppID)
	if err != nil {
		slog.Debug("Achievements lookup failed", "game", game.Name, "error", err)
		return StatusNoAchievements
	}

	return classifyAchievements(stats)
}

// classifyAchievements is a total function of (success, unlocked, total).
func classifyAchievements(stats *steam.PlayerStats) string {
	if stats == nil || !stats.Success || stats.Achievements == nil {
		return StatusNoAchievements
	}

	total := len(stats.Achievements)
	if total == 0 {
		return StatusNoAchievements
	}

	unlocked := 0
	for _, ach := range stats.Achievements {
		if ach.Achieved == 1 {
			unlocked++
		}
	}

	switch {
	case unlocked == total:
		return StatusCompleted
	case unlocked > 0:
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}
