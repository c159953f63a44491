// Package session ties identity resolution, library fetch, enrichment and
// report building together for one user query at a time.
package session

import (
	"context"
	"log/slog"

	"github.com/lepinkainen/cardscout/internal/config"
	"github.com/lepinkainen/cardscout/internal/enrich"
	"github.com/lepinkainen/cardscout/internal/identity"
	"github.com/lepinkainen/cardscout/internal/ratelimit"
	"github.com/lepinkainen/cardscout/internal/report"
	"github.com/lepinkainen/cardscout/internal/steam"
)

// SteamAPI is the remote surface the orchestrator calls through.
type SteamAPI interface {
	ResolveVanityURL(ctx context.Context, vanity string) (string, error)
	GetOwnedGames(ctx context.Context, steamID string) ([]steam.OwnedGame, error)
	GetGameBadgeLevels(ctx context.Context, steamID string, appID int) ([]steam.Badge, error)
	GetPlayerAchievements(ctx context.Context, steamID string, appID int) (*steam.PlayerStats, error)
}

// Result is the outcome of one successful query.
type Result struct {
	SteamID string
	Rows    []report.Row
	Summary report.Summary
}

// Orchestrator runs queries against a fixed catalog and configuration.
// The catalog set is read-only for the whole session.
type Orchestrator struct {
	client  SteamAPI
	engine  *enrich.Engine
	catalog map[string]struct{}
	cfg     *config.Config
}

// New creates an orchestrator. The enrichment engine is paced at the
// configured interval between per-game lookups.
func New(cfg *config.Config, client SteamAPI, catalog map[string]struct{}) *Orchestrator {
	limiter := ratelimit.NewInterval("steam-lookups", cfg.PaceInterval)
	return &Orchestrator{
		client:  client,
		engine:  enrich.NewEngine(client, limiter),
		catalog: catalog,
		cfg:     cfg,
	}
}

// Engine exposes the enrichment engine, mainly so callers can replace the
// progress callback.
func (o *Orchestrator) Engine() *enrich.Engine {
	return o.engine
}

// Analyze resolves the identity, fetches the library, enriches every game
// and builds the final report. Resolution and access failures come back as
// typed errors so the caller can offer a retry.
func (o *Orchestrator) Analyze(ctx context.Context, identityInput string) (*Result, error) {
	steamID, err := identity.Resolve(ctx, o.client, identityInput)
	if err != nil {
		return nil, err
	}

	slog.Info("Fetching owned games, this may take a moment for large libraries", "steamid", steamID)
	games, err := o.client.GetOwnedGames(ctx, steamID)
	if err != nil {
		return nil, err
	}

	slog.Info("Fetching detailed data for each game, this is slow for large libraries", "games", len(games))
	enriched, err := o.engine.Enrich(ctx, steamID, games, o.catalog)
	if err != nil {
		return nil, err
	}

	rows := report.Build(enriched, o.cfg.LongPlaytimeHours)

	return &Result{
		SteamID: steamID,
		Rows:    rows,
		Summary: report.Summarize(rows),
	}, nil
}
