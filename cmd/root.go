package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/lepinkainen/cardscout/internal/catalog"
	"github.com/lepinkainen/cardscout/internal/config"
	"github.com/lepinkainen/cardscout/internal/datastore"
	"github.com/lepinkainen/cardscout/internal/fileutil"
	"github.com/lepinkainen/cardscout/internal/report"
	"github.com/lepinkainen/cardscout/internal/session"
	"github.com/lepinkainen/cardscout/internal/steam"
)

// CLI represents the complete command structure for the cardscout application
type CLI struct {
	// Global flags
	APIKey       string `help:"Steam API key (overrides config and STEAM_API_KEY)"`
	CatalogCache string `help:"Path to the local card catalog cache file"`
	LongPlaytime int    `help:"Hours above which a game counts as long playtime"`

	Analyze     AnalyzeCmd     `cmd:"" help:"Analyze one Steam library and export the report"`
	Interactive InteractiveCmd `cmd:"" default:"1" help:"Prompt loop for analyzing libraries one after another"`
}

// AnalyzeCmd runs a single non-interactive query, for scripted use.
type AnalyzeCmd struct {
	ID         string `arg:"" help:"SteamID64 or custom URL name to analyze"`
	CSV        string `help:"Path to CSV output file (empty = no CSV export)"`
	JSON       bool   `help:"Write the report to JSON format"`
	JSONOutput string `help:"Path to JSON output file (defaults to json/steam_analysis_<steamid>.json)"`
	DB         bool   `help:"Write the report to a local SQLite database"`
	DBFile     string `help:"Path to SQLite database file" default:"./cardscout.db"`
	Overwrite  bool   `help:"Overwrite existing export files"`
}

// InteractiveCmd runs the interactive prompt loop.
type InteractiveCmd struct{}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("cardscout"),
		kong.Description("Analyze a Steam library for trading card drops and achievement completion."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)

	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	config.SetDefaults()

	// Enable environment variable support
	viper.AutomaticEnv()
	if err := viper.BindEnv("steam.apikey", "STEAM_API_KEY"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Info("Config file not found, writing default config file...")
			if err := viper.SafeWriteConfig(); err != nil {
				slog.Debug("Could not write default config file", "error", err)
			}
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}
}

// updateGlobalConfig overrides viper values with explicitly set CLI flags.
func updateGlobalConfig(cli *CLI) {
	if cli.APIKey != "" {
		viper.Set("steam.apikey", cli.APIKey)
	}
	if cli.CatalogCache != "" {
		viper.Set("catalog.cachefile", cli.CatalogCache)
	}
	if cli.LongPlaytime > 0 {
		viper.Set("report.longplaytimehours", cli.LongPlaytime)
	}
}

// buildOrchestrator loads config, builds the API client and loads the card
// catalog. A missing API key fails here, before any query runs.
func buildOrchestrator(ctx context.Context) (*session.Orchestrator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	client := steam.NewClient(cfg.APIKey,
		steam.WithTimeouts(cfg.LookupTimeout, cfg.CatalogTimeout),
	)

	set := catalog.NewStore(cfg.CatalogCacheFile, client).Load(ctx)
	if len(set) == 0 {
		slog.Warn("Master list of card games is empty, card detection may be incomplete")
	}

	return session.New(cfg, client, set), nil
}

// Run methods for each command

func (a *AnalyzeCmd) Run() error {
	ctx := context.Background()

	orchestrator, err := buildOrchestrator(ctx)
	if err != nil {
		return err
	}

	result, err := orchestrator.Analyze(ctx, a.ID)
	if err != nil {
		return err
	}

	fmt.Print(session.RenderSummary(result.Summary))

	if a.CSV != "" {
		if err := report.WriteCSV(result.Rows, a.CSV); err != nil {
			return fmt.Errorf("error writing CSV report: %w", err)
		}
		slog.Info("Wrote CSV report", "file", a.CSV, "rows", len(result.Rows))
	}

	if a.JSON {
		jsonOutput := a.JSONOutput
		if jsonOutput == "" {
			jsonOutput = filepath.Join("json", fmt.Sprintf("steam_analysis_%s.json", result.SteamID))
		}
		if _, err := fileutil.WriteJSONFile(result.Rows, jsonOutput, a.Overwrite); err != nil {
			return fmt.Errorf("error writing JSON report: %w", err)
		}
	}

	if a.DB {
		store := datastore.NewSQLiteStore(a.DBFile)
		if err := store.Connect(); err != nil {
			return fmt.Errorf("error opening report database: %w", err)
		}
		defer func() { _ = store.Close() }()

		if err := store.SaveReport(result.SteamID, result.Rows); err != nil {
			return fmt.Errorf("error saving report to database: %w", err)
		}
		slog.Info("Saved report to database", "file", a.DBFile, "rows", len(result.Rows))
	}

	return nil
}

func (i *InteractiveCmd) Run() error {
	ctx := context.Background()

	orchestrator, err := buildOrchestrator(ctx)
	if err != nil {
		return err
	}

	return orchestrator.RunInteractive(ctx, os.Stdin, os.Stdout)
}

func initLogging() {
	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})

	// Set the default logger
	slog.SetDefault(slog.New(handler))
}
