package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// csvHeader is the fixed column order of the exported report.
var csvHeader = []string{
	"appid",
	"name",
	"playtime_forever_min",
	"playtime_forever_hrs",
	"playtime_category",
	"has_trading_cards",
	"card_drops_remaining",
	"achievements_status",
}

// DefaultCSVFilename returns the export filename for a SteamID, stamped with
// the current Unix time so repeated exports never collide.
func DefaultCSVFilename(steamID string) string {
	return fmt.Sprintf("steam_analysis_%s_%d.csv", steamID, time.Now().Unix())
}

// WriteCSV writes the report rows to a CSV file at path.
func WriteCSV(rows []Row, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.AppID),
			row.Name,
			strconv.Itoa(row.PlaytimeForeverMin),
			strconv.FormatFloat(row.PlaytimeForeverHrs, 'f', 2, 64),
			row.PlaytimeCategory,
			row.HasTradingCards,
			row.CardDropsRemaining,
			row.AchievementsStatus,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file: %w", err)
	}

	return nil
}
