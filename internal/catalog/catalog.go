// Package catalog maintains the set of Steam appids known to have trading
// cards, backed by a local cache of the raw SteamCardExchange response.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// Fetcher fetches the raw card catalog payload from the remote API.
type Fetcher interface {
	FetchCardCatalog(ctx context.Context) ([]byte, error)
}

// Store loads the card catalog, preferring the local cache file and falling
// back to a remote fetch when the file is missing or corrupted.
type Store struct {
	path    string
	fetcher Fetcher
}

// NewStore creates a Store caching at path and refetching via fetcher.
func NewStore(path string, fetcher Fetcher) *Store {
	return &Store{path: path, fetcher: fetcher}
}

// Load returns the set of appid strings that have trading cards.
// Catalog degradation is never fatal: on any failure Load logs a warning and
// returns an empty set, which downgrades card detection accuracy only.
func (s *Store) Load(ctx context.Context) map[string]struct{} {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No local card catalog found, fetching from API", "file", s.path)
		} else {
			slog.Warn("Failed to read local card catalog, fetching from API", "file", s.path, "error", err)
		}
		return s.refresh(ctx)
	}

	set, err := Parse(data)
	if err != nil {
		slog.Warn("Local card catalog is corrupted, fetching from API", "file", s.path, "error", err)
		return s.refresh(ctx)
	}

	slog.Info("Loaded card catalog from local cache", "file", s.path, "apps", len(set))
	return set
}

// refresh fetches the catalog from the remote API, persists the raw response
// verbatim for future sessions and returns the derived appid set.
func (s *Store) refresh(ctx context.Context) map[string]struct{} {
	data, err := s.fetcher.FetchCardCatalog(ctx)
	if err != nil {
		slog.Warn("Could not fetch card catalog from API, card detection will be incomplete", "error", err)
		return map[string]struct{}{}
	}

	set, err := Parse(data)
	if err != nil {
		slog.Warn("Card catalog response is malformed, card detection will be incomplete", "error", err)
		return map[string]struct{}{}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		slog.Warn("Failed to write card catalog cache file", "file", s.path, "error", err)
	} else {
		slog.Info("Fetched and cached card catalog", "file", s.path, "apps", len(set))
	}

	return set
}

// Parse extracts the appid set from a raw catalog payload. Each entry in the
// data list is itself a list whose first element is a list starting with the
// appid, either as a number or a string. Any deviation from that shape is an
// error so callers can treat the payload as corrupted.
func Parse(data []byte) (map[string]struct{}, error) {
	var payload struct {
		Data *[]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse catalog payload: %w", err)
	}
	if payload.Data == nil {
		return nil, fmt.Errorf("catalog payload has no data list")
	}

	set := make(map[string]struct{}, len(*payload.Data))
	for i, raw := range *payload.Data {
		var entry []json.RawMessage
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, fmt.Errorf("catalog entry %d is not a list: %w", i, err)
		}
		if len(entry) == 0 {
			return nil, fmt.Errorf("catalog entry %d is empty", i)
		}

		var head []json.RawMessage
		if err := json.Unmarshal(entry[0], &head); err != nil {
			return nil, fmt.Errorf("catalog entry %d has no inner list: %w", i, err)
		}
		if len(head) == 0 {
			return nil, fmt.Errorf("catalog entry %d has an empty inner list", i)
		}

		appID, err := stringifyAppID(head[0])
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		set[appID] = struct{}{}
	}

	return set, nil
}

func stringifyAppID(raw json.RawMessage) (string, error) {
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatInt(n, 10), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return s, nil
	}
	return "", fmt.Errorf("appid is neither a number nor a string: %s", string(raw))
}
