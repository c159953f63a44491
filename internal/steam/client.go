package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lepinkainen/cardscout/internal/errors"
)

const (
	defaultBaseURL    = "https://api.steampowered.com"
	defaultCatalogURL = "https://www.steamcardexchange.net/api/request.php?GetBoosterPrices"
)

// Client calls the Steam Web API and the SteamCardExchange catalog endpoint.
// All methods are safe for sequential reuse; the client holds no mutable state.
type Client struct {
	apiKey         string
	baseURL        string
	catalogURL     string
	httpClient     *http.Client
	lookupTimeout  time.Duration
	catalogTimeout time.Duration
	libraryTimeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the Steam Web API base URL. Used by tests to point
// the client at an httptest server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithCatalogURL overrides the card catalog endpoint URL.
func WithCatalogURL(catalogURL string) Option {
	return func(c *Client) { c.catalogURL = catalogURL }
}

// WithTimeouts sets the per-call timeouts for badge/achievement lookups and
// the catalog fetch.
func WithTimeouts(lookup, catalog time.Duration) Option {
	return func(c *Client) {
		c.lookupTimeout = lookup
		c.catalogTimeout = catalog
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// NewClient creates a Steam API client with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:         apiKey,
		baseURL:        defaultBaseURL,
		catalogURL:     defaultCatalogURL,
		httpClient:     &http.Client{},
		lookupTimeout:  5 * time.Second,
		catalogTimeout: 15 * time.Second,
		libraryTimeout: time.Minute,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ResolveVanityURL converts a Steam custom URL name to a SteamID64 string.
// An unknown vanity name yields an IdentityNotFoundError.
func (c *Client) ResolveVanityURL(ctx context.Context, vanity string) (string, error) {
	params := url.Values{}
	params.Add("key", c.apiKey)
	params.Add("vanityurl", vanity)

	body, err := c.get(ctx, c.baseURL+"/ISteamUser/ResolveVanityURL/v1/?"+params.Encode(), c.libraryTimeout)
	if err != nil {
		return "", fmt.Errorf("failed to resolve vanity URL: %w", err)
	}

	var resp vanityResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse vanity response: %w", err)
	}

	if resp.Response.Success != 1 || resp.Response.SteamID == "" {
		return "", errors.NewIdentityNotFoundError(vanity)
	}

	return resp.Response.SteamID, nil
}

// GetOwnedGames fetches all owned games for the given SteamID, including
// played free games and app info. A response without a games collection is
// surfaced as a PrivateProfileError; an empty collection is a valid library.
func (c *Client) GetOwnedGames(ctx context.Context, steamID string) ([]OwnedGame, error) {
	params := url.Values{}
	params.Add("key", c.apiKey)
	params.Add("steamid", steamID)
	params.Add("format", "json")
	params.Add("include_appinfo", "1")
	params.Add("include_played_free_games", "1")

	// Large libraries take a while to serialize upstream, so this call gets
	// a much longer deadline than the per-game lookups
	body, err := c.get(ctx, c.baseURL+"/IPlayerService/GetOwnedGames/v1/?"+params.Encode(), c.libraryTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch owned games: %w", err)
	}

	var resp ownedGamesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse owned games response: %w", err)
	}

	if resp.Response.Games == nil {
		return nil, errors.NewPrivateProfileError(http.StatusOK, "")
	}

	return *resp.Response.Games, nil
}

// GetGameBadgeLevels fetches trading-card badge progress for one app.
func (c *Client) GetGameBadgeLevels(ctx context.Context, steamID string, appID int) ([]Badge, error) {
	params := url.Values{}
	params.Add("key", c.apiKey)
	params.Add("steamid", steamID)
	params.Add("appid", strconv.Itoa(appID))

	body, err := c.get(ctx, c.baseURL+"/IPlayerService/GetGameBadgeLevels/v1/?"+params.Encode(), c.lookupTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch badge levels: %w", err)
	}

	var resp badgeLevelsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse badge levels response: %w", err)
	}

	return resp.Response.Badges, nil
}

// GetPlayerAchievements fetches a player's achievement states for one app.
// The API reports "no stats" and private profiles inside the payload with
// success=false, which is returned as-is for the caller to classify.
func (c *Client) GetPlayerAchievements(ctx context.Context, steamID string, appID int) (*PlayerStats, error) {
	params := url.Values{}
	params.Add("key", c.apiKey)
	params.Add("steamid", steamID)
	params.Add("appid", strconv.Itoa(appID))

	body, err := c.get(ctx, c.baseURL+"/ISteamUserStats/GetPlayerAchievements/v1/?"+params.Encode(), c.lookupTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch achievements: %w", err)
	}

	var resp achievementsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse achievements response: %w", err)
	}

	return &resp.PlayerStats, nil
}

// FetchCardCatalog downloads the raw card catalog payload. The body is
// returned verbatim so the catalog store can persist it unchanged.
func (c *Client) FetchCardCatalog(ctx context.Context) ([]byte, error) {
	body, err := c.get(ctx, c.catalogURL, c.catalogTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch card catalog: %w", err)
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, fullURL string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("steam API returned status code %d. Response: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
