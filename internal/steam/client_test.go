package steam

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/cardscout/internal/errors"
)

func fixtureServer(t *testing.T, fixture string, assertURL func(*testing.T, *http.Request)) *httptest.Server {
	t.Helper()

	fixtureData, err := os.ReadFile("testdata/" + fixture)
	require.NoError(t, err, "Failed to read test fixture")

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if assertURL != nil {
			assertURL(t, r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(fixtureData)
	}))
}

func TestResolveVanityURL_Success(t *testing.T) {
	server := fixtureServer(t, "vanity_success.json", func(t *testing.T, r *http.Request) {
		assert.Equal(t, "/ISteamUser/ResolveVanityURL/v1/", r.URL.Path)
		assert.Equal(t, "gabelogannewell", r.URL.Query().Get("vanityurl"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
	})
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	steamID, err := client.ResolveVanityURL(context.Background(), "gabelogannewell")
	require.NoError(t, err)
	assert.Equal(t, "76561197960287930", steamID)
}

func TestResolveVanityURL_NotFound(t *testing.T) {
	server := fixtureServer(t, "vanity_not_found.json", nil)
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.ResolveVanityURL(context.Background(), "no-such-user")
	require.Error(t, err)
	assert.True(t, errors.IsIdentityNotFoundError(err))
}

func TestResolveVanityURL_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed server forces a connection error

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.ResolveVanityURL(context.Background(), "anyone")
	require.Error(t, err)
	assert.False(t, errors.IsIdentityNotFoundError(err))
}

func TestGetOwnedGames_Success(t *testing.T) {
	server := fixtureServer(t, "owned_games_response.json", func(t *testing.T, r *http.Request) {
		assert.Equal(t, "/IPlayerService/GetOwnedGames/v1/", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("include_appinfo"))
		assert.Equal(t, "1", r.URL.Query().Get("include_played_free_games"))
	})
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	games, err := client.GetOwnedGames(context.Background(), "76561197960287930")
	require.NoError(t, err)
	require.Len(t, games, 3)

	assert.Equal(t, 440, games[0].AppID)
	assert.Equal(t, "Team Fortress 2", games[0].Name)
	assert.Equal(t, 45, games[0].PlaytimeForever)
	assert.True(t, games[0].HasCommunityVisibleStats)

	assert.Equal(t, 570, games[1].AppID)
	assert.False(t, games[1].HasCommunityVisibleStats)
}

func TestGetOwnedGames_PrivateProfile(t *testing.T) {
	// Private profiles answer HTTP 200 with no games collection at all
	server := fixtureServer(t, "owned_games_private.json", nil)
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.GetOwnedGames(context.Background(), "76561197960287930")
	require.Error(t, err)
	assert.True(t, errors.IsPrivateProfileError(err))
}

func TestGetOwnedGames_EmptyLibrary(t *testing.T) {
	// A present-but-empty games collection is a valid zero-game library
	server := fixtureServer(t, "owned_games_empty.json", nil)
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	games, err := client.GetOwnedGames(context.Background(), "76561197960287930")
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestGetGameBadgeLevels(t *testing.T) {
	server := fixtureServer(t, "badge_levels_response.json", func(t *testing.T, r *http.Request) {
		assert.Equal(t, "/IPlayerService/GetGameBadgeLevels/v1/", r.URL.Path)
		assert.Equal(t, "440", r.URL.Query().Get("appid"))
	})
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	badges, err := client.GetGameBadgeLevels(context.Background(), "76561197960287930", 440)
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.Equal(t, 2, badges[0].DropsRemaining)
}

func TestGetPlayerAchievements_Success(t *testing.T) {
	server := fixtureServer(t, "achievements_success.json", func(t *testing.T, r *http.Request) {
		assert.Equal(t, "/ISteamUserStats/GetPlayerAchievements/v1/", r.URL.Path)
	})
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	stats, err := client.GetPlayerAchievements(context.Background(), "76561197960287930", 440)
	require.NoError(t, err)
	require.True(t, stats.Success)
	require.Len(t, stats.Achievements, 3)
	assert.Equal(t, 1, stats.Achievements[0].Achieved)
	assert.Equal(t, 0, stats.Achievements[2].Achieved)
}

func TestGetPlayerAchievements_NoStats(t *testing.T) {
	server := fixtureServer(t, "achievements_none.json", nil)
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	stats, err := client.GetPlayerAchievements(context.Background(), "76561197960287930", 570)
	require.NoError(t, err)
	assert.False(t, stats.Success)
	assert.Contains(t, stats.Error, "no stats")
	assert.Empty(t, stats.Achievements)
}

func TestFetchCardCatalog_ReturnsRawBody(t *testing.T) {
	raw := `{"data":[[[440,"Team Fortress 2"],[100,50],"extra"]]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(raw))
	}))
	defer server.Close()

	client := NewClient("test-key", WithCatalogURL(server.URL))

	body, err := client.FetchCardCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, raw, string(body))
}

func TestClient_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("rate limited"))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.GetOwnedGames(context.Background(), "76561197960287930")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status code 429")
}

func TestClient_LookupTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"response":{}}`))
	}))
	defer server.Close()

	client := NewClient("test-key",
		WithBaseURL(server.URL),
		WithTimeouts(20*time.Millisecond, 20*time.Millisecond),
	)

	_, err := client.GetGameBadgeLevels(context.Background(), "76561197960287930", 440)
	require.Error(t, err)
}
