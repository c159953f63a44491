package steam

// OwnedGame represents one title in a user's Steam library, as returned by
// the GetOwnedGames endpoint. It is an immutable snapshot of the remote state.
type OwnedGame struct {
	AppID                    int    `json:"appid"`
	Name                     string `json:"name"`
	PlaytimeForever          int    `json:"playtime_forever"` // Total playtime in minutes
	HasCommunityVisibleStats bool   `json:"has_community_visible_stats"`
}

// ownedGamesResponse is the envelope around the owned games list.
// Games is a pointer so a private profile (field absent) can be told apart
// from a public zero-game library (field present, empty list).
type ownedGamesResponse struct {
	Response struct {
		GameCount int          `json:"game_count"`
		Games     *[]OwnedGame `json:"games"`
	} `json:"response"`
}

// vanityResponse is the envelope for ResolveVanityURL.
// Success is 1 when the vanity name resolved.
type vanityResponse struct {
	Response struct {
		Success int    `json:"success"`
		SteamID string `json:"steamid"`
		Message string `json:"message"`
	} `json:"response"`
}

// Badge holds trading-card badge progress for one app.
type Badge struct {
	Level          int `json:"level"`
	Series         int `json:"series"`
	BorderColor    int `json:"border_color"`
	DropsRemaining int `json:"drops_remaining"`
}

// badgeLevelsResponse is the envelope for GetGameBadgeLevels.
type badgeLevelsResponse struct {
	Response struct {
		PlayerLevel int     `json:"player_level"`
		Badges      []Badge `json:"badges"`
	} `json:"response"`
}

// Achievement is a single achievement's unlock state for a player.
type Achievement struct {
	APIName    string `json:"apiname"`
	Achieved   int    `json:"achieved"`
	UnlockTime int64  `json:"unlocktime"`
}

// PlayerStats holds a player's achievement list for one app.
type PlayerStats struct {
	SteamID      string        `json:"steamID"`
	GameName     string        `json:"gameName"`
	Success      bool          `json:"success"`
	Error        string        `json:"error,omitempty"`
	Achievements []Achievement `json:"achievements"`
}

// achievementsResponse is the envelope for GetPlayerAchievements.
type achievementsResponse struct {
	PlayerStats PlayerStats `json:"playerstats"`
}
