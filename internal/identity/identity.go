// Package identity maps user-supplied identity strings to SteamID64s.
package identity

import (
	"context"
	"log/slog"
)

// VanityResolver resolves a Steam vanity name to a SteamID64.
type VanityResolver interface {
	ResolveVanityURL(ctx context.Context, vanity string) (string, error)
}

// IsSteamID64 reports whether input looks like a SteamID64: exactly 17
// decimal digits. Such input is accepted as-is without remote validation.
func IsSteamID64(input string) bool {
	if len(input) != 17 {
		return false
	}
	for _, r := range input {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Resolve returns the SteamID64 for the given identity string. A 17-digit
// numeric string passes through unchanged; anything else is treated as a
// vanity name and resolved remotely. No retries.
func Resolve(ctx context.Context, resolver VanityResolver, input string) (string, error) {
	if IsSteamID64(input) {
		return input, nil
	}

	steamID, err := resolver.ResolveVanityURL(ctx, input)
	if err != nil {
		return "", err
	}

	slog.Info("Resolved custom URL to SteamID64", "vanity", input, "steamid", steamID)
	return steamID, nil
}
