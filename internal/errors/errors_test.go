package errors

import (
	stdErrors "errors"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("steam API key is not set")

	if err.Error() != "steam API key is not set" {
		t.Fatalf("Error message = %q, want %q", err.Error(), "steam API key is not set")
	}

	if !IsConfigError(err) {
		t.Fatalf("IsConfigError returned false for ConfigError")
	}

	wrapped := stdErrors.Join(err)
	if !IsConfigError(wrapped) {
		t.Fatalf("IsConfigError returned false for wrapped ConfigError")
	}
}

func TestIdentityNotFoundError(t *testing.T) {
	err := NewIdentityNotFoundError("gabelogannewell")

	expected := `could not find a Steam profile for "gabelogannewell"`
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if !IsIdentityNotFoundError(err) {
		t.Fatalf("IsIdentityNotFoundError returned false for IdentityNotFoundError")
	}

	wrapped := stdErrors.Join(err)
	if !IsIdentityNotFoundError(wrapped) {
		t.Fatalf("IsIdentityNotFoundError returned false for wrapped IdentityNotFoundError")
	}
}

func TestPrivateProfileError_403Private(t *testing.T) {
	err := NewPrivateProfileError(403, "Profile is private")

	expected := "Steam profile is private or inaccessible (HTTP 403): Profile is private"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if !IsPrivateProfileError(err) {
		t.Fatalf("IsPrivateProfileError returned false for PrivateProfileError")
	}

	if err.StatusCode != 403 {
		t.Fatalf("StatusCode = %d, want 403", err.StatusCode)
	}
}

func TestPrivateProfileError_403Forbidden(t *testing.T) {
	err := NewPrivateProfileError(403, "Access denied")

	expected := "Access forbidden - check API key and profile settings (HTTP 403): Access denied"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}
}

func TestPrivateProfileError_401(t *testing.T) {
	err := NewPrivateProfileError(401, "Invalid key")

	expected := "Invalid Steam API key (HTTP 401): Invalid key"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}
}

func TestPrivateProfileError_MissingGamesField(t *testing.T) {
	// The owned-games endpoint answers 200 with no games collection for
	// private profiles; the error must still read as an access problem.
	err := NewPrivateProfileError(200, "")

	expected := "Could not retrieve game list - the profile is likely private (HTTP 200)"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if err.Remediation() == "" {
		t.Fatalf("Remediation returned empty string")
	}
}

func TestPrivateProfileError_OtherStatusCode(t *testing.T) {
	err := NewPrivateProfileError(500, "Server error")

	expected := "Steam API access error (HTTP 500): Server error"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}
}

func TestPrivateProfileError_CaseInsensitivePrivate(t *testing.T) {
	testCases := []string{
		"Profile is PRIVATE",
		"profile is private",
		"This profile contains PRIVATE information",
	}

	for _, apiMsg := range testCases {
		err := NewPrivateProfileError(403, apiMsg)
		if err.Message != "Steam profile is private or inaccessible" {
			t.Fatalf("For message %q, expected private profile message, got %q", apiMsg, err.Message)
		}
	}
}

func TestPrivateProfileError_Wrapped(t *testing.T) {
	err := NewPrivateProfileError(403, "private profile")
	wrapped := stdErrors.Join(err, stdErrors.New("additional context"))

	if !IsPrivateProfileError(wrapped) {
		t.Fatalf("IsPrivateProfileError returned false for wrapped PrivateProfileError")
	}
}
