package token

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock returns a clock function pinned to t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m := NewManager("test-secret", 24*time.Hour, fixedClock(now))

	tok, err := m.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestVerify_Expired(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m := NewManager("test-secret", 24*time.Hour, fixedClock(issued))

	tok, err := m.Issue("user-123")
	require.NoError(t, err)

	cases := []struct {
		name    string
		at      time.Time
		wantErr bool
	}{
		{"just before expiry", issued.Add(24*time.Hour - time.Second), false},
		{"just after expiry", issued.Add(24*time.Hour + time.Second), true},
		{"long after expiry", issued.Add(30 * 24 * time.Hour), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			later := NewManager("test-secret", 24*time.Hour, fixedClock(tc.at))
			userID, err := later.Verify(tok)
			if tc.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidToken), "error = %v; want ErrInvalidToken", err)
				assert.Empty(t, userID)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "user-123", userID)
			}
		})
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	signer := NewManager("secret-a", 24*time.Hour, fixedClock(now))
	verifier := NewManager("secret-b", 24*time.Hour, fixedClock(now))

	tok, err := signer.Issue("user-123")
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.True(t, errors.Is(err, ErrInvalidToken), "error = %v; want ErrInvalidToken", err)
}

func TestVerify_Malformed(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m := NewManager("test-secret", 24*time.Hour, fixedClock(now))

	cases := []string{
		"",
		"garbage",
		"a.b.c",
		"eyJhbGciOiJub25lIn0.eyJzdWIiOiJ1c2VyLTEyMyJ9.",
	}

	for _, tok := range cases {
		_, err := m.Verify(tok)
		assert.True(t, errors.Is(err, ErrInvalidToken), "Verify(%q) error = %v; want ErrInvalidToken", tok, err)
	}
}

func TestVerify_EmptySubject(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m := NewManager("test-secret", 24*time.Hour, fixedClock(now))

	tok, err := m.Issue("")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.True(t, errors.Is(err, ErrInvalidToken), "error = %v; want ErrInvalidToken", err)
}
