package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPassword      = "SecurePassword123!"
	testWrongPassword = "WrongPassword456!"
)

func TestHashPassword_Success(t *testing.T) {
	// Act
	hash, err := HashPassword(testPassword)

	// Assert
	require.NoError(t, err)
	assert.NotEqual(t, testPassword, hash)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$"))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	hash1, err := HashPassword(testPassword)
	require.NoError(t, err)
	hash2, err := HashPassword(testPassword)
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2, "same password should hash differently with a fresh salt")
}

func TestVerifyPassword_TableDriven(t *testing.T) {
	testCases := []struct {
		name        string
		password    string
		attempt     string
		expectMatch bool
	}{
		{name: "correct_password", password: testPassword, attempt: testPassword, expectMatch: true},
		{name: "incorrect_password", password: testPassword, attempt: testWrongPassword, expectMatch: false},
		{name: "case_sensitive", password: "Password123", attempt: "password123", expectMatch: false},
		{name: "whitespace_matters", password: "Password123 ", attempt: "Password123", expectMatch: false},
		{name: "unicode", password: "Şifre123!", attempt: "Şifre123!", expectMatch: true},
		{name: "long_password", password: strings.Repeat("a", 1000), attempt: strings.Repeat("a", 1000), expectMatch: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			hash, err := HashPassword(tc.password)
			require.NoError(t, err)

			// Act
			match, err := VerifyPassword(tc.attempt, hash)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tc.expectMatch, match)
		})
	}
}

func TestVerifyPassword_InvalidHashFormat(t *testing.T) {
	invalidHashes := []string{
		"",
		"plain-text-not-hash",
		"$invalid$format$",
		"$argon2id$v=19$m=65536",
		"$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$a2V5",
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$a2V5",
	}

	for _, invalid := range invalidHashes {
		t.Run(invalid, func(t *testing.T) {
			match, err := VerifyPassword(testPassword, invalid)

			assert.ErrorIs(t, err, ErrInvalidHash)
			assert.False(t, match)
		})
	}
}

func TestVerifyPassword_IncompatibleVersion(t *testing.T) {
	hash, err := HashPassword(testPassword)
	require.NoError(t, err)

	old := strings.Replace(hash, "v=19", "v=16", 1)

	_, err = VerifyPassword(testPassword, old)
	assert.ErrorIs(t, err, ErrIncompatibleVersion)
}

func TestVerifyPassword_CustomParams(t *testing.T) {
	// Hashes carry their own parameters, so cheaper legacy hashes still verify
	cheap := Argon2Params{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16}
	hash, err := HashPasswordWithParams(testPassword, cheap)
	require.NoError(t, err)

	match, err := VerifyPassword(testPassword, hash)
	require.NoError(t, err)
	assert.True(t, match)
	assert.True(t, NeedsRehash(hash))
}

func TestNeedsRehash(t *testing.T) {
	hash, err := HashPassword(testPassword)
	require.NoError(t, err)

	assert.False(t, NeedsRehash(hash))
	assert.True(t, NeedsRehash("garbage"))
}

func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword(testPassword)
	}
}
