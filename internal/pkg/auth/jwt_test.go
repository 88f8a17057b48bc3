package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestValidateAndExtractClaims_Valid(t *testing.T) {
	verifier := NewIdentityVerifier(IdentityConfig{SecretKey: testSecret})
	token := signToken(t, testSecret, Claims{
		UserID: "u1",
		Role:   "Student",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := verifier.ValidateAndExtractClaims(token)

	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "Student", claims.Role)
}

func TestValidateAndExtractClaims_Expired(t *testing.T) {
	verifier := NewIdentityVerifier(IdentityConfig{SecretKey: testSecret})
	token := signToken(t, testSecret, Claims{
		UserID: "u1",
		Role:   "Student",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	_, err := verifier.ValidateAndExtractClaims(token)

	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateAndExtractClaims_WrongSecret(t *testing.T) {
	verifier := NewIdentityVerifier(IdentityConfig{SecretKey: testSecret})
	token := signToken(t, "some-other-secret", Claims{
		UserID: "u1",
		Role:   "Student",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := verifier.ValidateAndExtractClaims(token)

	assert.Error(t, err)
}

func TestValidateAndExtractClaims_MissingIdentityClaims(t *testing.T) {
	verifier := NewIdentityVerifier(IdentityConfig{SecretKey: testSecret})
	token := signToken(t, testSecret, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := verifier.ValidateAndExtractClaims(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAndExtractClaims_EmptyString(t *testing.T) {
	verifier := NewIdentityVerifier(IdentityConfig{SecretKey: testSecret})

	_, err := verifier.ValidateAndExtractClaims("")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// A bare token without the scheme is accepted as-is
	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
