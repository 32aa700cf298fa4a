package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("test-secret")

func TestIssuer_RoundTrip(t *testing.T) {
	issuer := NewIssuer(testKey, time.Hour)

	token, expiresAt, err := issuer.Generate("session-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.Equal(t, TokenIssuer, claims.Issuer)
	assert.Equal(t, TokenSubject, claims.Subject)
}

func TestIssuer_Expired(t *testing.T) {
	issuer := NewIssuer(testKey, time.Minute)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := issuer.Generate("session-1")
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestIssuer_WrongKey(t *testing.T) {
	token, _, err := NewIssuer([]byte("other"), time.Hour).Generate("session-1")
	require.NoError(t, err)

	_, err = NewIssuer(testKey, time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_RejectsOtherSigningMethods(t *testing.T) {
	claims := &Claims{
		SessionID: "session-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Subject:   TokenSubject,
		},
	}

	hs384, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString(testKey)
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	issuer := NewIssuer(testKey, time.Hour)
	for name, token := range map[string]string{"HS384": hs384, "none": none} {
		_, err := issuer.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken, name)
	}
}

func TestIssuer_Malformed(t *testing.T) {
	issuer := NewIssuer(testKey, time.Hour)

	for _, token := range []string{"", "abc", "a.b.c"} {
		_, err := issuer.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken, token)
	}
}

func TestIssuer_RequiresSessionID(t *testing.T) {
	issuer := NewIssuer(testKey, time.Hour)

	token, _, err := issuer.Generate("")
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
