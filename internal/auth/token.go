/* 덱 세션 토큰 생성 및 검증 */

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	TokenIssuer  = "swipedeck-api"
	TokenSubject = "deck_session"
)

var ErrInvalidToken = errors.New("invalid session token")

// Claims 구조체, JWT 페이로드에 세션 ID 포함
type Claims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// Issuer signs and checks session tokens with one HMAC key.
type Issuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewIssuer(key []byte, ttl time.Duration) *Issuer {
	return &Issuer{key: key, ttl: ttl, now: time.Now}
}

// Generate returns a signed token for sessionID and the time it expires.
func (i *Issuer) Generate(sessionID string) (string, time.Time, error) {
	issuedAt := i.now()
	expiresAt := issuedAt.Add(i.ttl)
	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    TokenIssuer,
			Subject:   TokenSubject,
		},
	}

	// 토큰 문자열 생성 및 서명
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate parses tokenString and returns its claims. Any failure wraps
// ErrInvalidToken; expiry additionally wraps jwt.ErrTokenExpired.
func (i *Issuer) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return i.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidToken, jwt.ErrTokenExpired)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	// 만약을 위한 토큰 유효성 재검사
	if !token.Valid || claims.SessionID == "" || claims.Subject != TokenSubject {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
