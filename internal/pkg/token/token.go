package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Validity is the fixed lifetime of every issued token. There is no
// refresh or rotation mechanism; a token is valid until this window
// elapses or the process-local session cache entry is removed.
const Validity = 24 * time.Hour

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims represents the JWT claims. User carries the obfuscated
// identity snapshot, never the raw fields.
type Claims struct {
	User string `json:"user"`
	jwt.RegisteredClaims
}

// Generate signs a token embedding the encoded user snapshot with an
// expiration of now + ttl.
func Generate(encodedUser, secret string, ttl time.Duration) (string, error) {
	claims := Claims{
		User: encodedUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "staffhub",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Validate checks signature and expiration and returns the claims.
func Validate(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}
