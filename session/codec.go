// Package session implements the stateless session tokens issued at login.
// A token is a signed bearer of identity; nothing is held server side, so
// expiry is the only way a session ends.
package session

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// DefaultTTL is the session lifetime used when none is configured.
const DefaultTTL = 24 * time.Hour

// ErrInvalidSession is returned by Verify for any token that cannot be
// accepted. Missing, malformed, tampered and expired tokens are deliberately
// not distinguished.
var ErrInvalidSession = errors.New("invalid or expired session")

// Identity is the authenticated identity carried inside a session token.
// It never contains credential material.
type Identity struct {
	UserID   uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type sessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Codec mints and verifies signed session tokens.
type Codec struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewCodec creates a Codec signing with HS256 using the passed secret.
// A zero ttl falls back to DefaultTTL.
func NewCodec(secret []byte, ttl time.Duration, issuer string) (*Codec, error) {
	if len(secret) == 0 {
		return nil, errors.New("session secret must not be empty")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: secret, ttl: ttl, issuer: issuer}, nil
}

// Mint issues a signed token for the passed identity. Role and subject are
// fixed at issuance time; the token is never refreshed.
func (c *Codec) Mint(id Identity) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Username: id.Username,
		Role:     id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(id.UserID), 10),
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}
	return signed, nil
}

// Verify validates signature and expiry of a token and returns the identity
// it carries. Every rejected token yields ErrInvalidSession.
func (c *Codec) Verify(token string) (*Identity, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(
		token, &claims, func(t *jwt.Token) (any, error) {
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}
	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidSession
	}
	return &Identity{
		UserID:   uint(userID),
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
