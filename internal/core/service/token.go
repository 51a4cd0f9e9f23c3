package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
)

// DefaultTokenTTL is the session lifetime applied when configuration does
// not override it.
const DefaultTokenTTL = 24 * time.Hour

// Claims is what a session token carries: who, and as what.
type Claims struct {
	SubjectID string
	Role      domain.Role
}

// TokenCodec issues and verifies stateless HS256 session tokens. Tokens are
// self-contained: verification needs only the signing secret and a clock,
// never shared session storage. The trade is revocability — a token stays
// valid until its embedded expiry, even after principal mutation.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for claims using the configured default TTL.
func (c *TokenCodec) Issue(claims Claims) (string, error) {
	return c.IssueFor(claims, c.ttl)
}

// IssueFor signs a token expiring at now + ttl.
func (c *TokenCodec) IssueFor(claims Claims, ttl time.Duration) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  claims.SubjectID,
		"role": string(claims.Role),
		"exp":  jwt.NewNumericDate(c.now().Add(ttl)),
	})
	return t.SignedString(c.secret)
}

// Verify validates signature, structure and expiry, returning the embedded
// claims. Every failure mode collapses to domain.ErrInvalidToken; callers
// never see library internals.
func (c *TokenCodec) Verify(token string) (Claims, error) {
	parsed := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, parsed, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now), jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return Claims{}, domain.ErrInvalidToken
	}

	sub, _ := parsed["sub"].(string)
	role, _ := parsed["role"].(string)
	if sub == "" || role == "" {
		return Claims{}, domain.ErrInvalidToken
	}

	return Claims{SubjectID: sub, Role: domain.Role(role)}, nil
}
