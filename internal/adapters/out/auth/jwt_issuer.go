package auth

import (
	"errors"
	"fmt"
	"time"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/user"
	"jobboard/internal/core/ports"

	"github.com/golang-jwt/jwt/v4"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = 7 * 24 * time.Hour

const issuer = "jobboard"

// Claims carries the user id and role next to the registered claims.
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer implements ports.TokenIssuer with HS256.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock replaces the time source; tests use it to issue expired tokens.
func (i *JWTIssuer) WithClock(now func() time.Time) *JWTIssuer {
	clone := *i
	clone.now = now
	return &clone
}

func (i *JWTIssuer) Issue(u *user.User) (string, error) {
	if err := u.Validate(); err != nil {
		return "", err
	}

	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: u.ID().String(),
		Role:   u.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   u.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (i *JWTIssuer) Verify(token string) (kernel.UserID, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ports.ErrInvalidCredentials, err)
	}
	if !parsed.Valid {
		return "", ports.ErrInvalidCredentials
	}

	id, err := kernel.NewUserID(claims.UserID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ports.ErrInvalidCredentials, errors.New("token has no user id"))
	}
	return id, nil
}
