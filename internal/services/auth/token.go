package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rosterhub/rosterhub/internal/dependencies/clock"
	"github.com/rosterhub/rosterhub/internal/model"
)

// Errors returned by token verification
var (
	ErrTokenMalformed = errors.New("token is malformed or has an invalid signature")
	ErrTokenExpired   = errors.New("token has expired")
)

// Claims is the payload embedded in a session token
type Claims struct {
	Role     model.Role     `json:"role"`
	PlayerID model.PlayerID `json:"playerId,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the user the token was issued for
func (c *Claims) UserID() model.UserID {
	return model.UserID(c.Subject)
}

// Codec issues and verifies signed, time-bound session tokens.
// Tokens are stateless: verification depends only on the token, the
// signing secret and the current time.
type Codec struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// NewCodec creates a token codec signing with the given secret
func NewCodec(secret []byte, ttl time.Duration, clk clock.Clock) *Codec {
	return &Codec{
		secret: secret,
		ttl:    ttl,
		clock:  clk,
	}
}

// Issue produces a signed token for the user with the codec's validity
// window. The issued-at timestamp comes from the codec's clock, so two
// issuances for the same user at different times differ.
func (c *Codec) Issue(user *model.User) (string, error) {
	now := c.clock.Now()

	claims := Claims{
		Role:     user.Role,
		PlayerID: user.PlayerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify decodes a token, checking signature integrity and expiry against
// the codec's clock. Returns ErrTokenExpired past the encoded expiry and
// ErrTokenMalformed for anything else that is not a valid token signed
// with this codec's secret.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrTokenMalformed
			}
			return c.secret, nil
		},
		jwt.WithTimeFunc(c.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	if !token.Valid {
		return nil, ErrTokenMalformed
	}

	// A token carrying a role outside the closed set did not come from us
	if _, roleErr := model.ParseRole(string(claims.Role)); roleErr != nil || claims.Subject == "" {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
