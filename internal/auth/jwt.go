package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin  = "admin"
	RoleUser   = "user"
	RoleMember = "member"

	KindAccess  = "access"
	KindRefresh = "refresh"

	AccessCookie  = "vitrine_access"
	RefreshCookie = "vitrine_refresh"
)

var ErrInvalidToken = errors.New("invalid token")

type Manager struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	Issuer     string
}

// Claims identify a signed-in user. Subject holds the user ID.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
	Kind  string `json:"kind"`
	jwt.RegisteredClaims
}

// Session is the subject a token pair is issued for.
type Session struct {
	UserID string
	Email  string
	Role   string
}

func (m *Manager) newToken(s Session, kind string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: s.Email,
		Role:  s.Role,
		Kind:  kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.Issuer,
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.Secret)
}

func (m *Manager) NewAccessToken(s Session) (string, error) {
	return m.newToken(s, KindAccess, m.AccessTTL)
}

func (m *Manager) NewRefreshToken(s Session) (string, error) {
	return m.newToken(s, KindRefresh, m.RefreshTTL)
}

func (m *Manager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	}, jwt.WithIssuer(m.Issuer))
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// SessionFromClaims rebuilds the session a token was issued for.
func SessionFromClaims(c *Claims) Session {
	return Session{UserID: c.Subject, Email: c.Email, Role: c.Role}
}
