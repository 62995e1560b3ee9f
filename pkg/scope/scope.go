package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims is the verified identity carried by a session token.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

// Manager issues and verifies session tokens.
type Manager interface {
	IssueToken(claims Claims) (string, error)
	VerifyToken(token string) (Claims, error)
}

type jwtManager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a JWT-backed Manager signing with HS256.
func NewManager(secret string, ttl time.Duration) Manager {
	return &jwtManager{secret: []byte(secret), ttl: ttl}
}

func (m *jwtManager) IssueToken(claims Claims) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   claims.UserID,
		"email": claims.Email,
		"role":  claims.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(m.ttl).Unix(),
	})
	return t.SignedString(m.secret)
}

func (m *jwtManager) VerifyToken(token string) (Claims, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredToken
		}
		return Claims{}, ErrInvalidToken
	}

	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}

	out := Claims{}
	if sub, ok := mc["sub"].(string); ok {
		out.UserID = sub
	}
	if email, ok := mc["email"].(string); ok {
		out.Email = email
	}
	if role, ok := mc["role"].(string); ok {
		out.Role = role
	}
	if out.UserID == "" {
		return Claims{}, ErrInvalidToken
	}
	return out, nil
}
