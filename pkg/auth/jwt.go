package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// TokenClaims is the verified identity extracted from a bearer token.
type TokenClaims struct {
	UserID   int64
	Username string
	Roles    []string
}

// JWTService issues and verifies signed bearer tokens. Tokens are
// self-contained; no server-side session is kept.
type JWTService interface {
	GenerateAccessToken(userID int64, username string, roles []string) (string, error)
	GenerateRefreshToken(userID int64) (string, error)
	ValidateToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (int64, error)
}

type Config struct {
	Secret             string
	RefreshSecret      string
	ExpiryHours        int
	RefreshExpiryHours int
}

type jwtService struct {
	cfg Config
}

func NewJWTService(cfg Config) JWTService {
	if cfg.ExpiryHours <= 0 {
		cfg.ExpiryHours = 24
	}
	if cfg.RefreshExpiryHours <= 0 {
		cfg.RefreshExpiryHours = 24 * 7
	}
	return &jwtService{cfg: cfg}
}

func (s *jwtService) GenerateAccessToken(userID int64, username string, roles []string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"roles":    roles,
		"iat":      now.Unix(),
		"exp":      now.Add(time.Duration(s.cfg.ExpiryHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *jwtService) GenerateRefreshToken(userID int64) (string, error) {
	now := time.Now().UTC()
	// jti keeps tokens minted in the same second distinct, so rotation
	// actually supersedes the previous one.
	claims := jwt.MapClaims{
		"sub": userID,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(time.Duration(s.cfg.RefreshExpiryHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.RefreshSecret))
}

func (s *jwtService) ValidateToken(tokenString string) (*TokenClaims, error) {
	claims, err := s.parse(tokenString, s.cfg.Secret)
	if err != nil {
		return nil, err
	}

	userID, err := subjectID(claims)
	if err != nil {
		return nil, err
	}

	username, _ := claims["username"].(string)
	if username == "" {
		return nil, fmt.Errorf("%w: missing username claim", ErrInvalidToken)
	}

	var roles []string
	if raw, ok := claims["roles"].([]interface{}); ok {
		for _, r := range raw {
			if role, ok := r.(string); ok {
				roles = append(roles, role)
			}
		}
	}

	return &TokenClaims{
		UserID:   userID,
		Username: username,
		Roles:    roles,
	}, nil
}

func (s *jwtService) ValidateRefreshToken(tokenString string) (int64, error) {
	claims, err := s.parse(tokenString, s.cfg.RefreshSecret)
	if err != nil {
		return 0, err
	}
	return subjectID(claims)
}

func (s *jwtService) parse(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func subjectID(claims jwt.MapClaims) (int64, error) {
	// Numeric claims come back as float64 after JSON decoding.
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, fmt.Errorf("%w: missing subject claim", ErrInvalidToken)
	}
	return int64(sub), nil
}
