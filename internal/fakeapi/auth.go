package fakeapi

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/tablekit/restaurant-console/internal/core/domain"
)

const (
	tokenAccess  = "access"
	tokenRefresh = "refresh"
)

var errInvalidToken = errors.New("invalid or expired token")

// authService issues and checks the HS256 token pair.
type authService struct {
	store      *memStore
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func (s *authService) register(email, password, name string, role domain.Role) (*domain.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var namePtr *string
	if name != "" {
		namePtr = &name
	}
	user, err := s.store.createUser(email, string(hash), namePtr, role)
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

func (s *authService) login(email, password string) (*domain.AuthResponse, error) {
	acc, err := s.store.accountByEmail(email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(acc.passwordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return s.issue(&acc.user)
}

func (s *authService) refresh(refreshToken string) (*domain.AuthResponse, error) {
	claims, err := s.parse(refreshToken, tokenRefresh)
	if err != nil {
		return nil, err
	}
	user, err := s.store.userByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

func (s *authService) issue(user *domain.User) (*domain.AuthResponse, error) {
	access, err := s.sign(user, tokenAccess, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := s.sign(user, tokenRefresh, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}
	return &domain.AuthResponse{User: user, AccessToken: access, RefreshToken: refresh}, nil
}

type tokenClaims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
	Type   string `json:"typ"`
	jwt.RegisteredClaims
}

func (s *authService) sign(user *domain.User, typ string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Type:   typ,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			// Unique per token so a refresh always rotates both values.
			ID: fmt.Sprintf("%d-%d", user.ID, now.UnixNano()),
		},
	}
	if typ == tokenAccess {
		claims.Role = string(user.Role)
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *authService) parse(raw, typ string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid || claims.Type != typ {
		return nil, errInvalidToken
	}
	return claims, nil
}
