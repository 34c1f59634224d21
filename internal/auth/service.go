package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"tourly/internal/shared/config"
	"tourly/pkg/logger"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

type Service interface {
	Login(ctx context.Context, req *LoginRequest, clientIP string) (*LoginResponse, error)
	ValidateToken(tokenString string) (*JWTClaims, error)
}

type service struct {
	username     string
	passwordHash []byte
	secret       []byte
	expiresIn    time.Duration
	log          *logger.Logger
}

// NewService builds the single-admin login. A plain ADMIN_PASSWORD is hashed
// once at startup so every comparison goes through bcrypt.
func NewService(cfg *config.Config) (Service, error) {
	hash := []byte(cfg.Admin.PasswordHash)
	if len(hash) == 0 {
		if cfg.Admin.Password == "" {
			return nil, errors.New("admin password is not configured")
		}
		generated, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		hash = generated
	}

	expiresIn := cfg.JWT.JWTExpiresIn
	if expiresIn <= 0 {
		expiresIn = 24 * time.Hour
	}

	return &service{
		username:     cfg.Admin.Username,
		passwordHash: hash,
		secret:       []byte(cfg.JWT.Secret),
		expiresIn:    expiresIn,
		log:          logger.GetDefault(),
	}, nil
}

func (s *service) Login(ctx context.Context, req *LoginRequest, clientIP string) (*LoginResponse, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password))
	if !usernameOK || passwordErr != nil {
		s.log.LogAuthFailure(ctx, "credential mismatch", clientIP)
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(s.username)
	if err != nil {
		return nil, err
	}

	s.log.LogAuthSuccess(ctx, s.username, "password")
	return &LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.expiresIn.Seconds()),
		User:      Admin{Username: s.username, Role: RoleAdmin},
	}, nil
}

func (s *service) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid && claims.Type == TokenTypeAccess {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

func (s *service) generateAccessToken(username string) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		Username: username,
		Role:     RoleAdmin,
		Type:     TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiresIn)),
			Issuer:    tokenIssuer,
			Subject:   username,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
