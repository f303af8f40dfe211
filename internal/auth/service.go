package auth

import (
	"errors"
	"fmt"
	"time"

	"gamecenter-backend/internal/config"
	"gamecenter-backend/internal/database/models"
	apperrors "gamecenter-backend/internal/errors"
	"gamecenter-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenIssuer = "gamecenter-backend"

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID string                `json:"user_id"`
	Email  string                `json:"email"`
	Name   string                `json:"name"`
	Role   models.GameMasterRole `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest represents the request to log in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken string                `json:"access_token"`
	TokenType   string                `json:"token_type"`
	ExpiresIn   int64                 `json:"expires_in"`
	UserID      uuid.UUID             `json:"user_id"`
	Name        string                `json:"name"`
	Role        models.GameMasterRole `json:"role"`
}

// AuthService authenticates game master accounts and issues JWTs
type AuthService struct {
	secret []byte
	expiry time.Duration
	gmRepo repository.GameMasterRepositoryInterface
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg *config.Config, gmRepo repository.GameMasterRepositoryInterface) *AuthService {
	return &AuthService{
		secret: []byte(cfg.JWTSecret),
		expiry: time.Duration(cfg.JWTExpiryHours) * time.Hour,
		gmRepo: gmRepo,
	}
}

// Login verifies credentials and issues a signed token. Inactive accounts
// and unknown emails fail identically so the response never reveals which
// part was wrong.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	gm, err := s.gmRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if !gm.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(gm.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(gm)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.expiry.Seconds()),
		UserID:      gm.ID,
		Name:        gm.FullName(),
		Role:        gm.Role,
	}, nil
}

// GenerateJWT creates a signed token for a game master account
func (s *AuthService) GenerateJWT(gm *models.GameMaster) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: gm.ID.String(),
		Email:  gm.Email,
		Name:   gm.FullName(),
		Role:   gm.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   gm.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT parses and validates a token, returning its claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
