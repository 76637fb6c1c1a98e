package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"servicedesk-backend/internal/database/models"
	apperrors "servicedesk-backend/internal/errors"
	"servicedesk-backend/internal/logger"
	"servicedesk-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service issues and validates JWTs and runs the login flow
type Service struct {
	userRepo  repository.UserRepositoryInterface
	jwtSecret []byte
	jwtExpiry time.Duration
}

// NewService creates a new auth service
func NewService(userRepo repository.UserRepositoryInterface, jwtSecret string, expiryMinutes int) *Service {
	return &Service{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		jwtExpiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

// Claims are the JWT claims carried by an access token
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the resolved identity
type LoginResponse struct {
	Token       string              `json:"token"`
	UserID      uuid.UUID           `json:"user_id"`
	Email       string              `json:"email"`
	DisplayName string              `json:"display_name"`
	Role        models.UserRoleName `json:"role"`
}

// Login authenticates by email and password. Accounts created before
// password auth existed have a null password hash; the first successful
// login stores the supplied password as their hash. An unknown email signs
// the caller up as a regular user.
func (s *Service) Login(req *LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.signUp(email, req.Password)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.Password == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		if err := s.userRepo.SetPassword(user.ID, string(hash)); err != nil {
			return nil, fmt.Errorf("failed to store password: %w", err)
		}
		logger.New().WithField("user_id", user.ID).Info("password set on first login")
	} else if bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(req.Password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	role, err := s.userRepo.GetRole(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	token, err := s.issueToken(user, role)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:       token,
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        role,
	}, nil
}

func (s *Service) signUp(email, password string) (*LoginResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	hashStr := string(hash)
	user := &models.User{
		Email:       email,
		DisplayName: strings.SplitN(email, "@", 2)[0],
		Password:    &hashStr,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if err := s.userRepo.UpsertRole(user.ID, models.RoleUser); err != nil {
		return nil, fmt.Errorf("failed to assign role: %w", err)
	}

	logger.New().WithField("user_id", user.ID).Info("user signed up at login")

	token, err := s.issueToken(user, models.RoleUser)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{
		Token:       token,
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        models.RoleUser,
	}, nil
}

func (s *Service) issueToken(user *models.User, role models.UserRoleName) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: user.Email,
		Role:  string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses a bearer token and returns the principal it names.
// The role is taken from the token; ResolvePrincipal re-reads it from the
// database when freshness matters.
func (s *Service) ValidateToken(tokenString string) (*Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	return &Principal{
		UserID: userID,
		Email:  claims.Email,
		Role:   models.UserRoleName(claims.Role),
	}, nil
}

// ResolvePrincipal validates the token and refreshes identity and role
// from the database, so a role change takes effect before token expiry
func (s *Service) ResolvePrincipal(tokenString string) (*Principal, error) {
	principal, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(principal.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to resolve principal: %w", err)
	}

	role, err := s.userRepo.GetRole(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve role: %w", err)
	}

	return &Principal{
		UserID: user.ID,
		Email:  user.Email,
		Role:   role,
	}, nil
}
