package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vezoprint/vezo-backend/internal/config"
	"github.com/vezoprint/vezo-backend/internal/model"
	"github.com/vezoprint/vezo-backend/internal/repository"
)

// Common auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRegistrationClosed = errors.New("registration closed")
)

// Claims extends JWT standard claims with the admin identity fields the
// authorization middleware needs.
type Claims struct {
	jwt.RegisteredClaims
	AdminID  int        `json:"admin_id"`
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
}

// AuthService handles registration, login, and bearer token verification.
type AuthService struct {
	cfg    *config.Config
	admins repository.AdminRepository

	// registrationClosed latches once any account is observed. The open →
	// closed transition happens exactly once; a closed state never reopens.
	registrationClosed atomic.Bool
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, admins repository.AdminRepository) *AuthService {
	return &AuthService{cfg: cfg, admins: admins}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Register creates the bootstrap admin account. Open registration exists
// only while zero accounts exist; the first successful registration (or
// any out-of-band account creation) closes it permanently.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.Admin, error) {
	if s.registrationClosed.Load() {
		return nil, ErrRegistrationClosed
	}

	count, err := s.admins.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count accounts: %w", err)
	}
	if count > 0 {
		s.registrationClosed.Store(true)
		return nil, ErrRegistrationClosed
	}

	hash, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &model.Admin{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		// A concurrent registration winning the race is still a duplicate.
		return nil, err
	}

	s.registrationClosed.Store(true)
	return admin, nil
}

// Login verifies credentials and returns a signed token plus the account.
// Unknown username and wrong password produce the identical error so the
// endpoint cannot be used for account enumeration.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *model.Admin, error) {
	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("lookup admin: %w", err)
	}

	if err := s.CheckPassword(admin.PasswordHash, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := s.admins.TouchLastLogin(ctx, admin.ID); err != nil {
		return "", nil, fmt.Errorf("stamp last login: %w", err)
	}
	now := time.Now()
	admin.LastLogin = &now

	token, err := s.GenerateToken(admin)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, admin, nil
}

// GenerateToken creates an HS256 JWT encoding the admin identity and role.
func (s *AuthService) GenerateToken(admin *model.Admin) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.Itoa(admin.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		AdminID:  admin.ID,
		Username: admin.Username,
		Role:     admin.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateToken parses and validates a JWT, returning the claims.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// GetByID fetches an admin account for the profile endpoint.
func (s *AuthService) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	return s.admins.GetByID(ctx, id)
}
