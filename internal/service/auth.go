package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/allersafe/backend/internal/kvstore"
	"github.com/allersafe/backend/internal/middleware"
	"github.com/allersafe/backend/internal/models"
	"github.com/allersafe/backend/internal/seed"
	"github.com/allersafe/backend/internal/state"
)

const usersKey = "allersafe:users"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService manages the durable user list and issues JWT session tokens.
type AuthService struct {
	users     *state.Value[[]models.User]
	jwtSecret string
}

// NewAuthService loads the user list, seeding the default admin account when
// no durable record exists.
func NewAuthService(store kvstore.Store, jwtSecret string) *AuthService {
	return &AuthService{
		users:     state.New(store, usersKey, seed.Users),
		jwtSecret: jwtSecret,
	}
}

// Register creates a user account and returns a session token.
func (s *AuthService) Register(name, email, password, phone string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, ok := s.findByEmail(email); ok {
		return "", ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleUser,
		Phone:        phone,
		CreatedAt:    time.Now(),
	}
	s.users.Update(func(cur []models.User) []models.User {
		return append(append([]models.User(nil), cur...), user)
	})

	return s.generateToken(user)
}

// Login verifies credentials and returns a session token.
func (s *AuthService) Login(email, password string) (string, error) {
	user, ok := s.findByEmail(strings.ToLower(strings.TrimSpace(email)))
	if !ok {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateToken(user)
}

// FindUser looks up one user by id.
func (s *AuthService) FindUser(id string) (models.User, bool) {
	for _, u := range s.users.Get() {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *AuthService) findByEmail(email string) (models.User, bool) {
	for _, u := range s.users.Get() {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *AuthService) generateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a session token.
func (s *AuthService) ValidateToken(tokenString string) (*middleware.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	role, _ := claims["role"].(string)

	return &middleware.TokenClaims{UserID: userID, Role: role}, nil
}
