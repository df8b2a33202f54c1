package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/fabtrack/fabtrack-backend/src/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is deliberately the same for an unknown email
// and a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	store     Store
	secretKey string
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(store Store, secretKey string) *AuthService {
	return &AuthService{store: store, secretKey: secretKey}
}

// SignUpUser creates a new user with a bcrypt-hashed password and
// returns the restricted view of it.
func (s *AuthService) SignUpUser(name, email, password string, role models.UserRole) (*models.PublicUser, error) {
	existing, err := s.store.FindUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s already taken", email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.UserModel{
		Name:     name,
		Email:    email,
		Role:     role,
		Password: string(hashedPassword),
	}
	if err := s.store.CreateUser(user); err != nil {
		return nil, err
	}

	public := user.Public()
	return &public, nil
}

// AuthenticateUser checks the credentials and returns a signed JWT
// plus the restricted user view. This is the only code path that
// loads the credential hash.
func (s *AuthService) AuthenticateUser(email, password string) (string, *models.PublicUser, error) {
	user, err := s.store.FindUserByEmailWithPassword(email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"id":    user.Id,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(12 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return "", nil, err
	}

	public := user.Public()
	return tokenString, &public, nil
}
