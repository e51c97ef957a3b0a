package service

import (
	"fmt"

	"github.com/hostpicks/hostpicks-backend/internal/common"
	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"github.com/hostpicks/hostpicks-backend/internal/repository"
	"github.com/hostpicks/hostpicks-backend/pkg/jwt"
)

// LoginResponse is the login/refresh payload.
type LoginResponse struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// AuthService authenticates admin accounts and issues token pairs.
type AuthService interface {
	Login(username, password string) (*LoginResponse, error)
	Refresh(refreshToken string) (*LoginResponse, error)
	GetUser(id string) (*domain.User, error)
}

type authService struct {
	users      repository.UserRepository
	jwtManager *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(users repository.UserRepository, jwtManager *jwt.Manager) AuthService {
	return &authService{users: users, jwtManager: jwtManager}
}

func (s *authService) Login(username, password string) (*LoginResponse, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, common.ErrInvalidCredentials
	}
	if !user.CheckPassword(password) {
		return nil, common.ErrInvalidCredentials
	}

	return s.tokenPair(user)
}

func (s *authService) Refresh(refreshToken string) (*LoginResponse, error) {
	claims, err := s.jwtManager.VerifyToken(refreshToken)
	if err != nil {
		return nil, common.ErrUnauthorized
	}

	user, err := s.users.FindByID(claims.UserID)
	if err != nil {
		return nil, common.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, common.ErrUnauthorized
	}

	return s.tokenPair(user)
}

func (s *authService) GetUser(id string) (*domain.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, common.ErrUserNotFound
	}
	return user, nil
}

func (s *authService) tokenPair(user *domain.User) (*LoginResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &LoginResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
