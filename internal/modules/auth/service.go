package auth

import (
	"context"
	"strings"

	"github.com/1Deeeeyl/multiple-activities/internal/domain"
	validatorpkg "github.com/1Deeeeyl/multiple-activities/internal/pkg/validator"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type jwtService interface {
	GenerateToken(userID string) (string, error)
}

// Service contains the credential surface the rest of the app depends on:
// who the principal is, and the profile row reviews join against.
type Service struct {
	users    UserRepositoryInterface
	profiles ProfileRepositoryInterface
	jwt      jwtService
}

func NewService(users UserRepositoryInterface, profiles ProfileRepositoryInterface, jwt jwtService) *Service {
	return &Service{users: users, profiles: profiles, jwt: jwt}
}

func (s *Service) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	// Handlers bind-validate too; this guards direct service callers.
	if fields := validatorpkg.Validate(req); fields != nil {
		return nil, ErrInvalidRequest
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)
	if email == "" || username == "" {
		return nil, ErrInvalidRequest
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		ProfileID: user.ID,
		Username:  username,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Token: token,
		User:  UserPublic{ID: user.ID, Email: user.Email, Username: profile.Username},
	}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	username := ""
	if profile, err := s.profiles.GetByID(ctx, user.ID); err == nil {
		username = profile.Username
	}

	return &AuthResponse{
		Token: token,
		User:  UserPublic{ID: user.ID, Email: user.Email, Username: username},
	}, nil
}

func (s *Service) Me(ctx context.Context, userID string) (*UserPublic, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrNotFound
	}

	username := ""
	if profile, err := s.profiles.GetByID(ctx, user.ID); err == nil {
		username = profile.Username
	}

	return &UserPublic{ID: user.ID, Email: user.Email, Username: username}, nil
}
