package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/constants"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/repository"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrPasswordTooLong      = errors.New("password too long")
	ErrNameRequired         = errors.New("name is required")
	ErrEmailRequired        = errors.New("email is required")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrNoChurchAccess       = errors.New("profile has no role in its church")
	ErrChurchInactive       = errors.New("church is inactive")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateChurch = errors.New("failed to create church")
	ErrFailedToCreateUser   = errors.New("failed to create profile")
	ErrFailedToAssignRole   = errors.New("failed to assign role")
)

const maxSlugAttempts = 5

// AuthService handles authentication and tenant provisioning.
type AuthService struct {
	profileRepo repository.ProfileRepository
	churchRepo  repository.ChurchRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(profileRepo repository.ProfileRepository, churchRepo repository.ChurchRepository) *AuthService {
	return &AuthService{
		profileRepo: profileRepo,
		churchRepo:  churchRepo,
	}
}

// SignupInput represents the information needed to open a new church.
type SignupInput struct {
	ChurchName string
	FullName   string
	Email      string
	Password   string
}

// Signup creates a church, its first profile and the admin role in one transaction.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*models.SessionContext, error) {
	churchName := strings.TrimSpace(input.ChurchName)
	fullName := strings.TrimSpace(input.FullName)
	if churchName == "" || fullName == "" {
		return nil, ErrNameRequired
	}

	email, err := s.ensureEmailAvailable(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, churchName)
	if err != nil {
		return nil, err
	}

	church := &models.Church{
		Name:     churchName,
		Slug:     slug,
		Plan:     models.PlanFree,
		Email:    email,
		IsActive: true,
	}
	profile := &models.Profile{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
	}
	role := &models.UserRole{Role: models.RoleAdmin}

	if err := s.profileRepo.CreateWithChurch(ctx, church, profile, role); err != nil {
		switch {
		case errors.Is(err, repository.ErrCreateChurch):
			return nil, ErrFailedToCreateChurch
		case errors.Is(err, repository.ErrCreateProfile):
			return nil, ErrFailedToCreateUser
		case errors.Is(err, repository.ErrCreateRole):
			return nil, ErrFailedToAssignRole
		default:
			return nil, fmt.Errorf("failed to complete signup: %w", err)
		}
	}

	return &models.SessionContext{Profile: *profile, Church: *church, Role: role.Role}, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the authenticated profile.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByEmail(ctx, NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return profile, nil
}

// SessionContext resolves the profile, its church and its role.
func (s *AuthService) SessionContext(ctx context.Context, profileID uint64) (*models.SessionContext, error) {
	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	church, err := s.churchRepo.FindByID(ctx, profile.ChurchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoChurchAccess
		}
		return nil, fmt.Errorf("failed to find church: %w", err)
	}
	if !church.IsActive {
		return nil, ErrChurchInactive
	}

	role, err := s.profileRepo.FindRole(ctx, profile.ID, church.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoChurchAccess
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}

	return &models.SessionContext{Profile: *profile, Church: *church, Role: role.Role}, nil
}

// HashPassword checks the password length and hashes it with bcrypt.
func HashPassword(password string) (string, error) {
	if len(password) < constants.MinPasswordLength {
		return "", ErrPasswordTooShort
	}
	if len(password) > constants.MaxPasswordLength {
		return "", ErrPasswordTooLong
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrFailedToHashPassword
	}
	return string(hashed), nil
}

// NormalizeEmail lowercases and trims an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) ensureEmailAvailable(ctx context.Context, email string) (string, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return "", ErrEmailRequired
	}
	if _, err := s.profileRepo.FindByEmail(ctx, email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to check email: %w", err)
	}
	return email, nil
}

func (s *AuthService) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := utils.Slugify(name)
	if base == "" {
		base = "igreja"
	}

	slug := base
	for i := 0; i < maxSlugAttempts; i++ {
		exists, err := s.churchRepo.SlugExists(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !exists {
			return slug, nil
		}

		suffix, err := utils.RandomSuffix(4)
		if err != nil {
			return "", ErrFailedToCreateChurch
		}
		slug = base + "-" + suffix
	}
	return "", ErrFailedToCreateChurch
}
