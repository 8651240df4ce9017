package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/constants"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/repository"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrInvalidInvitation  = errors.New("invalid invitation")
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrInvitationUsed     = errors.New("invitation already used")
	ErrInvalidRole        = errors.New("invalid role")
)

// InvitationService issues and redeems signup invitations.
type InvitationService struct {
	repo     repository.InvitationRepository
	profiles repository.ProfileRepository
	ttl      time.Duration
	baseURL  string
	now      func() time.Time
}

// NewInvitationService creates a new InvitationService. A non-positive ttl
// falls back to the default validity.
func NewInvitationService(repo repository.InvitationRepository, profiles repository.ProfileRepository, ttl time.Duration, baseURL string) *InvitationService {
	if ttl <= 0 {
		ttl = constants.DefaultInvitationTTL
	}
	return &InvitationService{
		repo:     repo,
		profiles: profiles,
		ttl:      ttl,
		baseURL:  strings.TrimRight(baseURL, "/"),
		now:      time.Now,
	}
}

// WithClock replaces the time source.
func (s *InvitationService) WithClock(now func() time.Time) *InvitationService {
	s.now = now
	return s
}

// InvitationView is an invitation with its state evaluated at read time.
type InvitationView struct {
	models.Invitation
	State models.InvitationState `json:"state"`
	Link  string                 `json:"link"`
}

func (s *InvitationService) view(inv models.Invitation) InvitationView {
	return InvitationView{
		Invitation: inv,
		State:      inv.State(s.now()),
		Link:       s.baseURL + "/convite/" + inv.Token,
	}
}

// CreateInvitationInput represents the parameters of a new invitation.
type CreateInvitationInput struct {
	Email     string
	Role      models.Role
	CreatedBy uint64
}

// Create issues a single-use invitation for the church.
func (s *InvitationService) Create(ctx context.Context, churchID uint64, input CreateInvitationInput) (*InvitationView, error) {
	if !input.Role.Valid() {
		return nil, ErrInvalidRole
	}
	email := NormalizeEmail(input.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	token, err := utils.GenerateInvitationToken()
	if err != nil {
		return nil, err
	}

	inv := &models.Invitation{
		TenantModel: models.TenantModel{ChurchID: churchID},
		Email:       email,
		Role:        input.Role,
		Token:       token,
		ExpiresAt:   s.now().Add(s.ttl),
		CreatedBy:   input.CreatedBy,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	view := s.view(*inv)
	return &view, nil
}

// List returns the invitations of the church, newest first.
func (s *InvitationService) List(ctx context.Context, churchID uint64) ([]InvitationView, error) {
	invitations, err := s.repo.ListByChurch(ctx, churchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	views := make([]InvitationView, len(invitations))
	for i, inv := range invitations {
		views[i] = s.view(inv)
	}
	return views, nil
}

// Delete revokes an invitation that has not been used.
func (s *InvitationService) Delete(ctx context.Context, churchID, id uint64) error {
	inv, err := s.repo.FindByID(ctx, churchID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvitationNotFound
		}
		return fmt.Errorf("failed to find invitation: %w", err)
	}
	if inv.UsedAt != nil {
		return ErrInvitationUsed
	}

	if err := s.repo.Delete(ctx, churchID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvitationNotFound
		}
		return fmt.Errorf("failed to delete invitation: %w", err)
	}
	return nil
}

// Lookup returns the invitation behind a token and its current state.
func (s *InvitationService) Lookup(ctx context.Context, token string) (*InvitationView, error) {
	inv, err := s.repo.FindByToken(ctx, strings.TrimSpace(token))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to find invitation: %w", err)
	}

	view := s.view(*inv)
	return &view, nil
}

// RedeemInput holds what the invited person provides.
type RedeemInput struct {
	Token    string
	FullName string
	Password string
}

// Redeem creates the invited profile with the invitation role and marks the
// token used. Used and expired tokens never produce a profile.
func (s *InvitationService) Redeem(ctx context.Context, input RedeemInput) (*models.SessionContext, error) {
	view, err := s.Lookup(ctx, input.Token)
	if err != nil {
		return nil, err
	}
	if view.State != models.InvitationValid {
		return nil, ErrInvalidInvitation
	}

	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return nil, ErrNameRequired
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	if _, err := s.profiles.FindByEmail(ctx, view.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	inv := view.Invitation
	profile := &models.Profile{
		Email:        inv.Email,
		FullName:     fullName,
		PasswordHash: hash,
	}
	if err := s.repo.Redeem(ctx, &inv, profile, s.now()); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvitationAlreadyUsed):
			return nil, ErrInvalidInvitation
		case errors.Is(err, repository.ErrCreateProfile):
			return nil, ErrFailedToCreateUser
		case errors.Is(err, repository.ErrCreateRole):
			return nil, ErrFailedToAssignRole
		default:
			return nil, fmt.Errorf("failed to redeem invitation: %w", err)
		}
	}

	created, err := s.profiles.FindByID(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &models.SessionContext{Profile: *created, Church: created.Church, Role: inv.Role}, nil
}
