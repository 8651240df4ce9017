package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/repository"
	"gorm.io/gorm"
)

var ErrCannotChangeOwnRole = errors.New("cannot change your own role")

// ProfileService manages the users of a church.
type ProfileService struct {
	profiles repository.ProfileRepository
	members  repository.TenantRepository[models.Member]
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profiles repository.ProfileRepository, members repository.TenantRepository[models.Member]) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		members:  members,
	}
}

// List returns every profile of the church with its role.
func (s *ProfileService) List(ctx context.Context, churchID uint64) ([]repository.ProfileWithRole, error) {
	profiles, err := s.profiles.ListByChurch(ctx, churchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// ChangeRole assigns a new role to another profile of the church.
func (s *ProfileService) ChangeRole(ctx context.Context, session *models.SessionContext, profileID uint64, role models.Role) error {
	if !role.Valid() {
		return ErrInvalidRole
	}
	if session.Profile.ID == profileID {
		return ErrCannotChangeOwnRole
	}

	if err := s.profiles.UpdateRole(ctx, profileID, session.ChurchID(), role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("failed to update role: %w", err)
	}
	return nil
}

// LinkMember links a profile to a member record of the same church, or
// unlinks it when memberID is nil.
func (s *ProfileService) LinkMember(ctx context.Context, churchID, profileID uint64, memberID *uint64) error {
	if memberID != nil {
		if _, err := s.members.FindByID(ctx, churchID, *memberID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMemberNotFound
			}
			return fmt.Errorf("failed to find member: %w", err)
		}
	}

	if err := s.profiles.LinkMember(ctx, profileID, churchID, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("failed to link member: %w", err)
	}
	return nil
}
