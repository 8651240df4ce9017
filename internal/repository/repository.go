package repository

import (
	"context"
	"errors"
	"time"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
)

var (
	// ErrMalformedRow is returned when a joined row read from the database
	// does not satisfy its declared schema.
	ErrMalformedRow = errors.New("repository: malformed row")
	// ErrInvitationAlreadyUsed is returned when the conditional mark-used update matches no row.
	ErrInvitationAlreadyUsed = errors.New("repository: invitation already used")
)

// ListOptions controls tenant-scoped listings.
type ListOptions struct {
	// Filters are column equality conditions. Keys must be column names
	// chosen by the caller, never raw user input.
	Filters         map[string]interface{}
	Order           string
	IncludeInactive bool
	Preload         []string
	Offset          int
	Limit           int
}

// TenantRepository is the data access contract shared by every church-owned table.
type TenantRepository[T any] interface {
	// Create inserts row for the church
	Create(ctx context.Context, churchID uint64, row *T) error

	// FindByID finds a row of the church by ID with optional preloading
	FindByID(ctx context.Context, churchID, id uint64, preload ...string) (*T, error)

	// List retrieves rows of the church with filtering and pagination
	List(ctx context.Context, churchID uint64, opts ListOptions) ([]T, int64, error)

	// Update writes every column of row except its identity, its tenant
	// and the columns listed in omit
	Update(ctx context.Context, churchID uint64, row *T, omit ...string) error

	// Delete removes a row permanently
	Delete(ctx context.Context, churchID, id uint64) error

	// Deactivate clears the is_active flag of a row
	Deactivate(ctx context.Context, churchID, id uint64) error

	// Count counts rows of the church matching filters
	Count(ctx context.Context, churchID uint64, filters map[string]interface{}) (int64, error)
}

// ChurchRepository defines the interface for tenant root access
type ChurchRepository interface {
	// FindByID finds a church by ID
	FindByID(ctx context.Context, id uint64) (*models.Church, error)

	// SlugExists reports whether a church already uses slug
	SlugExists(ctx context.Context, slug string) (bool, error)

	// Update updates a church
	Update(ctx context.Context, church *models.Church) error

	// CountActiveMembers counts active members of the church
	CountActiveMembers(ctx context.Context, churchID uint64) (int64, error)
}

// ProfileRepository defines the interface for login identities
type ProfileRepository interface {
	// CreateWithChurch provisions a church, its admin profile and the admin
	// role within a single transaction.
	CreateWithChurch(ctx context.Context, church *models.Church, profile *models.Profile, role *models.UserRole) error

	// FindByID finds a profile by ID
	FindByID(ctx context.Context, id uint64) (*models.Profile, error)

	// FindByEmail finds a profile by email
	FindByEmail(ctx context.Context, email string) (*models.Profile, error)

	// FindRole finds the role of a profile within a church
	FindRole(ctx context.Context, profileID, churchID uint64) (*models.UserRole, error)

	// ListByChurch lists the profiles of a church with their roles
	ListByChurch(ctx context.Context, churchID uint64) ([]ProfileWithRole, error)

	// UpdateRole changes the role of a profile within a church
	UpdateRole(ctx context.Context, profileID, churchID uint64, role models.Role) error

	// LinkMember links a profile to a member record
	LinkMember(ctx context.Context, profileID, churchID uint64, memberID *uint64) error
}

// InvitationRepository defines the interface for invitation tokens
type InvitationRepository interface {
	// Create stores a new invitation
	Create(ctx context.Context, inv *models.Invitation) error

	// FindByToken finds an invitation by its token, across churches
	FindByToken(ctx context.Context, token string) (*models.Invitation, error)

	// FindByID finds an invitation of a church
	FindByID(ctx context.Context, churchID, id uint64) (*models.Invitation, error)

	// ListByChurch lists invitations of a church, newest first
	ListByChurch(ctx context.Context, churchID uint64) ([]models.Invitation, error)

	// Delete removes an invitation
	Delete(ctx context.Context, churchID, id uint64) error

	// Redeem creates the invited profile and its role and marks the
	// invitation used, all or nothing.
	Redeem(ctx context.Context, inv *models.Invitation, profile *models.Profile, usedAt time.Time) error
}

// CellRepository defines cell membership and report access
type CellRepository interface {
	// AddMember adds a member to a cell; adding twice is a no-op
	AddMember(ctx context.Context, member *models.CellMember) error

	// RemoveMember removes a member from a cell
	RemoveMember(ctx context.Context, churchID, cellID, memberID uint64) error

	// ListMembers lists the members of a cell
	ListMembers(ctx context.Context, churchID, cellID uint64) ([]models.CellMember, error)

	// MemberIDs returns the member IDs of a cell
	MemberIDs(ctx context.Context, churchID, cellID uint64) ([]uint64, error)

	// CellIDsForMember returns the cells a member belongs to
	CellIDsForMember(ctx context.Context, churchID, memberID uint64) ([]uint64, error)

	// CreateReport stores a report together with its roster
	CreateReport(ctx context.Context, report *models.CellReport) error

	// ListReports lists reports of one cell, or of all cells when cellID is 0,
	// newest first, optionally restricted to [from, to)
	ListReports(ctx context.Context, churchID, cellID uint64, from, to *time.Time) ([]models.CellReport, error)

	// DeleteReport removes a report together with its roster
	DeleteReport(ctx context.Context, churchID, id uint64) error

	// Summaries lists every cell with its leader name for overview screens
	Summaries(ctx context.Context, churchID uint64) ([]CellSummaryRow, error)
}

// MinistryRepository defines schedule volunteer access
type MinistryRepository interface {
	// AddScheduleVolunteer assigns a member to a schedule
	AddScheduleVolunteer(ctx context.Context, v *models.ScheduleVolunteer) error

	// SetVolunteerConfirmed updates the confirmed flag of an assignment
	SetVolunteerConfirmed(ctx context.Context, churchID, scheduleID, volunteerID uint64, confirmed bool) error

	// RemoveScheduleVolunteer removes an assignment
	RemoveScheduleVolunteer(ctx context.Context, churchID, scheduleID, volunteerID uint64) error

	// ListScheduleVolunteers lists assignments of a schedule with member names
	ListScheduleVolunteers(ctx context.Context, churchID, scheduleID uint64) ([]ScheduleVolunteerRow, error)

	// UpcomingSchedulesForMember lists schedules from a date on where the member volunteers
	UpcomingSchedulesForMember(ctx context.Context, churchID, memberID uint64, from time.Time) ([]MemberScheduleRow, error)
}

// FinanceRepository defines ledger mutations that touch several tables
type FinanceRepository interface {
	// CreateTransaction inserts a transaction and applies it to its account and campaign
	CreateTransaction(ctx context.Context, tx *models.FinancialTransaction) error

	// DeleteTransaction removes a transaction and reverts its effect
	DeleteTransaction(ctx context.Context, churchID, id uint64) error

	// TransactionsBetween lists transactions in [from, to), newest first
	TransactionsBetween(ctx context.Context, churchID uint64, from, to time.Time) ([]models.FinancialTransaction, error)
}

// ReferenceRepository checks that referenced rows belong to the church
type ReferenceRepository interface {
	// Exists reports whether table has a row id owned by the church
	Exists(ctx context.Context, churchID uint64, table string, id uint64) (bool, error)
}
