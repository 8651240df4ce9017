package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrMemberLimitReached = errors.New("church member limit reached")
	ErrInvalidReference   = errors.New("referenced record does not exist in this church")
	ErrEventFull          = errors.New("event is at capacity")
)

// DeletePolicy decides what deleting a row of an entity means.
type DeletePolicy int

const (
	// HardDelete removes the row.
	HardDelete DeletePolicy = iota
	// SoftDelete clears is_active and keeps the row.
	SoftDelete
)

func (p DeletePolicy) String() string {
	if p == SoftDelete {
		return "soft"
	}
	return "hard"
}

// EntityOption customizes an EntityService.
type EntityOption[T any] func(*EntityService[T])

// WithBeforeCreate runs fn before every insert. An error aborts the insert.
func WithBeforeCreate[T any](fn func(ctx context.Context, churchID uint64, row *T) error) EntityOption[T] {
	return func(s *EntityService[T]) {
		s.beforeCreate = append(s.beforeCreate, fn)
	}
}

// WithReadOnlyColumns keeps columns out of updates. They are still
// written on insert.
func WithReadOnlyColumns[T any](columns ...string) EntityOption[T] {
	return func(s *EntityService[T]) {
		s.readOnly = append(s.readOnly, columns...)
	}
}

// Reference is a foreign key of a row that must point inside the
// row's church. A nil ID is not checked.
type Reference struct {
	Field string
	Table string
	ID    *uint64
}

// Ref builds a Reference for an optional foreign key.
func Ref(field, table string, id *uint64) Reference {
	return Reference{Field: field, Table: table, ID: id}
}

// RefID builds a Reference for a required foreign key.
func RefID(field, table string, id uint64) Reference {
	return Reference{Field: field, Table: table, ID: &id}
}

// WithBeforeUpdate runs fn after the patch is applied and before the row is
// stored. before is the row as it was loaded.
func WithBeforeUpdate[T any](fn func(ctx context.Context, churchID uint64, before, after *T) error) EntityOption[T] {
	return func(s *EntityService[T]) {
		s.beforeUpdate = append(s.beforeUpdate, fn)
	}
}

// WithReferences checks the foreign keys returned by fn on every create
// and update.
func WithReferences[T any](refs repository.ReferenceRepository, fn func(row *T) []Reference) EntityOption[T] {
	return func(s *EntityService[T]) {
		s.refs = refs
		s.references = fn
	}
}

// EntityService provides tenant-scoped CRUD for one entity.
type EntityService[T any] struct {
	name         string
	repo         repository.TenantRepository[T]
	policy       DeletePolicy
	beforeCreate []func(ctx context.Context, churchID uint64, row *T) error
	beforeUpdate []func(ctx context.Context, churchID uint64, before, after *T) error
	readOnly     []string
	refs         repository.ReferenceRepository
	references   func(row *T) []Reference
}

// NewEntityService creates a new EntityService.
// SoftDelete requires T to embed models.Activatable.
func NewEntityService[T any](name string, repo repository.TenantRepository[T], policy DeletePolicy, opts ...EntityOption[T]) *EntityService[T] {
	if _, ok := any(new(T)).(models.SoftDeletable); policy == SoftDelete && !ok {
		panic(fmt.Sprintf("services: %s cannot be soft deleted without an is_active column", name))
	}

	s := &EntityService[T]{
		name:   name,
		repo:   repo,
		policy: policy,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *EntityService[T]) Name() string { return s.name }

func (s *EntityService[T]) Policy() DeletePolicy { return s.policy }

// List returns the rows of the church matching opts and the total count.
func (s *EntityService[T]) List(ctx context.Context, churchID uint64, opts repository.ListOptions) ([]T, int64, error) {
	rows, total, err := s.repo.List(ctx, churchID, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %s: %w", s.name, err)
	}
	return rows, total, nil
}

// Get returns one row of the church.
func (s *EntityService[T]) Get(ctx context.Context, churchID, id uint64, preload ...string) (*T, error) {
	row, err := s.repo.FindByID(ctx, churchID, id, preload...)
	if err != nil {
		return nil, s.translate(err)
	}
	return row, nil
}

// Create inserts row for the church.
func (s *EntityService[T]) Create(ctx context.Context, churchID uint64, row *T) error {
	for _, fn := range s.beforeCreate {
		if err := fn(ctx, churchID, row); err != nil {
			return err
		}
	}
	if err := s.checkReferences(ctx, churchID, row); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, churchID, row); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.name, err)
	}
	return nil
}

// Update loads the row, applies patch to it and stores the result.
// Rows are written whole, so concurrent edits are last-write-wins.
func (s *EntityService[T]) Update(ctx context.Context, churchID, id uint64, patch func(row *T) error) (*T, error) {
	row, err := s.repo.FindByID(ctx, churchID, id)
	if err != nil {
		return nil, s.translate(err)
	}

	before := *row
	if err := patch(row); err != nil {
		return nil, err
	}
	for _, fn := range s.beforeUpdate {
		if err := fn(ctx, churchID, &before, row); err != nil {
			return nil, err
		}
	}
	if err := s.checkReferences(ctx, churchID, row); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, churchID, row, s.readOnly...); err != nil {
		return nil, s.translate(err)
	}
	return s.Get(ctx, churchID, id)
}

// Delete applies the delete policy of the entity.
func (s *EntityService[T]) Delete(ctx context.Context, churchID, id uint64) error {
	var err error
	if s.policy == SoftDelete {
		err = s.repo.Deactivate(ctx, churchID, id)
	} else {
		err = s.repo.Delete(ctx, churchID, id)
	}
	if err != nil {
		return s.translate(err)
	}

	slog.Debug("entity deleted", "entity", s.name, "id", id, "church_id", churchID, "policy", s.policy.String())
	return nil
}

func (s *EntityService[T]) checkReferences(ctx context.Context, churchID uint64, row *T) error {
	if s.references == nil {
		return nil
	}
	for _, ref := range s.references(row) {
		if ref.ID == nil {
			continue
		}
		ok, err := s.refs.Exists(ctx, churchID, ref.Table, *ref.ID)
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", ref.Field, err)
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrInvalidReference, ref.Field)
		}
	}
	return nil
}

func (s *EntityService[T]) translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", s.name, err)
}

// MemberLimit rejects new members once the church plan's cap is reached.
// A cap of zero means unlimited.
func MemberLimit(churches repository.ChurchRepository) func(ctx context.Context, churchID uint64, m *models.Member) error {
	return func(ctx context.Context, churchID uint64, m *models.Member) error {
		church, err := churches.FindByID(ctx, churchID)
		if err != nil {
			return fmt.Errorf("failed to load church: %w", err)
		}
		if church.MemberLimit <= 0 {
			return nil
		}

		count, err := churches.CountActiveMembers(ctx, churchID)
		if err != nil {
			return fmt.Errorf("failed to count members: %w", err)
		}
		if count >= int64(church.MemberLimit) {
			return ErrMemberLimitReached
		}
		return nil
	}
}

// MemberReactivation applies the member limit when an update turns an
// inactive member active again.
func MemberReactivation(churches repository.ChurchRepository) func(ctx context.Context, churchID uint64, before, after *models.Member) error {
	limit := MemberLimit(churches)
	return func(ctx context.Context, churchID uint64, before, after *models.Member) error {
		if before.IsActive || !after.IsActive {
			return nil
		}
		return limit(ctx, churchID, after)
	}
}

// OpeningBalance starts a new account at its initial balance.
func OpeningBalance(_ context.Context, _ uint64, account *models.FinancialAccount) error {
	account.CurrentBalance = account.InitialBalance
	return nil
}

// EmptyCampaign starts a new campaign with nothing raised.
func EmptyCampaign(_ context.Context, _ uint64, campaign *models.FinancialCampaign) error {
	campaign.CurrentAmount = 0
	return nil
}

// EventCapacity rejects confirmed registrations once an event with a
// capacity is full. Waitlist and cancelled registrations always pass.
func EventCapacity(events repository.TenantRepository[models.Event], registrations repository.TenantRepository[models.EventRegistration]) func(ctx context.Context, churchID uint64, r *models.EventRegistration) error {
	return func(ctx context.Context, churchID uint64, r *models.EventRegistration) error {
		if r.Status != "" && r.Status != models.RegistrationConfirmed {
			return nil
		}
		event, err := events.FindByID(ctx, churchID, r.EventID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: event_id", ErrInvalidReference)
			}
			return fmt.Errorf("failed to load event: %w", err)
		}
		if event.Capacity == nil {
			return nil
		}

		confirmed, err := registrations.Count(ctx, churchID, map[string]any{
			"event_id": r.EventID,
			"status":   models.RegistrationConfirmed,
		})
		if err != nil {
			return fmt.Errorf("failed to count registrations: %w", err)
		}
		if confirmed >= int64(*event.Capacity) {
			return ErrEventFull
		}
		return nil
	}
}

// EventCapacityChange checks capacity when an update confirms a registration
// that is not yet counted for its event: a waitlist or cancelled row becoming
// confirmed, or a confirmed row moving to another event. The stored row is
// never part of the count it is checked against.
func EventCapacityChange(events repository.TenantRepository[models.Event], registrations repository.TenantRepository[models.EventRegistration]) func(ctx context.Context, churchID uint64, before, after *models.EventRegistration) error {
	check := EventCapacity(events, registrations)
	return func(ctx context.Context, churchID uint64, before, after *models.EventRegistration) error {
		if before.Status == models.RegistrationConfirmed && before.EventID == after.EventID {
			return nil
		}
		return check(ctx, churchID, after)
	}
}
