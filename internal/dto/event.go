package dto

import (
	"time"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
)

type CreateEventRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description"`
	EventDate   time.Time  `json:"event_date" binding:"required"`
	EndDate     *time.Time `json:"end_date" binding:"omitempty,gtfield=EventDate"`
	Location    string     `json:"location" binding:"max=255"`
	Capacity    *int       `json:"capacity" binding:"omitempty,gt=0"`
}

func (r *CreateEventRequest) Build() (*models.Event, error) {
	return &models.Event{
		Title:       trimmed(r.Title),
		Description: r.Description,
		EventDate:   r.EventDate,
		EndDate:     r.EndDate,
		Location:    trimmed(r.Location),
		Capacity:    r.Capacity,
	}, nil
}

type UpdateEventRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string    `json:"description"`
	EventDate   *time.Time `json:"event_date"`
	EndDate     *time.Time `json:"end_date"`
	Location    *string    `json:"location" binding:"omitempty,max=255"`
	Capacity    *int       `json:"capacity" binding:"omitempty,gte=0"`
}

func (r *UpdateEventRequest) Apply(e *models.Event) error {
	setTrimmed(&e.Title, r.Title)
	set(&e.Description, r.Description)
	set(&e.EventDate, r.EventDate)
	if r.EndDate != nil {
		e.EndDate = r.EndDate
	}
	setTrimmed(&e.Location, r.Location)
	if r.Capacity != nil {
		// Zero removes the limit.
		if *r.Capacity == 0 {
			e.Capacity = nil
		} else {
			e.Capacity = r.Capacity
		}
	}
	return nil
}

type CreateEventRegistrationRequest struct {
	EventID    uint64  `json:"event_id" binding:"required"`
	MemberID   *uint64 `json:"member_id"`
	GuestName  string  `json:"guest_name" binding:"required_without=MemberID,max=255"`
	GuestEmail string  `json:"guest_email" binding:"omitempty,email,max=255"`
	Status     string  `json:"status" binding:"omitempty,oneof=confirmed cancelled waitlist"`
}

func (r *CreateEventRegistrationRequest) Build() (*models.EventRegistration, error) {
	return &models.EventRegistration{
		EventID:    r.EventID,
		MemberID:   ref(r.MemberID),
		GuestName:  trimmed(r.GuestName),
		GuestEmail: trimmed(r.GuestEmail),
		Status:     r.Status,
	}, nil
}

type UpdateEventRegistrationRequest struct {
	GuestName  *string `json:"guest_name" binding:"omitempty,max=255"`
	GuestEmail *string `json:"guest_email" binding:"omitempty,email,max=255"`
	Status     *string `json:"status" binding:"omitempty,oneof=confirmed cancelled waitlist"`
}

func (r *UpdateEventRegistrationRequest) Apply(reg *models.EventRegistration) error {
	setTrimmed(&reg.GuestName, r.GuestName)
	setTrimmed(&reg.GuestEmail, r.GuestEmail)
	set(&reg.Status, r.Status)
	return nil
}

type CreateCourseRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description string  `json:"description"`
	TeacherID   *uint64 `json:"teacher_id"`
	StartDate   *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

func (r *CreateCourseRequest) Build() (*models.Course, error) {
	c := &models.Course{
		Name:        trimmed(r.Name),
		Description: r.Description,
		TeacherID:   ref(r.TeacherID),
	}
	var err error
	if c.StartDate, err = optionalDate(r.StartDate); err != nil {
		return nil, err
	}
	if c.EndDate, err = optionalDate(r.EndDate); err != nil {
		return nil, err
	}
	return c, nil
}

type UpdateCourseRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	TeacherID   *uint64 `json:"teacher_id"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	IsActive    *bool   `json:"is_active"`
}

func (r *UpdateCourseRequest) Apply(c *models.Course) error {
	setTrimmed(&c.Name, r.Name)
	set(&c.Description, r.Description)
	setRef(&c.TeacherID, r.TeacherID)
	set(&c.IsActive, r.IsActive)
	if err := patchDate(&c.StartDate, r.StartDate); err != nil {
		return err
	}
	return patchDate(&c.EndDate, r.EndDate)
}

type CreateCourseStudentRequest struct {
	CourseID uint64 `json:"course_id" binding:"required"`
	MemberID uint64 `json:"member_id" binding:"required"`
	Status   string `json:"status" binding:"omitempty,oneof=enrolled completed dropped"`
}

func (r *CreateCourseStudentRequest) Build() (*models.CourseStudent, error) {
	now := time.Now()
	s := &models.CourseStudent{
		CourseID:   r.CourseID,
		MemberID:   r.MemberID,
		Status:     r.Status,
		EnrolledAt: now,
	}
	if s.Status == "completed" {
		s.CompletedAt = &now
	}
	return s, nil
}

type UpdateCourseStudentRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=enrolled completed dropped"`
}

// Apply stamps completed_at when the status moves to completed and clears
// it when it moves away.
func (r *UpdateCourseStudentRequest) Apply(s *models.CourseStudent) error {
	if r.Status == nil || *r.Status == s.Status {
		return nil
	}
	s.Status = *r.Status
	if s.Status == "completed" {
		now := time.Now()
		s.CompletedAt = &now
	} else {
		s.CompletedAt = nil
	}
	return nil
}
