package models

import (
	"time"

	"gorm.io/datatypes"
)

type Course struct {
	TenantModel
	Activatable
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	TeacherID   *uint64         `json:"teacher_id"`
	StartDate   *datatypes.Date `json:"start_date"`
	EndDate     *datatypes.Date `json:"end_date"`
}

type CourseStudent struct {
	TenantModel
	CourseID    uint64     `gorm:"not null;uniqueIndex:idx_course_students_course_member" json:"course_id"`
	MemberID    uint64     `gorm:"not null;uniqueIndex:idx_course_students_course_member" json:"member_id"`
	Status      string     `gorm:"type:varchar(20);not null;default:'enrolled'" json:"status"`
	EnrolledAt  time.Time  `json:"enrolled_at"`
	CompletedAt *time.Time `json:"completed_at"`
}
