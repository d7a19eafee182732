// Package domain defines the persistence model for courses. The Course type
// is mapped with GORM for the database-backed store and reused unchanged by
// the in-memory store, so both backends serialize identically.
package domain

import (
	"time"
)

// Course represents one course offered by one tutor. Courses are immutable
// once created: there are no update or delete operations.
//
// Fields:
//   - TutorID: integer id of the owning tutor. No Tutor entity exists; the
//     id is the only reference.
//   - CourseID: per-tutor sequential id assigned by the store at creation
//     time (count of the tutor's existing courses + 1). Unique only within
//     a single tutor, never globally.
//   - CourseName: human-readable course title.
//   - PostedTime: creation instant, set by the store in UTC. Monotonically
//     non-decreasing with CourseID for a given tutor.
//
// (tutor_id, course_id) is the natural key; the database-backed store
// enforces it with a composite unique index so concurrent writers cannot
// slip in a duplicate.
type Course struct {
	TutorID    int       `json:"tutor_id"    gorm:"not null;uniqueIndex:ux_tutor_course,priority:1"`
	CourseID   int       `json:"course_id"   gorm:"not null;uniqueIndex:ux_tutor_course,priority:2"`
	CourseName string    `json:"course_name" gorm:"type:varchar(255);not null"`
	PostedTime time.Time `json:"posted_time"`
}

// TableName returns the database table name for Course.
func (Course) TableName() string { return "courses" }
