// SQLite-backed course store, mapped with GORM. This file implements the
// Store contract on top of a relational courses table.
package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ahyz0569/go-tutor-backend/internal/domain"
)

// SQLStore persists courses through a *gorm.DB handle. Serialization of
// writers is delegated to the database: id assignment happens in a single
// INSERT ... SELECT statement, so two concurrent creates for the same tutor
// queue on the writer lock instead of racing the count. The composite
// unique index on (tutor_id, course_id) is the backstop: a duplicate id can
// only ever surface as a constraint error, never as silent corruption.
type SQLStore struct {
	db *gorm.DB
}

// NewSQLStore wraps an opened GORM handle. The schema must already be
// migrated (see AutoMigrate).
func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Create inserts the course with course_id computed as the tutor's current
// course count + 1, atomically in one statement.
func (s *SQLStore) Create(ctx context.Context, tutorID int, courseName string) (*domain.Course, error) {
	c := domain.Course{
		TutorID:    tutorID,
		CourseName: courseName,
		PostedTime: time.Now().UTC(),
	}

	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO courses (tutor_id, course_id, course_name, posted_time)
		SELECT ?, COUNT(*) + 1, ?, ? FROM courses WHERE tutor_id = ?
		RETURNING course_id`,
		tutorID, courseName, c.PostedTime, tutorID,
	).Scan(&c.CourseID).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListForTutor returns the tutor's courses ordered by course_id, which is
// insertion order by construction. No rows is an empty slice, not an error.
func (s *SQLStore) ListForTutor(ctx context.Context, tutorID int) ([]domain.Course, error) {
	out := make([]domain.Course, 0)
	err := s.db.WithContext(ctx).
		Where("tutor_id = ?", tutorID).
		Order("course_id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetOne fetches the unique course for (tutorID, courseID), translating
// gorm.ErrRecordNotFound into ErrCourseNotFound.
func (s *SQLStore) GetOne(ctx context.Context, tutorID, courseID int) (*domain.Course, error) {
	var c domain.Course
	err := s.db.WithContext(ctx).
		Where("tutor_id = ? AND course_id = ?", tutorID, courseID).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &c, nil
}
