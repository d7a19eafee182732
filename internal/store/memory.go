// In-memory course store: a slice behind a single mutex, the Go rendition
// of application state shared across handlers.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/ahyz0569/go-tutor-backend/internal/domain"
)

// MemoryStore keeps all courses in one guarded slice. The mutex is held
// only long enough to append or copy; no blocking call ever runs under it.
// Handlers receive copies, never references into the guarded slice.
type MemoryStore struct {
	mu      sync.Mutex
	courses []domain.Course
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Create appends a new course under the lock. Counting and appending happen
// in one critical section, so concurrent creates for the same tutor are
// linearized and ids come out dense: {1..N} for N creates.
func (s *MemoryStore) Create(ctx context.Context, tutorID int, courseName string) (*domain.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for i := range s.courses {
		if s.courses[i].TutorID == tutorID {
			count++
		}
	}

	c := domain.Course{
		TutorID:    tutorID,
		CourseID:   count + 1,
		CourseName: courseName,
		PostedTime: time.Now().UTC(),
	}
	s.courses = append(s.courses, c)

	out := c
	return &out, nil
}

// ListForTutor returns copies of the tutor's courses in insertion order.
func (s *MemoryStore) ListForTutor(ctx context.Context, tutorID int) ([]domain.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Course, 0)
	for i := range s.courses {
		if s.courses[i].TutorID == tutorID {
			out = append(out, s.courses[i])
		}
	}
	return out, nil
}

// GetOne returns a copy of the unique matching course or ErrCourseNotFound.
func (s *MemoryStore) GetOne(ctx context.Context, tutorID, courseID int) (*domain.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.courses {
		if s.courses[i].TutorID == tutorID && s.courses[i].CourseID == courseID {
			out := s.courses[i]
			return &out, nil
		}
	}
	return nil, ErrCourseNotFound
}
