// Package store implements the authoritative holder of Course records.
//
// Two backends share one contract: an in-memory guarded collection (the
// default for local runs and tests) and a GORM/SQLite-backed store. Both
// assign per-tutor sequential course ids, preserve insertion order in
// listings, and are safe for concurrent use from independent requests.
//
// Error semantics:
//   - A missing course surfaces as ErrCourseNotFound.
//   - Database failures from the SQL backend are propagated raw; callers
//     translate them into the client-facing taxonomy (apierr.Database) and
//     must not echo the cause.
package store

import (
	"context"
	"errors"

	"github.com/ahyz0569/go-tutor-backend/internal/domain"
)

// ErrCourseNotFound is returned by GetOne when no course matches the given
// tutor and course ids. List operations never return it: an empty result is
// a normal outcome, not a failure.
var ErrCourseNotFound = errors.New("course not found")

// Store is the contract shared by every course backend.
//
// Implementations must be safe for concurrent use. Create must be
// linearizable per tutor: two concurrent creates for the same tutor never
// receive the same course id. All methods honor ctx for cancellation, but a
// create that is already in flight when the request aborts may still
// complete (at-least-once side effect; no rollback is attempted).
type Store interface {
	// Create assigns the next per-tutor course id (count of the tutor's
	// existing courses + 1) and the current UTC instant, persists the
	// record, and returns the fully populated Course.
	Create(ctx context.Context, tutorID int, courseName string) (*domain.Course, error)

	// ListForTutor returns every course of the tutor in insertion order.
	// An empty slice (never nil, never an error) means the tutor has no
	// courses.
	ListForTutor(ctx context.Context, tutorID int) ([]domain.Course, error)

	// GetOne returns the unique course matching both ids, or
	// ErrCourseNotFound. At most one record can match because course ids
	// are unique per tutor.
	GetOne(ctx context.Context, tutorID, courseID int) (*domain.Course, error)
}
