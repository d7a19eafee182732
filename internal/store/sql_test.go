package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ahyz0569/go-tutor-backend/internal/domain"
)

func newCourseDB(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("course_store_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA busy_timeout=5000;")

	// Release the file handle before TempDir cleanup (Windows needs this).
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if migrate {
		if err := AutoMigrate(db); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func TestSQLCreate_AssignsSequentialIDsPerTutor(t *testing.T) {
	s := NewSQLStore(newCourseDB(t, true))
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	first, err := s.Create(ctx, 1, "Rust 101")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.CourseID != 1 {
		t.Fatalf("first course id = %d, want 1", first.CourseID)
	}
	if first.PostedTime.Before(before) {
		t.Fatalf("posted time unset or stale: %v", first.PostedTime)
	}

	second, err := s.Create(ctx, 1, "Rust 102")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.CourseID != 2 {
		t.Fatalf("second course id = %d, want 2", second.CourseID)
	}

	other, err := s.Create(ctx, 2, "Go 101")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if other.CourseID != 1 {
		t.Fatalf("other tutor's first id = %d, want 1", other.CourseID)
	}
}

func TestSQLCreate_Error_NoTable(t *testing.T) {
	s := NewSQLStore(newCourseDB(t, false))

	c, err := s.Create(context.Background(), 1, "Rust 101")
	if err == nil || c != nil {
		t.Fatalf("expected error creating without table, got course=%v err=%v", c, err)
	}
}

func TestSQLCreate_ConcurrentSameTutor_DenseIDs(t *testing.T) {
	s := NewSQLStore(newCourseDB(t, true))
	ctx := context.Background()

	const n = 10
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := s.Create(ctx, 7, "Concurrency 101")
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			ids <- c.CourseID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate course id %d assigned", id)
		}
		seen[id] = true
	}
	for want := 1; want <= n; want++ {
		if !seen[want] {
			t.Fatalf("course id %d missing; set not dense", want)
		}
	}
}

func TestSQLUniqueIndex_RejectsDuplicateNaturalKey(t *testing.T) {
	db := newCourseDB(t, true)

	dup := func() error {
		return db.Create(&domain.Course{
			TutorID:    1,
			CourseID:   1,
			CourseName: "dup",
			PostedTime: time.Now().UTC(),
		}).Error
	}
	if err := dup(); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := dup(); err == nil {
		t.Fatal("second insert with same (tutor_id, course_id) should violate unique index")
	}
}

func TestSQLListForTutor_FiltersAndOrders(t *testing.T) {
	s := NewSQLStore(newCourseDB(t, true))
	ctx := context.Background()

	for _, c := range []struct {
		tutor int
		name  string
	}{
		{1, "Rust 101"}, {2, "Go 101"}, {1, "Rust 102"},
	} {
		if _, err := s.Create(ctx, c.tutor, c.name); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := s.ListForTutor(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].CourseID != 1 || got[1].CourseID != 2 {
		t.Fatalf("unexpected listing: %+v", got)
	}
	if got[0].CourseName != "Rust 101" || got[1].CourseName != "Rust 102" {
		t.Fatalf("listing not in insertion order: %+v", got)
	}
}

func TestSQLListForTutor_EmptyIsNotAnError(t *testing.T) {
	s := NewSQLStore(newCourseDB(t, true))

	got, err := s.ListForTutor(context.Background(), 99)
	if err != nil {
		t.Fatalf("empty listing should not error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
}

func TestSQLGetOne(t *testing.T) {
	s := NewSQLStore(newCourseDB(t, true))
	ctx := context.Background()

	if _, err := s.Create(ctx, 1, "Rust 101"); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.GetOne(ctx, 1, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CourseName != "Rust 101" || got.TutorID != 1 || got.CourseID != 1 {
		t.Fatalf("wrong course: %+v", got)
	}

	if _, err := s.GetOne(ctx, 1, 99); !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("missing course: err = %v, want ErrCourseNotFound", err)
	}
}

func TestOpenSQLite_MissingParentDir(t *testing.T) {
	if _, err := OpenSQLite(filepath.Join(t.TempDir(), "nope", "app.db")); err == nil {
		t.Fatal("expected error for missing parent directory")
	}
}

func TestOpenSQLite_CreatesAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	if !db.Migrator().HasTable(&domain.Course{}) {
		t.Fatal("courses table missing after migration")
	}
}
