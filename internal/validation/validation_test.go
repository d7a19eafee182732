package validation

import (
	"reflect"
	"testing"
)

func TestFlatten_DirectFailures_UsesFieldPath(t *testing.T) {
	e := &Errors{}
	e.AddFailure("tutor_id", Failure{Code: "lte", Message: "must be less than or equal to 100"})
	e.AddFailure("course_name", Failure{Code: "min"})

	flat := Flatten(e)
	if len(flat) != 2 {
		t.Fatalf("len = %d, want 2", len(flat))
	}
	if flat[0].Path != "tutor_id" || flat[1].Path != "course_name" {
		t.Fatalf("paths out of declaration order: %+v", flat)
	}
	if flat[0].Depth != 0 || flat[1].Depth != 0 {
		t.Fatalf("root failures should have depth 0: %+v", flat)
	}
}

func TestFlatten_NestedStruct_DotQualifiesPath(t *testing.T) {
	e := &Errors{}
	e.AddStruct("schedule").AddFailure("weeks", Failure{Code: "gte", Message: "must be greater than or equal to 1"})

	flat := Flatten(e)
	if len(flat) != 1 {
		t.Fatalf("len = %d, want 1", len(flat))
	}
	if flat[0].Path != "schedule.weeks" {
		t.Fatalf("path = %q, want schedule.weeks", flat[0].Path)
	}
	if flat[0].Depth != 1 {
		t.Fatalf("depth = %d, want 1", flat[0].Depth)
	}
}

func TestFlatten_ListIndexWithTwoViolations_SharesBracketPrefix(t *testing.T) {
	e := &Errors{}
	item := e.AddListItem("modules", 2)
	item.AddFailure("title", Failure{Code: "min"})
	item.AddFailure("hours", Failure{Code: "gte"})

	flat := Flatten(e)
	if len(flat) != 2 {
		t.Fatalf("len = %d, want 2", len(flat))
	}
	if flat[0].Path != "modules[2].title" || flat[1].Path != "modules[2].hours" {
		t.Fatalf("unexpected paths: %+v", flat)
	}
}

func TestFlatten_ListEntriesOrderedByIndex(t *testing.T) {
	e := &Errors{}
	e.AddListItem("modules", 3).AddFailure("title", Failure{Code: "min"})
	e.AddListItem("modules", 1).AddFailure("title", Failure{Code: "min"})

	flat := Flatten(e)
	if flat[0].Path != "modules[1].title" || flat[1].Path != "modules[3].title" {
		t.Fatalf("list entries not in index order: %+v", flat)
	}
}

func TestFlatten_Deterministic(t *testing.T) {
	e := &Errors{}
	e.AddFailure("a", Failure{Code: "required"})
	e.AddListItem("items", 1).AddFailure("x", Failure{Code: "min"})
	e.AddStruct("meta").AddFailure("y", Failure{Code: "max"})

	first := Flatten(e)
	for i := 0; i < 10; i++ {
		if got := Flatten(e); !reflect.DeepEqual(got, first) {
			t.Fatalf("flatten not deterministic on pass %d: %+v vs %+v", i, got, first)
		}
	}
}

func TestDetails_PrefersMessageFallsBackToCode(t *testing.T) {
	e := &Errors{}
	e.AddFailure("course_name", Failure{Code: "min", Message: "must be at least 3 characters"})
	e.AddFailure("tutor_id", Failure{Code: "frobnicate"}) // no message for this code

	got := Details(e)
	want := []string{
		"course_name: must be at least 3 characters",
		"tutor_id: frobnicate",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("details = %v, want %v", got, want)
	}
}

func TestEmpty(t *testing.T) {
	var nilErrs *Errors
	if !nilErrs.Empty() {
		t.Fatal("nil tree should be empty")
	}
	e := &Errors{}
	if !e.Empty() {
		t.Fatal("zero tree should be empty")
	}
	e.AddFailure("f", Failure{Code: "required"})
	if e.Empty() {
		t.Fatal("tree with failures should not be empty")
	}
}
