// Package validation flattens nested field-validation outcomes into the
// ordered detail list carried by validation error responses.
//
// Validation results form a tree: an object holds per-field outcomes, a
// field outcome is either a list of violated constraints, a nested object,
// or an ordered list of nested objects (one per failed index). Flatten walks
// that tree depth-first and emits one entry per violated constraint with a
// fully qualified path ("parent.child" for nested objects, "parent[2]" for
// list elements).
//
// Ordering is deterministic: fields flatten in insertion order (which
// mirrors struct declaration order when built by Collect) and list entries
// in ascending index order. The same input always yields the same sequence,
// which keeps client-facing error lists reproducible and testable.
package validation

import (
	"fmt"
	"sort"
)

// Failure is a single violated constraint on a leaf field.
//
// Code is the machine-readable constraint code (e.g. "min", "required").
// Message is an optional human-readable description; when absent, renderers
// fall back to the code. Param carries the constraint parameter ("3" for
// min=3) and is only used to build messages.
type Failure struct {
	Code    string
	Message string
	Param   string
}

// fieldOutcome is the closed variant attached to one field. Exactly one of
// the three members is set:
//   - failures: direct constraint violations on the field
//   - nested:   a single nested object that failed
//   - list:     failed elements of a list field, by index
type fieldOutcome struct {
	failures []Failure
	nested   *Errors
	list     []listEntry
}

// listEntry pairs a failed list index with its nested outcome.
type listEntry struct {
	index  int
	nested *Errors
}

// field binds a name to its outcome, preserving insertion order.
type field struct {
	name    string
	outcome fieldOutcome
}

// Errors is an ordered, field-keyed validation outcome for one object.
// The zero value is empty and ready to use.
type Errors struct {
	fields []field
}

// Empty reports whether no failures were recorded anywhere in the tree.
func (e *Errors) Empty() bool {
	return e == nil || len(e.fields) == 0
}

// AddFailure records direct constraint violations on the named field.
// Repeated calls for the same field append to its failure list.
func (e *Errors) AddFailure(name string, failures ...Failure) {
	f := e.findOrAdd(name)
	f.outcome.failures = append(f.outcome.failures, failures...)
}

// AddStruct records the outcome of a single nested object under name.
// Repeated calls merge into the same nested outcome.
func (e *Errors) AddStruct(name string) *Errors {
	f := e.findOrAdd(name)
	if f.outcome.nested == nil {
		f.outcome.nested = &Errors{}
	}
	return f.outcome.nested
}

// AddListItem records the outcome of the list element at index under name.
// Repeated calls for the same index merge into the same nested outcome.
func (e *Errors) AddListItem(name string, index int) *Errors {
	f := e.findOrAdd(name)
	for i := range f.outcome.list {
		if f.outcome.list[i].index == index {
			return f.outcome.list[i].nested
		}
	}
	f.outcome.list = append(f.outcome.list, listEntry{index: index, nested: &Errors{}})
	return f.outcome.list[len(f.outcome.list)-1].nested
}

func (e *Errors) findOrAdd(name string) *field {
	for i := range e.fields {
		if e.fields[i].name == name {
			return &e.fields[i]
		}
	}
	e.fields = append(e.fields, field{name: name})
	return &e.fields[len(e.fields)-1]
}

// Flattened is one leaf failure with its fully qualified path. Depth counts
// recursion levels and is used only for indentation when logging, never for
// ordering.
type Flattened struct {
	Depth   int
	Path    string
	Failure Failure
}

// Flatten walks the tree depth-first and returns every leaf failure with a
// dot/bracket-qualified path from the root.
func Flatten(e *Errors) []Flattened {
	return flatten(e, "", 0)
}

func flatten(e *Errors, path string, depth int) []Flattened {
	if e == nil {
		return nil
	}
	var out []Flattened
	for i := range e.fields {
		f := &e.fields[i]
		fieldPath := f.name
		if path != "" {
			fieldPath = path + "." + f.name
		}
		switch {
		case f.outcome.failures != nil:
			for _, fail := range f.outcome.failures {
				out = append(out, Flattened{Depth: depth, Path: fieldPath, Failure: fail})
			}
		case f.outcome.list != nil:
			entries := append([]listEntry(nil), f.outcome.list...)
			sort.SliceStable(entries, func(a, b int) bool { return entries[a].index < entries[b].index })
			for _, le := range entries {
				indexed := fmt.Sprintf("%s[%d]", fieldPath, le.index)
				out = append(out, flatten(le.nested, indexed, depth+1)...)
			}
		case f.outcome.nested != nil:
			out = append(out, flatten(f.outcome.nested, fieldPath, depth+1)...)
		}
	}
	return out
}

// Details renders the flattened failures as "path: message" lines, falling
// back to the constraint code when no human-readable message was supplied.
// This is the exact list serialized in validation error responses.
func Details(e *Errors) []string {
	flat := Flatten(e)
	out := make([]string, 0, len(flat))
	for _, f := range flat {
		msg := f.Failure.Message
		if msg == "" {
			msg = f.Failure.Code
		}
		out = append(out, f.Path+": "+msg)
	}
	return out
}
