// Collect bridges go-playground/validator (the engine behind Gin's binding)
// into the ordered validation tree defined in this package.
package validation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// UseJSONFieldNames configures v to report json tag names instead of Go
// struct field names in error namespaces, so flattened paths match the wire
// representation clients actually sent.
func UseJSONFieldNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Collect converts a binding error into a validation tree. It returns
// (tree, true) when err wraps validator.ValidationErrors, preserving the
// engine's field order, and (nil, false) for any other error (malformed
// JSON, type mismatches), which callers should treat as a framework-level
// failure instead.
func Collect(err error) (*Errors, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	root := &Errors{}
	for _, fe := range verrs {
		segs := strings.Split(fe.Namespace(), ".")
		if len(segs) > 1 {
			segs = segs[1:] // drop the root struct name
		}

		cur := root
		for i, seg := range segs {
			last := i == len(segs)-1
			name, idx, indexed := splitIndex(seg)
			switch {
			case last:
				// Indexed leaves keep the bracket suffix in the field name
				// so the flattened path reads "tags[1]: ...".
				cur.AddFailure(seg, Failure{
					Code:    fe.Tag(),
					Message: messageFor(fe),
					Param:   fe.Param(),
				})
			case indexed:
				cur = cur.AddListItem(name, idx)
			default:
				cur = cur.AddStruct(name)
			}
		}
	}
	return root, true
}

// splitIndex splits "modules[2]" into ("modules", 2, true). Segments
// without a bracket suffix return (seg, 0, false).
func splitIndex(seg string) (string, int, bool) {
	open := strings.IndexByte(seg, '[')
	if open < 0 || !strings.HasSuffix(seg, "]") {
		return seg, 0, false
	}
	idx, err := strconv.Atoi(seg[open+1 : len(seg)-1])
	if err != nil {
		return seg, 0, false
	}
	return seg[:open], idx, true
}

// messageFor supplies human-readable messages for the constraint codes this
// API uses. Codes without an entry fall back to the raw code in Details.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	default:
		return ""
	}
}
