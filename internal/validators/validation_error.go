package validators

import (
	"sort"
	"strings"
)

// ValidationError aggregates per-field validation failures. The zero value is
// ready to use; call add to record failures and errOrNil to collapse an empty
// error into nil.
type ValidationError struct {
	// Fields maps a field name to a human-readable failure message.
	Fields map[string]string
}

// Error implements the error interface. Field names are sorted so the message
// is deterministic.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field string, err error) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = err.Error()
}

// errOrNil returns nil when no failures were recorded.
func (e *ValidationError) errOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
