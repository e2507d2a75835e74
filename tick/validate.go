package tick

import "fmt"

// checker is implemented by response types that know their required fields.
type checker interface {
	problems() []string
}

// checkRecord validates a single decoded record.
func checkRecord(op string, v checker) error {
	if ps := v.problems(); len(ps) > 0 {
		return &ResponseValidationError{Op: op, Problems: ps}
	}
	return nil
}

// checkList validates every element of a decoded list, prefixing each
// diagnostic with the element's index.
func checkList[T checker](op string, items []T) error {
	var ps []string
	for i, item := range items {
		for _, p := range item.problems() {
			ps = append(ps, fmt.Sprintf("items[%d]: %s", i, p))
		}
	}
	if len(ps) > 0 {
		return &ResponseValidationError{Op: op, Problems: ps}
	}
	return nil
}

// requireFields builds create-time validation diagnostics; each missing entry
// is reported as "<field> is required".
func requireFields(pairs ...fieldPair) []string {
	var ps []string
	for _, p := range pairs {
		if !p.present {
			ps = append(ps, p.name+" is required")
		}
	}
	return ps
}

type fieldPair struct {
	name    string
	present bool
}
