package generator

import "fmt"

// DuplicateKeyError reports a key or alias already recorded by an earlier
// call-site. First occurrence wins; the second aborts the scan.
type DuplicateKeyError struct {
	Key  string
	File string
	Line int
}

func (e *DuplicateKeyError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("duplicate accessor call for %s in %s:%d", e.Key, e.File, e.Line)
	}
	return fmt.Sprintf("duplicate accessor call for %s at line %d", e.Key, e.Line)
}

// MalformedCallError reports a recognized accessor call the scanner cannot
// interpret. Malformed calls are never skipped; skipping them would produce
// misleadingly incomplete documentation.
type MalformedCallError struct {
	Line   int
	Reason string
}

func (e *MalformedCallError) Error() string {
	return fmt.Sprintf("malformed accessor call at line %d: %s", e.Line, e.Reason)
}

// WarningKind classifies non-fatal diagnostics.
type WarningKind int

const (
	// WarnUnknownType marks a type literal outside the recognized set.
	WarnUnknownType WarningKind = iota
	// WarnMissingDescription marks an entry with no documentation block.
	WarnMissingDescription
)

// Warning is a non-fatal diagnostic collected while generating. Generation
// still completes and returns a usable document.
type Warning struct {
	Kind   WarningKind
	Key    string
	Detail string
}

func (w Warning) String() string {
	switch w.Kind {
	case WarnUnknownType:
		return fmt.Sprintf("unknown type %s for %s", w.Detail, w.Key)
	case WarnMissingDescription:
		return fmt.Sprintf("missing description for %s", w.Key)
	default:
		return w.Detail
	}
}
