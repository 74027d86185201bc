package msgtool

import (
	"fmt"
	"strings"
)

// ValidationErrors accumulates human-readable pre-flight violations in
// the order their rules ran. Commands run every rule, collect every
// violation, and only then decide whether to dispatch.
type ValidationErrors []string

// Add appends one formatted violation.
func (v *ValidationErrors) Add(format string, args ...interface{}) {
	*v = append(*v, fmt.Sprintf(format, args...))
}

// AddError appends an error's message. Catalog loading failures land
// here so the parser's message reaches the report verbatim.
func (v *ValidationErrors) AddError(err error) {
	*v = append(*v, err.Error())
}

// Empty reports whether validation passed.
func (v ValidationErrors) Empty() bool {
	return len(v) == 0
}

// Join renders the report, one violation per line.
func (v ValidationErrors) Join() string {
	return strings.Join(v, "\n")
}
