// Package common holds error types shared across the sale process.
package common

import "fmt"

// UsageFault reports a violated call-order contract: an operation was
// invoked before the call that must precede it. It signals a programming
// error, not a user-correctable condition, and is raised via panic so it
// can never be conflated with a business-rule failure or silently retried.
type UsageFault struct {
	Op       string
	Required string
}

// NewUsageFault builds a fault for op being called before required.
func NewUsageFault(op, required string) *UsageFault {
	return &UsageFault{Op: op, Required: required}
}

// Error implements the error interface so recovered faults print cleanly.
func (f *UsageFault) Error() string {
	return fmt.Sprintf("%s must be called before %s", f.Required, f.Op)
}
