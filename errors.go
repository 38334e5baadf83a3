package mockstore

import (
	"errors"
	"fmt"
)

// FailureError represents an expectation violation detected by the double.
//
// Violations include:
//   - Unexpected call: a request arrived with no expectation remaining
//   - Mismatched call: a request did not satisfy the head expectation
//   - Unmet expectations: Verify found unconsumed expectations
//   - Unsupported operation: a mutation endpoint was invoked
//   - Invalid expectation: a registered row does not fit its columns
//
// FailureError includes the rendered expected and actual requests so a
// failure is debuggable without re-running under a debugger.
type FailureError struct {
	// Code identifies the violation category.
	Code FailureCode

	// Message is a human-readable description.
	Message string

	// Expected is the rendered expectation, when one was in play.
	Expected string

	// Actual is the rendered incoming request, when one was in play.
	Actual string
}

// FailureCode categorizes expectation violations.
type FailureCode string

const (
	// CodeUnexpectedCall indicates a request arrived with no expectation
	// of its kind remaining in the queue.
	CodeUnexpectedCall FailureCode = "UNEXPECTED_CALL"

	// CodeMismatchedCall indicates the head expectation did not match.
	CodeMismatchedCall FailureCode = "MISMATCHED_CALL"

	// CodeUnmetExpectations indicates Verify found leftover expectations.
	CodeUnmetExpectations FailureCode = "UNMET_EXPECTATIONS"

	// CodeUnsupportedOperation indicates a mutation endpoint was invoked.
	CodeUnsupportedOperation FailureCode = "UNSUPPORTED_OPERATION"

	// CodeInvalidExpectation indicates a registered expectation cannot
	// produce a well-formed result (row arity vs column count).
	CodeInvalidExpectation FailureCode = "INVALID_EXPECTATION"
)

// Error implements the error interface.
func (e *FailureError) Error() string {
	if e.Expected != "" && e.Actual != "" {
		return fmt.Sprintf("%s: %s\n  Expected: %s\n  Actual: %s", e.Code, e.Message, e.Expected, e.Actual)
	}
	if e.Actual != "" {
		return fmt.Sprintf("%s: %s\n  Actual: %s", e.Code, e.Message, e.Actual)
	}
	if e.Expected != "" {
		return fmt.Sprintf("%s: %s\n  Expected: %s", e.Code, e.Message, e.Expected)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsUnexpectedCall returns true if the error is an unexpected-call failure.
// Uses errors.As to handle wrapped errors.
func IsUnexpectedCall(err error) bool {
	return hasCode(err, CodeUnexpectedCall)
}

// IsMismatchedCall returns true if the error is a mismatched-call failure.
func IsMismatchedCall(err error) bool {
	return hasCode(err, CodeMismatchedCall)
}

// IsUnmetExpectations returns true if the error is an unmet-expectations failure.
func IsUnmetExpectations(err error) bool {
	return hasCode(err, CodeUnmetExpectations)
}

// IsUnsupportedOperation returns true if the error is an unsupported-operation failure.
func IsUnsupportedOperation(err error) bool {
	return hasCode(err, CodeUnsupportedOperation)
}

// IsInvalidExpectation returns true if the error is an invalid-expectation failure.
func IsInvalidExpectation(err error) bool {
	return hasCode(err, CodeInvalidExpectation)
}

func hasCode(err error, code FailureCode) bool {
	var fe *FailureError
	if errors.As(err, &fe) {
		return fe.Code == code
	}
	return false
}

func newUnexpectedCall(kind, actual string) *FailureError {
	return &FailureError{
		Code:    CodeUnexpectedCall,
		Message: fmt.Sprintf("no %s expectation remaining", kind),
		Actual:  actual,
	}
}

func newMismatchedCall(kind, expected, actual string) *FailureError {
	return &FailureError{
		Code:     CodeMismatchedCall,
		Message:  fmt.Sprintf("incorrect %s", kind),
		Expected: expected,
		Actual:   actual,
	}
}

func newUnmetExpectations(kind string, remaining []string) *FailureError {
	return &FailureError{
		Code:     CodeUnmetExpectations,
		Message:  fmt.Sprintf("not all expected %s were issued", kind),
		Expected: renderStringList(remaining),
	}
}

func newUnsupportedOperation(op, actual string) *FailureError {
	return &FailureError{
		Code:    CodeUnsupportedOperation,
		Message: fmt.Sprintf("%s is not supported by this double", op),
		Actual:  actual,
	}
}

func newInvalidExpectation(expected string, err error) *FailureError {
	return &FailureError{
		Code:     CodeInvalidExpectation,
		Message:  err.Error(),
		Expected: expected,
	}
}
