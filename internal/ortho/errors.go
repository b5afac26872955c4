package ortho

import "fmt"

// InvalidInputError reports a structurally invalid batch: an empty batch,
// an empty vector, a dimension mismatch, a non-finite component, or a zero
// vector. It is always produced before any arithmetic runs.
type InvalidInputError struct {
	Index   int // offending vector index, -1 when the batch as a whole is invalid
	Message string
}

func (e *InvalidInputError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid input: %s", e.Message)
	}
	return fmt.Sprintf("invalid input at vector %d: %s", e.Index, e.Message)
}

// DependenceError is returned in strict mode when an input vector is
// linearly dependent on the vectors before it.
type DependenceError struct {
	Index int
}

func (e *DependenceError) Error() string {
	return fmt.Sprintf("vector %d is linearly dependent on the preceding vectors, cannot form a basis", e.Index)
}

func invalidBatch(format string, args ...interface{}) *InvalidInputError {
	return &InvalidInputError{Index: -1, Message: fmt.Sprintf(format, args...)}
}

func invalidVector(index int, format string, args ...interface{}) *InvalidInputError {
	return &InvalidInputError{Index: index, Message: fmt.Sprintf(format, args...)}
}
