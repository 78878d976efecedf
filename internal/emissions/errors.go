package emissions

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidInput is returned when an operation receives input it cannot
// derive a result from, such as an empty history for a projection.
const ErrInvalidInput = constError("invalid input")
