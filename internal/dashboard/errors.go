package dashboard

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownView is returned by ParseView.
var ErrUnknownView = constError("unknown view")
