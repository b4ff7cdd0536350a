package errs

// Categories shared across layers. Concrete errors are marked with one of these
// so handlers can map them to a status with Is.
var (
	ErrInvalidArgument = New("invalid argument")
	ErrNotFound        = New("not found")
	ErrConflict        = New("conflict")
	ErrUnavailable     = New("temporarily unavailable")
)
