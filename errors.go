package tabledat

var (
	// ErrDisconnected is returned by tables created without a Connection.
	ErrDisconnected = NewError("table has no connection, pass a Connection to NewTable")
)

// Error are errors returned by tabledat.
type Error struct {
	Code    int
	Message string
}

// Error returns the enclosed error message.
func (e *Error) Error() string {
	return e.Message
}

// NewError creates a new tabledat Error.
func NewError(msg string) error {
	return &Error{Message: msg}
}
