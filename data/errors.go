package data

import "fmt"

// DataAccessError is returned by every Service method when the underlying
// store fails. Error() yields a fixed message safe to show to users; the
// cause stays reachable through errors.Is and errors.As.
type DataAccessError struct {
	Op      string
	Message string
	Err     error
}

func (e *DataAccessError) Error() string {
	return e.Message
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// Detail includes the operation and the underlying cause, for logs.
func (e *DataAccessError) Detail() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}
