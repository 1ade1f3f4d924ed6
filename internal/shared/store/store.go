package store

import "fmt"

// Logical collection names of the record store. Every StoreError carries
// one of these so log lines and error chains name the failing collection.
const (
	CollectionDepartments = "departments"
	CollectionEmployees   = "employees"
	CollectionAttendance  = "attendance"
	CollectionOutbox      = "outbox_events"
)

// StoreError wraps a failed read/query/insert against one collection.
type StoreError struct {
	Collection string
	Op         string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s on %s failed: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Wrap returns nil when err is nil so repositories can wrap unconditionally.
func Wrap(collection, op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Collection: collection, Op: op, Err: err}
}
