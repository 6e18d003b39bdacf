package registry

// lockUnavailableError signals that the registry lock was poisoned by a
// holder that panicked mid-critical-section. In-memory state may be
// inconsistent; the HTTP layer maps this to 503.
type lockUnavailableError struct{ msg string }

func (e lockUnavailableError) Error() string { return "lock unavailable: " + e.msg }

// ErrLockUnavailable constructs a lockUnavailableError.
func ErrLockUnavailable(msg string) error { return lockUnavailableError{msg: msg} }

// IsLockUnavailable reports whether err indicates a poisoned registry lock.
func IsLockUnavailable(err error) bool {
	_, ok := err.(lockUnavailableError)
	return ok
}
