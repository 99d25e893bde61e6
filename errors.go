package layerstore

import "fmt"

// DualCloseError reports close failures from a dual store. Either side may
// be nil when only one backend failed to shut down.
type DualCloseError struct {
	CacheErr error
	FileErr  error
}

func (e *DualCloseError) Error() string {
	switch {
	case e.CacheErr != nil && e.FileErr != nil:
		return fmt.Sprintf("dual close failed: cache=%v; file=%v", e.CacheErr, e.FileErr)
	case e.CacheErr != nil:
		return fmt.Sprintf("dual close: cache backend failed: %v", e.CacheErr)
	case e.FileErr != nil:
		return fmt.Sprintf("dual close: file backend failed: %v", e.FileErr)
	default:
		return "dual close: unknown error"
	}
}

func (e *DualCloseError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.CacheErr != nil {
		errs = append(errs, e.CacheErr)
	}
	if e.FileErr != nil {
		errs = append(errs, e.FileErr)
	}
	return errs
}
