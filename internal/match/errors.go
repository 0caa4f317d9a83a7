package match

import "fmt"

// BindingError reports a problem resolving a query's designations: an
// unknown RETURN or WHERE designation, an empty RETURN projection, a
// CREATE edge whose endpoint was never created, or an unrecognized
// WHERE node. Adapter lookup failures are returned as the adapter's
// own errors, not wrapped in a BindingError.
type BindingError struct {
	Kind    string
	Message string
}

func (e BindingError) Error() string {
	return fmt.Sprintf("binding error (%v): %v", e.Kind, e.Message)
}
