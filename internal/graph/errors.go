package graph

import "fmt"

// AdapterError reports a failure of the graph adapter capability
// layer: a missing vertex/edge id, or a rejected insertion.
type AdapterError struct {
	Kind    string
	Message string
}

func (e AdapterError) Error() string {
	return fmt.Sprintf("adapter error (%v): %v", e.Kind, e.Message)
}

func VertexDoesNotExist(id NodeID) error {
	return AdapterError{
		Kind:    "VertexDoesNotExist",
		Message: fmt.Sprintf("vertex %v does not exist", id),
	}
}

func EdgeDoesNotExist(id EdgeID) error {
	return AdapterError{
		Kind:    "EdgeDoesNotExist",
		Message: fmt.Sprintf("edge %v does not exist", id),
	}
}

func EndpointDoesNotExist(id NodeID) error {
	return AdapterError{
		Kind:    "EndpointDoesNotExist",
		Message: fmt.Sprintf("edge endpoint %v does not exist", id),
	}
}
