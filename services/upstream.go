package services

import "fmt"

// UpstreamError carries a non-success answer from one of the external
// Mind-Scroll APIs. Handlers surface Message to the user (or a generic
// fallback when it is empty) and never retry automatically.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream error %d", e.Status)
}
