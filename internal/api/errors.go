package api

import "fmt"

// RequestError is the single failure shape for remote calls. The storefront
// never branches on 4xx vs 5xx vs transport error; any RequestError means
// "request failed, let the user retry".
type RequestError struct {
	Service    string
	Method     string
	Path       string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s %s: %v", e.Service, e.Method, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s %s: unexpected status %d", e.Service, e.Method, e.Path, e.StatusCode)
}

func (e *RequestError) Unwrap() error { return e.Err }
