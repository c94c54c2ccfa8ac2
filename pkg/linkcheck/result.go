package linkcheck

import "time"

// Status classifies the outcome of checking one URL.
type Status int

const (
	// StatusOK means the final response had a status code below 400.
	StatusOK Status = iota

	// StatusHTTPError means the final response had a status code of 400 or above.
	StatusHTTPError

	// StatusTimeout means the request did not complete within the timeout.
	StatusTimeout

	// StatusConnectionError means no connection could be established.
	StatusConnectionError

	// StatusRequestError covers every other transport failure.
	StatusRequestError
)

// String returns the label used in reports.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusHTTPError:
		return "Error"
	case StatusTimeout:
		return "Timeout"
	case StatusConnectionError:
		return "Connection Error"
	case StatusRequestError:
		return "Request Error"
	default:
		return "Unknown"
	}
}

// Result is the outcome of checking one URL.
type Result struct {
	// URL is the checked address.
	URL string

	// StatusCode is the final HTTP status, or 0 when no response was received.
	StatusCode int

	// Status classifies the outcome.
	Status Status

	// Message is the human-readable label, e.g. "OK" or "Request Error: ...".
	Message string

	// Category is the coarse label assigned by the Categorizer.
	Category string

	// Domain is the registrable domain of the URL host, if any.
	Domain string

	// Method is the HTTP method that produced the final outcome.
	Method string

	// Elapsed is the total time spent on the URL, fallback included.
	Elapsed time.Duration
}

// Failed reports whether the URL should be counted as broken.
func (r Result) Failed() bool {
	return r.StatusCode == 0 || r.StatusCode >= 400
}
