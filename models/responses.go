package models

// PingResponse is returned by the server health endpoint used by clients
// as their connectivity probe.
type PingResponse struct {
	Status string `json:"status"`
	Time   int64  `json:"time"`
}

// ErrorResponse is the JSON body written for failed API calls.
type ErrorResponse struct {
	Error string `json:"error"`
}
