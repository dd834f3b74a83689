package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error         string `json:"error"`
	PendingAmount string `json:"pending_amount,omitempty"`
	Message       string `json:"message,omitempty"`
}
