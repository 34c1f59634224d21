package response

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type StandardApiResponse struct {
	Success bool        `json:"success"`          // false for any error status
	Message string      `json:"message"`          // Human-readable message
	Data    interface{} `json:"data,omitempty"`   // Payload for success
	Errors  interface{} `json:"errors,omitempty"` // Validation or error details
}
