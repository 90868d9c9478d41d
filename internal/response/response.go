package response

// Envelope is the uniform response body returned by every endpoint.
type Envelope struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Stack   string            `json:"stack,omitempty"`
}

// Success wraps data in a success envelope.
func Success(message string, data interface{}) Envelope {
	return Envelope{
		Status:  "success",
		Message: message,
		Data:    data,
	}
}

// Fail wraps a failure message in an error envelope.
func Fail(message string) Envelope {
	return Envelope{
		Status:  "error",
		Message: message,
	}
}
