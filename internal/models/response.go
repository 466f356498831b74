package models

// Envelope is the uniform error-reporting response shape.
type Envelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

func ErrorResponse(message string) Envelope {
	return Envelope{
		Error:   true,
		Message: message,
	}
}
