package response

// Error is the body of every failed request.
type Error struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewError(message string) Error {
	return Error{
		Success: false,
		Message: message,
	}
}
