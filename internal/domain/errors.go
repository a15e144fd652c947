package domain

// ValidationError is caller-supplied data failing a stand or preset rule.
// Its message is safe to show to an operator as is.
type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}
