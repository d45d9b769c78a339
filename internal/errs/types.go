package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type ValidationError struct {
	ErrorMessage
}

type GenerationError struct {
	ErrorMessage
}

type ShareUnavailableError struct {
	ErrorMessage
}

type ExportInFlightError struct {
	ErrorMessage
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewGenerationError(message string) *GenerationError {
	return &GenerationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewShareUnavailableError(message string) *ShareUnavailableError {
	return &ShareUnavailableError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewExportInFlightError() *ExportInFlightError {
	return &ExportInFlightError{
		ErrorMessage: ErrorMessage{Message: "an export is already in progress"},
	}
}
