package wizard

// ValidationError marks a guard condition unmet. These never reach the
// network; the HTTP layer maps them to 422 and the draft stays as it was.
type ValidationError struct{ Reason string }

func (e *ValidationError) Error() string { return e.Reason }

var (
	ErrEventNotAllowed    = &ValidationError{"event not allowed in the current step"}
	ErrUnknownCategory    = &ValidationError{"unknown loan category"}
	ErrCategoryRequired   = &ValidationError{"a category must be selected"}
	ErrAmountOutOfRange   = &ValidationError{"amount must be between 1000 and 100000"}
	ErrDurationOutOfRange = &ValidationError{"duration must be 6..84 in steps of 6 months"}
	ErrPurposeRequired    = &ValidationError{"a purpose must be declared"}
	ErrDocumentsRequired  = &ValidationError{"identity and address documents are required for a first application"}
	ErrUnknownSlot        = &ValidationError{"unknown document slot"}
	ErrSubmitRequired     = &ValidationError{"the summary step is left through submission, not navigation"}
)
