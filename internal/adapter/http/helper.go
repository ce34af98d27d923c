package http

import "strings"

// containsFieldMsg reports whether the validation details carry a message for
// the given field containing substr. Shared by the handler and validator tests.
func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
