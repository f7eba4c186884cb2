package valueobject

import (
	"strings"

	"ferroblog/internal/domain/domainerr"
)

// Email is a validated email address. Equality is by wrapped value.
type Email struct {
	value string
}

// NewEmail validates raw input. The check is deliberately shallow: presence of
// '@' only, no normalization.
func NewEmail(raw string) (Email, error) {
	if !strings.Contains(raw, "@") {
		return Email{}, domainerr.Validation("invalid email format")
	}
	return Email{value: raw}, nil
}

func (e Email) String() string { return e.value }
