// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hay-kot/criterio"
)

// TaskText validates that task text is non-empty after trimming whitespace.
func TaskText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text is required")
	}
	return nil
}

// MaxLength returns a validator rejecting trimmed text longer than n runes.
// n <= 0 disables the check.
func MaxLength(n int) func(string) error {
	return func(text string) error {
		if n <= 0 {
			return nil
		}
		if l := utf8.RuneCountInString(strings.TrimSpace(text)); l > n {
			return fmt.Errorf("text is %d characters, limit is %d", l, n)
		}
		return nil
	}
}

// TaskTextField returns a criterio validator for task text with an optional
// length limit.
func TaskTextField(field, text string, maxLen int) error {
	limit := MaxLength(maxLen)
	return criterio.Run(field, text, func(s string) error {
		if err := TaskText(s); err != nil {
			return err
		}
		return limit(s)
	})
}
