package review

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxCodeLen is the maximum accepted input length in characters, enforced
// before any request is sent. The server enforces the same limit.
const MaxCodeLen = 5000

// WarnThreshold is the character count above which the input counter switches
// to its warning state (85% of the maximum).
const WarnThreshold = MaxCodeLen * 85 / 100

// ErrEmptyInput is returned when the input is empty after trimming.
var ErrEmptyInput = errors.New("no code provided")

// TooLongError reports an input over the size limit, naming both lengths.
type TooLongError struct {
	Length int
	Max    int
}

func (e *TooLongError) Error() string {
	return fmt.Sprintf("code is too long: %d characters (maximum %d)", e.Length, e.Max)
}

// ValidateCode checks the trimmed input against the client-side rules.
// Neither failure ever reaches the network.
func ValidateCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return ErrEmptyInput
	}
	if n := utf8.RuneCountInString(code); n > MaxCodeLen {
		return &TooLongError{Length: n, Max: MaxCodeLen}
	}
	return nil
}

// CounterInWarning reports whether the character counter should render in its
// warning style for an input of n characters.
func CounterInWarning(n int) bool {
	return n > WarnThreshold
}
