package assistant

import "errors"

var (
	// ErrInvalidInput reports a broken call contract (empty or
	// whitespace-only input), never bad user text.
	ErrInvalidInput = errors.New("assistant: input must be a non-empty string")

	// ErrUnsafeExpression reports arithmetic input containing characters
	// outside the restricted evaluator charset.
	ErrUnsafeExpression = errors.New("assistant: expression contains disallowed characters")
)
