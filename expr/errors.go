package expr

import "fmt"

// SyntaxError reports malformed input: a bad character, unbalanced
// parentheses, a misplaced operator, an empty expression, or WITH applied
// to a non-identifier operand. Position is a byte offset into the original
// text; Lexeme is the offending substring, which may be empty at EOF.
type SyntaxError struct {
	Position int
	Lexeme   string
	Message  string
}

func (e *SyntaxError) Error() string {
	if e.Lexeme != "" {
		return fmt.Sprintf("syntax error at %d near %q: %s", e.Position, e.Lexeme, e.Message)
	}
	return fmt.Sprintf("syntax error at %d: %s", e.Position, e.Message)
}

// ValidationError reports a well-formed identifier rejected by the active
// Strictness policy.
type ValidationError struct {
	ID     string
	Policy Strictness
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %q rejected under %s: %s", e.ID, e.Policy, e.Reason)
}
