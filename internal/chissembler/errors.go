package chissembler

import (
	"fmt"

	"github.com/pkg/errors"
)

// LexerError reports an invalid source character. It is fatal to Assemble.
type LexerError struct {
	Span   SourceSpan
	Detail string
}

func (e *LexerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Detail)
}

// EmitterError reports a syntactic, semantic, or fixup failure. It is
// fatal to Assemble; partial output is always discarded by the caller.
type EmitterError struct {
	Span   SourceSpan
	Detail string
}

func (e *EmitterError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Detail)
}

// newLexerError wraps a LexerError with a stack trace via pkg/errors, so a
// host printing a propagated error with "%+v" can see where it originated.
func newLexerError(span SourceSpan, format string, args ...interface{}) error {
	return errors.WithStack(&LexerError{Span: span, Detail: fmt.Sprintf(format, args...)})
}

// newEmitterError wraps an EmitterError the same way.
func newEmitterError(span SourceSpan, format string, args ...interface{}) error {
	return errors.WithStack(&EmitterError{Span: span, Detail: fmt.Sprintf(format, args...)})
}
