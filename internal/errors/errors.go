// Package errors implements Simplex's error taxonomy and source-aware
// formatting: every error carries a Kind tag and, where available, the
// source position and snippet it occurred at.
package errors

import (
	"fmt"
	"strings"

	"github.com/solidkit/simplex/internal/lexer"
)

// Kind tags the category of a Simplex error.
type Kind int

const (
	// Parser marks a syntax violation raised by the lexer/parser.
	Parser Kind = iota
	// Undefined marks a name or field absent from the current scope.
	Undefined
	// Redefined marks a name declared twice in one scope.
	Redefined
	// TypeMismatch marks an expected type not matched-by the actual type.
	TypeMismatch
	// ParameterCount marks a call where no signature has the actual arity.
	ParameterCount
	// UnsupportedOperation marks an operator with no corresponding method.
	UnsupportedOperation
	// Analysis marks any other static violation.
	Analysis
	// Evaluation marks a dynamic violation (division by zero, etc).
	Evaluation
	// Internal marks an invariant breach that should never escape.
	Internal
)

func (k Kind) String() string {
	switch k {
	case Parser:
		return "Parser"
	case Undefined:
		return "Undefined"
	case Redefined:
		return "Redefined"
	case TypeMismatch:
		return "TypeMismatch"
	case ParameterCount:
		return "ParameterCount"
	case UnsupportedOperation:
		return "UnsupportedOperation"
	case Analysis:
		return "Analysis"
	case Evaluation:
		return "Evaluation"
	case Internal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// SimplexError is a single diagnostic with an optional source location.
// The first error attached to a location wins: once Pos is set, later
// wrapping must not overwrite it, so a nested error reports its
// innermost location rather than one of its callers'.
type SimplexError struct {
	Kind    Kind
	Message string
	Pos     lexer.Position
	HasPos  bool
	Source  string
	File    string
}

// New creates a SimplexError without a location.
func New(kind Kind, message string) *SimplexError {
	return &SimplexError{Kind: kind, Message: message}
}

// At creates a SimplexError anchored to a source position.
func At(kind Kind, message string, pos lexer.Position) *SimplexError {
	return &SimplexError{Kind: kind, Message: message, Pos: pos, HasPos: true}
}

// WithSource attaches the originating file and full source text, used
// later for caret-style formatting.
func (e *SimplexError) WithSource(file, source string) *SimplexError {
	e.File = file
	e.Source = source
	return e
}

// WithPos sets the position only if one is not already set, implementing
// the "innermost location wins" unwinding rule.
func (e *SimplexError) WithPos(pos lexer.Position) *SimplexError {
	if !e.HasPos {
		e.Pos = pos
		e.HasPos = true
	}
	return e
}

func (e *SimplexError) Error() string {
	return e.Format(false)
}

// Format renders the error with a source snippet and caret, optionally
// with ANSI color.
func (e *SimplexError) Format(color bool) string {
	var sb strings.Builder

	if e.HasPos {
		if e.File != "" {
			fmt.Fprintf(&sb, "Error in %s:%d:%d [%s]\n", e.File, e.Pos.Line, e.Pos.Column, e.Kind)
		} else {
			fmt.Fprintf(&sb, "Error at %d:%d [%s]\n", e.Pos.Line, e.Pos.Column, e.Kind)
		}

		if line := sourceLine(e.Source, e.Pos.Line); line != "" {
			prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", len(prefix)+e.Pos.Column-1))
			if color {
				sb.WriteString("\033[1;31m")
			}
			sb.WriteString("^")
			if color {
				sb.WriteString("\033[0m")
			}
			sb.WriteString("\n")
		}
	} else {
		fmt.Fprintf(&sb, "Error [%s]\n", e.Kind)
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll renders a list of errors, each with a bracketed index when
// there is more than one.
func FormatAll(errs []*SimplexError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d error(s):\n\n", len(errs))
	for i, e := range errs {
		fmt.Fprintf(&sb, "[%d/%d] ", i+1, len(errs))
		sb.WriteString(e.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// List accumulates errors raised while checking sibling definitions: a
// failure in one definition stops static checking of that definition
// but does not stop its siblings from being checked.
type List struct {
	Errs []*SimplexError
}

func (l *List) Add(e *SimplexError) { l.Errs = append(l.Errs, e) }
func (l *List) Empty() bool         { return len(l.Errs) == 0 }
func (l *List) Error() string       { return FormatAll(l.Errs, false) }
