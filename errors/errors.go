package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRegistry Phase = "registry" // type code/name lookup
	PhaseEncode   Phase = "encode"   // tree to engine handle
	PhaseDecode   Phase = "decode"   // engine handle to tree
	PhaseImport   Phase = "import"   // WKB buffer to engine handle
	PhaseEngine   Phase = "engine"   // engine-side operations
)

// Kind categorizes the error
type Kind string

const (
	KindNullHandle           Kind = "null_handle"
	KindUnknownTypeCode      Kind = "unknown_type_code"
	KindUnknownTypeName      Kind = "unknown_type_name"
	KindUnsupportedGeometry  Kind = "unsupported_geometry"
	KindHandleCreationFailed Kind = "handle_creation_failed"
	KindMalformedTree        Kind = "malformed_tree"
	KindMalformedWKB         Kind = "malformed_wkb"
	KindOutOfBounds          Kind = "out_of_bounds"
	KindInvalidData          Kind = "invalid_data"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value        any
	Cause        error
	Phase        Phase
	Kind         Kind
	GeometryType string
	Detail       string
	Path         []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GeometryType != "" {
		b.WriteString(": geometry type ")
		b.WriteString(e.GeometryType)
	}

	if e.Detail != "" {
		if e.GeometryType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the part path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GeometryType sets the geometry type name
func (b *Builder) GeometryType(t string) *Builder {
	b.err.GeometryType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NullHandle creates an error for an operation given an absent handle
func NullHandle(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNullHandle,
		Detail: "nil geometry handle",
	}
}

// UnknownTypeCode creates a registry lookup miss error for a type code
func UnknownTypeCode(code uint32) *Error {
	return &Error{
		Phase:  PhaseRegistry,
		Kind:   KindUnknownTypeCode,
		Detail: fmt.Sprintf("unknown geometry type code %d", code),
		Value:  code,
	}
}

// UnknownTypeName creates a registry lookup miss error for a type name
func UnknownTypeName(name string) *Error {
	return &Error{
		Phase:        PhaseRegistry,
		Kind:         KindUnknownTypeName,
		GeometryType: name,
		Detail:       "not a constructible geometry type",
	}
}

// Unsupported creates an error for a well-formed but unhandled geometry kind
func Unsupported(phase Phase, path []string, typeName string) *Error {
	return &Error{
		Phase:        phase,
		Kind:         KindUnsupportedGeometry,
		Path:         path,
		GeometryType: typeName,
		Detail:       "geometry kind not supported here",
	}
}

// HandleCreationFailed creates an error for an engine allocation refusal
func HandleCreationFailed(phase Phase, code uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindHandleCreationFailed,
		Detail: fmt.Sprintf("engine returned no handle for type code %d", code),
		Value:  code,
	}
}

// MalformedTree creates an error for a tree whose declared type and stored
// shape disagree
func MalformedTree(path []string, typeName, detail string) *Error {
	return &Error{
		Phase:        PhaseEncode,
		Kind:         KindMalformedTree,
		Path:         path,
		GeometryType: typeName,
		Detail:       detail,
	}
}

// MalformedWKB creates an error for an unparseable binary buffer
func MalformedWKB(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseImport,
		Kind:   KindMalformedWKB,
		Detail: detail,
		Cause:  cause,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
