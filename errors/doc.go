// Package errors provides structured error types for the geometry-codec library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: part path, geometry type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindMalformedTree).
//		Path("rings[0]").
//		GeometryType("Polygon").
//		Detail("ring has no coordinates").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NullHandle(errors.PhaseDecode)
//	err := errors.UnknownTypeCode(999)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
