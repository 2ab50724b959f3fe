// Package transcoder converts between engine geometry handles and the
// tagged geometry tree.
//
// The conversion is recursive and type-driven in both directions:
//
//	┌────────────────────────────────────────────────────────────┐
//	│ Geometry tree ←→ [Encoder/Decoder] ←→ engine handles / WKB │
//	└────────────────────────────────────────────────────────────┘
//
// # Key Types
//
//	Encoder  - Builds engine handles from geometry trees
//	Decoder  - Walks engine handles into geometry trees
//	Registry - NameForCode / CodeForName type lookups
//
// # Decoding Shape
//
// Polygon and Multi* decoding flattens each child to its coordinate
// sequence and discards the child's own type tag; only GeometryCollection
// keeps fully tagged nested geometries. This asymmetry is the GeoJSON
// interchange convention, not an accident of the walk.
//
// # Dimensionality
//
// The coordinate dimension is read once at each decode subtree's root and
// applied to every coordinate emitted below it; a 2D subtree never emits a
// third component.
//
// # Ownership
//
// Encode returns a handle the caller owns and must eventually destroy.
// DecodeWKB creates a scratch handle internally and destroys it on every
// exit path, error paths included. On encode failure no handle escapes:
// each frame destroys what it created before propagating the error, and
// ownership transfer into a parent disarms the frame's cleanup so nothing
// is freed twice.
package transcoder
