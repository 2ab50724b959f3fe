// Package geometrycodec provides a structural codec between well-known
// binary (WKB) geometry buffers and a tagged, GeoJSON-shaped geometry tree.
//
// The codec sits between two representations: an external geometry engine
// that owns opaque geometry handles and speaks WKB, and plain Go value data
// modeled on GeoJSON geometry objects (type name plus nested coordinate or
// part data).
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	geometry-codec/      Root package with the Geometry tree, coordinates,
//	                     and geometry type codes/names
//	├── transcoder/      Encoder/Decoder between engine handles and trees,
//	                     plus the type-code registry
//	├── engine/          The external engine surface and the in-memory
//	                     reference engine with WKB import/export
//	├── resource/        Handle table backing the in-memory engine
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Decode a WKB buffer into a geometry tree:
//
//	eng := engine.NewMem()
//	dec := transcoder.NewDecoder(eng)
//
//	g, err := dec.DecodeWKB(wkbBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g.Type) // "Polygon"
//
// Encode a tree back to an engine handle:
//
//	enc := transcoder.NewEncoder(eng)
//	h, err := enc.Encode(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer eng.Destroy(h)
//
// # Handle Ownership
//
// Engine handles are externally owned resources. A function that creates a
// top-level handle (Encode, or the scratch handle inside DecodeWKB) owns it
// and must destroy it on every exit path. Handles obtained through ChildRef
// are non-owning views into their parent and must never be destroyed
// independently; destroying the parent destroys them. AddChildOwned
// transfers ownership of the child into the parent.
//
// # Thread Safety
//
// The type registry is immutable and safe for unsynchronized concurrent
// reads. Engine handles are not safe for shared mutation: each encode or
// decode call tree must own its handles exclusively for its duration.
package geometrycodec
