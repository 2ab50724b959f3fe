package transcoder

import (
	geometrycodec "github.com/wippyai/geometry-codec"
	"github.com/wippyai/geometry-codec/engine"
)

// RoundTrip encodes the tree to an engine handle, decodes the handle back,
// and destroys the handle before returning. The decoded tree is plain
// value data with no ties to the engine; only the intermediate handle's
// lifetime is managed here.
func RoundTrip(eng engine.Engine, g *geometrycodec.Geometry) (*geometrycodec.Geometry, error) {
	h, err := NewEncoder(eng).Encode(g)
	if err != nil {
		return nil, err
	}
	defer eng.Destroy(h)

	return NewDecoder(eng).Decode(h)
}
