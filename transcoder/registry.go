package transcoder

import (
	geometrycodec "github.com/wippyai/geometry-codec"
	"github.com/wippyai/geometry-codec/errors"
)

// nameByCode maps every base type code the engine can report to its name.
// Never mutated after init; safe for unsynchronized concurrent reads.
var nameByCode = map[geometrycodec.TypeCode]geometrycodec.TypeName{
	geometrycodec.CodeUnknown:            geometrycodec.TypeUnknown,
	geometrycodec.CodePoint:              geometrycodec.TypePoint,
	geometrycodec.CodeLineString:         geometrycodec.TypeLineString,
	geometrycodec.CodePolygon:            geometrycodec.TypePolygon,
	geometrycodec.CodeMultiPoint:         geometrycodec.TypeMultiPoint,
	geometrycodec.CodeMultiLineString:    geometrycodec.TypeMultiLineString,
	geometrycodec.CodeMultiPolygon:       geometrycodec.TypeMultiPolygon,
	geometrycodec.CodeGeometryCollection: geometrycodec.TypeGeometryCollection,
	geometrycodec.CodeNone:               geometrycodec.TypeNone,
	geometrycodec.CodeLinearRing:         geometrycodec.TypeLinearRing,
}

// codeByName is the inverse mapping restricted to the eight constructible
// kinds. Unknown, None and the 3D aliases are not independently
// constructible.
var codeByName = map[geometrycodec.TypeName]geometrycodec.TypeCode{
	geometrycodec.TypePoint:              geometrycodec.CodePoint,
	geometrycodec.TypeLineString:         geometrycodec.CodeLineString,
	geometrycodec.TypeLinearRing:         geometrycodec.CodeLinearRing,
	geometrycodec.TypePolygon:            geometrycodec.CodePolygon,
	geometrycodec.TypeMultiPoint:         geometrycodec.CodeMultiPoint,
	geometrycodec.TypeMultiLineString:    geometrycodec.CodeMultiLineString,
	geometrycodec.TypeMultiPolygon:       geometrycodec.CodeMultiPolygon,
	geometrycodec.TypeGeometryCollection: geometrycodec.CodeGeometryCollection,
}

// NameForCode resolves a type code to its geometry name. The 3D flag is
// masked off first, so a base code and its 3D-flagged counterpart resolve
// to the same name. Unrecognized codes are an error, never "Unknown".
func NameForCode(code geometrycodec.TypeCode) (geometrycodec.TypeName, error) {
	name, ok := nameByCode[code.Base()]
	if !ok {
		return "", errors.UnknownTypeCode(uint32(code))
	}
	return name, nil
}

// CodeForName resolves a geometry name to its base type code. Only the
// eight constructible kinds resolve.
func CodeForName(name geometrycodec.TypeName) (geometrycodec.TypeCode, error) {
	code, ok := codeByName[name]
	if !ok {
		return 0, errors.UnknownTypeName(string(name))
	}
	return code, nil
}
