package transcoder

import (
	stderrors "errors"
	"testing"

	geometrycodec "github.com/wippyai/geometry-codec"
	"github.com/wippyai/geometry-codec/errors"
)

func TestNameForCode(t *testing.T) {
	tests := []struct {
		code geometrycodec.TypeCode
		want geometrycodec.TypeName
	}{
		{geometrycodec.CodeUnknown, geometrycodec.TypeUnknown},
		{geometrycodec.CodePoint, geometrycodec.TypePoint},
		{geometrycodec.CodeLineString, geometrycodec.TypeLineString},
		{geometrycodec.CodePolygon, geometrycodec.TypePolygon},
		{geometrycodec.CodeMultiPoint, geometrycodec.TypeMultiPoint},
		{geometrycodec.CodeMultiLineString, geometrycodec.TypeMultiLineString},
		{geometrycodec.CodeMultiPolygon, geometrycodec.TypeMultiPolygon},
		{geometrycodec.CodeGeometryCollection, geometrycodec.TypeGeometryCollection},
		{geometrycodec.CodeNone, geometrycodec.TypeNone},
		{geometrycodec.CodeLinearRing, geometrycodec.TypeLinearRing},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			got, err := NameForCode(tt.code)
			if err != nil {
				t.Fatalf("NameForCode(%d) failed: %v", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("NameForCode(%d) = %q, want %q", tt.code, got, tt.want)
			}

			// The 3D-flagged counterpart resolves to the same name.
			got3d, err := NameForCode(tt.code.With3D())
			if err != nil {
				t.Fatalf("NameForCode(%d|Flag3D) failed: %v", tt.code, err)
			}
			if got3d != got {
				t.Errorf("3D variant resolved to %q, 2D to %q", got3d, got)
			}
		})
	}
}

func TestNameForCode_Unknown(t *testing.T) {
	for _, code := range []geometrycodec.TypeCode{8, 42, 999, geometrycodec.TypeCode(999).With3D()} {
		_, err := NameForCode(code)
		if err == nil {
			t.Fatalf("NameForCode(%d) should fail", code)
		}
		if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseRegistry, Kind: errors.KindUnknownTypeCode}) {
			t.Errorf("NameForCode(%d) = %v, want unknown_type_code", code, err)
		}
	}
}

func TestCodeForName(t *testing.T) {
	constructible := []geometrycodec.TypeName{
		geometrycodec.TypePoint,
		geometrycodec.TypeLineString,
		geometrycodec.TypeLinearRing,
		geometrycodec.TypePolygon,
		geometrycodec.TypeMultiPoint,
		geometrycodec.TypeMultiLineString,
		geometrycodec.TypeMultiPolygon,
		geometrycodec.TypeGeometryCollection,
	}

	seen := map[geometrycodec.TypeCode]geometrycodec.TypeName{}
	for _, name := range constructible {
		code, err := CodeForName(name)
		if err != nil {
			t.Fatalf("CodeForName(%q) failed: %v", name, err)
		}
		if prev, dup := seen[code]; dup {
			t.Errorf("code %d maps to both %q and %q", code, prev, name)
		}
		seen[code] = name

		// Bijection: the code resolves back to the same name.
		back, err := NameForCode(code)
		if err != nil {
			t.Fatalf("NameForCode(%d) failed: %v", code, err)
		}
		if back != name {
			t.Errorf("round trip %q -> %d -> %q", name, code, back)
		}
	}
}

func TestCodeForName_NotConstructible(t *testing.T) {
	for _, name := range []geometrycodec.TypeName{
		geometrycodec.TypeUnknown,
		geometrycodec.TypeNone,
		"Point25D",
		"",
	} {
		_, err := CodeForName(name)
		if err == nil {
			t.Fatalf("CodeForName(%q) should fail", name)
		}
		if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseRegistry, Kind: errors.KindUnknownTypeName}) {
			t.Errorf("CodeForName(%q) = %v, want unknown_type_name", name, err)
		}
	}
}

func TestTypeCode_Flag3D(t *testing.T) {
	code := geometrycodec.CodePolygon.With3D()
	if !code.Is3D() {
		t.Error("With3D did not set the flag")
	}
	if code.Base() != geometrycodec.CodePolygon {
		t.Errorf("Base() = %d, want %d", code.Base(), geometrycodec.CodePolygon)
	}
	if geometrycodec.CodePolygon.Is3D() {
		t.Error("base code reports 3D")
	}
}
