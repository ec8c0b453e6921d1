package curve

import (
	"fmt"

	"github.com/scl-mpc/scl/field"
	"github.com/scl-mpc/scl/scerr"
)

// Serialized curve-point flag bits, per spec.md's "Serialized curve-point
// format" and original_source's secp256k1_curve.cc (FULL_POINT_FLAG,
// POINT_AT_INFINITY_FLAG, SELECT_SMALLER_FLAG). The infinity flag wins
// over everything else; the select-smaller bit is only meaningful for a
// compressed (non-full) point and records whether the point's actual Y
// was the lexicographically smaller of {Y, -Y}.
const (
	flagFull          byte = 0x04
	flagInfinity      byte = 0x02
	flagSelectSmaller byte = 0x01
)

// ByteSizeCompressed is the wire size of a compressed-form point: 1 flag
// byte + 32 bytes of X.
const ByteSizeCompressed = 1 + 32

// ByteSizeFull is the wire size of a full-form point: 1 flag byte + 32
// bytes of X + 32 bytes of Y.
const ByteSizeFull = 1 + 64

// isSmaller reports whether a's reduced representation is numerically
// smaller than b's.
func isSmaller(a, b field.Secp256k1FieldElt) bool {
	return a.BigInt().Cmp(b.BigInt()) < 0
}

// sqrtOnCurve returns a canonical square root of x^3 + 7, the Y coordinate
// candidate used to reconstruct a compressed point.
func sqrtOnCurve(x field.Secp256k1FieldElt) field.Secp256k1FieldElt {
	return x.Mul(x).Mul(x).Add(curveB).Sqrt()
}

// Marshal encodes p. If compress is true, only the flag byte and X are
// written (ByteSizeCompressed bytes) with a bit recording which of {Y, -Y}
// is the real Y; otherwise both X and Y are written (ByteSizeFull bytes).
// The point at infinity always encodes as the flag byte followed by
// zero-padding to the requested length.
func (p Point) Marshal(compress bool) []byte {
	size := ByteSizeFull
	if compress {
		size = ByteSizeCompressed
	}
	out := make([]byte, size)
	var flag byte
	if !compress {
		flag |= flagFull
	}
	if p.IsInfinity() {
		out[0] = flag | flagInfinity
		return out
	}
	x, y := p.Affine()
	if compress {
		yn := y.Neg()
		if isSmaller(y, yn) {
			flag |= flagSelectSmaller
		}
		out[0] = flag
		copy(out[1:], x.Bytes())
		return out
	}
	out[0] = flag
	copy(out[1:33], x.Bytes())
	copy(out[33:65], y.Bytes())
	return out
}

// MarshalCompressed is a convenience wrapper for Marshal(true).
func (p Point) MarshalCompressed() []byte { return p.Marshal(true) }

// MarshalFull is a convenience wrapper for Marshal(false).
func (p Point) MarshalFull() []byte { return p.Marshal(false) }

// Unmarshal decodes a Point from the format produced by Marshal. Readers
// tolerate any tail bytes once the infinity flag is set, since the
// infinity flag wins over everything else.
func Unmarshal(data []byte) (Point, error) {
	if len(data) < 1 {
		return Point{}, fmt.Errorf("empty point encoding: %w", scerr.ErrMalformed)
	}
	flag := data[0]
	if flag&flagInfinity != 0 {
		return Infinity(), nil
	}
	body := data[1:]
	if flag&flagFull != 0 {
		if len(body) < 64 {
			return Point{}, fmt.Errorf("full point encoding truncated: %w", scerr.ErrMalformed)
		}
		x := field.Secp256k1FieldElt{}.FromBytes(body[0:32])
		y := field.Secp256k1FieldElt{}.FromBytes(body[32:64])
		return FromAffine(x, y)
	}
	if len(body) < 32 {
		return Point{}, fmt.Errorf("compressed point encoding truncated: %w", scerr.ErrMalformed)
	}
	x := field.Secp256k1FieldElt{}.FromBytes(body[0:32])
	y := sqrtOnCurve(x)
	yn := y.Neg()
	smaller := isSmaller(y, yn)
	wantSmaller := flag&flagSelectSmaller != 0
	if smaller != wantSmaller {
		y = yn
	}
	return FromAffine(x, y)
}
