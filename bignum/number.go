// Package bignum provides an arbitrary-precision signed integer, used as the
// backing representation for modular reduction throughout scl's field and
// ring packages.
package bignum

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/scl-mpc/scl/scerr"
)

// Number is a signed arbitrary-precision integer. It owns its value
// exclusively; copying a Number (via Copy or an arithmetic result) always
// deep-copies the underlying big.Int.
type Number struct {
	v big.Int
}

// NewInt creates a Number from an int64.
func NewInt(x int64) *Number {
	n := new(Number)
	n.v.SetInt64(x)
	return n
}

// NewUint creates a Number from a uint64.
func NewUint(x uint64) *Number {
	n := new(Number)
	n.v.SetUint64(x)
	return n
}

// Copy returns a deep copy of n.
func Copy(n *Number) *Number {
	c := new(Number)
	c.v.Set(&n.v)
	return c
}

// FromHex parses a big-endian hex string (with or without a "0x" prefix)
// into a Number.
func FromHex(s string) (*Number, error) {
	n := new(Number)
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	if _, ok := n.v.SetString(s, 16); !ok {
		return nil, fmt.Errorf("parsing hex number %q: %w", s, scerr.ErrMalformed)
	}
	return n, nil
}

// ToHex renders n as a lowercase, unprefixed big-endian hex string.
func (n *Number) ToHex() string {
	return n.v.Text(16)
}

// String renders n in base 10.
func (n *Number) String() string {
	return n.v.String()
}

// Random returns a uniform random Number in [0, bound).
func Random(bound *Number) (*Number, error) {
	if bound.v.Sign() <= 0 {
		return nil, fmt.Errorf("bound must be positive: %w", scerr.ErrInvalidInput)
	}
	v, err := rand.Int(rand.Reader, &bound.v)
	if err != nil {
		return nil, fmt.Errorf("reading randomness: %w", err)
	}
	n := new(Number)
	n.v = *v
	return n, nil
}

// RandomBits returns a uniform random Number with exactly nbits bits (the
// top bit is always set).
func RandomBits(nbits int) (*Number, error) {
	if nbits <= 0 {
		return nil, fmt.Errorf("bit length must be positive: %w", scerr.ErrInvalidInput)
	}
	buf := make([]byte, (nbits+7)/8)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("reading randomness: %w", err)
	}
	n := new(Number)
	n.v.SetBytes(buf)
	// Force the requested bit length by setting the top bit and masking
	// off anything above it.
	top := nbits - 1
	mask := new(big.Int).Lsh(big.NewInt(1), uint(nbits))
	mask.Sub(mask, big.NewInt(1))
	n.v.And(&n.v, mask)
	n.v.SetBit(&n.v, top, 1)
	return n, nil
}

// Add sets n = a + b and returns n.
func (n *Number) Add(a, b *Number) *Number { n.v.Add(&a.v, &b.v); return n }

// Sub sets n = a - b and returns n.
func (n *Number) Sub(a, b *Number) *Number { n.v.Sub(&a.v, &b.v); return n }

// Mul sets n = a * b and returns n.
func (n *Number) Mul(a, b *Number) *Number { n.v.Mul(&a.v, &b.v); return n }

// Div sets n = a / b, truncated towards zero, and returns n.
func (n *Number) Div(a, b *Number) *Number { n.v.Quo(&a.v, &b.v); return n }

// Mod sets n = a mod m (Euclidean, always non-negative for positive m) and
// returns n.
func (n *Number) Mod(a, m *Number) *Number { n.v.Mod(&a.v, &m.v); return n }

// Exp sets n = a^b mod m and returns n. If m is nil, computes a^b exactly.
func (n *Number) Exp(a, b, m *Number) *Number {
	var mv *big.Int
	if m != nil {
		mv = &m.v
	}
	n.v.Exp(&a.v, &b.v, mv)
	return n
}

// Inv sets n = a^-1 mod m and returns n, or an error if a has no inverse
// modulo m.
func (n *Number) Inv(a, m *Number) (*Number, error) {
	r := n.v.ModInverse(&a.v, &m.v)
	if r == nil {
		return nil, fmt.Errorf("%v has no inverse mod %v: %w", a, m, scerr.ErrInvalidInput)
	}
	return n, nil
}

// Neg sets n = -a and returns n.
func (n *Number) Neg(a *Number) *Number { n.v.Neg(&a.v); return n }

// Lsh sets n = a << s and returns n.
func (n *Number) Lsh(a *Number, s uint) *Number { n.v.Lsh(&a.v, s); return n }

// Rsh sets n = a >> s and returns n.
func (n *Number) Rsh(a *Number, s uint) *Number { n.v.Rsh(&a.v, s); return n }

// And sets n = a & b and returns n.
func (n *Number) And(a, b *Number) *Number { n.v.And(&a.v, &b.v); return n }

// Or sets n = a | b and returns n.
func (n *Number) Or(a, b *Number) *Number { n.v.Or(&a.v, &b.v); return n }

// Xor sets n = a ^ b and returns n.
func (n *Number) Xor(a, b *Number) *Number { n.v.Xor(&a.v, &b.v); return n }

// Not sets n = ^a (two's-complement bitwise NOT) and returns n.
func (n *Number) Not(a *Number) *Number { n.v.Not(&a.v); return n }

// Cmp returns -1, 0 or +1 as n is less than, equal to, or greater than m.
func (n *Number) Cmp(m *Number) int { return n.v.Cmp(&m.v) }

// Equal reports whether n and m hold the same value.
func (n *Number) Equal(m *Number) bool { return n.Cmp(m) == 0 }

// BitLen returns the number of bits required to represent |n|.
func (n *Number) BitLen() int { return n.v.BitLen() }

// Bit returns the value of the i-th bit of n (0 or 1).
func (n *Number) Bit(i int) uint { return n.v.Bit(i) }

// Int64 returns the int64 representation of n, truncating if it overflows.
func (n *Number) Int64() int64 { return n.v.Int64() }

// Uint64 returns the uint64 representation of n, truncating if it overflows.
func (n *Number) Uint64() uint64 { return n.v.Uint64() }

// Bytes returns the big-endian byte representation of |n|, without a sign.
func (n *Number) Bytes() []byte { return n.v.Bytes() }

// SetBytes sets n from a big-endian byte slice, interpreted as
// non-negative, and returns n.
func (n *Number) SetBytes(b []byte) *Number { n.v.SetBytes(b); return n }

// BigInt exposes the underlying *big.Int for interop with stdlib APIs. The
// returned pointer aliases n's storage; callers must not mutate it directly.
func (n *Number) BigInt() *big.Int { return &n.v }
