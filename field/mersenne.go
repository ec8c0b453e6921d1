package field

import "math/big"

var mersenne61Modulus = func() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 61)
	return p.Sub(p, big.NewInt(1))
}()

var mersenne127Modulus = func() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 127)
	return p.Sub(p, big.NewInt(1))
}()

// Mersenne61 is the prime field Z/(2^61 - 1)Z.
type Mersenne61 struct {
	v big.Int
}

// NewMersenne61 builds a Mersenne61 element from a small int.
func NewMersenne61(x int) Mersenne61 { return Mersenne61{modFromInt(x, mersenne61Modulus)} }

func (Mersenne61) Zero() Mersenne61 { return Mersenne61{} }
func (Mersenne61) One() Mersenne61  { return NewMersenne61(1) }
func (a Mersenne61) FromInt(x int) Mersenne61 { return NewMersenne61(x) }

func (a Mersenne61) Add(b Mersenne61) Mersenne61 { return Mersenne61{modAdd(&a.v, &b.v, mersenne61Modulus)} }
func (a Mersenne61) Sub(b Mersenne61) Mersenne61 { return Mersenne61{modSub(&a.v, &b.v, mersenne61Modulus)} }
func (a Mersenne61) Mul(b Mersenne61) Mersenne61 { return Mersenne61{modMul(&a.v, &b.v, mersenne61Modulus)} }
func (a Mersenne61) Neg() Mersenne61              { return Mersenne61{modNeg(&a.v, mersenne61Modulus)} }

func (a Mersenne61) Inverse() (Mersenne61, error) {
	r, err := modInv(&a.v, mersenne61Modulus)
	return Mersenne61{r}, err
}

func (a Mersenne61) Equal(b Mersenne61) bool { return a.v.Cmp(&b.v) == 0 }
func (a Mersenne61) IsZero() bool            { return a.v.Sign() == 0 }

// ByteSize is ceil(61/8) = 8 bytes.
func (Mersenne61) ByteSize() int { return 8 }

func (a Mersenne61) Bytes() []byte            { return bytesLE(&a.v, 8) }
func (Mersenne61) FromBytes(b []byte) Mersenne61 {
	v := fromBytesLE(b)
	v.Mod(&v, mersenne61Modulus)
	return Mersenne61{v}
}

func (a Mersenne61) String() string { return fieldToString(&a.v, Decimal) }

// FromString parses a Mersenne61 element in the given NumberBase.
func (Mersenne61) FromString(s string, base NumberBase) (Mersenne61, error) {
	v, err := fieldFromString(s, base, mersenne61Modulus)
	return Mersenne61{v}, err
}

// Modulus returns 2^61 - 1.
func (Mersenne61) Modulus() *big.Int { return new(big.Int).Set(mersenne61Modulus) }

// Mersenne127 is the prime field Z/(2^127 - 1)Z.
type Mersenne127 struct {
	v big.Int
}

// NewMersenne127 builds a Mersenne127 element from a small int.
func NewMersenne127(x int) Mersenne127 { return Mersenne127{modFromInt(x, mersenne127Modulus)} }

func (Mersenne127) Zero() Mersenne127         { return Mersenne127{} }
func (Mersenne127) One() Mersenne127          { return NewMersenne127(1) }
func (a Mersenne127) FromInt(x int) Mersenne127 { return NewMersenne127(x) }

func (a Mersenne127) Add(b Mersenne127) Mersenne127 {
	return Mersenne127{modAdd(&a.v, &b.v, mersenne127Modulus)}
}
func (a Mersenne127) Sub(b Mersenne127) Mersenne127 {
	return Mersenne127{modSub(&a.v, &b.v, mersenne127Modulus)}
}
func (a Mersenne127) Mul(b Mersenne127) Mersenne127 {
	return Mersenne127{modMul(&a.v, &b.v, mersenne127Modulus)}
}
func (a Mersenne127) Neg() Mersenne127 { return Mersenne127{modNeg(&a.v, mersenne127Modulus)} }

func (a Mersenne127) Inverse() (Mersenne127, error) {
	r, err := modInv(&a.v, mersenne127Modulus)
	return Mersenne127{r}, err
}

func (a Mersenne127) Equal(b Mersenne127) bool { return a.v.Cmp(&b.v) == 0 }
func (a Mersenne127) IsZero() bool             { return a.v.Sign() == 0 }

// ByteSize is ceil(127/8) = 16 bytes.
func (Mersenne127) ByteSize() int { return 16 }

func (a Mersenne127) Bytes() []byte { return bytesLE(&a.v, 16) }
func (Mersenne127) FromBytes(b []byte) Mersenne127 {
	v := fromBytesLE(b)
	v.Mod(&v, mersenne127Modulus)
	return Mersenne127{v}
}

func (a Mersenne127) String() string { return fieldToString(&a.v, Decimal) }

// FromString parses a Mersenne127 element in the given NumberBase.
func (Mersenne127) FromString(s string, base NumberBase) (Mersenne127, error) {
	v, err := fieldFromString(s, base, mersenne127Modulus)
	return Mersenne127{v}, err
}

// Modulus returns 2^127 - 1.
func (Mersenne127) Modulus() *big.Int { return new(big.Int).Set(mersenne127Modulus) }
