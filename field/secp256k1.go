package field

import "math/big"

// Secp256k1FieldModulus is p = 2^256 - 2^32 - 977, the base field of
// secp256k1.
var Secp256k1FieldModulus = func() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 256)
	t := new(big.Int).Lsh(big.NewInt(1), 32)
	p.Sub(p, t)
	p.Sub(p, big.NewInt(977))
	return p
}()

// Secp256k1ScalarModulus is the order of the secp256k1 base point.
var Secp256k1ScalarModulus = func() *big.Int {
	n, ok := new(big.Int).SetString(
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)
	if !ok {
		panic("invalid secp256k1 scalar modulus literal")
	}
	return n
}()

// Secp256k1FieldElt is an element of secp256k1's 256-bit base field, stored
// 4-limb-wide conceptually (spec §3) though represented here by a reduced
// math/big.Int — see DESIGN.md.
type Secp256k1FieldElt struct {
	v big.Int
}

func NewSecp256k1Field(x int) Secp256k1FieldElt {
	return Secp256k1FieldElt{modFromInt(x, Secp256k1FieldModulus)}
}

func (Secp256k1FieldElt) Zero() Secp256k1FieldElt { return Secp256k1FieldElt{} }
func (Secp256k1FieldElt) One() Secp256k1FieldElt  { return NewSecp256k1Field(1) }
func (a Secp256k1FieldElt) FromInt(x int) Secp256k1FieldElt { return NewSecp256k1Field(x) }

func (a Secp256k1FieldElt) Add(b Secp256k1FieldElt) Secp256k1FieldElt {
	return Secp256k1FieldElt{modAdd(&a.v, &b.v, Secp256k1FieldModulus)}
}
func (a Secp256k1FieldElt) Sub(b Secp256k1FieldElt) Secp256k1FieldElt {
	return Secp256k1FieldElt{modSub(&a.v, &b.v, Secp256k1FieldModulus)}
}
func (a Secp256k1FieldElt) Mul(b Secp256k1FieldElt) Secp256k1FieldElt {
	return Secp256k1FieldElt{modMul(&a.v, &b.v, Secp256k1FieldModulus)}
}
func (a Secp256k1FieldElt) Neg() Secp256k1FieldElt {
	return Secp256k1FieldElt{modNeg(&a.v, Secp256k1FieldModulus)}
}

func (a Secp256k1FieldElt) Inverse() (Secp256k1FieldElt, error) {
	r, err := modInv(&a.v, Secp256k1FieldModulus)
	return Secp256k1FieldElt{r}, err
}

// Sqrt returns a^((p+1)/4). Because p ≡ 3 mod 4, this is a square root of
// a whenever a is a quadratic residue. No residue check is made: for a
// non-residue the result is not a square root of a.
func (a Secp256k1FieldElt) Sqrt() Secp256k1FieldElt {
	e := new(big.Int).Add(Secp256k1FieldModulus, big.NewInt(1))
	e.Rsh(e, 2)
	var r big.Int
	r.Exp(&a.v, e, Secp256k1FieldModulus)
	return Secp256k1FieldElt{r}
}

func (a Secp256k1FieldElt) Equal(b Secp256k1FieldElt) bool { return a.v.Cmp(&b.v) == 0 }
func (a Secp256k1FieldElt) IsZero() bool                   { return a.v.Sign() == 0 }
func (Secp256k1FieldElt) ByteSize() int                    { return 32 }
func (a Secp256k1FieldElt) Bytes() []byte                  { return bytesLE(&a.v, 32) }
func (Secp256k1FieldElt) FromBytes(b []byte) Secp256k1FieldElt {
	v := fromBytesLE(b)
	v.Mod(&v, Secp256k1FieldModulus)
	return Secp256k1FieldElt{v}
}
func (a Secp256k1FieldElt) String() string { return fieldToString(&a.v, Decimal) }
func (Secp256k1FieldElt) FromString(s string, base NumberBase) (Secp256k1FieldElt, error) {
	v, err := fieldFromString(s, base, Secp256k1FieldModulus)
	return Secp256k1FieldElt{v}, err
}

// BigInt exposes the underlying value for use by package curve, which needs
// direct big.Int access to implement the curve equation and lexicographic
// comparisons.
func (a Secp256k1FieldElt) BigInt() *big.Int { return new(big.Int).Set(&a.v) }

// FromBigInt builds a field element from a (not necessarily reduced)
// big.Int, reducing modulo p.
func FromBigInt(v *big.Int) Secp256k1FieldElt {
	var r big.Int
	r.Mod(v, Secp256k1FieldModulus)
	return Secp256k1FieldElt{r}
}

// Secp256k1ScalarElt is an element of the scalar field (the subgroup order)
// of secp256k1.
type Secp256k1ScalarElt struct {
	v big.Int
}

func NewSecp256k1Scalar(x int) Secp256k1ScalarElt {
	return Secp256k1ScalarElt{modFromInt(x, Secp256k1ScalarModulus)}
}

func (Secp256k1ScalarElt) Zero() Secp256k1ScalarElt { return Secp256k1ScalarElt{} }
func (Secp256k1ScalarElt) One() Secp256k1ScalarElt  { return NewSecp256k1Scalar(1) }
func (a Secp256k1ScalarElt) FromInt(x int) Secp256k1ScalarElt { return NewSecp256k1Scalar(x) }

func (a Secp256k1ScalarElt) Add(b Secp256k1ScalarElt) Secp256k1ScalarElt {
	return Secp256k1ScalarElt{modAdd(&a.v, &b.v, Secp256k1ScalarModulus)}
}
func (a Secp256k1ScalarElt) Sub(b Secp256k1ScalarElt) Secp256k1ScalarElt {
	return Secp256k1ScalarElt{modSub(&a.v, &b.v, Secp256k1ScalarModulus)}
}
func (a Secp256k1ScalarElt) Mul(b Secp256k1ScalarElt) Secp256k1ScalarElt {
	return Secp256k1ScalarElt{modMul(&a.v, &b.v, Secp256k1ScalarModulus)}
}
func (a Secp256k1ScalarElt) Neg() Secp256k1ScalarElt {
	return Secp256k1ScalarElt{modNeg(&a.v, Secp256k1ScalarModulus)}
}

func (a Secp256k1ScalarElt) Inverse() (Secp256k1ScalarElt, error) {
	r, err := modInv(&a.v, Secp256k1ScalarModulus)
	return Secp256k1ScalarElt{r}, err
}

func (a Secp256k1ScalarElt) Equal(b Secp256k1ScalarElt) bool { return a.v.Cmp(&b.v) == 0 }
func (a Secp256k1ScalarElt) IsZero() bool                    { return a.v.Sign() == 0 }
func (Secp256k1ScalarElt) ByteSize() int                     { return 32 }
func (a Secp256k1ScalarElt) Bytes() []byte                   { return bytesLE(&a.v, 32) }
func (Secp256k1ScalarElt) FromBytes(b []byte) Secp256k1ScalarElt {
	v := fromBytesLE(b)
	v.Mod(&v, Secp256k1ScalarModulus)
	return Secp256k1ScalarElt{v}
}
func (a Secp256k1ScalarElt) String() string { return fieldToString(&a.v, Decimal) }
func (Secp256k1ScalarElt) FromString(s string, base NumberBase) (Secp256k1ScalarElt, error) {
	v, err := fieldFromString(s, base, Secp256k1ScalarModulus)
	return Secp256k1ScalarElt{v}, err
}

// BigInt exposes the underlying value, used by package curve for NAF
// scalar-multiplication digit extraction.
func (a Secp256k1ScalarElt) BigInt() *big.Int { return new(big.Int).Set(&a.v) }
