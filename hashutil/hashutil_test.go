package hashutil

import (
	"testing"

	"github.com/scl-mpc/scl/field"
	"github.com/scl-mpc/scl/prg"
	"github.com/stretchr/testify/require"
)

type bytesLeaf []byte

func (b bytesLeaf) Bytes() []byte { return b }

func leaves(xs ...string) []bytesLeaf {
	out := make([]bytesLeaf, len(xs))
	for i, x := range xs {
		out[i] = bytesLeaf(x)
	}
	return out
}

func TestSumDeterministic(t *testing.T) {
	require.Equal(t, Sum(SHA256, []byte("hello")), Sum(SHA256, []byte("hello")))
}

func TestAlgorithmsDisagree(t *testing.T) {
	require.NotEqual(t, Sum(SHA256, []byte("hello")), Sum(SHA3_256, []byte("hello")))
	require.NotEqual(t, Sum(SHA3_256, []byte("hello")), Sum(BLAKE3, []byte("hello")))
}

func TestHasherChaining(t *testing.T) {
	h := NewHasher(SHA256)
	got := h.Update([]byte("foo")).Update([]byte("bar")).Finalize()
	want := Sum(SHA256, []byte("foobar"))
	require.Equal(t, want, got)
}

func TestMerkleRootDependsOnLeafOrder(t *testing.T) {
	a := MerkleRoot(SHA256, leaves("a", "b", "c", "d"))
	b := MerkleRoot(SHA256, leaves("a", "b", "c", "d"))
	require.Equal(t, a, b)

	c := MerkleRoot(SHA256, leaves("a", "b", "d", "c"))
	require.NotEqual(t, a, c)
}

func TestMerkleProveAndVerify(t *testing.T) {
	data := leaves("a", "b", "c", "d", "e")
	root := MerkleRoot(SHA256, data)

	for i, leaf := range data {
		proof, err := MerkleProve(SHA256, data, i)
		require.NoError(t, err)
		require.True(t, MerkleVerify(SHA256, leaf, root, proof), "index %d", i)
	}
}

func TestMerkleVerifyRejectsWrongLeaf(t *testing.T) {
	data := leaves("a", "b", "c", "d")
	root := MerkleRoot(SHA256, data)

	proof, err := MerkleProve(SHA256, data, 1)
	require.NoError(t, err)
	require.False(t, MerkleVerify(SHA256, bytesLeaf("tampered"), root, proof))
}

func TestMerkleProveOutOfRange(t *testing.T) {
	_, err := MerkleProve(SHA256, leaves("a"), 5)
	require.Error(t, err)
}

func TestECDSASignAndVerify(t *testing.T) {
	p, err := prg.New([]byte("ecdsa-test-seed0"))
	require.NoError(t, err)

	sk := field.Secp256k1ScalarElt{}.FromBytes(p.NextN(32))
	pk := DerivePublicKey(sk)

	digest := Sum(SHA256, []byte("message to sign"))
	sig, err := Sign(sk, digest, p)
	require.NoError(t, err)

	require.True(t, Verify(pk, sig, digest))
}

func TestECDSAVerifyRejectsTamperedDigest(t *testing.T) {
	p, err := prg.New([]byte("ecdsa-test-seed1"))
	require.NoError(t, err)

	sk := field.Secp256k1ScalarElt{}.FromBytes(p.NextN(32))
	pk := DerivePublicKey(sk)

	digest := Sum(SHA256, []byte("original message"))
	sig, err := Sign(sk, digest, p)
	require.NoError(t, err)

	tampered := Sum(SHA256, []byte("different message"))
	require.False(t, Verify(pk, sig, tampered))
}

func TestSignatureByteRoundTrip(t *testing.T) {
	p, err := prg.New([]byte("ecdsa-test-seed2"))
	require.NoError(t, err)

	sk := field.Secp256k1ScalarElt{}.FromBytes(p.NextN(32))
	digest := Sum(SHA256, []byte("round trip"))
	sig, err := Sign(sk, digest, p)
	require.NoError(t, err)

	got, err := SignatureFromBytes(sig.Bytes())
	require.NoError(t, err)
	require.True(t, sig.R.Equal(got.R))
	require.True(t, sig.S.Equal(got.S))
}
