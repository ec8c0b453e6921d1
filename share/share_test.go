package share

import (
	"testing"

	"github.com/scl-mpc/scl/algebra"
	"github.com/scl-mpc/scl/curve"
	"github.com/scl-mpc/scl/field"
	"github.com/scl-mpc/scl/prg"
	"github.com/stretchr/testify/require"
)

func testPRG(t *testing.T, tag string) *prg.PRG {
	t.Helper()
	p, err := prg.New([]byte(tag))
	require.NoError(t, err)
	return p
}

func TestAdditiveRoundTrip(t *testing.T) {
	p := testPRG(t, "additive")
	secret := field.NewMersenne61(12345)

	shares, err := CreateAdditiveShares(secret, 5, p)
	require.NoError(t, err)
	require.Equal(t, 5, shares.Size())

	got := ReconstructAdditive(shares)
	require.True(t, got.Equal(secret))
}

func TestShamirReconstructPassive(t *testing.T) {
	p := testPRG(t, "shamir-passive")
	secret := field.NewMersenne61(999)

	shares, err := CreateShares(secret, 7, 2, p)
	require.NoError(t, err)

	got, err := ReconstructPassiveCanonical(shares, 2)
	require.NoError(t, err)
	require.True(t, got.Equal(secret))
}

func TestShamirReconstructDetectSucceedsOnCleanShares(t *testing.T) {
	p := testPRG(t, "shamir-detect-clean")
	secret := field.NewMersenne61(42)

	shares, err := CreateShares(secret, 9, 2, p)
	require.NoError(t, err)

	got, err := ReconstructDetectCanonical(shares, 2)
	require.NoError(t, err)
	require.True(t, got.Equal(secret))
}

func TestShamirReconstructDetectFailsOnCorruptedShare(t *testing.T) {
	p := testPRG(t, "shamir-detect-corrupt")
	secret := field.NewMersenne61(7)

	shares, err := CreateShares(secret, 9, 2, p)
	require.NoError(t, err)

	corrupted := shares.Slice()
	corrupted[3] = corrupted[3].Add(field.NewMersenne61(1))
	badShares := algebra.VectorFromSlice(corrupted)

	_, err = ReconstructDetectCanonical(badShares, 2)
	require.Error(t, err)
}

func TestShamirReconstructRobustCorrectsErrors(t *testing.T) {
	p := testPRG(t, "shamir-robust")
	threshold := 2
	n := 3*threshold + 1
	secret := field.NewMersenne61(555)

	shares, err := CreateShares(secret, n, threshold, p)
	require.NoError(t, err)

	corrupted := shares.Slice()
	corrupted[0] = corrupted[0].Add(field.NewMersenne61(1))
	corrupted[5] = corrupted[5].Add(field.NewMersenne61(2))
	badShares := algebra.VectorFromSlice(corrupted)

	got, err := ReconstructRobustCanonical(badShares, threshold)
	require.NoError(t, err)
	require.True(t, got.Equal(secret))
}

func TestFeldmanShareVerifyAndReconstruct(t *testing.T) {
	p := testPRG(t, "feldman")
	var zero field.Secp256k1ScalarElt
	secret := zero.FromInt(31337)

	bundle, err := FeldmanShare(secret, 5, 2, p)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		ok, err := FeldmanVerify(bundle.Shares.At(i), bundle.Commitments, i, 2)
		require.NoError(t, err)
		require.True(t, ok, "share %d should verify", i)
	}

	got, err := ReconstructPassiveCanonical(bundle.Shares, 2)
	require.NoError(t, err)
	require.True(t, got.Equal(secret))
}

func TestFeldmanVerifyRejectsTamperedShare(t *testing.T) {
	p := testPRG(t, "feldman-tamper")
	var zero field.Secp256k1ScalarElt
	secret := zero.FromInt(10)

	bundle, err := FeldmanShare(secret, 4, 1, p)
	require.NoError(t, err)

	tampered := bundle.Shares.At(0).Add(zero.FromInt(1))
	ok, err := FeldmanVerify(tampered, bundle.Commitments, 0, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPedersenShareVerifyAndReconstruct(t *testing.T) {
	p := testPRG(t, "pedersen")
	var zero field.Secp256k1ScalarElt
	secret := zero.FromInt(2024)

	hScalar := zero.FromInt(777)
	h := curve.Generator().ScalarMul(hScalar)

	sharing, err := PedersenShareSecretRandomized(secret, 2, 5, p, h)
	require.NoError(t, err)

	shareVals := algebra.NewVector[field.Secp256k1ScalarElt](5)
	for i := 0; i < 5; i++ {
		bundle := sharing.ShareForParty(i)
		ok, err := PedersenVerify(bundle, i, h)
		require.NoError(t, err)
		require.True(t, ok, "party %d share should verify", i)
		shareVals.Set(i, bundle.Opening.At(0))
	}

	got, err := ReconstructPassiveCanonical(shareVals, 2)
	require.NoError(t, err)
	require.True(t, got.Equal(secret))
}

func TestPedersenVerifyRejectsTamperedOpening(t *testing.T) {
	p := testPRG(t, "pedersen-tamper")
	var zero field.Secp256k1ScalarElt
	secret := zero.FromInt(17)
	h := curve.Generator().ScalarMul(zero.FromInt(3))

	sharing, err := PedersenShareSecretRandomized(secret, 1, 3, p, h)
	require.NoError(t, err)

	bundle := sharing.ShareForParty(0)
	bundle.Opening = bundle.Opening.Add(algebra.NewArray(zero.FromInt(1), zero.FromInt(0)))

	ok, err := PedersenVerify(bundle, 0, h)
	require.NoError(t, err)
	require.False(t, ok)
}
