package edwards25519

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"testing"

	ref "filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStream derives n deterministic pseudo-random bytes from tag.
func testStream(tag string, n int) []byte {
	out := make([]byte, 0, n)
	block := sha512.Sum512([]byte(tag))
	for len(out) < n {
		out = append(out, block[:]...)
		block = sha512.Sum512(block[:])
	}
	return out[:n]
}

func TestFieldRoundTripMatchesReference(t *testing.T) {
	for i := 0; i < 32; i++ {
		raw := testStream(fmt.Sprintf("fe-%d", i), 32)

		var src [32]byte
		copy(src[:], raw)

		var fe FieldElement
		FeFromBytes(&fe, &src)
		var got [32]byte
		FeToBytes(&got, &fe)

		want, err := new(field.Element).SetBytes(raw)
		require.NoError(t, err)
		assert.Equal(t, want.Bytes(), got[:], "input %x", raw)
	}
}

func TestFieldArithmeticMatchesReference(t *testing.T) {
	for i := 0; i < 16; i++ {
		aRaw := testStream(fmt.Sprintf("fe-arith-a-%d", i), 32)
		bRaw := testStream(fmt.Sprintf("fe-arith-b-%d", i), 32)

		var aBytes, bBytes [32]byte
		copy(aBytes[:], aRaw)
		copy(bBytes[:], bRaw)

		var a, b FieldElement
		FeFromBytes(&a, &aBytes)
		FeFromBytes(&b, &bBytes)

		refA, err := new(field.Element).SetBytes(aRaw)
		require.NoError(t, err)
		refB, err := new(field.Element).SetBytes(bRaw)
		require.NoError(t, err)

		var out FieldElement
		var got [32]byte

		FeMul(&out, &a, &b)
		FeToBytes(&got, &out)
		assert.Equal(t, new(field.Element).Multiply(refA, refB).Bytes(), got[:], "mul %d", i)

		FeSquare(&out, &a)
		FeToBytes(&got, &out)
		assert.Equal(t, new(field.Element).Square(refA).Bytes(), got[:], "square %d", i)

		FeSquare2(&out, &a)
		FeToBytes(&got, &out)
		refSq := new(field.Element).Square(refA)
		assert.Equal(t, new(field.Element).Add(refSq, refSq).Bytes(), got[:], "square2 %d", i)

		FeInvert(&out, &a)
		FeToBytes(&got, &out)
		assert.Equal(t, new(field.Element).Invert(refA).Bytes(), got[:], "invert %d", i)
	}
}

func TestPointDecompressionMatchesReference(t *testing.T) {
	// Sweep the low byte of the encoding with the rest zero: roughly half
	// of these y coordinates lie on the curve, the rest must be rejected
	// by both implementations.
	for b0 := 0; b0 < 256; b0++ {
		var enc [32]byte
		enc[0] = byte(b0)

		var p ExtendedGroupElement
		ok := p.FromBytes(&enc)

		_, err := new(ref.Point).SetBytes(enc[:])
		if err != nil {
			assert.False(t, ok, "y=%d accepted, reference rejects", b0)
			continue
		}
		require.True(t, ok, "y=%d rejected, reference accepts", b0)

		var got [32]byte
		p.ToBytes(&got)
		assert.Equal(t, enc, got, "y=%d", b0)
	}
}

func TestPointRoundTripMatchesReference(t *testing.T) {
	for i := 0; i < 16; i++ {
		s, err := ref.NewScalar().SetUniformBytes(testStream(fmt.Sprintf("point-%d", i), 64))
		require.NoError(t, err)
		want := new(ref.Point).ScalarBaseMult(s).Bytes()

		var enc [32]byte
		copy(enc[:], want)

		var p ExtendedGroupElement
		require.True(t, p.FromBytes(&enc))

		var got [32]byte
		p.ToBytes(&got)
		assert.Equal(t, want, got[:], "case %d", i)
	}
}

func TestScReduceMatchesReference(t *testing.T) {
	for i := 0; i < 32; i++ {
		var wide [64]byte
		copy(wide[:], testStream(fmt.Sprintf("scalar-%d", i), 64))

		var got [32]byte
		ScReduce(&got, &wide)

		want, err := ref.NewScalar().SetUniformBytes(wide[:])
		require.NoError(t, err)
		assert.Equal(t, want.Bytes(), got[:], "case %d", i)
	}
}

func TestScMinimal(t *testing.T) {
	var s [32]byte
	assert.True(t, ScMinimal(&s), "zero")

	s[0] = 1
	assert.True(t, ScMinimal(&s), "one")

	l, err := hex.DecodeString("edd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010")
	require.NoError(t, err)
	copy(s[:], l)
	assert.False(t, ScMinimal(&s), "group order")

	s[0] = 0xec
	assert.True(t, ScMinimal(&s), "group order minus one")

	s[0] = 0xee
	assert.False(t, ScMinimal(&s), "group order plus one")

	for i := range s {
		s[i] = 0xff
	}
	assert.False(t, ScMinimal(&s), "all ones")
}

func TestIsIdentity(t *testing.T) {
	var s [32]byte
	s[0] = 1
	assert.True(t, IsIdentity(&s), "canonical identity")

	s[31] = 0x80
	assert.True(t, IsIdentity(&s), "identity with sign bit")

	s[31] = 0
	s[1] = 1
	assert.False(t, IsIdentity(&s), "y=257")

	var base [32]byte
	base[0] = 0x58
	for i := 1; i < 32; i++ {
		base[i] = 0x66
	}
	assert.False(t, IsIdentity(&base), "base point")

	var zero [32]byte
	assert.False(t, IsIdentity(&zero), "zero encoding")
}

func TestDoubleScalarMultMatchesReference(t *testing.T) {
	for i := 0; i < 16; i++ {
		aScalar, err := ref.NewScalar().SetUniformBytes(testStream(fmt.Sprintf("dsm-a-%d", i), 64))
		require.NoError(t, err)
		bScalar, err := ref.NewScalar().SetUniformBytes(testStream(fmt.Sprintf("dsm-b-%d", i), 64))
		require.NoError(t, err)
		pScalar, err := ref.NewScalar().SetUniformBytes(testStream(fmt.Sprintf("dsm-p-%d", i), 64))
		require.NoError(t, err)

		refPoint := new(ref.Point).ScalarBaseMult(pScalar)
		want := new(ref.Point).VarTimeDoubleScalarBaseMult(aScalar, refPoint, bScalar).Bytes()

		var enc, a, b [32]byte
		copy(enc[:], refPoint.Bytes())
		copy(a[:], aScalar.Bytes())
		copy(b[:], bScalar.Bytes())

		var A ExtendedGroupElement
		require.True(t, A.FromBytes(&enc))

		var r ProjectiveGroupElement
		GeDoubleScalarMultVartime(&r, &a, &A, &b)

		var got [32]byte
		r.ToBytes(&got)
		assert.Equal(t, want, got[:], "case %d", i)
	}
}

func TestDoubleScalarMultZeroScalars(t *testing.T) {
	// 0*A + 0*B is the neutral element, which encodes as y=1 with a
	// positive x.
	enc, err := hex.DecodeString("5866666666666666666666666666666666666666666666666666666666666666")
	require.NoError(t, err)

	var base [32]byte
	copy(base[:], enc)

	var A ExtendedGroupElement
	require.True(t, A.FromBytes(&base))

	var zero [32]byte
	var r ProjectiveGroupElement
	GeDoubleScalarMultVartime(&r, &zero, &A, &zero)

	var got, want [32]byte
	want[0] = 1
	r.ToBytes(&got)
	assert.Equal(t, want, got)
}
