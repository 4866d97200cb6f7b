// Package ed25519 implements signature verification for Ed25519, the
// EdDSA scheme over the edwards25519 curve with SHA-512 as the challenge
// hash.
//
// Only the verification half of the scheme is provided. Signatures whose
// S component is not fully reduced modulo the group order are rejected,
// as are public keys that are all zero or encode the neutral element.
package ed25519

import (
	"crypto/sha512"
	"crypto/subtle"
	"strconv"

	"github.com/gridforge/go-minisign/pkg/edwards25519"
)

const (
	// PublicKeySize is the size, in bytes, of public keys accepted by this package.
	PublicKeySize = 32
	// SignatureSize is the size, in bytes, of signatures verified by this package.
	SignatureSize = 64
)

// Verify reports whether sig is a valid signature of message by publicKey.
// It panics if len(publicKey) is not PublicKeySize.
func Verify(publicKey, message, sig []byte) bool {
	if l := len(publicKey); l != PublicKeySize {
		panic("ed25519: bad public key length: " + strconv.Itoa(l))
	}
	if len(sig) != SignatureSize {
		return false
	}

	var s [32]byte
	copy(s[:], sig[32:])
	if !edwards25519.ScMinimal(&s) {
		return false
	}

	var pub [32]byte
	copy(pub[:], publicKey)
	if edwards25519.IsIdentity(&pub) {
		return false
	}

	// Decode A and negate it, so that the final equation can be checked
	// as R == [k](-A) + [S]B.
	var A edwards25519.ExtendedGroupElement
	if !A.FromBytes(&pub) {
		return false
	}
	edwards25519.FeNeg(&A.X, &A.X)
	edwards25519.FeNeg(&A.T, &A.T)

	var zero byte
	for _, b := range publicKey {
		zero |= b
	}
	if zero == 0 {
		return false
	}

	h := sha512.New()
	h.Write(sig[:32])
	h.Write(publicKey)
	h.Write(message)
	var digest [64]byte
	h.Sum(digest[:0])

	var k [32]byte
	edwards25519.ScReduce(&k, &digest)

	var R edwards25519.ProjectiveGroupElement
	edwards25519.GeDoubleScalarMultVartime(&R, &k, &A, &s)

	var checkR [32]byte
	R.ToBytes(&checkR)
	return subtle.ConstantTimeCompare(sig[:32], checkR[:]) == 1
}
