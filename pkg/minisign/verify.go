package minisign

import (
	"hash"

	"github.com/gridforge/go-minisign/pkg/blake2b"
	"github.com/gridforge/go-minisign/pkg/ed25519"
)

// Verify checks that sig is a valid signature of message by the key pair
// of pk, and that the trusted comment is bound to it by the global
// signature. Legacy signatures are refused unless allowLegacy is set;
// it should only be set to support signatures made by old minisign
// releases.
func (pk PublicKey) Verify(message []byte, sig Signature, allowLegacy bool) error {
	if pk.keyID != sig.keyID {
		return ErrKeyID
	}

	if sig.preHashed {
		digest := blake2b.Sum512(message)
		message = digest[:]
	} else if !allowLegacy {
		return ErrLegacyVerification
	}

	return pk.verifySignature(message, sig)
}

// VerifyStream prepares incremental verification of sig, for content too
// large to hold in memory. Only pre-hashed signatures can be verified
// this way: the content signature covers the running BLAKE2b-512 digest.
func (pk PublicKey) VerifyStream(sig Signature) (*StreamVerifier, error) {
	if pk.keyID != sig.keyID {
		return nil, ErrKeyID
	}
	if !sig.preHashed {
		return nil, ErrLegacyStream
	}

	return &StreamVerifier{
		publicKey: pk,
		signature: sig,
		hash:      blake2b.New512(),
	}, nil
}

// verifySignature checks the content signature over the effective
// message, then the global signature over the raw signature bytes
// followed by the trusted comment.
func (pk PublicKey) verifySignature(effective []byte, sig Signature) error {
	if !ed25519.Verify(pk.key[:], effective, sig.signature[:]) {
		return ErrDataSignature
	}

	global := make([]byte, 0, len(sig.signature)+len(sig.trustedComment))
	global = append(global, sig.signature[:]...)
	global = append(global, sig.trustedComment...)
	if !ed25519.Verify(pk.key[:], global, sig.globalSignature[:]) {
		return ErrCommentSignature
	}
	return nil
}

// StreamVerifier verifies a pre-hashed signature against content fed in
// chunks. It is consumed by Finalize and must not be reused afterwards.
type StreamVerifier struct {
	publicKey PublicKey
	signature Signature
	hash      hash.Hash
	finalized bool
}

// Update absorbs the next chunk of the content. How the content is split
// into chunks does not matter. Calls after Finalize are dropped.
func (v *StreamVerifier) Update(chunk []byte) {
	if v.finalized {
		return
	}
	v.hash.Write(chunk)
}

// Finalize completes the digest and verifies the signature over it. The
// verifier is consumed: any further Finalize reports ErrFinalized.
func (v *StreamVerifier) Finalize() error {
	if v.finalized {
		return ErrFinalized
	}
	v.finalized = true

	return v.publicKey.verifySignature(v.hash.Sum(nil), v.signature)
}
