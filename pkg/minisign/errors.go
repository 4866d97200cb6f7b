package minisign

import (
	"errors"
	"fmt"
)

// Kind sentinels. Every error returned by this package wraps exactly one
// of these, so callers can match the broad class with errors.Is without
// enumerating the granular sentinels below.
var (
	// ErrMalformed covers decode failures: truncated envelopes,
	// undecodable base64, wrong payload sizes, unknown algorithm tags.
	ErrMalformed = errors.New("minisign: malformed input")

	// ErrUnsupported covers policy failures, where the input is well
	// formed but the requested operation is refused for its mode.
	ErrUnsupported = errors.New("minisign: unsupported operation")

	// ErrKeyID reports a signature issued by a different key pair than
	// the verifying public key.
	ErrKeyID = errors.New("minisign: signature key id mismatch")

	// ErrInvalidSignature covers cryptographic rejection of the content
	// signature or of the global signature.
	ErrInvalidSignature = errors.New("minisign: invalid signature")

	// ErrFinalized reports reuse of a StreamVerifier after Finalize.
	ErrFinalized = errors.New("minisign: stream verifier already finalized")
)

// Granular sentinels, each wrapping its kind.
var (
	// ErrInvalidEncoding reports a missing envelope line or base64 text
	// that does not decode.
	ErrInvalidEncoding = fmt.Errorf("%w: invalid encoding", ErrMalformed)

	// ErrWrongLength reports a decoded payload of the wrong size.
	ErrWrongLength = fmt.Errorf("%w: wrong length", ErrMalformed)

	// ErrUnknownAlgorithm reports an algorithm tag other than the two
	// Ed25519 variants.
	ErrUnknownAlgorithm = fmt.Errorf("%w: unknown signature algorithm", ErrMalformed)

	// ErrMissingTrustedComment reports a third signature line that does
	// not carry the "trusted comment: " marker.
	ErrMissingTrustedComment = fmt.Errorf("%w: missing trusted comment marker", ErrMalformed)

	// ErrLegacyVerification reports a legacy signature passed to Verify
	// without the allowLegacy opt-in.
	ErrLegacyVerification = fmt.Errorf("%w: legacy signature requires explicit opt-in", ErrUnsupported)

	// ErrLegacyStream reports a legacy signature passed to VerifyStream,
	// which only supports the pre-hashed mode.
	ErrLegacyStream = fmt.Errorf("%w: legacy signature cannot be verified as a stream", ErrUnsupported)

	// ErrDataSignature reports that the content signature did not verify.
	ErrDataSignature = fmt.Errorf("%w: data signature verification failed", ErrInvalidSignature)

	// ErrCommentSignature reports that the global signature binding the
	// trusted comment did not verify.
	ErrCommentSignature = fmt.Errorf("%w: trusted comment signature verification failed", ErrInvalidSignature)
)
