// Package minisign verifies minisign signatures.
//
// minisign (https://jedisct1.github.io/minisign/) signs files with
// Ed25519 key pairs. Current signatures are made over the BLAKE2b-512
// digest of the content, so arbitrarily large files can be verified in
// constant memory; legacy signatures sign the content directly. Every
// signature also carries a trusted comment, bound to it by a second,
// global signature.
//
// The package only verifies. Key generation and signing belong to the
// minisign tool itself.
package minisign

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/gridforge/go-minisign/pkg/ed25519"
)

const (
	rawPublicKeySize = 2 + 8 + 32
	rawSignatureSize = 2 + 8 + 64

	// Algorithm tags. Legacy signatures sign the message directly,
	// pre-hashed ones sign its BLAKE2b-512 digest. Public keys may carry
	// either tag.
	algLegacy    = "Ed"
	algPreHashed = "ED"

	trustedCommentPrefix = "trusted comment: "
)

// PublicKey is a decoded minisign public key.
type PublicKey struct {
	untrustedComment string
	keyID            [8]byte
	key              [32]byte
}

// Signature is a decoded minisign signature envelope.
type Signature struct {
	untrustedComment string
	keyID            [8]byte
	signature        [64]byte
	trustedComment   string
	globalSignature  [64]byte
	preHashed        bool
}

// NewPublicKey decodes a public key from its bare base64 payload, the
// form keys travel in when the envelope has been stripped, for example
// as a configuration value.
func NewPublicKey(b64 string) (PublicKey, error) {
	raw, err := decodeBase64(b64)
	if err != nil {
		return PublicKey{}, err
	}
	if len(raw) != rawPublicKeySize {
		return PublicKey{}, fmt.Errorf("%w: public key payload is %d bytes, want %d", ErrWrongLength, len(raw), rawPublicKeySize)
	}
	if alg := string(raw[:2]); alg != algLegacy && alg != algPreHashed {
		return PublicKey{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}

	var pk PublicKey
	copy(pk.keyID[:], raw[2:10])
	copy(pk.key[:], raw[10:])
	return pk, nil
}

// DecodePublicKey decodes a public key from its two-line envelope, as
// found in a minisign.pub file.
func DecodePublicKey(text string) (PublicKey, error) {
	lines := splitLines(text)
	if len(lines) < 2 {
		return PublicKey{}, fmt.Errorf("%w: public key needs a comment line and a payload line", ErrInvalidEncoding)
	}

	pk, err := NewPublicKey(lines[1])
	if err != nil {
		return PublicKey{}, err
	}
	pk.untrustedComment = lines[0]
	return pk, nil
}

// NewPublicKeyFromFile loads a public key from a minisign.pub file.
func NewPublicKeyFromFile(path string) (PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PublicKey{}, errors.Wrapf(err, "failed to read public key file %q", path)
	}
	return DecodePublicKey(string(data))
}

// KeyID returns the identifier of the key pair.
func (pk PublicKey) KeyID() [8]byte {
	return pk.keyID
}

// UntrustedComment returns the comment line of the envelope, verbatim.
// It is empty for keys constructed from a bare base64 payload. The
// comment is not covered by any signature.
func (pk PublicKey) UntrustedComment() string {
	return pk.untrustedComment
}

// DecodeSignature decodes a signature from its four-line envelope:
// untrusted comment, base64 payload, trusted comment, base64 global
// signature. Lines beyond the fourth are ignored.
func DecodeSignature(text string) (Signature, error) {
	lines := splitLines(text)
	if len(lines) < 4 {
		return Signature{}, fmt.Errorf("%w: signature needs four lines, got %d", ErrInvalidEncoding, len(lines))
	}

	raw, err := decodeBase64(lines[1])
	if err != nil {
		return Signature{}, err
	}
	if len(raw) != rawSignatureSize {
		return Signature{}, fmt.Errorf("%w: signature payload is %d bytes, want %d", ErrWrongLength, len(raw), rawSignatureSize)
	}

	global, err := decodeBase64(lines[3])
	if err != nil {
		return Signature{}, err
	}
	if len(global) != ed25519.SignatureSize {
		return Signature{}, fmt.Errorf("%w: global signature is %d bytes, want %d", ErrWrongLength, len(global), ed25519.SignatureSize)
	}

	if !strings.HasPrefix(lines[2], trustedCommentPrefix) {
		head := lines[2]
		if len(head) > len(trustedCommentPrefix) {
			head = head[:len(trustedCommentPrefix)]
		}
		return Signature{}, fmt.Errorf("%w: line starts with %q", ErrMissingTrustedComment, head)
	}

	var preHashed bool
	switch string(raw[:2]) {
	case algLegacy:
		preHashed = false
	case algPreHashed:
		preHashed = true
	default:
		return Signature{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, raw[:2])
	}

	sig := Signature{
		untrustedComment: lines[0],
		trustedComment:   strings.TrimPrefix(lines[2], trustedCommentPrefix),
		preHashed:        preHashed,
	}
	copy(sig.keyID[:], raw[2:10])
	copy(sig.signature[:], raw[10:])
	copy(sig.globalSignature[:], global)
	return sig, nil
}

// NewSignatureFromFile loads a signature from a .minisig file.
func NewSignatureFromFile(path string) (Signature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Signature{}, errors.Wrapf(err, "failed to read signature file %q", path)
	}
	return DecodeSignature(string(data))
}

// KeyID returns the identifier of the key pair the signature was made
// with.
func (sig Signature) KeyID() [8]byte {
	return sig.keyID
}

// UntrustedComment returns the first line of the envelope, verbatim. It
// is not covered by any signature.
func (sig Signature) UntrustedComment() string {
	return sig.untrustedComment
}

// TrustedComment returns the trusted comment without its line marker.
// It is covered by the global signature, so it can only be trusted after
// a successful verification.
func (sig Signature) TrustedComment() string {
	return sig.trustedComment
}

// IsPreHashed returns true when the signature was made over the
// BLAKE2b-512 digest of the content. Only such signatures can be
// verified as a stream.
func (sig Signature) IsPreHashed() bool {
	return sig.preHashed
}

func decodeBase64(s string) ([]byte, error) {
	raw, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, err)
	}
	return raw, nil
}

// splitLines splits envelope text into lines. Lines end with \n or
// \r\n, and the terminator of the last line is optional.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	terminated := strings.HasSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	if terminated {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		if terminated || i < len(lines)-1 {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
	}
	return lines
}
