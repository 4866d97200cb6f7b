package minisign

import (
	"bytes"
	stded "crypto/ed25519"
	"crypto/sha512"
	"encoding/base64"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridforge/go-minisign/pkg/blake2b"
)

// Fixture from the minisign documentation: same content signature as
// testPreHashedSignature, bound to a different trusted comment.
const testDocSignature = "untrusted comment: signature from minisign secret key\n" +
	"RUQf6LRCGA9i559r3g7V1qNyJDApGip8MfqcadIgT9CuhV3EMhHoN1mGTkUidF/z7SrlQgXdy8ofjb7bNJJylDOocrCo8KLzZwo=\n" +
	"trusted comment: timestamp:1633700835\tfile:test\tprehashed\n" +
	"wLMDjy9FLAuxZ3q4NlEvkgtyhrr0gtTu6KC4KBJdITbbOeAi1zBIYo0v4iTgt8jJpIidRJnp94ABQkJAgAooBQ=="

func fixtureKey(t *testing.T) PublicKey {
	t.Helper()
	pk, err := NewPublicKey(testPublicKeyB64)
	require.NoError(t, err)
	return pk
}

func fixtureSignature(t *testing.T, text string) Signature {
	t.Helper()
	sig, err := DecodeSignature(text)
	require.NoError(t, err)
	return sig
}

// foreignKey returns a key with the fixture key material but a different
// key id.
func foreignKey(t *testing.T) PublicKey {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(testPublicKeyB64)
	require.NoError(t, err)
	raw[2] ^= 0xff
	pk, err := NewPublicKey(base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)
	return pk
}

func TestVerifyLegacy(t *testing.T) {
	pk := fixtureKey(t)
	sig := fixtureSignature(t, testLegacySignature)

	require.NoError(t, pk.Verify([]byte("test"), sig, true))

	err := pk.Verify([]byte("Test"), sig, true)
	assert.ErrorIs(t, err, ErrDataSignature)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	err = pk.Verify([]byte("test"), sig, false)
	assert.ErrorIs(t, err, ErrLegacyVerification)
	assert.ErrorIs(t, err, ErrUnsupported)

	// The envelope form of the same key verifies identically.
	envKey, err := DecodePublicKey(testPublicKeyEnvelope)
	require.NoError(t, err)
	require.NoError(t, envKey.Verify([]byte("test"), sig, true))
}

func TestVerifyPreHashed(t *testing.T) {
	pk := fixtureKey(t)
	sig := fixtureSignature(t, testPreHashedSignature)

	require.NoError(t, pk.Verify([]byte("test"), sig, false))
	require.NoError(t, pk.Verify([]byte("test"), sig, true), "allowLegacy only affects legacy signatures")

	err := pk.Verify([]byte("Test"), sig, false)
	assert.ErrorIs(t, err, ErrDataSignature)
}

func TestVerifyDocExampleFixture(t *testing.T) {
	pk := fixtureKey(t)
	sig := fixtureSignature(t, testDocSignature)

	assert.Equal(t, "timestamp:1633700835\tfile:test\tprehashed", sig.TrustedComment())
	require.NoError(t, pk.Verify([]byte("test"), sig, false))
}

func TestVerifyKeyIDMismatch(t *testing.T) {
	other := foreignKey(t)
	legacy := fixtureSignature(t, testLegacySignature)
	pre := fixtureSignature(t, testPreHashedSignature)

	assert.ErrorIs(t, other.Verify([]byte("test"), pre, false), ErrKeyID)

	// The key id gate fires before the legacy policy gate.
	assert.ErrorIs(t, other.Verify([]byte("test"), legacy, false), ErrKeyID)
}

func TestVerifyTamperedKeyPoint(t *testing.T) {
	raw, err := base64.StdEncoding.DecodeString(testPublicKeyB64)
	require.NoError(t, err)
	raw[10] ^= 0x01
	tampered, err := NewPublicKey(base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)

	sig := fixtureSignature(t, testPreHashedSignature)

	// The key id is untouched, so the identity gate passes and the
	// content signature check is what rejects.
	err = tampered.Verify([]byte("test"), sig, false)
	assert.NotErrorIs(t, err, ErrKeyID)
	assert.ErrorIs(t, err, ErrDataSignature)
}

func TestVerifyRepeatable(t *testing.T) {
	pk := fixtureKey(t)
	sig := fixtureSignature(t, testPreHashedSignature)

	for i := 0; i < 3; i++ {
		require.NoError(t, pk.Verify([]byte("test"), sig, false))
	}
	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, pk.Verify([]byte("Test"), sig, false), ErrDataSignature)
	}
}

func TestVerifyTrustedCommentBinding(t *testing.T) {
	pk := fixtureKey(t)

	tampered := strings.Replace(testPreHashedSignature, "timestamp:1556193335", "timestamp:1556193336", 1)
	sig := fixtureSignature(t, tampered)

	err := pk.Verify([]byte("test"), sig, false)
	assert.ErrorIs(t, err, ErrCommentSignature)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyGlobalSignatureTamper(t *testing.T) {
	pk := fixtureKey(t)

	// A valid global signature from another envelope does not bind this
	// one.
	lines := strings.Split(testPreHashedSignature, "\n")
	lines[3] = strings.Split(testLegacySignature, "\n")[3]
	sig := fixtureSignature(t, strings.Join(lines, "\n"))

	err := pk.Verify([]byte("test"), sig, false)
	assert.ErrorIs(t, err, ErrCommentSignature)
}

func TestVerifyStream(t *testing.T) {
	pk := fixtureKey(t)
	sig := fixtureSignature(t, testPreHashedSignature)

	splits := [][]string{
		{"test"},
		{"te", "st"},
		{"t", "e", "s", "t"},
		{"", "test", ""},
	}
	for _, chunks := range splits {
		v, err := pk.VerifyStream(sig)
		require.NoError(t, err)
		for _, chunk := range chunks {
			v.Update([]byte(chunk))
		}
		assert.NoError(t, v.Finalize(), "chunks %q", chunks)
	}
}

func TestVerifyStreamRandomSplits(t *testing.T) {
	seed := sha512.Sum512([]byte("random-split-seed"))
	priv := stded.NewKeyFromSeed(seed[:stded.SeedSize])
	pub := priv.Public().(stded.PublicKey)

	keyID := []byte{8, 7, 6, 5, 4, 3, 2, 1}
	pkPayload := append(append([]byte(algLegacy), keyID...), pub...)
	pk, err := NewPublicKey(base64.StdEncoding.EncodeToString(pkPayload))
	require.NoError(t, err)

	// Several hash blocks of content, so the splits land on both sides
	// of block boundaries.
	content := bytes.Repeat([]byte("0123456789abcdef"), 40)
	trusted := "timestamp:1700000001\tfile:random"
	digest := blake2b.Sum512(content)
	contentSig := stded.Sign(priv, digest[:])
	global := stded.Sign(priv, append(append([]byte(nil), contentSig...), trusted...))

	payload := append(append([]byte(algPreHashed), keyID...), contentSig...)
	sig, err := DecodeSignature("untrusted comment: random split trials\n" +
		base64.StdEncoding.EncodeToString(payload) + "\n" +
		trustedCommentPrefix + trusted + "\n" +
		base64.StdEncoding.EncodeToString(global))
	require.NoError(t, err)

	require.NoError(t, pk.Verify(content, sig, false))

	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		v, err := pk.VerifyStream(sig)
		require.NoError(t, err)

		rest := content
		for len(rest) > 0 {
			n := rng.Intn(len(rest)) + 1
			v.Update(rest[:n])
			rest = rest[n:]
		}
		require.NoError(t, v.Finalize(), "trial %d", trial)
	}
}

func TestVerifyStreamWrongContent(t *testing.T) {
	pk := fixtureKey(t)
	sig := fixtureSignature(t, testPreHashedSignature)

	// No updates at all is the digest of an empty message, which this
	// signature does not cover.
	v, err := pk.VerifyStream(sig)
	require.NoError(t, err)
	assert.ErrorIs(t, v.Finalize(), ErrDataSignature)
	assert.ErrorIs(t, pk.Verify(nil, sig, false), ErrDataSignature)

	v, err = pk.VerifyStream(sig)
	require.NoError(t, err)
	v.Update([]byte("wrong content"))
	assert.ErrorIs(t, v.Finalize(), ErrDataSignature)
}

func TestVerifyStreamLegacyRefused(t *testing.T) {
	pk := fixtureKey(t)
	legacy := fixtureSignature(t, testLegacySignature)

	_, err := pk.VerifyStream(legacy)
	assert.ErrorIs(t, err, ErrLegacyStream)
	assert.ErrorIs(t, err, ErrUnsupported)

	// Key id mismatch is reported before the legacy-mode rejection.
	_, err = foreignKey(t).VerifyStream(legacy)
	assert.ErrorIs(t, err, ErrKeyID)
}

func TestVerifyStreamFinalizeOnce(t *testing.T) {
	pk := fixtureKey(t)
	sig := fixtureSignature(t, testPreHashedSignature)

	v, err := pk.VerifyStream(sig)
	require.NoError(t, err)
	v.Update([]byte("test"))
	require.NoError(t, v.Finalize())

	assert.ErrorIs(t, v.Finalize(), ErrFinalized)

	// Updates after finalization are dropped.
	v.Update([]byte("more"))
	assert.ErrorIs(t, v.Finalize(), ErrFinalized)
}

func TestVerifyConstructedEnvelopes(t *testing.T) {
	seed := sha512.Sum512([]byte("constructed-envelope-seed"))
	priv := stded.NewKeyFromSeed(seed[:stded.SeedSize])
	pub := priv.Public().(stded.PublicKey)

	keyID := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	pkPayload := append(append([]byte(algLegacy), keyID...), pub...)
	pk, err := NewPublicKey(base64.StdEncoding.EncodeToString(pkPayload))
	require.NoError(t, err)

	message := []byte("content signed on the fly")
	trusted := "timestamp:1700000000\tfile:constructed"

	envelope := func(tag string, content []byte) string {
		global := stded.Sign(priv, append(append([]byte(nil), content...), trusted...))
		payload := append(append([]byte(tag), keyID...), content...)
		return "untrusted comment: constructed for tests\n" +
			base64.StdEncoding.EncodeToString(payload) + "\n" +
			trustedCommentPrefix + trusted + "\n" +
			base64.StdEncoding.EncodeToString(global)
	}

	digest := blake2b.Sum512(message)
	pre, err := DecodeSignature(envelope(algPreHashed, stded.Sign(priv, digest[:])))
	require.NoError(t, err)

	require.NoError(t, pk.Verify(message, pre, false))
	assert.ErrorIs(t, pk.Verify([]byte("different content"), pre, false), ErrDataSignature)

	v, err := pk.VerifyStream(pre)
	require.NoError(t, err)
	v.Update(message[:10])
	v.Update(message[10:])
	require.NoError(t, v.Finalize())

	legacy, err := DecodeSignature(envelope(algLegacy, stded.Sign(priv, message)))
	require.NoError(t, err)

	require.NoError(t, pk.Verify(message, legacy, true))
	assert.ErrorIs(t, pk.Verify(message, legacy, false), ErrLegacyVerification)
}
