package hallmark

import (
	"crypto/sha256"
	"hash"
	"io"
)

// MAC computes an HMAC-SHA2-256 tag over a stream of message bytes.
//
// A MAC holds a single normalized key for its whole lifetime. Each message is authenticated
// with a prime/absorb/finish cycle: New primes the state, Write absorbs message bytes, and
// Finish produces the tag and closes the cycle. Reinit begins a new cycle under the same key.
// Calling Write or Finish after Finish without an intervening Reinit is a contract violation
// and produces garbage.
//
// A MAC is not safe for concurrent use.
type MAC struct {
	key       [BlockSize]byte
	digest    hash.Hash
	rekeyable bool
}

// New returns a MAC keyed with the given key, primed and ready to absorb a message. A key
// longer than BlockSize bytes is replaced with its SHA2-256 digest, per FIPS 198; shorter
// keys are zero-padded to BlockSize.
func New(key []byte) *MAC {
	m := &MAC{digest: sha256.New()}

	if len(key) > BlockSize {
		// Replace an oversized key with its digest.
		_, _ = m.digest.Write(key)
		m.digest.Sum(m.key[:0])
	} else {
		copy(m.key[:], key)
	}

	// Rekey requires the key to occupy exactly the first KeySize bytes of the buffer. That
	// holds for a KeySize-length key and for any digested oversized key.
	m.rekeyable = len(key) == KeySize || len(key) > BlockSize

	m.Reinit()

	return m
}

// Reinit primes the MAC to authenticate a new message under its existing key. New and Rekey
// prime the state themselves; Reinit is only required between a Finish and the next Write.
func (m *MAC) Reinit() {
	// Apply the inner pad to the key.
	m.xorPad(ipad)

	// Begin the inner hash with the padded key block.
	m.digest.Reset()
	_, _ = m.digest.Write(m.key[:])

	// Remove the inner pad, restoring the raw key.
	m.xorPad(ipad)
}

// Write absorbs message bytes into the MAC. It implements io.Writer and never returns an
// error. Writes may be split at any point; only the concatenation of the written bytes is
// significant.
func (m *MAC) Write(p []byte) (int, error) {
	return m.digest.Write(p)
}

// Finish closes the message stream and returns its tag. The MAC's key is preserved, but the
// state must be re-primed with Reinit before absorbing another message.
func (m *MAC) Finish() Tag {
	var tag Tag

	// Close the inner hash, using the tag as scratch space for the inner digest.
	m.digest.Sum(tag[:0])

	// Apply the outer pad to the key.
	m.xorPad(opad)

	// Hash the padded key block and the inner digest.
	m.digest.Reset()
	_, _ = m.digest.Write(m.key[:])
	_, _ = m.digest.Write(tag[:])

	// Close the outer hash, overwriting the scratch with the final tag.
	m.digest.Sum(tag[:0])

	// Remove the outer pad, restoring the raw key.
	m.xorPad(opad)

	return tag
}

// Rekey closes the message stream and installs its tag as the MAC's new key, leaving the
// state primed for the next message. The old key and the absorbed bytes are unrecoverable
// afterwards, and no key material leaves the MAC's own buffer.
//
// This is the finalize-and-derive step of HMAC-DRBG, equivalent to re-keying with the value
// Finish would have returned. It requires a key of exactly KeySize bytes and panics
// otherwise.
func (m *MAC) Rekey() {
	if !m.rekeyable {
		panic("hallmark: rekey requires a key of exactly KeySize bytes")
	}

	// Apply the outer pad to the key. The upper half of the buffer was zero padding, so it
	// now holds literal pad bytes.
	m.xorPad(opad)

	// Close the inner hash, storing the inner digest in the upper half of the buffer.
	m.digest.Sum(m.key[KeySize:KeySize])

	// Begin the outer hash with the lower half of the padded key block.
	m.digest.Reset()
	_, _ = m.digest.Write(m.key[:KeySize])

	// Overwrite the lower half with literal pad bytes and hash those as the block's upper
	// half. Together the two halves reconstruct the full padded key block without it ever
	// being resident all at once.
	for i := 0; i < KeySize; i++ {
		m.key[i] = opad
	}

	_, _ = m.digest.Write(m.key[:KeySize])

	// Hash the inner digest.
	_, _ = m.digest.Write(m.key[KeySize:])

	// Close the outer hash, writing the tag into the lower half as the new key.
	m.digest.Sum(m.key[:0])

	// Zero the upper half so the buffer reads as the zero-padded new key.
	for i := KeySize; i < BlockSize; i++ {
		m.key[i] = 0
	}

	// Prime the MAC with the new key.
	m.Reinit()
}

// xorPad XORs every byte of the key buffer with the given pad constant. Applying the same
// pad twice restores the buffer, so the raw key is recovered by un-padding rather than by
// keeping a copy.
func (m *MAC) xorPad(pad byte) {
	for i := range m.key {
		m.key[i] ^= pad
	}
}

var _ io.Writer = &MAC{}
