// Package hallmark implements the HMAC-SHA2-256 message authentication code with a fixed
// memory footprint.
//
// A MAC proves both the integrity and the authenticity of a message to anyone holding the
// shared secret key. This implementation follows FIPS 198: the key is normalized to a single
// hash input block, and the tag is the digest of the outer-padded key and the digest of the
// inner-padded key and the message:
//
//     tag = H((key ^ opad) || H((key ^ ipad) || message))
//
// Unlike crypto/hmac, the MAC state here owns exactly one block-sized key buffer and one hash
// engine, and reuses both across messages without allocating. That makes it suitable as a
// building block for constructions which churn through keys, like the HMAC-DRBG in the drbg
// subpackage, at the cost of a stricter calling contract: Finish consumes the message stream,
// and the state must be re-primed with Reinit before the next one.
package hallmark

import (
	"crypto/sha256"
	"crypto/subtle"
)

const (
	TagSize   = sha256.Size      // TagSize is the length of a tag in bytes.
	KeySize   = sha256.Size      // KeySize is the length of a rekeyable key in bytes.
	BlockSize = sha256.BlockSize // BlockSize is the length of a normalized key in bytes.

	// The HMAC pad constants. XORing a buffer with either is an involution: a second
	// application restores the original contents.
	ipad = 0x36
	opad = 0x5C
)

// Sum returns the HMAC-SHA2-256 tag of the given message under the given key.
func Sum(key, message []byte) Tag {
	m := New(key)
	_, _ = m.Write(message)

	return m.Finish()
}

// Verify returns true if the given tag authenticates the given message under the given key.
// It compares tags in constant time.
func Verify(key, message, tag []byte) bool {
	t := Sum(key, message)

	return subtle.ConstantTimeCompare(tag, t[:]) == 1
}
