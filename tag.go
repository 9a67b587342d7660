package hallmark

import (
	"crypto/subtle"
	"encoding"
	"fmt"

	"github.com/mr-tron/base58"
)

// Tag is the authenticator of a message, computed by the holder of a secret key and
// verifiable by anyone with the same key.
//
// It can be marshalled and unmarshalled as a base58 string for human consumption.
type Tag [TagSize]byte

// Equal returns true if the given tag is equal to the receiver. It runs in constant time.
func (t *Tag) Equal(other *Tag) bool {
	return subtle.ConstantTimeCompare(t[:], other[:]) == 1
}

// MarshalText encodes the tag into base58 text and returns the result.
func (t *Tag) MarshalText() (text []byte, err error) {
	return []byte(base58.Encode(t[:])), nil
}

// UnmarshalText decodes the results of MarshalText and updates the receiver to contain the
// decoded tag.
func (t *Tag) UnmarshalText(text []byte) error {
	data, err := base58.Decode(string(text))
	if err != nil {
		return fmt.Errorf("invalid tag: %w", err)
	}

	if len(data) != TagSize {
		return fmt.Errorf("invalid tag: %d bytes", len(data))
	}

	copy(t[:], data)

	return nil
}

// String returns the tag as base58 text.
func (t *Tag) String() string {
	text, err := t.MarshalText()
	if err != nil {
		panic(err)
	}

	return string(text)
}

var (
	_ encoding.TextMarshaler   = &Tag{}
	_ encoding.TextUnmarshaler = &Tag{}
	_ fmt.Stringer             = &Tag{}
)
