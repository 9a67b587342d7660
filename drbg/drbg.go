// Package drbg implements the HMAC_DRBG deterministic random bit generator as specified in
// NIST SP 800-90A, Rev. 1, Section 10.1.2, instantiated with HMAC-SHA2-256.
//
// The generator's internal key is never handled directly: every key transition in
// HMAC_DRBG_Update runs through the MAC's rekeying operation, so key material stays inside
// the MAC's own block buffer for the life of the generator.
//
// Seeding is the caller's problem. The generator is fully deterministic: two generators
// seeded with the same entropy, nonce, and personalization string produce the same byte
// stream. Callers wanting unpredictable output must seed it from a real entropy source.
package drbg

import (
	"errors"
	"io"

	"github.com/codahale/hallmark"
)

// reseedInterval is the maximum number of generate requests between reseeds, per SP 800-90A
// Table 2.
const reseedInterval = 1 << 48

// ErrReseedRequired is returned when the generator has served its maximum number of requests
// and must be reseeded with fresh entropy before producing more output.
var ErrReseedRequired = errors.New("reseed required")

// Generator is a deterministic random bit generator. It is not safe for concurrent use.
type Generator struct {
	mac      *hallmark.MAC
	v        hallmark.Tag
	requests uint64
}

// New returns a Generator seeded with the given entropy, nonce, and optional personalization
// string.
func New(entropy, nonce, personalization []byte) *Generator {
	// Per SP 800-90A: K = 0x00...00, V = 0x01...01.
	g := &Generator{mac: hallmark.New(make([]byte, hallmark.KeySize))}
	for i := range g.v {
		g.v[i] = 0x01
	}

	g.update(entropy, nonce, personalization)

	return g
}

// Reseed mixes fresh entropy and optional additional input into the generator's state and
// resets its request count.
func (g *Generator) Reseed(entropy, additional []byte) {
	g.update(entropy, additional)
	g.requests = 0
}

// Generate fills p with the generator's next len(p) bytes, mixing in the optional additional
// input first. It returns ErrReseedRequired once the generator has served its maximum number
// of requests.
func (g *Generator) Generate(p, additional []byte) error {
	if g.requests >= reseedInterval {
		return ErrReseedRequired
	}

	g.requests++

	if len(additional) > 0 {
		g.update(additional)
	}

	// Each step produces one V-sized block of output.
	for n := 0; n < len(p); {
		g.step()

		n += copy(p[n:], g.v[:])
	}

	// Advance the state so the produced output cannot be recovered from it.
	g.update(additional)

	return nil
}

// Read fills p with the generator's next len(p) bytes. It implements io.Reader; on return,
// n == len(p) if and only if err == nil.
func (g *Generator) Read(p []byte) (int, error) {
	if err := g.Generate(p, nil); err != nil {
		return 0, err
	}

	return len(p), nil
}

// update implements HMAC_DRBG_Update (SP 800-90A, Section 10.1.2.2). The second round is
// skipped when no provided data is given.
func (g *Generator) update(provided ...[]byte) {
	g.fold(0x00, provided)

	if !hasData(provided) {
		return
	}

	g.fold(0x01, provided)
}

// fold performs one update round: K = HMAC(K, V || round || provided), then V = HMAC(K, V).
// The key transition uses the MAC's rekeying operation in place of external key storage.
func (g *Generator) fold(round byte, provided [][]byte) {
	_, _ = g.mac.Write(g.v[:])
	_, _ = g.mac.Write([]byte{round})

	for _, p := range provided {
		_, _ = g.mac.Write(p)
	}

	g.mac.Rekey()

	g.step()
}

// step advances V by one application of the MAC: V = HMAC(K, V).
func (g *Generator) step() {
	_, _ = g.mac.Write(g.v[:])
	g.v = g.mac.Finish()
	g.mac.Reinit()
}

// hasData returns true if any of the given slices is non-empty.
func hasData(provided [][]byte) bool {
	for _, p := range provided {
		if len(p) > 0 {
			return true
		}
	}

	return false
}

var _ io.Reader = &Generator{}
