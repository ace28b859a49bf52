package main

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand/v2"
)

// sampler is the single random stream shared by every trial of a run.
// It must only ever be used from one goroutine.
type sampler struct {
	rng *mrand.Rand
}

func newSampler(seed uint64) *sampler {
	return &sampler{rng: mrand.New(mrand.NewPCG(seed, seed))}
}

// below returns a uniform value in [0, n). A zero bound yields 0 and
// consumes nothing from the stream.
func (s *sampler) below(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return s.rng.Uint64N(n)
}

// entropySeed reads a fresh seed from the OS. There is no fallback.
func entropySeed() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("read entropy: %w", err)
	}
	return binary.NativeEndian.Uint64(buf[:]), nil
}
