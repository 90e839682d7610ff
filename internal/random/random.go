// Package random provides the non-cryptographic randomness used for
// shuffling and password characters.
package random

import (
	"encoding/binary"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/zarlcorp/core/pkg/zcrypto"
)

// Source yields uniform integers. Implementations need not be
// cryptographically secure.
type Source interface {
	// IntN returns a uniform int in [0, n). n is always > 0.
	IntN(n int) int
}

// lockedSource wraps a PCG generator so one Source can be shared between
// goroutines.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedSource) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// New returns a PCG source seeded from crypto/rand bytes. The output itself
// is not cryptographically secure.
func New() Source {
	var s1, s2 uint64
	if b, err := zcrypto.RandBytes(16); err == nil && len(b) == 16 {
		s1 = binary.LittleEndian.Uint64(b[:8])
		s2 = binary.LittleEndian.Uint64(b[8:])
	} else {
		// seeding only; a clock fallback keeps generation available
		now := uint64(time.Now().UnixNano())
		s1, s2 = now, now>>1|1
	}
	return &lockedSource{r: rand.New(rand.NewPCG(s1, s2))}
}

// NewSeeded returns a deterministic source for reproducible runs.
func NewSeeded(seed uint64) Source {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Shuffle permutes s in place with Fisher-Yates.
func Shuffle[T any](src Source, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
