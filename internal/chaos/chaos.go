// Package chaos provides deterministic randomness for reproducible output.
//
// Every random draw in ttymood flows through a single Chaos stream so that
// the same seed plus the same input produces the same output across runs,
// processes, and platforms. Named Chaos because Random would be too
// optimistic.
package chaos

import (
	"encoding/binary"
	"math/rand/v2"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
)

// Chaos is the source of all deterministic randomness.
//
// It wraps a ChaCha8 stream: cryptographically irrelevant, but stable
// across platforms and Go releases, which is the property the
// reproducibility contract actually needs.
type Chaos struct {
	src      *rand.ChaCha8
	rng      *rand.Rand
	seed     uint64
	explicit bool
	draws    int
}

// New creates a Chaos stream from an explicit seed.
// Same seed, same sequence.
func New(seed uint64) *Chaos {
	src := rand.NewChaCha8(expandSeed(seed))
	return &Chaos{
		src:      src,
		rng:      rand.New(src),
		seed:     seed,
		explicit: true,
	}
}

// FromOptionalSeed creates a Chaos stream from an optional seed.
// When seed is nil one is derived from the clock and process id; the
// resolved value is available via Seed so callers can echo it for later
// reproduction.
func FromOptionalSeed(seed *uint64) *Chaos {
	if seed != nil {
		return New(*seed)
	}
	derived := uint64(time.Now().UnixNano()) ^ (uint64(os.Getpid()) << 32)
	c := New(derived)
	c.explicit = false
	return c
}

func expandSeed(seed uint64) [32]byte {
	var b [32]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(b[i*8:], seed)
	}
	return b
}

// Seed returns the resolved seed for this stream.
func (c *Chaos) Seed() uint64 {
	return c.seed
}

// Explicit reports whether the seed was supplied by the caller.
func (c *Chaos) Explicit() bool {
	return c.explicit
}

// Draws returns the number of draws consumed so far.
func (c *Chaos) Draws() int {
	return c.draws
}

// IntN returns a value in [0, n). Panics if n <= 0.
func (c *Chaos) IntN(n int) int {
	c.draws++
	return c.rng.IntN(n)
}

// Float returns a value in [0.0, 1.0).
func (c *Chaos) Float() float64 {
	c.draws++
	return c.rng.Float64()
}

// Chance returns true with the given probability, clamped to [0, 1].
func (c *Chaos) Chance(probability float64) bool {
	if probability <= 0 {
		return false
	}
	if probability >= 1 {
		return true
	}
	return c.Float() < probability
}

// Read fills p from the stream, implementing io.Reader.
// Used as ULID entropy so case ids are reproducible under a fixed seed.
func (c *Chaos) Read(p []byte) (int, error) {
	c.draws++
	return c.src.Read(p)
}

// CaseID generates a case identifier for the given generation time.
// Format: AB-<ULID>. Opaque, display-only, deterministic given seed+now.
func (c *Chaos) CaseID(now time.Time) string {
	id := ulid.MustNew(ulid.Timestamp(now.UTC()), c)
	return "AB-" + id.String()
}

// Pick returns a random element of items, or the zero value and false
// when items is empty. Even chaos cannot choose from nothing.
func Pick[T any](c *Chaos, items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[c.IntN(len(items))], true
}

// MustPick returns a random element of items, panicking if empty.
// Use when emptiness would be a programming error.
func MustPick[T any](c *Chaos, items []T) T {
	v, ok := Pick(c, items)
	if !ok {
		panic("chaos: cannot pick from empty slice")
	}
	return v
}

// PickWeighted returns one of items with probability proportional to its
// weight. Non-positive weights count as zero. Falls back to uniform when
// all weights are zero.
func PickWeighted[T any](c *Chaos, items []T, weights []float64) (T, bool) {
	if len(items) == 0 || len(items) != len(weights) {
		var zero T
		return zero, false
	}

	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return Pick(c, items)
	}

	target := c.Float() * total
	acc := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		if target < acc {
			return items[i], true
		}
	}
	return items[len(items)-1], true
}

// Shuffle permutes items in place.
func Shuffle[T any](c *Chaos, items []T) {
	c.draws++
	c.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
