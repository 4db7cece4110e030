package components

import (
	"math/rand"

	cfg "github.com/automoto/chinchilla/config"
	"github.com/yohamta/donburi"
)

// SessionData is per-run bookkeeping that is not part of any gameplay
// state machine.
type SessionData struct {
	Mode   cfg.GameMode
	Seed   int64
	Rand   *rand.Rand
	Source *RandSource

	// NextSeq numbers enemies and projectiles in creation order.
	NextSeq uint64
}

// Seq returns the next creation sequence number.
func (s *SessionData) Seq() uint64 {
	s.NextSeq++
	return s.NextSeq
}

// Jitter returns a uniform integer in [-n, n].
func (s *SessionData) Jitter(n int) int {
	if n <= 0 {
		return 0
	}
	return s.Rand.Intn(2*n+1) - n
}

// Between returns a uniform integer in [lo, hi].
func (s *SessionData) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.Rand.Intn(hi-lo+1)
}

// RandSource is a seeded rand.Source that counts its draws, so a restored
// session can pick its random stream up where the saved one left off.
type RandSource struct {
	src   rand.Source64
	Draws uint64
}

func NewRandSource(seed int64) *RandSource {
	return &RandSource{src: rand.NewSource(seed).(rand.Source64)}
}

func (r *RandSource) Int63() int64 {
	r.Draws++
	return r.src.Int63()
}

func (r *RandSource) Uint64() uint64 {
	r.Draws++
	return r.src.Uint64()
}

func (r *RandSource) Seed(seed int64) {
	r.src.Seed(seed)
	r.Draws = 0
}

// Resume reseeds the source and fast-forwards it past draws values.
func (r *RandSource) Resume(seed int64, draws uint64) {
	r.Seed(seed)
	for range draws {
		r.Int63()
	}
}

var Session = donburi.NewComponentType[SessionData]()
