package stats

import (
	"sync"
	"time"
)

// Snapshot is what gets reported over the API.
type Snapshot struct {
	Frames        uint64  `json:"frames"`
	ProgramsBuilt uint64  `json:"programs_built"`
	Uptime        float64 `json:"uptime"`
	FPS           uint64  `json:"fps"`
	WsClients     int     `json:"ws_clients"`
}

type Stats struct {
	cur Snapshot

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time
	clock        func() time.Time
	mu           sync.Mutex
}

func New() *Stats {
	return newWithClock(time.Now)
}

func newWithClock(clock func() time.Time) *Stats {
	s := &Stats{clock: clock}
	s.start = clock()
	s.frameTimer = s.start
	return s
}

// Update is called once per rendered frame.
func (s *Stats) Update() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	s.cur.Frames++
	s.frameCounter++
	if now.Sub(s.frameTimer) >= 1*time.Second {
		s.cur.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = now
	}

	s.cur.Uptime = now.Sub(s.start).Seconds()
}

func (s *Stats) ProgramBuilt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur.ProgramsBuilt++
}

func (s *Stats) SetWsClients(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur.WsClients = n
}

// Snapshot returns a copy that is safe to marshal while rendering goes on.
func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}
