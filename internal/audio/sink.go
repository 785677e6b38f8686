// Package audio plays short sound cues in response to game events.
package audio

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/events"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a sound.
type Cue int

const (
	CueFood Cue = iota
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueFood:
		return "food"
	case CueGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// note is one tone in a cue.
type note struct {
	freq float64
	dur  time.Duration
}

var cues = map[Cue][]note{
	CueFood:     {{880, 50 * time.Millisecond}, {1320, 70 * time.Millisecond}},
	CueGameOver: {{220, 150 * time.Millisecond}, {165, 150 * time.Millisecond}, {110, 300 * time.Millisecond}},
}

// Player hands a finished streamer to an output.
type Player func(s beep.Streamer)

// Sink subscribes to the event bus and plays cues. It never touches game state.
type Sink struct {
	mu          sync.Mutex
	enabled     bool
	volume      float64
	play        Player
	logger      *log.Logger
	initialized bool
	unsubscribe []func()
}

// Option configures a Sink.
type Option func(*Sink)

// WithPlayer replaces the speaker output, mainly for tests.
func WithPlayer(p Player) Option {
	return func(s *Sink) {
		s.play = p
		s.initialized = p != nil
	}
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *log.Logger) Option {
	return func(s *Sink) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSink creates a sink from the audio config.
func NewSink(cfg config.AudioConfig, opts ...Option) *Sink {
	s := &Sink{
		enabled: cfg.Enabled,
		volume:  cfg.Volume,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init opens the speaker. It does nothing when audio is disabled or a
// custom player is set.
func (s *Sink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	s.play = func(st beep.Streamer) { speaker.Play(st) }
	s.initialized = true
	return nil
}

// Close detaches from the bus and stops playback.
func (s *Sink) Close() {
	s.Detach()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized && s.enabled {
		speaker.Clear()
	}
}

// Attach subscribes to food-eaten and game-over events on bus.
func (s *Sink) Attach(bus *events.Bus) {
	if !s.enabled || bus == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.unsubscribe = append(s.unsubscribe,
		bus.Subscribe(events.KindFoodEaten, func(events.Event) { s.Play(CueFood) }),
		bus.Subscribe(events.KindGameOver, func(events.Event) { s.Play(CueGameOver) }),
	)
}

// Detach removes the sink's subscriptions.
func (s *Sink) Detach() {
	s.mu.Lock()
	unsub := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	for _, fn := range unsub {
		fn()
	}
}

// Play starts cue without waiting for it to finish.
func (s *Sink) Play(c Cue) {
	s.mu.Lock()
	play, ok := s.play, s.enabled && s.initialized && s.play != nil
	volume := s.volume
	s.mu.Unlock()

	if !ok {
		return
	}
	st, err := Streamer(c, volume)
	if err != nil {
		s.logger.Warn("audio cue", "cue", c, "err", err)
		return
	}
	play(st)
}

// Streamer builds the sound for c at volume (0..1).
func Streamer(c Cue, volume float64) (beep.Streamer, error) {
	notes, ok := cues[c]
	if !ok {
		return nil, fmt.Errorf("audio: unknown cue %d", int(c))
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: tone %.0fHz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), tone))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// withVolume scales s linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
