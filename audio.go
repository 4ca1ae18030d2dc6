package main

import (
	"math"
	"sync"
)

// blipStream is an io.Reader PCM source for Ebiten's audio player. It
// emits silence until Trigger is called, then a short decaying sine blip.
type blipStream struct {
	mu        sync.Mutex
	phase     float64
	remaining int
	total     int
}

func newBlipStream() *blipStream {
	return &blipStream{}
}

// Trigger restarts the blip envelope. Safe to call from the game loop
// while the audio goroutine reads.
func (s *blipStream) Trigger() {
	n := int(float64(audioSampleRate) * blipDuration.Seconds())
	s.mu.Lock()
	s.remaining = n
	s.total = n
	s.phase = 0
	s.mu.Unlock()
}

func (s *blipStream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	// Whole stereo int16 frames only (4 bytes per frame).
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	step := 2 * math.Pi * blipFrequency / audioSampleRate

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < frameBytes; i += 4 {
		var v float64
		if s.remaining > 0 && s.total > 0 {
			env := float64(s.remaining) / float64(s.total)
			v = math.Sin(s.phase) * env * blipVolume
			s.phase += step
			s.remaining--
		}
		sample := int16(v * pcm16MaxValue)
		p[i] = byte(sample)
		p[i+1] = byte(sample >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	return frameBytes, nil
}

func (s *blipStream) Close() error {
	return nil
}
