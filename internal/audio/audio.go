// Package audio plays short procedural cues for game state changes.
package audio

import (
	"log/slog"

	"firstgame/internal/config"
	"firstgame/internal/logsink"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
)

// Cue identifies a sound effect.
type Cue int

const (
	CueStart Cue = iota
	CuePause
	CueResume
	CueStop
	CueWrap
)

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CuePause:
		return "pause"
	case CueResume:
		return "resume"
	case CueStop:
		return "stop"
	case CueWrap:
		return "wrap"
	}
	return "unknown"
}

// backend plays one rendered buffer of stereo float32 LE samples.
type backend interface {
	play(samples []byte, volume float64)
	close()
}

// System is a cue player. The zero value and a nil *System are silent.
type System struct {
	out    backend
	volume float64
	log    *slog.Logger
}

// New opens the audio device when cfg enables audio. Failing to open the
// device is reported but the returned System is still usable (silent).
func New(cfg config.Audio) (*System, error) {
	s := &System{volume: cfg.Volume, log: logsink.For(logsink.TagAudio)}
	if !cfg.Enabled {
		s.log.Info("audio disabled")
		return s, nil
	}
	out, err := newBackend()
	if err != nil {
		s.log.Warn("audio init failed (continuing without sound)", "err", err)
		return s, err
	}
	s.out = out
	return s, nil
}

// Play renders and plays c without blocking.
func (s *System) Play(c Cue) {
	if s == nil || s.out == nil || s.volume <= 0 {
		return
	}
	samples := Generate(c)
	if len(samples) == 0 {
		return
	}
	s.out.play(samples, s.volume)
}

func (s *System) Close() {
	if s == nil || s.out == nil {
		return
	}
	s.out.close()
	s.out = nil
}
