package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firstgame/internal/config"
)

type fakeBackend struct {
	played  [][]byte
	volumes []float64
	closed  bool
}

func (f *fakeBackend) play(samples []byte, volume float64) {
	f.played = append(f.played, samples)
	f.volumes = append(f.volumes, volume)
}

func (f *fakeBackend) close() { f.closed = true }

func TestGenerate(t *testing.T) {
	for _, c := range []Cue{CueStart, CuePause, CueResume, CueStop, CueWrap} {
		buf := Generate(c)
		require.NotEmpty(t, buf, c.String())
		assert.Zero(t, len(buf)%8, "whole stereo frames for %s", c)

		for i := 0; i < len(buf); i += 4 {
			v := math.Float32frombits(binary.LittleEndian.Uint32(buf[i:]))
			require.False(t, math.IsNaN(float64(v)))
			require.LessOrEqual(t, math.Abs(float64(v)), 1.0, "%s sample %d", c, i/4)
		}
	}
	assert.Nil(t, Generate(Cue(99)))
}

func TestGenerateStereoChannelsMatch(t *testing.T) {
	buf := Generate(CueStart)
	for i := 0; i+8 <= len(buf); i += 8 {
		require.Equal(t, buf[i:i+4], buf[i+4:i+8])
	}
}

func TestPlay(t *testing.T) {
	out := &fakeBackend{}
	s := &System{out: out, volume: 0.5}
	s.Play(CueStop)
	s.Play(Cue(99))
	require.Len(t, out.played, 1)
	assert.Equal(t, Generate(CueStop), out.played[0])
	assert.Equal(t, []float64{0.5}, out.volumes)

	s.Close()
	assert.True(t, out.closed)
	s.Play(CueStart)
	assert.Len(t, out.played, 1)
}

func TestSilentSystems(t *testing.T) {
	var nilSys *System
	assert.NotPanics(t, func() {
		nilSys.Play(CueStart)
		nilSys.Close()
	})

	out := &fakeBackend{}
	muted := &System{out: out, volume: 0}
	muted.Play(CueStart)
	assert.Empty(t, out.played)
}

func TestNewDisabled(t *testing.T) {
	s, err := New(config.Audio{Enabled: false, Volume: 1})
	require.NoError(t, err)
	assert.Nil(t, s.out)
	assert.NotPanics(t, func() { s.Play(CueStart) })
}

func TestAdsr(t *testing.T) {
	assert.InDelta(t, 0.5, adsr(0.05, 0.1, 0.2, 0.5, 0.2), 1e-9)
	assert.InDelta(t, 1.0, adsr(0.1, 0.1, 0.2, 0.5, 0.2), 1e-9)
	assert.InDelta(t, 0.5, adsr(0.5, 0.1, 0.2, 0.5, 0.2), 1e-9)
	assert.InDelta(t, 0.0, adsr(1.0, 0.1, 0.2, 0.5, 0.2), 1e-9)
}
