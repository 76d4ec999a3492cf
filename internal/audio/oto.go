//go:build !audio_stub

package audio

import (
	"io"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

type otoBackend struct {
	ctx   *oto.Context
	ready chan struct{}
}

func newBackend() (backend, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &otoBackend{ctx: ctx, ready: ready}, nil
}

func (b *otoBackend) play(samples []byte, volume float64) {
	select {
	case <-b.ready:
	default:
		return
	}
	go func() {
		player := b.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

func (b *otoBackend) close() {
	_ = b.ctx.Suspend()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
