package audio

import "math"

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < ChannelCount; ch++ {
		o := i*8 + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat applies gentle tanh-like saturation, no hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// makeBuf allocates a stereo float32 buffer for n frames.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// sweep renders a single FM blip gliding from f0 to f1 over dur seconds.
func sweep(dur, f0, f1, gain float64) []byte {
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.4, 0.3, 0.3)
		freq := f0 + (f1-f0)*p
		putStereoF32(buf, i, softSat(fm(t, freq, 1.0, 0.8*env)*env*gain))
	}
	return buf
}

// Generate renders c as stereo float32 LE frames at SampleRate.
func Generate(c Cue) []byte {
	switch c {
	case CueStart:
		return sweep(0.14, 520, 880, 0.38) // rising
	case CuePause:
		return sweep(0.10, 660, 440, 0.32) // falling
	case CueResume:
		return sweep(0.10, 440, 660, 0.32)
	case CueStop:
		return sweep(0.22, 440, 220, 0.36)
	case CueWrap:
		return sweep(0.05, 1400, 1200, 0.25) // click
	}
	return nil
}
