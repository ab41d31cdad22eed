package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Effect durations.
const (
	brickDuration  = 60 * time.Millisecond
	bounceDuration = 30 * time.Millisecond
	missNote       = 120 * time.Millisecond
	fanfareNote    = 140 * time.Millisecond
)

// Effect builds the sound for a game event, or nil when the event is silent.
func Effect(e core.Event, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch e {
	case core.EventBrickHit:
		s = note(880, brickDuration, WaveSquare, rate)
	case core.EventWallBounce:
		s = note(440, bounceDuration, WaveSine, rate)
	case core.EventPaddleBounce:
		s = note(330, bounceDuration*2, WaveSine, rate)
	case core.EventLifeLost:
		s = beep.Seq(
			note(300, missNote, WaveSaw, rate),
			note(200, missNote, WaveSaw, rate),
		)
	case core.EventWon:
		s = beep.Seq(
			note(523.25, fanfareNote, WaveSquare, rate),
			note(659.25, fanfareNote, WaveSquare, rate),
			note(783.99, fanfareNote*2, WaveSquare, rate),
		)
	case core.EventLost:
		s = beep.Seq(
			note(392, fanfareNote, WaveSaw, rate),
			note(329.63, fanfareNote, WaveSaw, rate),
			note(261.63, fanfareNote*2, WaveSaw, rate),
			newVolume(note(0, missNote, WaveNoise, rate), 0.3),
		)
	default:
		return nil
	}
	return newVolume(s, volume)
}
