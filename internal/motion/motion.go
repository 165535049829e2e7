// Package motion interpolates card transforms over time for the outcome
// animation and the spring back to rest.
package motion

import (
	"math"
	"time"

	"github.com/jask/swipedeck/internal/card"
)

// Frame is the tick interval animations are sampled at.
const Frame = 16 * time.Millisecond

// Ease maps linear progress in [0,1] to eased progress.
type Ease func(t float64) float64

// EaseOut approximates CSS `ease` closely enough for a terminal.
func EaseOut(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Tween moves a transform from From to To over Duration.
type Tween struct {
	From     card.Transform
	To       card.Transform
	Duration time.Duration
	Ease     Ease // nil is linear
}

// At samples the tween elapsed time after it started.
func (tw Tween) At(elapsed time.Duration) card.Transform {
	if tw.Done(elapsed) {
		return tw.To
	}
	p := float64(elapsed) / float64(tw.Duration)
	if p < 0 {
		p = 0
	}
	if tw.Ease != nil {
		p = tw.Ease(p)
	}
	lerp := func(a, b float64) float64 { return a + (b-a)*p }
	return card.Transform{
		TranslateX: lerp(tw.From.TranslateX, tw.To.TranslateX),
		RotateDeg:  lerp(tw.From.RotateDeg, tw.To.RotateDeg),
		Opacity:    lerp(tw.From.Opacity, tw.To.Opacity),
	}
}

// Done reports whether the tween has reached its end.
func (tw Tween) Done(elapsed time.Duration) bool {
	return tw.Duration <= 0 || elapsed >= tw.Duration
}

// Exit is the outcome animation: off screen in sign's direction, tilted by
// degrees, fading out.
func Exit(from card.Transform, sign, viewport, degrees float64, d time.Duration) Tween {
	return Tween{
		From:     from,
		To:       card.Transform{TranslateX: sign * viewport, RotateDeg: sign * degrees, Opacity: 0},
		Duration: d,
		Ease:     EaseOut,
	}
}

// Spring eases the card back to rest.
func Spring(from card.Transform, d time.Duration) Tween {
	return Tween{From: from, To: card.Rest, Duration: d, Ease: EaseOut}
}
