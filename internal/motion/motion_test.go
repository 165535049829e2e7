package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/swipedeck/internal/card"
)

func TestExitEndsOffscreen(t *testing.T) {
	tw := Exit(card.Transform{TranslateX: 120, RotateDeg: 4.8, Opacity: 1}, 1, 360, 20, 500*time.Millisecond)

	require.Equal(t, tw.From, tw.At(0))
	require.False(t, tw.Done(499*time.Millisecond))
	require.True(t, tw.Done(500*time.Millisecond))
	require.Equal(t, card.Transform{TranslateX: 360, RotateDeg: 20, Opacity: 0}, tw.At(time.Second))

	mid := tw.At(250 * time.Millisecond)
	require.Greater(t, mid.TranslateX, 120.0)
	require.Less(t, mid.TranslateX, 360.0)
	require.Less(t, mid.Opacity, 1.0)
}

func TestExitLeft(t *testing.T) {
	tw := Exit(card.Rest, -1, 800, 20, 500*time.Millisecond)
	end := tw.At(500 * time.Millisecond)
	require.Equal(t, -800.0, end.TranslateX)
	require.Equal(t, -20.0, end.RotateDeg)
}

func TestSpringReturnsToRest(t *testing.T) {
	tw := Spring(card.Transform{TranslateX: -48, RotateDeg: -1.92, Opacity: 1}, 300*time.Millisecond)
	require.Equal(t, card.Rest, tw.At(300*time.Millisecond))

	prev := tw.At(0).TranslateX
	for e := Frame; e < 300*time.Millisecond; e += Frame {
		x := tw.At(e).TranslateX
		require.GreaterOrEqual(t, x, prev)
		prev = x
	}
}

func TestEasing(t *testing.T) {
	require.Equal(t, 0.0, EaseOut(0))
	require.Equal(t, 1.0, EaseOut(1))
	require.Greater(t, EaseOut(0.5), 0.5)

	linear := Tween{From: card.Transform{TranslateX: 0}, To: card.Transform{TranslateX: 100}, Duration: time.Second}
	require.InDelta(t, 25.0, linear.At(250*time.Millisecond).TranslateX, 1e-9)
}

func TestZeroDurationIsDone(t *testing.T) {
	tw := Tween{To: card.Rest}
	require.True(t, tw.Done(0))
	require.Equal(t, card.Rest, tw.At(0))
}
