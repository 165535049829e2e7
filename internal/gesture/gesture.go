package gesture

import "math"

// Phase is the controller state.
type Phase int

const (
	Idle Phase = iota
	Undecided
	Dragging
	Committed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Undecided:
		return "undecided"
	case Dragging:
		return "dragging"
	case Committed:
		return "committed"
	}
	return "unknown"
}

// Direction of a decision.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Sign is -1 for Left and +1 for Right.
func (d Direction) Sign() float64 { return float64(d) }

// Outcome is what the host must do after an input.
type Outcome int

const (
	None Outcome = iota
	// Commit runs the outcome animation in Step.Direction.
	Commit
	// SpringBack eases the card back to rest.
	SpringBack
)

// Params are the classification constants. Distances are in pixels.
type Params struct {
	MinMove         float64
	Dominance       float64
	Damping         float64
	RotationDivisor float64
	CommitMin       float64
	CommitFraction  float64
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		MinMove:         12,
		Dominance:       1.5,
		Damping:         0.6,
		RotationDivisor: 25,
		CommitMin:       120,
		CommitFraction:  0.18,
	}
}

// CommitThreshold is the horizontal travel a drag must exceed to commit.
func (p Params) CommitThreshold(viewport float64) float64 {
	return math.Max(p.CommitMin, p.CommitFraction*viewport)
}

// Feedback maps raw displacement to the damped visual transform.
func (p Params) Feedback(dx float64) Feedback {
	tx := dx * p.Damping
	return Feedback{TranslateX: tx, RotateDeg: tx / p.RotationDivisor}
}

// Point is a pointer position in pixels.
type Point struct {
	X, Y float64
}

// Feedback is the in-drag transform of the card.
type Feedback struct {
	TranslateX float64
	RotateDeg  float64
}

// Session is one pointer-down-to-up interaction.
type Session struct {
	Origin  Point
	Current Point
	Phase   Phase
}

// Delta is the displacement from the origin.
func (s *Session) Delta() (dx, dy float64) {
	return s.Current.X - s.Origin.X, s.Current.Y - s.Origin.Y
}

// Step reports the result of one input.
type Step struct {
	Phase Phase
	// Claimed is true when the input belongs to the gesture and the host's
	// default handling (scrolling) must not run.
	Claimed   bool
	Feedback  *Feedback
	Outcome   Outcome
	Direction Direction
}
