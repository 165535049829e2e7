// Package gesture classifies pointer input on a card into swipe intent.
//
// A Controller owns at most one Session. A session starts Undecided and only
// becomes Dragging once horizontal movement is unambiguous; until then input is
// left unclaimed so the host can scroll vertically. Releasing a drag past the
// commit threshold moves the controller to Committed, which ignores all input
// until Settle is called at the end of the outcome animation.
//
//	Idle ──start──▶ Undecided ──horizontal──▶ Dragging ──end, far──▶ Committed ──settle──▶ Idle
//	                    │                        │
//	                    └──────end──▶ Idle ◀──end, near (spring back)
package gesture
