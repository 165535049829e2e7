package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/swipedeck/internal/card"
	"github.com/jask/swipedeck/internal/gesture"
	"github.com/jask/swipedeck/internal/service"
)

func direction(a card.Action) gesture.Direction {
	if a == card.Like {
		return gesture.Right
	}
	return gesture.Left
}

// busy is true while an outcome animation is pending.
func (a *App) busy() bool { return a.gestures.Phase() == gesture.Committed }

// accepting reports whether the card may start a gesture or fire a control:
// a card is shown, no outcome is running, and no load is about to replace it.
func (a *App) accepting() bool {
	return a.view.Interactive() && !a.loader.Pending()
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(m, a.keys.Quit):
		a.loader.Stop()
		return tea.Quit
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	case key.Matches(m, a.keys.Nope):
		return a.pressControl(card.Nope)
	case key.Matches(m, a.keys.Like):
		return a.pressControl(card.Like)
	case key.Matches(m, a.keys.Back):
		if !a.busy() && a.history.Back() {
			return a.popstate()
		}
	case key.Matches(m, a.keys.Forward):
		if !a.busy() && a.history.Forward() {
			return a.popstate()
		}
	case key.Matches(m, a.keys.Reload):
		if !a.busy() {
			return a.popstate()
		}
	}
	return nil
}

// pressControl is the button path into the commit transition. Controls are
// inert unless the card is accepting input and no gesture is in progress.
func (a *App) pressControl(action card.Action) tea.Cmd {
	if !a.accepting() || a.gestures.Phase() != gesture.Idle {
		return nil
	}
	a.stopSpring()
	return a.afterGesture(a.gestures.Commit(direction(action)), service.SourceControl)
}

func (a *App) handleMouse(m tea.MouseMsg) tea.Cmd {
	switch {
	case m.Button == tea.MouseButtonWheelUp:
		if a.gestures.Phase() != gesture.Dragging {
			a.view.ScrollUp(1)
		}
		return nil
	case m.Button == tea.MouseButtonWheelDown:
		if a.gestures.Phase() != gesture.Dragging {
			a.view.ScrollDown(1)
		}
		return nil
	}

	switch m.Action {
	case tea.MouseActionPress:
		if m.Button != tea.MouseButtonLeft {
			return nil
		}
		return a.pointerDown(m.X, m.Y)
	case tea.MouseActionMotion:
		if m.Button == tea.MouseButtonNone {
			return nil
		}
		return a.pointerMove(m.X, m.Y)
	case tea.MouseActionRelease:
		return a.pointerUp(m.X, m.Y)
	}
	return nil
}

func (a *App) pointerDown(x, y int) tea.Cmd {
	if !a.accepting() {
		return nil
	}
	if action, ok := a.view.ControlAt(a.width, cardTop, x, y); ok {
		// the control claims the whole press; the gesture layer never sees it
		a.control, a.pressing = action, true
		a.gestures.Start(a.point(x, y), true)
		return nil
	}
	if !a.view.Layout(a.width, cardTop).Card.Contains(x, y) {
		return nil
	}
	a.stopSpring()
	a.lastY = y
	step := a.gestures.Start(a.point(x, y), false)
	a.log.Debug("gesture start", zap.Stringer("phase", step.Phase))
	return nil
}

func (a *App) pointerMove(x, y int) tea.Cmd {
	if a.pressing {
		return nil
	}
	before := a.gestures.Phase()
	step := a.gestures.Move(a.point(x, y), 1)
	if before == gesture.Undecided && !step.Claimed {
		// unclaimed movement scrolls the description like a touch scroll
		if d := a.lastY - y; d > 0 {
			a.view.ScrollDown(d)
		} else if d < 0 {
			a.view.ScrollUp(-d)
		}
	}
	a.lastY = y
	if step.Phase != before {
		a.log.Debug("gesture phase", zap.Stringer("from", before), zap.Stringer("to", step.Phase))
	}
	return a.afterGesture(step, service.SourceGesture)
}

func (a *App) pointerUp(x, y int) tea.Cmd {
	if a.pressing {
		a.pressing = false
		if action, ok := a.view.ControlAt(a.width, cardTop, x, y); ok && action == a.control {
			return a.pressControl(action)
		}
		return nil
	}
	return a.afterGesture(a.gestures.End(), service.SourceGesture)
}
