package tui

import (
	"github.com/jask/swipedeck/internal/loader"
)

type loadedMsg loader.Outcome

type frameMsg struct {
	gen uint64
}

type statusMsg string

type errMsg struct{ error }
