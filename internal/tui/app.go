package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/swipedeck/internal/card"
	"github.com/jask/swipedeck/internal/config"
	"github.com/jask/swipedeck/internal/database/repository"
	"github.com/jask/swipedeck/internal/gesture"
	"github.com/jask/swipedeck/internal/loader"
	"github.com/jask/swipedeck/internal/motion"
	"github.com/jask/swipedeck/internal/nav"
	"github.com/jask/swipedeck/internal/record"
	"github.com/jask/swipedeck/internal/service"
)

// cardTop is the screen row the card's top border sits on.
const cardTop = 2

// Deps are the collaborators the App drives.
type Deps struct {
	Fetcher record.Fetcher
	History *nav.Stack
	// Journal is nil when the decision journal is disabled.
	Journal *service.JournalService
	Log     *zap.Logger
	// Resolve maps record image references for display.
	Resolve func(string) string
}

type animKind int

const (
	animExit animKind = iota
	animSpring
)

// animation is the single running tween. Exit animations carry the decision
// they are completing.
type animation struct {
	gen     uint64
	kind    animKind
	tween   motion.Tween
	started time.Time
	dir     gesture.Direction
	source  service.Source
	rec     record.Record
}

// App is the swipe deck's bubbletea model.
type App struct {
	ctx      context.Context
	cfg      config.Config
	log      *zap.Logger
	gestures *gesture.Controller
	view     *card.View
	loader   *loader.Loader
	history  *nav.Stack
	journal  *service.JournalService
	keys     keyMap
	help     help.Model

	width  int
	height int
	status string

	anim    *animation
	animGen uint64

	// a press that began on a control; the control owns it until release
	control  card.Action
	pressing bool
	lastY    int

	now  func() time.Time
	tick func(gen uint64) tea.Cmd
}

// New builds the App from configuration and collaborators.
func New(ctx context.Context, cfg config.Config, deps Deps) *App {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	geom := card.Geometry{
		Width:           cfg.UI.CardWidth,
		DescriptionRows: card.DefaultGeometry().DescriptionRows,
		CellWidthPx:     cfg.UI.CellWidthPx,
		CellHeightPx:    cfg.UI.CellHeightPx,
	}
	view := card.NewView(geom)
	params := gesture.Params{
		MinMove:         cfg.Gesture.MinMove,
		Dominance:       cfg.Gesture.Dominance,
		Damping:         cfg.Gesture.Damping,
		RotationDivisor: cfg.Gesture.RotationDivisor,
		CommitMin:       cfg.Gesture.CommitMin,
		CommitFraction:  cfg.Gesture.CommitFraction,
	}
	a := &App{
		ctx:      ctx,
		cfg:      cfg,
		log:      log,
		view:     view,
		history:  deps.History,
		journal:  deps.Journal,
		keys:     newKeyMap(),
		help:     help.New(),
		width:    80,
		height:   24,
		status:   "loading…",
		now:      time.Now,
	}
	a.gestures = gesture.New(params, a.viewport())
	a.loader = loader.New(deps.Fetcher, deps.History, view, log, loader.Options{
		CancelStale: cfg.Loader.CancelStale,
		Resolve:     deps.Resolve,
	})
	a.tick = func(gen uint64) tea.Cmd {
		return tea.Tick(motion.Frame, func(time.Time) tea.Msg { return frameMsg{gen: gen} })
	}
	return a
}

func (a *App) Init() tea.Cmd {
	return a.run(a.loader.LoadInitial(a.ctx))
}

// viewport is the screen width in pixels.
func (a *App) viewport() float64 {
	return float64(a.width) * a.cfg.UI.CellWidthPx
}

func (a *App) point(x, y int) gesture.Point {
	return gesture.Point{X: float64(x) * a.cfg.UI.CellWidthPx, Y: float64(y) * a.cfg.UI.CellHeightPx}
}

func (a *App) run(task loader.Task) tea.Cmd {
	return func() tea.Msg { return loadedMsg(task()) }
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.gestures.SetViewport(a.viewport())
		a.help.Width = m.Width
	case tea.KeyMsg:
		return a, a.handleKey(m)
	case tea.MouseMsg:
		return a, a.handleMouse(m)
	case tea.BlurMsg:
		a.pressing = false
		return a, a.afterGesture(a.gestures.Cancel(), service.SourceGesture)
	case frameMsg:
		return a, a.handleFrame(m)
	case loadedMsg:
		if a.loader.Apply(loader.Outcome(m)) {
			a.status = ""
		} else if a.view.Mode() == card.Terminal {
			a.status = "press r to try again"
		}
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.status = "error: " + m.Error()
	}
	return a, nil
}

// startAnim replaces any running animation.
func (a *App) startAnim(an animation) tea.Cmd {
	a.animGen++
	an.gen = a.animGen
	an.started = a.now()
	a.anim = &an
	return a.tick(an.gen)
}

func (a *App) stopSpring() {
	if a.anim != nil && a.anim.kind == animSpring {
		a.anim = nil
		a.view.SetTransform(card.Rest)
	}
}

func (a *App) handleFrame(m frameMsg) tea.Cmd {
	an := a.anim
	if an == nil || m.gen != an.gen {
		return nil
	}
	elapsed := a.now().Sub(an.started)
	a.view.SetTransform(an.tween.At(elapsed))
	if !an.tween.Done(elapsed) {
		return a.tick(an.gen)
	}
	a.anim = nil
	if an.kind == animExit {
		return a.finishExit(an)
	}
	return nil
}

// beginExit starts the outcome animation for a committed step.
func (a *App) beginExit(step gesture.Step, src service.Source) tea.Cmd {
	rec, _ := a.view.Record()
	a.view.SetDisabled(true)
	a.log.Info("decision committed",
		zap.String("id", rec.ID),
		zap.Stringer("direction", step.Direction),
		zap.String("source", string(src)))
	tw := motion.Exit(a.view.Transform(), step.Direction.Sign(), a.viewport(), a.cfg.Motion.ExitDegrees, a.cfg.Motion.Outcome)
	return a.startAnim(animation{kind: animExit, tween: tw, dir: step.Direction, source: src, rec: rec})
}

// finishExit resets the card synchronously before asking for the next record,
// so the next render starts from rest rather than the exit frame.
func (a *App) finishExit(an *animation) tea.Cmd {
	a.view.SetTransform(card.Rest)
	a.view.ShowPlaceholder()
	a.gestures.Settle()
	cmds := []tea.Cmd{a.run(a.loader.LoadNext(a.ctx, false))}
	if a.journal != nil {
		cmds = append(cmds, a.journalCmd(an))
	}
	return tea.Batch(cmds...)
}

func (a *App) journalCmd(an *animation) tea.Cmd {
	journal, ctx, log := a.journal, a.ctx, a.log
	rec, dir, src := an.rec, an.dir, an.source
	return func() tea.Msg {
		d, err := journal.Record(ctx, rec, dir, src)
		if err != nil {
			log.Error("journal decision", zap.String("id", rec.ID), zap.Error(err))
			return errMsg{err}
		}
		return statusMsg(journaled(d))
	}
}

// journaled is the status line for a stored decision.
func journaled(d repository.Decision) string {
	who := d.Name
	if who == "" {
		who = d.RecordID
	}
	if d.Direction == gesture.Right.String() {
		return "journaled: liked " + who
	}
	return "journaled: passed on " + who
}

// afterGesture turns a controller step into card feedback and animations.
func (a *App) afterGesture(step gesture.Step, src service.Source) tea.Cmd {
	if step.Feedback != nil {
		a.view.SetTransform(card.Transform{
			TranslateX: step.Feedback.TranslateX,
			RotateDeg:  step.Feedback.RotateDeg,
			Opacity:    1,
		})
	}
	switch step.Outcome {
	case gesture.Commit:
		return a.beginExit(step, src)
	case gesture.SpringBack:
		return a.startAnim(animation{kind: animSpring, tween: motion.Spring(a.view.Transform(), a.cfg.Motion.Spring)})
	}
	return nil
}

// popstate re-derives the card from the current location.
func (a *App) popstate() tea.Cmd {
	a.stopSpring()
	a.pressing = false
	a.gestures.Cancel()
	a.status = "loading…"
	return a.run(a.loader.LoadInitial(a.ctx))
}
