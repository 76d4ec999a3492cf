package game

import (
	"log/slog"

	"firstgame/internal/config"
	"firstgame/internal/logsink"
)

type GameState int

const (
	StateStopped GameState = iota
	StateRunning           // ticking
	StatePaused            // started, controls held
)

func (s GameState) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	}
	return "unknown"
}

// Op is one entry point of the session API.
type Op int

const (
	OpInit Op = iota
	OpStart
	OpPause
	OpResume
	OpStop
	OpUpdate
)

func (o Op) String() string {
	switch o {
	case OpInit:
		return "init"
	case OpStart:
		return "start"
	case OpPause:
		return "pause"
	case OpResume:
		return "resume"
	case OpStop:
		return "stop"
	case OpUpdate:
		return "update"
	}
	return "unknown"
}

// Transition applies a state-changing op. It reports false, and returns the
// state unchanged, when the op is not allowed from s. OpUpdate never changes
// state.
func Transition(s GameState, op Op) (GameState, bool) {
	switch op {
	case OpInit:
		return StateRunning, true
	case OpStart:
		if s == StateStopped {
			return StateRunning, true
		}
	case OpPause:
		if s == StateRunning {
			return StatePaused, true
		}
	case OpResume:
		if s == StatePaused {
			return StateRunning, true
		}
	case OpStop:
		return StateStopped, true
	}
	return s, false
}

// Snapshot is the plain-data view of a session.
type Snapshot struct {
	State   GameState
	PlayerX float64
	PlayerY float64
}

// Session holds the run state and the tracked player coordinates.
// It is not safe for concurrent use; drive it from the platform loop.
type Session struct {
	State   GameState
	PlayerX float64
	PlayerY float64

	cfg config.Game
	bus *EventBus
	log *slog.Logger
}

// NewSession returns a stopped session. bus may be nil.
func NewSession(cfg config.Game, bus *EventBus) *Session {
	return &Session{
		State: StateStopped,
		cfg:   cfg,
		bus:   bus,
		log:   logsink.For(logsink.TagGame),
	}
}

// Apply runs op and reports whether it had an effect.
func (s *Session) Apply(op Op) bool {
	if op == OpUpdate {
		return s.update()
	}
	if op == OpInit {
		s.log.Info("Initializing game...")
		s.PlayerX = s.cfg.StartX
		s.PlayerY = s.cfg.StartY
	}
	from := s.State
	to, ok := Transition(from, op)
	if !ok {
		s.log.Debug("transition ignored", "op", op.String(), "state", from.String())
		return false
	}
	s.State = to
	switch op {
	case OpStart:
		s.log.Info("Game started.")
	case OpPause:
		s.log.Info("Game paused.")
	case OpResume:
		s.log.Info("Game resumed.")
	case OpStop:
		s.log.Info("Game stopped.")
	}
	s.emit(Event{Type: EventStateChanged, Op: op, From: from, To: to, X: s.PlayerX, Y: s.PlayerY})
	return true
}

func (s *Session) update() bool {
	if !s.Running() {
		s.log.Debug("Game is not running.")
		return false
	}
	s.PlayerX += s.cfg.Step
	if s.PlayerX > s.cfg.WrapX {
		s.PlayerX = 0
		s.emit(Event{Type: EventPlayerWrapped, Op: OpUpdate, From: s.State, To: s.State, X: s.PlayerX, Y: s.PlayerY})
	}
	return true
}

func (s *Session) emit(e Event) {
	if s.bus != nil {
		s.bus.Emit(e)
	}
}

func (s *Session) Init()   { s.Apply(OpInit) }
func (s *Session) Update() { s.Apply(OpUpdate) }
func (s *Session) Start()  { s.Apply(OpStart) }
func (s *Session) Pause()  { s.Apply(OpPause) }
func (s *Session) Resume() { s.Apply(OpResume) }
func (s *Session) Stop()   { s.Apply(OpStop) }

// Running reports the started flag: true while running or paused. Update
// advances the player whenever it is set.
func (s *Session) Running() bool { return s.State != StateStopped }

func (s *Session) Paused() bool { return s.State == StatePaused }

func (s *Session) Snapshot() Snapshot {
	return Snapshot{State: s.State, PlayerX: s.PlayerX, PlayerY: s.PlayerY}
}
