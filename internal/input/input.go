package input

type Action uint8

const (
	None Action = iota
	Hit
	Confirm
	Back
	Settings
	Bestiary
	Title
	Left
	Right
	OffsetDown
	OffsetUp
	Hazard
	Quit
)

var actionNames = [...]string{
	None:       "none",
	Hit:        "hit",
	Confirm:    "confirm",
	Back:       "back",
	Settings:   "settings",
	Bestiary:   "bestiary",
	Title:      "title",
	Left:       "left",
	Right:      "right",
	OffsetDown: "offset-down",
	OffsetUp:   "offset-up",
	Hazard:     "hazard",
	Quit:       "quit",
}

func (a Action) String() string {
	if int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Queue buffers actions between frames. It is drained once per frame by the
// frame loop and never touched from another goroutine.
type Queue struct {
	actions []Action
}

func (q *Queue) Push(actions ...Action) {
	q.actions = append(q.actions, actions...)
}

// Drain returns the queued actions in arrival order and empties the queue.
func (q *Queue) Drain() []Action {
	if len(q.actions) == 0 {
		return nil
	}
	actions := make([]Action, len(q.actions))
	copy(actions, q.actions)
	q.actions = q.actions[:0]
	return actions
}

func (q *Queue) Len() int {
	return len(q.actions)
}

// Source yields the actions that arrived since the last call, without
// blocking.
type Source interface {
	Poll() []Action
}
