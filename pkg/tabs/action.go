package tabs

// Action is a navigation step within a group.
type Action uint8

const (
	ActionNone Action = iota
	ActionPrevious
	ActionNext
	ActionFirst
	ActionLast
)

// String returns the string representation of the Action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionPrevious:
		return "previous"
	case ActionNext:
		return "next"
	case ActionFirst:
		return "first"
	case ActionLast:
		return "last"
	default:
		return "unknown"
	}
}

// Key codes, as reported by KeyboardEvent.code.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyHome       = "Home"
	KeyEnd        = "End"
)

// keyActions maps unmodified key codes to actions. It is never mutated.
var keyActions = map[string]Action{
	KeyArrowLeft:  ActionPrevious,
	KeyArrowRight: ActionNext,
	KeyHome:       ActionFirst,
	KeyEnd:        ActionLast,
}

// ActionForKey resolves a key-down to an action. Meta+ArrowLeft and
// Meta+ArrowRight take priority and jump to the first and last tab. Unknown
// codes return ActionNone.
func ActionForKey(code string, meta bool) Action {
	if meta {
		switch code {
		case KeyArrowLeft:
			return ActionFirst
		case KeyArrowRight:
			return ActionLast
		}
	}
	return keyActions[code]
}

// Source identifies what caused an activation.
type Source uint8

const (
	SourceProgrammatic Source = iota
	SourceKeyboard
	SourceClick
)

// String returns the string representation of the Source.
func (s Source) String() string {
	switch s {
	case SourceProgrammatic:
		return "programmatic"
	case SourceKeyboard:
		return "keyboard"
	case SourceClick:
		return "click"
	default:
		return "unknown"
	}
}
