package input

import (
	"sort"
	"strings"
)

// Action represents what a console line asks for.
type Action int

const (
	ActionNone Action = iota
	ActionCheat
	ActionMap
	ActionHelp
	ActionQuit
)

// Intent is a classified console line.
type Intent struct {
	Action Action
	// Text is the trimmed line, passed on to the cheat manager for ActionCheat
	Text string
}

// bindings maps console words to actions. Anything else is a cheat.
var bindings = map[string]Action{
	"map":  ActionMap,
	"m":    ActionMap,
	"?":    ActionHelp,
	"help": ActionHelp,
	"quit": ActionQuit,
	"q":    ActionQuit,
	"exit": ActionQuit,
}

// MapToIntent classifies a console line. Console words are matched case-insensitively.
func MapToIntent(line string) Intent {
	text := strings.TrimSpace(line)
	if text == "" {
		return Intent{Action: ActionNone}
	}
	if act, ok := bindings[strings.ToLower(text)]; ok {
		return Intent{Action: act, Text: text}
	}
	return Intent{Action: ActionCheat, Text: text}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionCheat:
		return "Cheat"
	case ActionMap:
		return "Show Map"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the console words grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
