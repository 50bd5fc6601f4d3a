package editor

// ModeKind is the editor's input-interpretation state.
type ModeKind uint8

const (
	ModeNormal ModeKind = iota
	ModeInsert
	ModeCommand
)

func (k ModeKind) String() string {
	switch k {
	case ModeInsert:
		return "INSERT"
	case ModeCommand:
		return "COMMAND"
	default:
		return "NORMAL"
	}
}

// Mode is the current mode plus the data it carries.
//
// Command holds the command-line text typed so far (ModeCommand only).
// Status is a one-shot message shown in Normal mode after a write; StatusErr
// marks it as a failure. Both are dropped by the next action.
type Mode struct {
	Kind      ModeKind
	Command   string
	Status    string
	StatusErr bool
}

func normalMode() Mode { return Mode{Kind: ModeNormal} }

func insertMode() Mode { return Mode{Kind: ModeInsert} }

func commandMode(text string) Mode { return Mode{Kind: ModeCommand, Command: text} }

func statusMode(msg string, isErr bool) Mode {
	return Mode{Kind: ModeNormal, Status: msg, StatusErr: isErr}
}
