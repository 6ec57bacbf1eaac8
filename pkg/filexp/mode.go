package filexp

// Mode is the state of the navigator's modal input loop.
type Mode int

const (
	ModeBrowsing Mode = iota
	ModePrompting
	ModeSearchResults
	ModeHelp
	ModeQuit
)

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModePrompting:
		return "prompting"
	case ModeSearchResults:
		return "search_results"
	case ModeHelp:
		return "help"
	case ModeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// PromptPurpose tells what the text collected in ModePrompting is for.
type PromptPurpose int

const (
	PromptNone PromptPurpose = iota
	PromptTouch
	PromptMkdir
	PromptCopy
	PromptMove
	PromptFind
	PromptChmod
)

var promptLabels = map[PromptPurpose]string{
	PromptTouch: "touch",
	PromptMkdir: "mkdir",
	PromptCopy:  "cp",
	PromptMove:  "mv",
	PromptFind:  "find",
	PromptChmod: "chmod",
}

// Label is shown in front of the input line.
func (p PromptPurpose) Label() string {
	return promptLabels[p]
}
