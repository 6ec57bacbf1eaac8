package filexp

import "github.com/gdamore/tcell/v2"

type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdUp
	CmdDown
	CmdPageUp
	CmdPageDown
	CmdHome
	CmdEnd
	CmdOpen
	CmdParent
	CmdCreateFile
	CmdCreateDir
	CmdDelete
	CmdCopy
	CmdMove
	CmdSearch
	CmdPermissions
	CmdHelp
	CmdQuit
	CmdAny    // any key while a result screen is shown
	CmdSubmit // prompt completed, Text holds the input
	CmdCancel // prompt aborted
)

// Command is a decoded user input.
type Command struct {
	Kind CommandKind
	Text string
}

func Submit(text string) Command {
	return Command{Kind: CmdSubmit, Text: text}
}

var keyCommands = map[tcell.Key]CommandKind{
	tcell.KeyUp:    CmdUp,
	tcell.KeyDown:  CmdDown,
	tcell.KeyPgUp:  CmdPageUp,
	tcell.KeyPgDn:  CmdPageDown,
	tcell.KeyHome:  CmdHome,
	tcell.KeyEnd:   CmdEnd,
	tcell.KeyEnter: CmdOpen,
	tcell.KeyLeft:  CmdParent,
	tcell.KeyF1:    CmdHelp,
	tcell.KeyCtrlC: CmdQuit,
}

var runeCommands = map[rune]CommandKind{
	'k': CmdUp,
	'j': CmdDown,
	'c': CmdCreateFile,
	'C': CmdCreateDir,
	'd': CmdDelete,
	'y': CmdCopy,
	'm': CmdMove,
	's': CmdSearch,
	'p': CmdPermissions,
	'h': CmdHelp,
	'q': CmdQuit,
}

// DecodeKey maps a key press in browsing mode onto a command.
// Unbound keys decode to CmdNone.
func DecodeKey(event *tcell.EventKey) Command {
	if event == nil {
		return Command{}
	}
	if event.Key() == tcell.KeyRune {
		if mod := event.Modifiers(); mod&(tcell.ModAlt|tcell.ModCtrl) != 0 {
			if mod == tcell.ModCtrl && (event.Rune() == 'c' || event.Rune() == 'C') {
				return Command{Kind: CmdQuit}
			}
			return Command{}
		}
		return Command{Kind: runeCommands[event.Rune()]}
	}
	if k := event.Key(); k == tcell.KeyBackspace || k == tcell.KeyBackspace2 {
		return Command{Kind: CmdParent}
	}
	return Command{Kind: keyCommands[event.Key()]}
}
