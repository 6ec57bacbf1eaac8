package filexp

import (
	"context"
	"path/filepath"

	"github.com/filetug/filexp/pkg/files"
	"github.com/filetug/filexp/pkg/filexp/ftlog"
	"github.com/filetug/filexp/pkg/launch"
	"github.com/rs/zerolog"
)

// Session is the browsing state that lives for the whole run.
type Session struct {
	currentPath    string
	entries        []string
	selection      int
	viewportOffset int
}

func (s *Session) CurrentPath() string { return s.currentPath }
func (s *Session) Entries() []string   { return s.entries }
func (s *Session) Selection() int      { return s.selection }
func (s *Session) ViewportOffset() int { return s.viewportOffset }
func (s *Session) Len() int            { return len(s.entries) }
func (s *Session) IsEmpty() bool       { return len(s.entries) == 0 }
func (s *Session) Entry(i int) string  { return s.entries[i] }
func (s *Session) selected() (string, bool) {
	if len(s.entries) == 0 {
		return "", false
	}
	return s.entries[s.selection], true
}

// Navigator is the command dispatcher. It is not safe for concurrent use:
// the input loop is its only caller.
type Navigator struct {
	store    files.Store
	launcher launch.Launcher
	log      zerolog.Logger

	session        Session
	viewportHeight int

	mode    Mode
	prompt  PromptPurpose
	source  string // entry a pending cp, mv or chmod applies to
	message string

	searchKeyword string
	searchResults []string
}

type NavigatorOption func(nav *Navigator)

// WithViewportHeight sets the initial number of visible rows.
func WithViewportHeight(h int) NavigatorOption {
	return func(nav *Navigator) {
		nav.viewportHeight = max(h, 1)
	}
}

// NewNavigator starts a session in dir, which must be a canonical path.
func NewNavigator(ctx context.Context, store files.Store, launcher launch.Launcher, dir string, options ...NavigatorOption) *Navigator {
	nav := &Navigator{
		store:          store,
		launcher:       launcher,
		log:            ftlog.Get("navigator"),
		viewportHeight: 1,
		session:        Session{currentPath: dir},
	}
	for _, option := range options {
		option(nav)
	}
	nav.refresh(ctx)
	return nav
}

func (nav *Navigator) Session() *Session       { return &nav.session }
func (nav *Navigator) Mode() Mode              { return nav.mode }
func (nav *Navigator) Prompt() PromptPurpose   { return nav.prompt }
func (nav *Navigator) Message() string         { return nav.message }
func (nav *Navigator) ViewportHeight() int     { return nav.viewportHeight }
func (nav *Navigator) SearchKeyword() string   { return nav.searchKeyword }
func (nav *Navigator) SearchResults() []string { return nav.searchResults }
func (nav *Navigator) Store() files.Store      { return nav.store }

// SetViewportHeight is called on terminal resize.
func (nav *Navigator) SetViewportHeight(h int) {
	nav.viewportHeight = max(h, 1)
	nav.session.scrollToSelection(nav.viewportHeight)
}

// Dispatch applies one command to the current mode.
func (nav *Navigator) Dispatch(ctx context.Context, cmd Command) {
	from := nav.mode
	switch nav.mode {
	case ModeBrowsing:
		nav.browse(ctx, cmd)
	case ModePrompting:
		nav.completePrompt(ctx, cmd)
	case ModeSearchResults:
		nav.mode = ModeBrowsing
		nav.searchKeyword, nav.searchResults = "", nil
		nav.refresh(ctx)
	case ModeHelp:
		nav.mode = ModeBrowsing
	case ModeQuit:
	}
	if nav.mode != from {
		nav.log.Debug().Stringer("from", from).Stringer("to", nav.mode).Msg("mode changed")
	}
}

func (nav *Navigator) browse(ctx context.Context, cmd Command) {
	if cmd.Kind == CmdNone {
		return
	}
	nav.message = ""
	s := &nav.session
	switch cmd.Kind {
	case CmdUp:
		s.moveSelection(-1, nav.viewportHeight)
	case CmdDown:
		s.moveSelection(1, nav.viewportHeight)
	case CmdPageUp:
		s.moveSelection(-nav.viewportHeight, nav.viewportHeight)
	case CmdPageDown:
		s.moveSelection(nav.viewportHeight, nav.viewportHeight)
	case CmdHome:
		s.moveSelection(-s.selection, nav.viewportHeight)
	case CmdEnd:
		s.moveSelection(len(s.entries), nav.viewportHeight)
	case CmdOpen:
		nav.open(ctx)
	case CmdParent:
		if dir, ok := nav.store.ChangeDirectory(ctx, s.currentPath, files.ParentDir); ok {
			nav.enter(ctx, dir)
		}
	case CmdCreateFile:
		nav.startPrompt(PromptTouch, "")
	case CmdCreateDir:
		nav.startPrompt(PromptMkdir, "")
	case CmdDelete:
		nav.delete(ctx)
	case CmdCopy:
		if name, ok := s.selected(); ok {
			nav.startPrompt(PromptCopy, name)
		}
	case CmdMove:
		if name, ok := s.selected(); ok {
			nav.startPrompt(PromptMove, name)
		}
	case CmdSearch:
		nav.startPrompt(PromptFind, "")
	case CmdPermissions:
		if name, ok := s.selected(); ok {
			perms := nav.store.GetPermissions(ctx, s.currentPath, name)
			nav.startPrompt(PromptChmod, name)
			nav.message = msgPerms(name, perms)
		}
	case CmdHelp:
		nav.mode = ModeHelp
	case CmdQuit:
		nav.mode = ModeQuit
	case CmdAny, CmdSubmit, CmdCancel:
	}
}

func (nav *Navigator) open(ctx context.Context) {
	s := &nav.session
	name, ok := s.selected()
	if !ok {
		return
	}
	if nav.store.IsDirectory(ctx, s.currentPath, name) {
		dir, ok := nav.store.ChangeDirectory(ctx, s.currentPath, name)
		if !ok {
			nav.message = msgCannotOpenDir
			return
		}
		nav.enter(ctx, dir)
		return
	}
	path := filepath.Join(s.currentPath, name)
	if err := nav.launcher.Launch(path); err != nil {
		nav.log.Warn().Err(err).Str("path", path).Msg("failed to launch opener")
	}
	nav.message = msgOpening(name)
}

func (nav *Navigator) enter(ctx context.Context, dir string) {
	nav.session.currentPath = dir
	nav.session.selection = 0
	nav.session.viewportOffset = 0
	nav.refresh(ctx)
	nav.log.Debug().Str("dir", dir).Int("entries", nav.session.Len()).Msg("entered directory")
}

func (nav *Navigator) delete(ctx context.Context) {
	s := &nav.session
	name, ok := s.selected()
	if !ok {
		return
	}
	deleted := nav.store.DeleteEntry(ctx, s.currentPath, name)
	nav.message = outcome(deleted, msgDeleted, msgDeleteFailed)
	nav.refresh(ctx)
}

func (nav *Navigator) startPrompt(purpose PromptPurpose, source string) {
	nav.mode = ModePrompting
	nav.prompt = purpose
	nav.source = source
}

func (nav *Navigator) endPrompt() {
	nav.mode = ModeBrowsing
	nav.prompt = PromptNone
	nav.source = ""
}

func (nav *Navigator) completePrompt(ctx context.Context, cmd Command) {
	switch cmd.Kind {
	case CmdSubmit:
	case CmdCancel:
		nav.endPrompt()
		nav.message = ""
		return
	default:
		return
	}
	purpose, source, text := nav.prompt, nav.source, cmd.Text
	nav.endPrompt()
	if text == "" {
		nav.message = ""
		return
	}
	dir := nav.session.currentPath
	switch purpose {
	case PromptTouch:
		nav.message = outcome(nav.store.CreateFile(ctx, dir, text), msgFileCreated, msgFileCreateFailed)
		nav.refresh(ctx)
	case PromptMkdir:
		nav.message = outcome(nav.store.CreateDirectory(ctx, dir, text), msgDirCreated, msgDirCreateFailed)
		nav.refresh(ctx)
	case PromptCopy:
		nav.message = outcome(nav.store.CopyEntry(ctx, dir, source, text), msgCopied, msgCopyFailed)
		nav.refresh(ctx)
	case PromptMove:
		nav.message = outcome(nav.store.MoveEntry(ctx, dir, source, text), msgMoved, msgMoveFailed)
		nav.refresh(ctx)
	case PromptFind:
		nav.searchKeyword = text
		nav.searchResults = nav.store.SearchEntries(ctx, dir, text)
		nav.mode = ModeSearchResults
	case PromptChmod:
		if len(text) != files.PermsLen {
			nav.message = msgPermsInvalid
			return
		}
		nav.message = outcome(nav.store.SetPermissions(ctx, dir, source, text), msgPermsUpdated, msgPermsFailed)
	case PromptNone:
	}
}

// refresh re-reads the current directory and re-establishes the selection
// and viewport bounds.
func (nav *Navigator) refresh(ctx context.Context) {
	nav.session.entries = nav.store.ListEntries(ctx, nav.session.currentPath)
	nav.session.clampSelection(nav.viewportHeight)
}
