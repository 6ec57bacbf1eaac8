package filexp

import (
	"context"
	"fmt"
	"strconv"

	"github.com/filetug/filexp/pkg/files"
	"github.com/filetug/filexp/pkg/filexp/screen"
	"github.com/filetug/filexp/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const headerText = " filexp - terminal file explorer "

// Rows outside the entries viewport: title, path, table header, spacer,
// footer, instructions, status and input line.
const chromeRows = 8

func viewportHeightFor(rows int) int {
	return max(rows-chromeRows, 1)
}

var tableColumns = []string{"TYPE", "NAME", "SIZE", "PERMS"}

// renderer paints the navigator state onto the acquired screen.
type renderer struct {
	sc    *screen.Context
	table *tview.Table
	help  *tview.TextView
}

func newRenderer(sc *screen.Context) *renderer {
	help := tview.NewTextView().
		SetDynamicColors(false).
		SetWrap(false).
		SetText(helpTitle + "\n\n" + helpText)
	help.SetTextStyle(sc.Styles.Default)
	return &renderer{
		sc:    sc,
		table: newEntriesTable(),
		help:  help,
	}
}

func newEntriesTable() *tview.Table {
	return tview.NewTable().
		SetBorders(false).
		SetSelectable(false, false).
		SetFixed(1, 0)
}

func (r *renderer) draw(ctx context.Context, nav *Navigator, input *tview.InputField) {
	s := r.sc.Screen
	s.Clear()
	s.HideCursor()
	switch nav.Mode() {
	case ModeHelp:
		r.drawHelp()
	case ModeSearchResults:
		r.drawSearchResults(nav)
	default:
		r.drawBrowser(ctx, nav)
		if nav.Mode() == ModePrompting && input != nil {
			w, h := r.sc.Size()
			input.SetRect(0, h-1, w, 1)
			input.Draw(s)
		}
	}
	s.Show()
}

func (r *renderer) printLine(text string, y int, style tcell.Style) {
	w, _ := r.sc.Size()
	fg, _, _ := style.Decompose()
	tview.Print(r.sc.Screen, tview.Escape(text), 0, y, w, tview.AlignLeft, fg)
}

func (r *renderer) drawBrowser(ctx context.Context, nav *Navigator) {
	st := r.sc.Styles
	w, h := r.sc.Size()
	session := nav.Session()
	dir := session.CurrentPath()

	r.printLine(headerText, 0, st.Title)
	r.printLine("[DIR] Path: "+dir, 1, st.Path)

	vh := nav.ViewportHeight()
	r.fillTable(ctx, nav.Store(), session, vh)
	r.table.SetRect(1, 2, w-1, vh+1)
	r.table.Draw(r.sc.Screen)

	footerY := h - 4
	r.printLine(" "+dir+":$ ", footerY, st.Footer)
	free := strconv.FormatUint(nav.Store().GetFreeSpace(ctx, dir), 10) + " GiB free "
	fg, _, _ := st.Footer.Decompose()
	tview.Print(r.sc.Screen, free, 0, footerY, w, tview.AlignRight, fg)

	hintColor, _, _ := st.Hint.Decompose()
	hotkeyColor, _, _ := st.Selected.Decompose()
	drawSegments(r.sc.Screen, 0, h-3, w, menuSegments(instructionItems), hintColor, hotkeyColor)

	if msg := nav.Message(); msg != "" {
		r.printLine(msg, h-2, st.Status)
	}
}

// fillTable rebuilds the table with the header and the visible window only.
// Metadata is fetched on every draw.
func (r *renderer) fillTable(ctx context.Context, store files.Store, session *Session, viewportHeight int) {
	st := r.sc.Styles
	t := r.table
	t.Clear()
	for col, title := range tableColumns {
		t.SetCell(0, col, tview.NewTableCell(title).
			SetStyle(st.Header).
			SetSelectable(false))
	}
	from, to := session.VisibleRange(viewportHeight)
	for i := from; i < to; i++ {
		row := i - from + 1
		entry := files.Describe(ctx, store, session.CurrentPath(), session.Entry(i))
		cells := entryCells(entry, st)
		if i == session.Selection() {
			for _, cell := range cells {
				cell.SetStyle(st.Selected)
			}
		}
		for col, cell := range cells {
			t.SetCell(row, col, cell)
		}
	}
}

func entryCells(entry files.DirEntry, st screen.Styles) []*tview.TableCell {
	typeText, sizeText := "[FIL]", fsutils.GetSizeText(entry.Size())
	nameColor := GetColorByFileExt(entry.Name())
	if entry.IsDir() {
		typeText, sizeText = "[DIR]", "--"
		nameColor = st.Directory
	}
	return []*tview.TableCell{
		tview.NewTableCell(tview.Escape(typeText)).SetTextColor(nameColor),
		tview.NewTableCell(tview.Escape(entry.Name())).SetTextColor(nameColor).SetExpansion(1),
		tview.NewTableCell(sizeText).SetAlign(tview.AlignRight),
		tview.NewTableCell(entry.Perms()),
	}
}

func (r *renderer) drawHelp() {
	w, h := r.sc.Size()
	r.help.SetRect(2, 1, w-4, max(h-3, 1))
	r.help.Draw(r.sc.Screen)
	r.printLine("  "+pressAnyKey, h-1, r.sc.Styles.Hint)
}

func (r *renderer) drawSearchResults(nav *Navigator) {
	st := r.sc.Styles
	_, h := r.sc.Size()
	r.printLine(fmt.Sprintf("  Search results for '%s':", nav.SearchKeyword()), 0, st.Title)
	results := nav.SearchResults()
	room := h - 3
	for i, path := range results {
		y := i + 2
		if i >= room-1 && len(results) > room {
			r.printLine(fmt.Sprintf("    ... and %d more", len(results)-i), y, st.Hint)
			break
		}
		r.printLine("    "+path, y, st.Default)
	}
	r.printLine("  "+pressAnyKey, h-1, st.Hint)
}
