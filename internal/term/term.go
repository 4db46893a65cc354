// Package term is a terminal front-end for the chess table built on tview.
package term

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/hailam/chesstable/internal/app"
	"github.com/hailam/chesstable/internal/config"
	"github.com/hailam/chesstable/internal/rules"
	"github.com/hailam/chesstable/internal/table"
)

const (
	boardRows = 8
	boardCols = 8
	cellWidth = 3
)

var glyphs = map[rules.PieceKind]string{
	rules.King:   "♚",
	rules.Queen:  "♛",
	rules.Rook:   "♜",
	rules.Bishop: "♝",
	rules.Knight: "♞",
	rules.Pawn:   "♟",
}

// Palette is the terminal rendition of the configured colours.
type Palette struct {
	Light, Dark, Selected, Marker tcell.Color
	WhitePiece, BlackPiece        tcell.Color
	Label                         tcell.Color
}

// PaletteFromConfig converts the configured palette to terminal colours.
func PaletteFromConfig(p config.PaletteConfig) Palette {
	return Palette{
		Light:      rgb(config.MustColor(p.Light)),
		Dark:       rgb(config.MustColor(p.Dark)),
		Selected:   rgb(config.MustColor(p.Selected)),
		Marker:     rgb(config.MustColor(p.Marker)),
		WhitePiece: tcell.ColorWhite,
		BlackPiece: tcell.ColorBlack,
		Label:      rgb(config.MustColor(p.Text)),
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Front draws the table in a terminal. The board is a 9x9 tview.Table: eight
// rows of tiles with the rank in column 0 and the files in row 8.
type Front struct {
	app    *app.App
	ctrl   *table.Controller
	logger *log.Logger

	tui     *tview.Application
	board   *tview.Table
	status  *tview.TextView
	history *tview.TextView
	layout  *tview.Flex

	palette Palette
	frame   table.Frame
}

// New builds the terminal table. A nil scheduler posts redraws to the tview
// event loop.
func New(cfg config.Config, logger *log.Logger, opts app.Options, sched table.Scheduler) (*Front, error) {
	f := &Front{
		logger:  logger,
		tui:     tview.NewApplication(),
		board:   tview.NewTable(),
		status:  tview.NewTextView(),
		history: tview.NewTextView(),
		palette: PaletteFromConfig(cfg.Palette),
	}
	if sched == nil {
		sched = table.SchedulerFunc(func(fn func()) {
			f.tui.QueueUpdateDraw(fn)
		})
	}

	a, err := app.New(cfg, logger, opts,
		table.WithScheduler(sched),
		table.WithView(f),
	)
	if err != nil {
		return nil, err
	}
	f.app = a
	f.ctrl = a.Controller

	f.board.SetSelectable(true, true).
		SetSelectedFunc(f.selectCell).
		SetInputCapture(f.captureKey)
	f.board.Select(boardRows-1, 1)
	f.board.SetBorder(true).SetTitle(" " + cfg.Window.Title + " ")

	f.history.SetDynamicColors(true).
		SetScrollable(true).
		SetBorder(true).
		SetTitle(" Moves ")
	f.status.SetDynamicColors(true)

	side := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(f.history, 0, 1, false).
		AddItem(tview.NewTextView().SetText("enter select  bksp cancel\nf flip  h hints  n new  q quit"), 2, 0, false)
	body := tview.NewFlex().
		AddItem(f.board, (boardCols+1)*(cellWidth+1)+2, 0, true).
		AddItem(side, 28, 0, false)
	f.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(body, boardRows+3, 0, true).
		AddItem(f.status, 2, 0, false)

	f.tui.SetRoot(f.layout, true).
		SetFocus(f.board).
		EnableMouse(true).
		SetMouseCapture(f.captureMouse)

	f.ctrl.Redraw()
	return f, nil
}

// Run builds the terminal table and blocks until the user quits.
func Run(cfg config.Config, logger *log.Logger, opts app.Options) error {
	f, err := New(cfg, logger, opts, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.app.Close(); err != nil {
			logger.Warn("could not save table state", "error", err)
		}
	}()
	return f.tui.Run()
}

// Present redraws every cell from fr.
func (f *Front) Present(fr table.Frame) {
	f.frame = fr

	for slot, t := range fr.Tiles {
		f.board.SetCell(slot/boardCols, slot%boardCols+1, f.tileCell(t))
	}
	for row := 0; row < boardRows; row++ {
		name := rules.IndexName(fr.Tiles[row*boardCols].Index)
		f.board.SetCell(row, 0, f.labelCell(name[1:]))
	}
	f.board.SetCell(boardRows, 0, f.labelCell(""))
	for col := 0; col < boardCols; col++ {
		name := rules.IndexName(fr.Tiles[(boardRows-1)*boardCols+col].Index)
		f.board.SetCell(boardRows, col+1, f.labelCell(name[:1]))
	}

	f.status.SetText(f.statusText(fr))
	f.history.SetText(historyText(fr.History))
	f.history.ScrollToEnd()
}

func (f *Front) tileCell(t table.TileRender) *tview.TableCell {
	bg := f.palette.Light
	if t.Shade == table.Dark {
		bg = f.palette.Dark
	}
	if t.Selected {
		bg = f.palette.Selected
	}

	text, fg := "   ", f.palette.WhitePiece
	switch {
	case t.Occupied:
		text = " " + glyphs[t.Piece.Kind] + " "
		if t.Piece.Side == rules.Black {
			fg = f.palette.BlackPiece
		}
	case t.Marker:
		text, fg = " • ", f.palette.Marker
	}
	// A capture keeps its piece glyph, so the marker shows as the background
	if t.Marker && t.Occupied {
		bg = f.palette.Marker
	}

	return tview.NewTableCell(text).
		SetAlign(tview.AlignCenter).
		SetTextColor(fg).
		SetBackgroundColor(bg).
		SetReference(t.Index)
}

func (f *Front) labelCell(s string) *tview.TableCell {
	return tview.NewTableCell(" " + s + " ").
		SetAlign(tview.AlignCenter).
		SetTextColor(f.palette.Label).
		SetSelectable(false)
}

func (f *Front) statusText(fr table.Frame) string {
	var b strings.Builder
	b.WriteString(fr.StatusLine())
	if fr.Orientation == table.Flipped {
		b.WriteString("  [::d]flipped[::-]")
	}
	if fr.Highlight {
		b.WriteString("  [::d]hints[::-]")
	}
	if f.app != nil && f.app.Persistent() {
		id := f.app.GameID()
		fmt.Fprintf(&b, "\n[::d]game %s[::-]", id[:min(8, len(id))])
	}
	return b.String()
}

func historyText(moves []string) string {
	var b strings.Builder
	for i := 0; i < len(moves); i += 2 {
		fmt.Fprintf(&b, "%3d. %-8s", i/2+1, moves[i])
		if i+1 < len(moves) {
			b.WriteString(moves[i+1])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// selectCell is the primary action on a board cell.
func (f *Front) selectCell(row, col int) {
	if row < 0 || row >= boardRows || col < 1 || col > boardCols {
		return
	}
	slot := row*boardCols + col - 1
	if slot >= len(f.frame.Tiles) {
		return
	}
	f.ctrl.Primary(f.frame.Tiles[slot].Index)
}

func (f *Front) captureKey(ev *tcell.EventKey) *tcell.EventKey {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		f.ctrl.Cancel()
		return nil
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'f':
			f.ctrl.FlipOrientation()
		case 'h':
			f.ctrl.ToggleLegalMoveHighlighting(!f.ctrl.HighlightLegalMoves())
		case 'n':
			f.app.NewGame()
		case 'q':
			f.tui.Stop()
		case ' ':
			f.selectCell(f.board.GetSelection())
		default:
			return ev
		}
		return nil
	}
	return ev
}

// captureMouse turns a left click on a tile into the primary action and any
// right click into a cancel.
func (f *Front) captureMouse(ev *tcell.EventMouse, action tview.MouseAction) (*tcell.EventMouse, tview.MouseAction) {
	switch action {
	case tview.MouseRightClick:
		f.ctrl.Cancel()
		return nil, action
	case tview.MouseLeftClick:
		row, col, ok := f.cellAt(ev.Position())
		if !ok {
			return ev, action
		}
		f.board.Select(row, col)
		f.selectCell(row, col)
		return nil, action
	}
	return ev, action
}

// cellAt maps screen coordinates to a board cell. All cells are cellWidth wide
// and columns are separated by one blank.
func (f *Front) cellAt(x, y int) (row, col int, ok bool) {
	bx, by, bw, bh := f.board.GetInnerRect()
	if x < bx || y < by || x >= bx+bw || y >= by+bh {
		return 0, 0, false
	}
	row, col = y-by, (x-bx)/(cellWidth+1)
	if row >= boardRows || col < 1 || col > boardCols {
		return 0, 0, false
	}
	return row, col, true
}
