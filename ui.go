package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ==========================================
// 界面: 边框 / 标题 / 分数 / 弹窗 / 输入
// ==========================================

// Layout 固定布局
type Layout struct {
	Window   BoxDimensions
	GameArea BoxDimensions
}

var DefaultLayout = Layout{
	Window:   NewBox(38, 14, Coordinates{X: 0, Y: 0}),
	GameArea: NewBox(38, 12, Coordinates{X: 0, Y: 1}),
}

// Interior 蛇和水果可以占据的区域
func (l Layout) Interior() BoxDimensions {
	return l.GameArea.Inner(1)
}

const (
	MessageBoxWidth  = 26
	MessageBoxHeight = 10

	pollInterval = time.Millisecond
)

var (
	ErrConsoleTooSmall = errors.New("console window too small")
	ErrInterrupted     = errors.New("interrupted")
)

// SizeError 终端尺寸不足
type SizeError struct {
	Width, Height       int
	MinWidth, MinHeight int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("console window too small: %dx%d, need at least %dx%d",
		e.Width, e.Height, e.MinWidth, e.MinHeight)
}

func (e *SizeError) Unwrap() error { return ErrConsoleTooSmall }

// Summary 弹窗中显示的本局统计
type Summary struct {
	Score      int
	Length     int
	Difficulty Difficulty
}

type UI struct {
	con    Console
	layout Layout
	text   Messages
}

func NewUI(con Console, layout Layout, text Messages) *UI {
	return &UI{con: con, layout: layout, text: text}
}

// Initialize 隐藏光标，清屏并画出静态部分
func (u *UI) Initialize() {
	u.con.SetCursorVisible(false)
	u.con.Clear()
	u.DrawTitle()
	u.DrawScore()
	u.DrawInfobar()
	u.DrawGameArea()
}

func (u *UI) DrawTitle() {
	u.con.SetTitle(u.text.Title())
	u.con.SetCursorPosition(u.layout.Window.XStart(), u.layout.Window.YStart())
	u.con.Write(Ansify(u.text.Title(), TextStyle{Color: Color256(15), Bold: true}))
}

// DrawScore 画出分数标签和全零分数，之后用 UpdateScore 只更新数字
func (u *UI) DrawScore() {
	u.con.SetCursorPosition(u.layout.Window.XEnd()-12, u.layout.Window.YStart())
	u.con.Write(u.text.Score + " 000000")
}

func (u *UI) UpdateScore(score int) {
	u.con.SetCursorPosition(u.layout.Window.XEnd()-5, u.layout.Window.YStart())
	u.con.Write(fmt.Sprintf("%06d", score))
}

func (u *UI) DrawInfobar() {
	u.con.SetCursorPosition(u.layout.Window.XStart(), u.layout.Window.YEnd())
	u.con.Write(Ansify(u.text.InfoBar, TextStyle{Dim: true}))
}

func (u *UI) DrawGameArea() {
	u.DrawBox(u.layout.GameArea, RoundSingle)
}

// DrawBox 在指定位置画框并填充内部，返回内部区域
func (u *UI) DrawBox(b BoxDimensions, s BoxSymbols) BoxDimensions {
	inner := b.Width - 2
	if inner < 0 {
		inner = 0
	}
	top := string(s.TopLeft) + strings.Repeat(string(s.Horizontal), inner) + string(s.TopRight)
	mid := string(s.Vertical) + strings.Repeat(string(s.Fill), inner) + string(s.Vertical)
	bottom := string(s.BottomLeft) + strings.Repeat(string(s.Horizontal), inner) + string(s.BottomRight)

	for y := b.YStart(); y <= b.YEnd(); y++ {
		u.con.SetCursorPosition(b.XStart(), y)
		switch y {
		case b.YStart():
			u.con.Write(top)
		case b.YEnd():
			u.con.Write(bottom)
		default:
			u.con.Write(mid)
		}
	}
	return b.Inner(1)
}

// DrawCenteredBox 在窗口中居中画框
func (u *UI) DrawCenteredBox(w, h int, s BoxSymbols) BoxDimensions {
	origin := Coordinates{
		X: u.layout.Window.XStart() + (u.layout.Window.Width-w)/2,
		Y: u.layout.Window.YStart() + (u.layout.Window.Height-h)/2,
	}
	return u.DrawBox(NewBox(w, h, origin), s)
}

// DrawMessageBox 画出弹窗并从内部左上角开始逐行写入内容
func (u *UI) DrawMessageBox(lines []string, clip bool) {
	inner := u.DrawCenteredBox(MessageBoxWidth, MessageBoxHeight, SquareDouble)
	for i, line := range lines {
		y := inner.YStart() + i
		if clip && y > inner.YEnd() {
			break
		}
		if clip {
			line = clipLine(line, inner.Width)
		}
		u.con.SetCursorPosition(inner.XStart(), y)
		u.con.Write(line)
	}
}

// ClearGameArea 用空格覆盖游戏区内部
func (u *UI) ClearGameArea() {
	inner := u.layout.Interior()
	filler := strings.Repeat(" ", inner.Width)
	for y := inner.YStart(); y <= inner.YEnd(); y++ {
		u.con.SetCursorPosition(inner.XStart(), y)
		u.con.Write(filler)
	}
}

// ResetCursor 把光标放到窗口右下角
func (u *UI) ResetCursor() {
	u.con.SetCursorPosition(u.layout.Window.XEnd(), u.layout.Window.YEnd())
	u.con.SetCursorVisible(true)
}

func (u *UI) ConsoleSizeOK() bool {
	return u.CheckSize() == nil
}

// CheckSize 窗口小于布局时返回 *SizeError
func (u *UI) CheckSize() error {
	w, h := u.con.Size()
	if w >= u.layout.Window.Width && h >= u.layout.Window.Height {
		return nil
	}
	return &SizeError{Width: w, Height: h, MinWidth: u.layout.Window.Width, MinHeight: u.layout.Window.Height}
}

// PollInputKey 读取一个按键。accept 为空时接受任意键；
// timeout <= 0 时一直阻塞，否则超时返回 KeyNone。Ctrl+C 总是返回 ErrInterrupted
func (u *UI) PollInputKey(accept []Key, timeout time.Duration) (Key, error) {
	if err := u.con.Flush(); err != nil {
		return KeyNone, err
	}

	if timeout <= 0 {
		for {
			k, err := u.con.ReadKey()
			if err != nil {
				return KeyNone, err
			}
			if k == KeyInterrupt {
				return KeyNone, ErrInterrupted
			}
			if accepts(accept, k) {
				return k, nil
			}
		}
	}

	deadline := time.Now().Add(timeout)
	for {
		if u.con.KeyAvailable() {
			k, err := u.con.ReadKey()
			if err != nil {
				return KeyNone, err
			}
			if k == KeyInterrupt {
				return KeyNone, ErrInterrupted
			}
			if accepts(accept, k) {
				return k, nil
			}
			continue
		}
		if !time.Now().Before(deadline) {
			return KeyNone, nil
		}
		time.Sleep(pollInterval)
	}
}

func accepts(accept []Key, k Key) bool {
	if len(accept) == 0 {
		return true
	}
	for _, a := range accept {
		if a == k {
			return true
		}
	}
	return false
}

// --- 弹窗 ---

func (u *UI) heading(s string) string {
	return Ansify(PadToCenter(s, MessageBoxWidth-2), TextStyle{
		Color: Color256(15), Bold: true, Underline: true, SkipWhitespace: true,
	})
}

func (u *UI) prompt(s string) string {
	return Ansify(PadToCenter(s, MessageBoxWidth-2), TextStyle{Dim: true, SkipWhitespace: true})
}

func (u *UI) stats(sum Summary) []string {
	return []string{
		" " + u.text.Score + " " + strconv.Itoa(sum.Score),
		" " + u.text.SnakeLength + " " + strconv.Itoa(sum.Length),
		" " + u.text.Difficulty + " " + sum.Difficulty.String(),
	}
}

func (u *UI) endLines(title string, sum Summary) []string {
	lines := []string{u.heading(title), ""}
	lines = append(lines, u.stats(sum)...)
	return append(lines, "", u.prompt(u.text.EscapeToQuit), u.prompt(u.text.EnterToPlayAgain))
}

// ShowWinMessage 返回玩家是否选择再玩一局
func (u *UI) ShowWinMessage(sum Summary) (bool, error) {
	u.DrawMessageBox(u.endLines(u.text.WinnerHeading, sum), true)
	return u.askPlayAgain()
}

func (u *UI) ShowGameOverMessage(sum Summary) (bool, error) {
	u.DrawMessageBox(u.endLines(u.text.GameOverHeading, sum), true)
	return u.askPlayAgain()
}

// ShowPausedMessage 阻塞直到按下 Enter
func (u *UI) ShowPausedMessage(sum Summary) error {
	lines := []string{u.heading(u.text.PausedHeading), ""}
	lines = append(lines, u.stats(sum)...)
	lines = append(lines, "", "", u.prompt(u.text.EnterToResume))
	u.DrawMessageBox(lines, true)
	_, err := u.PollInputKey([]Key{KeyEnter}, 0)
	return err
}

func (u *UI) askPlayAgain() (bool, error) {
	k, err := u.PollInputKey([]Key{KeyEnter, KeyEsc}, 0)
	if err != nil {
		return false, err
	}
	return k == KeyEnter, nil
}
