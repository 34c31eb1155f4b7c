package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/term"
)

var (
	ErrNoTerminal  = errors.New("stdin/stdout is not a terminal")
	ErrInputClosed = errors.New("input closed")
)

// Key 按键编码，普通字节按原值透传
type Key int

// 按键映射
const (
	KeyNone      Key = 0
	KeyInterrupt Key = 3 // Ctrl+C (原始模式下不会产生信号)
	KeyEnter     Key = 13
	KeyEsc       Key = 27
	KeyPause     Key = 'p'
	KeyUp        Key = 1001
	KeyDown      Key = 1002
	KeyLeft      Key = 1003
	KeyRight     Key = 1004
)

// Console 宿主终端抽象，游戏只通过它读写屏幕
type Console interface {
	SetCursorPosition(x, y int)
	Write(s string)
	Clear()
	SetCursorVisible(visible bool)
	SetTitle(title string)
	Size() (width, height int)
	KeyAvailable() bool
	ReadKey() (Key, error)
	Flush() error
}

// CRLFWriter 包装 io.Writer，将所有 \n 转换为 \r\n，解决原始模式下的阶梯效应
type CRLFWriter struct {
	w io.Writer
}

func (cw *CRLFWriter) Write(p []byte) (n int, err error) {
	var buf bytes.Buffer
	for _, b := range p {
		if b == '\n' {
			buf.Write([]byte("\r\n"))
		} else {
			buf.WriteByte(b)
		}
	}
	// n 必须是 p 被消费的字节数
	_, err = cw.w.Write(buf.Bytes())
	return len(p), err
}

// Terminal 基于字节流的终端实现: 输出先写入缓冲区，Flush 时一次性写出；
// 输入由独立协程解析为 Key 后送入 keyChan
type Terminal struct {
	mu   sync.Mutex
	out  io.Writer
	buf  bytes.Buffer
	size func() (int, int)

	keyChan   chan Key
	closeOnce sync.Once
	pending   []Key
	closed    bool

	// ANSI 序列解析状态 0: None, 1: ESC, 2: CSI/SS3
	escState int
}

func NewTerminal(out io.Writer, sizeFunc func() (int, int)) *Terminal {
	return &Terminal{
		out:     out,
		size:    sizeFunc,
		keyChan: make(chan Key, 128), // 带缓冲，防止按键丢失
	}
}

func (t *Terminal) SetCursorPosition(x, y int) {
	t.mu.Lock()
	fmt.Fprintf(&t.buf, "\033[%d;%dH", y+1, x+1)
	t.mu.Unlock()
}

func (t *Terminal) Write(s string) {
	t.mu.Lock()
	t.buf.WriteString(s)
	t.mu.Unlock()
}

// Print 按行输出普通文本 (\n 自动转为 \r\n)
func (t *Terminal) Print(s string) {
	t.mu.Lock()
	(&CRLFWriter{w: &t.buf}).Write([]byte(s))
	t.mu.Unlock()
}

func (t *Terminal) Clear() {
	t.Write("\033[2J")
}

func (t *Terminal) SetCursorVisible(visible bool) {
	if visible {
		t.Write("\033[?25h")
	} else {
		t.Write("\033[?25l")
	}
}

// SetTitle 用 OSC 0 设置窗口标题
func (t *Terminal) SetTitle(title string) {
	t.Write("\033]0;" + title + "\a")
}

// Reset 恢复默认颜色并显示光标
func (t *Terminal) Reset() {
	t.Write("\033[0m\033[?25h")
}

func (t *Terminal) Size() (int, int) {
	if t.size == nil {
		return 0, 0
	}
	return t.size()
}

func (t *Terminal) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.buf.Len() == 0 {
		return nil
	}
	_, err := t.out.Write(t.buf.Bytes())
	t.buf.Reset()
	return err
}

// --- 输入处理 ---

// escTimeout 单独的 ESC 之后这么久没有后续字节才算 Esc 键
const escTimeout = 100 * time.Millisecond

// inputLoop 独立运行的输入读取循环，游戏主循环只从 keyChan 取键。
// 读取放在单独协程里，这样 ESC 之后可以限时等待序列的后半段
func (t *Terminal) inputLoop(in io.Reader) {
	chunks := make(chan []byte)
	done := make(chan error, 1)
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := in.Read(buf)
			if n > 0 {
				chunks <- bytes.Clone(buf[:n])
			}
			if err != nil {
				done <- err // 通常是 io.EOF
				return
			}
		}
	}()

	var escTimer <-chan time.Time
	for {
		select {
		case p := <-chunks:
			t.emit(t.parseKeys(p))
		case <-escTimer:
			t.emit(t.flushEsc())
		case <-done:
			t.emit(t.flushEsc())
			t.closeInput()
			return
		}
		escTimer = nil
		if t.escState == 1 {
			escTimer = time.After(escTimeout)
		}
	}
}

func (t *Terminal) emit(keys []Key) {
	for _, k := range keys {
		t.keyChan <- k
	}
}

func (t *Terminal) closeInput() {
	t.closeOnce.Do(func() { close(t.keyChan) })
}

// parseKeys 解析一次读取到的字节。末尾的 ESC 留给下一次读取或 flushEsc
func (t *Terminal) parseKeys(p []byte) []Key {
	var keys []Key
	for _, b := range p {
		if k := t.parseByte(b); k != KeyNone {
			keys = append(keys, k)
		}
	}
	return keys
}

// flushEsc 等待超时后把悬而未决的 ESC 当作 Esc 键
func (t *Terminal) flushEsc() []Key {
	if t.escState != 1 {
		return nil
	}
	t.escState = 0
	return []Key{KeyEsc}
}

// parseByte 解析原始字节流，识别 ANSI 转义序列
func (t *Terminal) parseByte(b byte) Key {
	switch t.escState {
	case 0:
		if b == 27 {
			t.escState = 1
			return KeyNone
		}
		return runeKey(rune(b))
	case 1:
		if b == '[' || b == 'O' { // CSI 和 SS3 都处理
			t.escState = 2
			return KeyNone
		}
		// Alt+字符: 丢掉 ESC
		t.escState = 0
		return t.parseByte(b)
	case 2:
		if (b >= '0' && b <= '9') || b == ';' {
			return KeyNone
		}
		t.escState = 0
		switch b {
		case 'A':
			return KeyUp
		case 'B':
			return KeyDown
		case 'C':
			return KeyRight
		case 'D':
			return KeyLeft
		}
	}
	return KeyNone
}

// runeKey 普通字符到按键的映射 (WASD 等同方向键)
func runeKey(r rune) Key {
	switch r {
	case 13, 10:
		return KeyEnter
	case 'w', 'W':
		return KeyUp
	case 's', 'S':
		return KeyDown
	case 'a', 'A':
		return KeyLeft
	case 'd', 'D':
		return KeyRight
	case 'p', 'P':
		return KeyPause
	}
	return Key(r)
}

func (t *Terminal) KeyAvailable() bool {
	if len(t.pending) > 0 || t.closed {
		return true
	}
	select {
	case k, ok := <-t.keyChan:
		if !ok {
			t.closed = true
			return true
		}
		t.pending = append(t.pending, k)
		return true
	default:
		return false
	}
}

func (t *Terminal) ReadKey() (Key, error) {
	if len(t.pending) > 0 {
		k := t.pending[0]
		t.pending = t.pending[1:]
		return k, nil
	}
	if t.closed {
		return KeyNone, ErrInputClosed
	}
	k, ok := <-t.keyChan
	if !ok {
		t.closed = true
		return KeyNone, ErrInputClosed
	}
	return k, nil
}

// windowSize 读取终端尺寸，失败时返回 0,0 (会被视为窗口过小)
func windowSize(fd int) (int, int) {
	w, h, err := term.GetSize(fd)
	if err != nil {
		return 0, 0
	}
	return w, h
}
