package main

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestUI(keys ...Key) (*UI, *fakeConsole) {
	fc := newFakeConsole(38, 14, keys...)
	return NewUI(fc, DefaultLayout, English), fc
}

func TestUI_Initialize(t *testing.T) {
	ui, fc := newTestUI()
	ui.Initialize()

	if fc.cursorVisible {
		t.Error("cursor should be hidden")
	}
	if fc.title != "Snake v"+AppVersion {
		t.Errorf("window title: %q", fc.title)
	}
	if fc.clears != 1 {
		t.Errorf("expected one clear, got %d", fc.clears)
	}

	top := fc.row(0)
	if !strings.HasPrefix(top, "Snake v"+AppVersion) {
		t.Errorf("title row: %q", top)
	}
	if !strings.HasSuffix(top, "Score: 000000") {
		t.Errorf("score: %q", top)
	}

	corners := map[[2]int]rune{{0, 1}: '╭', {37, 1}: '╮', {0, 12}: '╰', {37, 12}: '╯'}
	for pos, want := range corners {
		if got := fc.cell(pos[0], pos[1]); got != want {
			t.Errorf("corner %v: want %q, got %q", pos, want, got)
		}
	}
	if got := fc.cell(10, 1); got != '─' {
		t.Errorf("top edge: got %q", got)
	}
	if got := fc.cell(0, 6); got != '│' {
		t.Errorf("left edge: got %q", got)
	}
	if !strings.HasPrefix(fc.row(13), English.InfoBar) {
		t.Errorf("infobar: %q", fc.row(13))
	}
}

func TestUI_UpdateScore(t *testing.T) {
	ui, fc := newTestUI()
	ui.DrawScore()
	ui.UpdateScore(42)
	if got := fc.row(0); !strings.HasSuffix(got, "Score: 000042") {
		t.Errorf("score row: %q", got)
	}
}

func TestUI_DrawMessageBox(t *testing.T) {
	ui, fc := newTestUI()
	lines := []string{strings.Repeat("a", 30), "b"}
	for i := 0; i < 10; i++ {
		lines = append(lines, "c")
	}
	ui.DrawMessageBox(lines, true)

	// 26x10 居中: 原点 (6,2)
	if fc.cell(6, 2) != '╔' || fc.cell(31, 2) != '╗' || fc.cell(6, 11) != '╚' || fc.cell(31, 11) != '╝' {
		t.Errorf("box corners wrong:\n%s", fc.screen())
	}
	if got := string([]rune(fc.row(3))[7:31]); got != strings.Repeat("a", 24) {
		t.Errorf("first line: %q", got)
	}
	if fc.cell(31, 3) != '║' {
		t.Error("clipped line overwrote the right border")
	}
	if fc.cell(7, 4) != 'b' {
		t.Errorf("second line: %q", fc.cell(7, 4))
	}
	if fc.cell(7, 11) != '═' {
		t.Error("content overflowed onto the bottom border")
	}
}

func TestUI_ClearGameArea(t *testing.T) {
	ui, fc := newTestUI()
	ui.DrawGameArea()
	fc.SetCursorPosition(5, 5)
	fc.Write("ö")
	ui.ClearGameArea()

	if fc.cell(5, 5) != ' ' {
		t.Errorf("interior not cleared: %q", fc.cell(5, 5))
	}
	if fc.cell(0, 5) != '│' || fc.cell(37, 5) != '│' {
		t.Error("border must survive clearing")
	}
}

func TestUI_CheckSize(t *testing.T) {
	fc := newFakeConsole(30, 14)
	ui := NewUI(fc, DefaultLayout, English)

	err := ui.CheckSize()
	if !errors.Is(err, ErrConsoleTooSmall) {
		t.Fatalf("want ErrConsoleTooSmall, got %v", err)
	}
	var sizeErr *SizeError
	if !errors.As(err, &sizeErr) || sizeErr.Width != 30 || sizeErr.MinWidth != 38 || sizeErr.MinHeight != 14 {
		t.Errorf("unexpected size error: %+v", sizeErr)
	}
	if ui.ConsoleSizeOK() {
		t.Error("ConsoleSizeOK should be false")
	}

	fc.width = 38
	if !ui.ConsoleSizeOK() {
		t.Error("38x14 is large enough")
	}
}

func TestUI_PollInputKey(t *testing.T) {
	t.Run("timeout", func(t *testing.T) {
		ui, fc := newTestUI()
		fc.holdOpen = true
		start := time.Now()
		k, err := ui.PollInputKey(nil, 20*time.Millisecond)
		if err != nil || k != KeyNone {
			t.Fatalf("want (KeyNone, nil), got (%v, %v)", k, err)
		}
		if time.Since(start) < 20*time.Millisecond {
			t.Error("returned before the timeout elapsed")
		}
		if fc.flushes == 0 {
			t.Error("output should be flushed before waiting")
		}
	})

	t.Run("filters", func(t *testing.T) {
		ui, _ := newTestUI(Key('x'), KeyUp)
		k, err := ui.PollInputKey([]Key{KeyUp}, time.Second)
		if err != nil || k != KeyUp {
			t.Errorf("want KeyUp, got (%v, %v)", k, err)
		}
	})

	t.Run("blocking", func(t *testing.T) {
		ui, _ := newTestUI(KeyUp, KeyEnter)
		k, err := ui.PollInputKey([]Key{KeyEnter}, 0)
		if err != nil || k != KeyEnter {
			t.Errorf("want KeyEnter, got (%v, %v)", k, err)
		}
	})

	t.Run("any key", func(t *testing.T) {
		ui, _ := newTestUI(Key('z'))
		if k, _ := ui.PollInputKey(nil, 0); k != Key('z') {
			t.Errorf("want 'z', got %v", k)
		}
	})

	t.Run("interrupt", func(t *testing.T) {
		ui, _ := newTestUI(KeyInterrupt)
		if _, err := ui.PollInputKey([]Key{KeyEnter}, 0); !errors.Is(err, ErrInterrupted) {
			t.Errorf("want ErrInterrupted, got %v", err)
		}
	})

	t.Run("closed", func(t *testing.T) {
		ui, _ := newTestUI()
		if _, err := ui.PollInputKey(nil, time.Second); !errors.Is(err, ErrInputClosed) {
			t.Errorf("want ErrInputClosed, got %v", err)
		}
	})
}

func TestUI_Overlays(t *testing.T) {
	sum := Summary{Score: 17, Length: 6, Difficulty: Hard}

	ui, fc := newTestUI(KeyEnter)
	again, err := ui.ShowGameOverMessage(sum)
	if err != nil || !again {
		t.Fatalf("Enter should mean play again, got (%v, %v)", again, err)
	}
	screen := fc.screen()
	for _, want := range []string{"GAME OVER", "Score: 17", "Snake length: 6", "Difficulty: Hard", English.EscapeToQuit, English.EnterToPlayAgain} {
		if !strings.Contains(screen, want) {
			t.Errorf("overlay missing %q:\n%s", want, screen)
		}
	}

	ui, _ = newTestUI(Key('q'), KeyEsc)
	if again, err := ui.ShowWinMessage(sum); err != nil || again {
		t.Errorf("Esc should decline, got (%v, %v)", again, err)
	}

	ui, fc = newTestUI(KeyEsc, KeyEnter)
	if err := ui.ShowPausedMessage(sum); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if len(fc.keys) != 0 {
		t.Error("pause should wait for Enter and ignore Esc")
	}
	if !strings.Contains(fc.screen(), "PAUSED") {
		t.Error("pause heading missing")
	}
}
