//go:build windows

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/eiannone/keyboard"
	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

// openConsole Windows 控制台: 按键走原生控制台事件，输出开启 VT 序列处理
func openConsole() (*Terminal, func(), error) {
	outFd := int(os.Stdout.Fd())
	if !term.IsTerminal(outFd) {
		return nil, nil, ErrNoTerminal
	}

	out := windows.Handle(os.Stdout.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(out, &mode); err != nil {
		return nil, nil, fmt.Errorf("get console mode: %w", err)
	}
	if err := windows.SetConsoleMode(out, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		return nil, nil, fmt.Errorf("enable vt processing: %w", err)
	}

	events, err := keyboard.GetKeys(128)
	if err != nil {
		windows.SetConsoleMode(out, mode)
		return nil, nil, fmt.Errorf("open keyboard: %w", err)
	}

	t := NewTerminal(os.Stdout, func() (int, int) { return windowSize(outFd) })
	go t.keyboardLoop(events)

	restore := func() {
		if err := keyboard.Close(); err != nil {
			log.Printf("[TERM] Failed to close keyboard: %v", err)
		}
		windows.SetConsoleMode(out, mode)
	}
	return t, restore, nil
}

func (t *Terminal) keyboardLoop(events <-chan keyboard.KeyEvent) {
	defer t.closeInput()
	for ev := range events {
		if ev.Err != nil {
			log.Printf("[TERM] Keyboard error: %v", ev.Err)
			return
		}
		if k := keyEventKey(ev); k != KeyNone {
			t.keyChan <- k
		}
	}
}

func keyEventKey(ev keyboard.KeyEvent) Key {
	switch ev.Key {
	case keyboard.KeyArrowUp:
		return KeyUp
	case keyboard.KeyArrowDown:
		return KeyDown
	case keyboard.KeyArrowLeft:
		return KeyLeft
	case keyboard.KeyArrowRight:
		return KeyRight
	case keyboard.KeyEnter:
		return KeyEnter
	case keyboard.KeyEsc:
		return KeyEsc
	case keyboard.KeyCtrlC:
		return KeyInterrupt
	}
	if ev.Rune != 0 {
		return runeKey(ev.Rune)
	}
	return KeyNone
}
