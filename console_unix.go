//go:build !windows

package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/term"
)

// openConsole 将标准输入切换到原始模式，返回终端和恢复函数
func openConsole() (*Terminal, func(), error) {
	inFd, outFd := int(os.Stdin.Fd()), int(os.Stdout.Fd())
	if !term.IsTerminal(inFd) || !term.IsTerminal(outFd) {
		return nil, nil, ErrNoTerminal
	}

	state, err := term.MakeRaw(inFd)
	if err != nil {
		return nil, nil, fmt.Errorf("make raw: %w", err)
	}

	t := NewTerminal(os.Stdout, func() (int, int) { return windowSize(outFd) })
	go t.inputLoop(os.Stdin)

	restore := func() {
		if err := term.Restore(inFd, state); err != nil {
			log.Printf("[TERM] Failed to restore terminal: %v", err)
		}
	}
	return t, restore, nil
}
