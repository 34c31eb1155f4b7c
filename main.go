package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/exp/rand"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitInterrupted = 130
)

func main() {
	difficulty := defaultDifficulty()
	flag.Var(&difficulty, "difficulty", English.DifficultyUsage)
	flag.Var(&difficulty, "d", English.DifficultyUsage+" (shorthand)")
	seed := flag.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	logPath := flag.String("log", "", "append log output to this file")
	flag.Parse()

	os.Exit(run(difficulty, *seed, *logPath))
}

// defaultDifficulty 环境变量 SNAKE_DIFFICULTY 优先，否则 Medium
func defaultDifficulty() Difficulty {
	if v := os.Getenv("SNAKE_DIFFICULTY"); v != "" {
		if d, err := ParseDifficulty(v); err == nil {
			return d
		}
	}
	return Medium
}

func run(difficulty Difficulty, seed uint64, logPath string) int {
	// 1. 日志 (终端被游戏占用，只能写文件)
	closeLog, err := setupLog(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return exitFailure
	}
	defer closeLog()

	// 2. 打开终端
	term, restore, err := openConsole()
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return exitFailure
	}
	var once sync.Once
	shutdown := func() {
		once.Do(func() {
			term.Reset()
			term.Flush()
			restore()
		})
	}
	defer shutdown()

	// 3. 外部信号 (原始模式下 Ctrl+C 走按键，这里主要是 SIGTERM)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sig
		log.Printf("[MAIN] Received %v, shutting down...", s)
		shutdown()
		os.Exit(exitInterrupted)
	}()

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))
	log.Printf("[MAIN] %s running: difficulty=%s seed=%d", English.Title(), difficulty, seed)

	// 4. 一直玩到玩家不再继续
	ui := NewUI(term, DefaultLayout, English)
	for {
		again, err := NewGame(ui, difficulty, rng).Run()
		if err != nil {
			return exitCode(ui, term, err)
		}
		if !again {
			break
		}
	}
	ui.ResetCursor()
	log.Println("[MAIN] Bye")
	return exitOK
}

func exitCode(ui *UI, term *Terminal, err error) int {
	var sizeErr *SizeError
	switch {
	case errors.As(err, &sizeErr):
		log.Printf("[MAIN] %v", err)
		term.Reset()
		term.Clear()
		term.SetCursorPosition(0, 0)
		term.Print(English.SizeErrorText(sizeErr))
		return exitFailure
	case errors.Is(err, ErrInterrupted):
		log.Println("[MAIN] Interrupted")
		ui.ResetCursor()
		return exitInterrupted
	}
	log.Printf("[MAIN] Fatal: %v", err)
	term.Reset()
	term.SetCursorPosition(0, DefaultLayout.Window.YEnd()+1)
	term.Print(fmt.Sprintf("snake: %v\n", err))
	return exitFailure
}

func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}
