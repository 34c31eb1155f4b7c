package main

import "fmt"

const (
	AppName    = "Snake"
	AppVersion = "1.2.0"
)

// Messages 界面文本表，只做简单替换
type Messages struct {
	WinnerHeading    string
	GameOverHeading  string
	PausedHeading    string
	Score            string
	SnakeLength      string
	Difficulty       string
	EscapeToQuit     string
	EnterToPlayAgain string
	EnterToResume    string
	InfoBar          string
	DifficultyUsage  string
}

var English = Messages{
	WinnerHeading:    "YOU WIN!",
	GameOverHeading:  "GAME OVER",
	PausedHeading:    "PAUSED",
	Score:            "Score:",
	SnakeLength:      "Snake length:",
	Difficulty:       "Difficulty:",
	EscapeToQuit:     "Esc to quit",
	EnterToPlayAgain: "Enter to play again",
	EnterToResume:    "Enter to resume",
	InfoBar:          "Esc to quit, ←↑↓→ to move, P to pause",
	DifficultyUsage:  "game difficulty: easy, medium or hard",
}

func (m Messages) Title() string {
	return AppName + " v" + AppVersion
}

// SizeErrorText 窗口过小时打印的说明
func (m Messages) SizeErrorText(e *SizeError) string {
	return fmt.Sprintf("ERROR: Console window too small.\n"+
		"Please ensure the console window is at least %d characters high and %d characters wide.\n"+
		"(Your console window is %d characters high and %d characters wide)\n",
		e.MinHeight, e.MinWidth, e.Height, e.Width)
}
