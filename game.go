package main

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ==========================================
// 游戏主控: 难度 / 回合循环 / 移动保护
// ==========================================

// Rand 注入的随机源 (x/exp/rand 的 *Rand 满足此接口)
type Rand interface {
	Intn(n int) int
}

// Difficulty 难度，同时实现 flag.Value
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

func (d *Difficulty) Set(s string) error {
	v, err := ParseDifficulty(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
}

// Rules 由难度决定的参数
type Rules struct {
	AutoMoveDelayMax          time.Duration
	AutoMoveDelayMin          time.Duration
	PreventBoundaryCollisions bool
	PreventTurnbacks          bool
}

var difficultyRules = map[Difficulty]Rules{
	Easy:   {1500 * time.Millisecond, 250 * time.Millisecond, true, true},
	Medium: {1000 * time.Millisecond, 80 * time.Millisecond, false, true},
	Hard:   {500 * time.Millisecond, 50 * time.Millisecond, false, false},
}

// RulesFor 未知难度按 Medium 处理
func RulesFor(d Difficulty) Rules {
	if r, ok := difficultyRules[d]; ok {
		return r
	}
	return difficultyRules[Medium]
}

// 回合中接受的按键
var gameKeys = []Key{KeyUp, KeyDown, KeyLeft, KeyRight, KeyPause, KeyEsc}

// Game 一局游戏，再玩一局时创建新实例
type Game struct {
	ID string

	ui     *UI
	layout Layout
	rng    Rand

	difficulty Difficulty
	rules      Rules

	snake    *Snake
	fruit    Fruit
	hasFruit bool

	score         int
	autoMoveDelay time.Duration
}

// NewGame 蛇出生在游戏区内的随机位置，路径容量为整个窗口面积
func NewGame(ui *UI, d Difficulty, rng Rand) *Game {
	interior := ui.layout.Interior()
	head := Coordinates{
		X: interior.XStart() + rng.Intn(interior.Width),
		Y: interior.YStart() + rng.Intn(interior.Height),
	}
	rules := RulesFor(d)
	return &Game{
		ID:            uuid.NewString(),
		ui:            ui,
		layout:        ui.layout,
		rng:           rng,
		difficulty:    d,
		rules:         rules,
		snake:         NewSnake(ui.layout.Window.Area(), head),
		autoMoveDelay: rules.AutoMoveDelayMax,
	}
}

func (g *Game) Score() int                   { return g.score }
func (g *Game) AutoMoveDelay() time.Duration { return g.autoMoveDelay }
func (g *Game) Snake() *Snake                { return g.snake }

// Fruit 当前水果，没有时 ok 为 false
func (g *Game) Fruit() (Fruit, bool) {
	return g.fruit, g.hasFruit
}

func (g *Game) Summary() Summary {
	return Summary{Score: g.score, Length: g.snake.Length(), Difficulty: g.difficulty}
}

// Run 运行回合循环直到输赢或退出，返回是否再玩一局
func (g *Game) Run() (bool, error) {
	log.Printf("[GAME] %s started: difficulty=%s head=(%d,%d)", g.ID, g.difficulty, g.snake.Head().X, g.snake.Head().Y)

	if err := g.ui.CheckSize(); err != nil {
		return false, err
	}
	g.ui.Initialize()
	g.snake.Draw(g.ui.con, Normal, false)

	for {
		if err := g.ui.CheckSize(); err != nil {
			log.Printf("[GAME] %s aborted: %v", g.ID, err)
			return false, err
		}

		if !g.hasFruit {
			if err := g.spawnFruit(); err != nil {
				// 没有空位等同于占满
				log.Printf("[GAME] %s: %v", g.ID, err)
				return g.finish(true)
			}
		}

		key, err := g.ui.PollInputKey(gameKeys, g.autoMoveDelay)
		if err != nil {
			return g.stopped(err)
		}

		state, moved := Normal, false
		switch key {
		case KeyUp:
			state, moved = g.advance(Up)
		case KeyDown:
			state, moved = g.advance(Down)
		case KeyLeft:
			state, moved = g.advance(Left)
		case KeyRight:
			state, moved = g.advance(Right)
		case KeyNone:
			state, moved = g.advance(g.snake.Direction())
		case KeyPause:
			if err := g.pause(); err != nil {
				return g.stopped(err)
			}
			continue
		case KeyEsc:
			log.Printf("[GAME] %s quit: score=%d length=%d", g.ID, g.score, g.snake.Length())
			return false, nil
		}

		if state == Dead {
			g.snake.Draw(g.ui.con, Dead, moved)
			return g.finish(false)
		}
		// 没动的回合不擦尾巴，那一格可能已经是新水果
		g.snake.Draw(g.ui.con, state, moved)
		if g.snake.Length() >= g.snake.Capacity() {
			return g.finish(true)
		}
	}
}

// advance 尝试移动一步并结算本回合状态，同时返回蛇是否真的动了
func (g *Game) advance(d Direction) (SnakeState, bool) {
	moved := g.moveSnakeIfPossible(d)
	state := g.evaluate()
	if state == Chomping {
		g.eatFruit()
	}
	return state, moved
}

// evaluate 顺序: 撞到自己 -> 出界 -> 吃到水果
func (g *Game) evaluate() SnakeState {
	head := g.snake.Head()
	switch {
	case g.snake.Length() > 1 && g.snake.CollidesWithPoint(head, false):
		return Dead
	case !g.layout.GameArea.ContainsPoint(head, true):
		return Dead
	case g.hasFruit && g.fruit.Position.Equal(head):
		return Chomping
	}
	return Normal
}

// eatFruit 加分 (按吃之前的长度)、变长、加速，并清掉水果
func (g *Game) eatFruit() {
	g.score += g.snake.Length()
	g.ui.UpdateScore(g.score)
	g.snake.Grow()

	delta := (g.rules.AutoMoveDelayMax / 100).Truncate(time.Millisecond)
	g.autoMoveDelay = max(g.autoMoveDelay-delta, g.rules.AutoMoveDelayMin)

	g.fruit, g.hasFruit = Fruit{}, false
	log.Printf("[GAME] %s chomp: score=%d length=%d delay=%s", g.ID, g.score, g.snake.Length(), g.autoMoveDelay)
}

func (g *Game) spawnFruit() error {
	f, err := SpawnFruit(g.rng, g.layout.Interior(), g.snake)
	if err != nil {
		return err
	}
	g.fruit, g.hasFruit = f, true
	g.fruit.Draw(g.ui.con)
	return nil
}

func (g *Game) pause() error {
	if err := g.ui.ShowPausedMessage(g.Summary()); err != nil {
		return err
	}
	g.ui.ClearGameArea()
	if g.hasFruit {
		g.fruit.Draw(g.ui.con)
	}
	g.snake.Draw(g.ui.con, Normal, false)
	return nil
}

func (g *Game) finish(won bool) (bool, error) {
	sum := g.Summary()
	log.Printf("[GAME] %s finished: won=%v score=%d length=%d", g.ID, won, sum.Score, sum.Length)

	var (
		again bool
		err   error
	)
	if won {
		again, err = g.ui.ShowWinMessage(sum)
	} else {
		again, err = g.ui.ShowGameOverMessage(sum)
	}
	if err != nil {
		return g.stopped(err)
	}
	return again, nil
}

// stopped 输入关闭视为正常退出，其余错误向上传递
func (g *Game) stopped(err error) (bool, error) {
	if errors.Is(err, ErrInputClosed) {
		log.Printf("[GAME] %s input closed", g.ID)
		return false, nil
	}
	return false, err
}

// --- 移动保护 ---

// WillCollideWithBoundary 下一步是否会离开游戏区内部
func (g *Game) WillCollideWithBoundary(d Direction) bool {
	next, ok := g.snake.SimulateMove(d)
	return ok && !g.layout.GameArea.ContainsPoint(next, true)
}

// WillChompItself 长度小于 3 时尾巴总会先让开
func (g *Game) WillChompItself(d Direction) bool {
	if g.snake.Length() < 3 {
		return false
	}
	next, ok := g.snake.SimulateMove(d)
	return ok && g.snake.CollidesWithPoint(next, false)
}

func (g *Game) WillMakeDeadlyTurnback(d Direction) bool {
	return d.IsOpposite(g.snake.Direction()) && g.WillChompItself(d)
}

// moveSnakeIfPossible 被保护规则拦下时返回 false
func (g *Game) moveSnakeIfPossible(d Direction) bool {
	if d == None {
		return false
	}
	if g.rules.PreventBoundaryCollisions && g.WillCollideWithBoundary(d) {
		log.Printf("[GAME] %s blocked %s: boundary", g.ID, d)
		return false
	}
	if g.rules.PreventTurnbacks && g.WillMakeDeadlyTurnback(d) {
		log.Printf("[GAME] %s blocked %s: turnback", g.ID, d)
		return false
	}
	g.snake.Move(d)
	return true
}
