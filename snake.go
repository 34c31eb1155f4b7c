package main

import "fmt"

// --- 蛇 ---

const (
	GlyphHeadNormal   = 'ö'
	GlyphHeadChomping = 'Ö'
	GlyphHeadDead     = 'X'
	GlyphBodyDead     = 'x'
	GlyphFallback     = 'o'

	headColor      = 15
	bodyColorStart = 255
	bodyColorFloor = 240
)

// SnakeState 每回合重新计算的状态，不保存在蛇身上
type SnakeState int

const (
	Normal SnakeState = iota
	Chomping
	Dead
)

func (s SnakeState) String() string {
	switch s {
	case Chomping:
		return "chomping"
	case Dead:
		return "dead"
	}
	return "normal"
}

// 拐角符号，按 (上一方向, 当前方向) 查表
var cornerGlyphs = map[[2]Direction]rune{
	{Up, Right}:   '╔',
	{Up, Left}:    '╗',
	{Down, Right}: '╚',
	{Down, Left}:  '╝',
	{Right, Up}:   '╝',
	{Right, Down}: '╗',
	{Left, Up}:    '╚',
	{Left, Down}:  '╔',
}

// Snake path 是定长环形缓冲区，path[start] 为最近一次记录的头部位置，
// 只有前 length 条 (且已写入的) 记录有效
type Snake struct {
	length   int
	path     []Coordinates
	start    int
	recorded int

	head              Coordinates
	direction         Direction
	previousDirection Direction
}

// NewSnake capacity 同时是最大长度
func NewSnake(capacity int, head Coordinates) *Snake {
	if capacity < 1 {
		capacity = 1
	}
	return &Snake{
		length: 1,
		path:   make([]Coordinates, capacity),
		head:   Coordinates{X: head.X, Y: head.Y},
	}
}

func (s *Snake) Length() int                  { return s.length }
func (s *Snake) Capacity() int                { return len(s.path) }
func (s *Snake) Head() Coordinates            { return s.head }
func (s *Snake) Direction() Direction         { return s.direction }
func (s *Snake) PreviousDirection() Direction { return s.previousDirection }

// Grow 长度加一，不超过容量
func (s *Snake) Grow() {
	if s.length < len(s.path) {
		s.length++
	}
}

// PathAt 第 i 新的历史位置 (0 为刚离开的格子)。读取未写入的槽位属于程序错误
func (s *Snake) PathAt(i int) Coordinates {
	if i < 0 || i >= s.recorded {
		panic(fmt.Sprintf("snake: path index %d outside recorded range [0,%d)", i, s.recorded))
	}
	return s.path[(s.start+i)%len(s.path)]
}

func (s *Snake) push(c Coordinates) {
	s.start = (s.start - 1 + len(s.path)) % len(s.path)
	s.path[s.start] = c
	if s.recorded < len(s.path) {
		s.recorded++
	}
}

// Move 记录当前头部 (带方向符号) 后向 d 移动一格。None 不做任何事
func (s *Snake) Move(d Direction) {
	if d == None {
		return
	}
	s.previousDirection, s.direction = s.direction, d
	s.push(s.head.WithGlyph(segmentGlyph(s.previousDirection, s.direction)))
	s.head = step(s.head, d)
}

// SimulateMove 预测下一步头部位置，不修改状态
func (s *Snake) SimulateMove(d Direction) (Coordinates, bool) {
	if d == None {
		return Coordinates{}, false
	}
	return step(s.head, d), true
}

// CollidesWithPoint 检查 p 是否在蛇身上 (includeHead 决定是否包含头部)
func (s *Snake) CollidesWithPoint(p Coordinates, includeHead bool) bool {
	if includeHead && s.head.Equal(p) {
		return true
	}
	for i := 0; i < s.length-1; i++ {
		if s.PathAt(i).Equal(p) {
			return true
		}
	}
	return false
}

// Draw 擦除刚脱离尾部的格子，然后重画身体和头部
func (s *Snake) Draw(con Console, state SnakeState, deleteOldTail bool) {
	if deleteOldTail {
		if i := max(0, s.length-1); i < s.recorded {
			tail := s.PathAt(i)
			con.SetCursorPosition(tail.X, tail.Y)
			con.Write(" ")
		}
	}

	color := bodyColorStart
	for i := 0; i < s.length-1; i++ {
		seg := s.PathAt(i)
		glyph := seg.Glyph
		switch {
		case state == Dead:
			glyph = GlyphBodyDead
		case i == s.length-2:
			// 尾尖变细
			glyph = Transliterate(glyph, SquareDouble, SquareSingle)
		}
		con.SetCursorPosition(seg.X, seg.Y)
		con.Write(Ansify(string(glyph), TextStyle{Color: Color256(color)}))
		if color > bodyColorFloor {
			color--
		}
	}

	con.SetCursorPosition(s.head.X, s.head.Y)
	con.Write(Ansify(string(headGlyph(state)), TextStyle{Color: Color256(headColor), Bold: true}))
}

func headGlyph(state SnakeState) rune {
	switch state {
	case Chomping:
		return GlyphHeadChomping
	case Dead:
		return GlyphHeadDead
	}
	return GlyphHeadNormal
}

func segmentGlyph(prev, cur Direction) rune {
	if prev == cur {
		switch cur {
		case Left, Right:
			return '═'
		case Up, Down:
			return '║'
		}
	}
	if g, ok := cornerGlyphs[[2]Direction{prev, cur}]; ok {
		return g
	}
	return GlyphFallback
}

func step(c Coordinates, d Direction) Coordinates {
	switch d {
	case Up:
		return c.OffsetY(-1)
	case Down:
		return c.OffsetY(1)
	case Left:
		return c.OffsetX(-1)
	case Right:
		return c.OffsetX(1)
	}
	return c
}
