package main

// ==========================================
// 几何基础: 坐标 / 矩形 / 方向
// ==========================================

// Coordinates 网格坐标，Glyph 记录最后一次在该格绘制的字符 (可为 0)
type Coordinates struct {
	X, Y  int
	Glyph rune
}

func (c Coordinates) OffsetX(dx int) Coordinates {
	return Coordinates{X: c.X + dx, Y: c.Y, Glyph: c.Glyph}
}

func (c Coordinates) OffsetY(dy int) Coordinates {
	return Coordinates{X: c.X, Y: c.Y + dy, Glyph: c.Glyph}
}

// WithGlyph 返回带注记的副本
func (c Coordinates) WithGlyph(g rune) Coordinates {
	return Coordinates{X: c.X, Y: c.Y, Glyph: g}
}

// Equal 只比较位置，忽略注记
func (c Coordinates) Equal(o Coordinates) bool {
	return c.X == o.X && c.Y == o.Y
}

// BoxDimensions 矩形区域 (外框尺寸 + 左上角原点)
type BoxDimensions struct {
	Width, Height int
	Origin        Coordinates
}

func NewBox(w, h int, origin Coordinates) BoxDimensions {
	return BoxDimensions{Width: w, Height: h, Origin: Coordinates{X: origin.X, Y: origin.Y}}
}

func (b BoxDimensions) XStart() int { return b.Origin.X }
func (b BoxDimensions) XEnd() int   { return b.Origin.X + b.Width - 1 }
func (b BoxDimensions) YStart() int { return b.Origin.Y }
func (b BoxDimensions) YEnd() int   { return b.Origin.Y + b.Height - 1 }
func (b BoxDimensions) Area() int   { return b.Width * b.Height }

// Inner 向内收缩 offset 格 (四边各 offset)
func (b BoxDimensions) Inner(offset int) BoxDimensions {
	return BoxDimensions{
		Width:  b.Width - 2*offset,
		Height: b.Height - 2*offset,
		Origin: Coordinates{X: b.Origin.X + offset, Y: b.Origin.Y + offset},
	}
}

// ContainsPoint excludeBorder 为 true 时边框上的点不算在内
func (b BoxDimensions) ContainsPoint(p Coordinates, excludeBorder bool) bool {
	if excludeBorder {
		return p.X > b.XStart() && p.X < b.XEnd() && p.Y > b.YStart() && p.Y < b.YEnd()
	}
	return p.X >= b.XStart() && p.X <= b.XEnd() && p.Y >= b.YStart() && p.Y <= b.YEnd()
}

// Direction 移动方向
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// IsOpposite None 与任何方向 (包括自身) 都不相反
func (d Direction) IsOpposite(o Direction) bool {
	switch d {
	case Up:
		return o == Down
	case Down:
		return o == Up
	case Left:
		return o == Right
	case Right:
		return o == Left
	}
	return false
}
