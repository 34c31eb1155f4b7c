package main

import "errors"

// maxSpawnAttempts 随机取点的次数上限
const maxSpawnAttempts = 10000

var ErrBoardFull = errors.New("no free cell left for fruit")

var (
	fruitGlyphs = []rune{'•', '◦', '▴', '■', '□', '᛭', '⨯', 'ꚛ', '★', '☆'}
	fruitColors = []int{8, 9, 10, 11, 12, 13, 14, 15}
)

// Fruit 生成后不再修改，被吃掉后由新的水果替换
type Fruit struct {
	Position Coordinates
	Symbol   rune
	Color    int
}

// NewFruit 随机选取符号和颜色
func NewFruit(pos Coordinates, rng Rand) Fruit {
	return Fruit{
		Position: Coordinates{X: pos.X, Y: pos.Y},
		Symbol:   fruitGlyphs[rng.Intn(len(fruitGlyphs))],
		Color:    fruitColors[rng.Intn(len(fruitColors))],
	}
}

// FindSpawnPosition 在 area 内随机取点直到不与蛇重叠，超过 maxAttempts 次返回 false
func FindSpawnPosition(rng Rand, area BoxDimensions, snake *Snake, maxAttempts int) (Coordinates, bool) {
	if area.Width <= 0 || area.Height <= 0 {
		return Coordinates{}, false
	}
	for i := 0; i < maxAttempts; i++ {
		p := Coordinates{
			X: area.XStart() + rng.Intn(area.Width),
			Y: area.YStart() + rng.Intn(area.Height),
		}
		if !snake.CollidesWithPoint(p, true) {
			return p, true
		}
	}
	return Coordinates{}, false
}

// SpawnFruit 找空位并生成水果
func SpawnFruit(rng Rand, area BoxDimensions, snake *Snake) (Fruit, error) {
	pos, ok := FindSpawnPosition(rng, area, snake, maxSpawnAttempts)
	if !ok {
		return Fruit{}, ErrBoardFull
	}
	return NewFruit(pos, rng), nil
}

func (f Fruit) Draw(con Console) {
	con.SetCursorPosition(f.Position.X, f.Position.Y)
	con.Write(Ansify(string(f.Symbol), TextStyle{Color: Color256(f.Color)}))
}
