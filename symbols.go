package main

// BoxSymbols 制表符集合，顺序固定: 左上 右上 左下 右下 竖 横 填充
type BoxSymbols struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Vertical, Horizontal                       rune
	Fill                                       rune
}

var (
	SquareSingle = BoxSymbols{'┌', '┐', '└', '┘', '│', '─', ' '}
	SquareDouble = BoxSymbols{'╔', '╗', '╚', '╝', '║', '═', ' '}
	RoundSingle  = BoxSymbols{'╭', '╮', '╰', '╯', '│', '─', ' '}
)

func (s BoxSymbols) runes() [7]rune {
	return [7]rune{s.TopLeft, s.TopRight, s.BottomLeft, s.BottomRight, s.Vertical, s.Horizontal, s.Fill}
}

// Transliterate 把 from 中第 i 个字符映射为 to 中第 i 个字符，找不到则原样返回
func Transliterate(c rune, from, to BoxSymbols) rune {
	src, dst := from.runes(), to.runes()
	for i, r := range src {
		if r == c {
			return dst[i]
		}
	}
	return c
}
