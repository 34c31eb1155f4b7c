package main

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// TextStyle Ansify 参数，Color 为空表示不设置前景色
type TextStyle struct {
	Color          lipgloss.Color
	Bold           bool
	Dim            bool
	Italic         bool
	Underline      bool
	SkipWhitespace bool // 首尾空白不套样式
}

// Color256 256 色编号
func Color256(n int) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(n))
}

// 固定使用 256 色配置，不探测终端
var styleRenderer = newStyleRenderer(io.Discard)

func newStyleRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)
	return r
}

// Ansify 给文本加上颜色/样式控制序列，末尾自带重置
func Ansify(text string, s TextStyle) string {
	lead, core, trail := "", text, ""
	if s.SkipWhitespace {
		core = strings.TrimLeftFunc(text, unicode.IsSpace)
		lead = text[:len(text)-len(core)]
		trimmed := strings.TrimRightFunc(core, unicode.IsSpace)
		trail = core[len(trimmed):]
		core = trimmed
	}
	if core == "" {
		return text
	}

	st := styleRenderer.NewStyle()
	if s.Color != "" {
		st = st.Foreground(s.Color)
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Dim {
		st = st.Faint(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	return lead + st.Render(core) + trail
}

// PadToCenter 只补左侧空格，使文本在 width 内居中
func PadToCenter(text string, width int) string {
	n := ansi.StringWidth(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", width/2-(n+1)/2) + text
}

// clipLine 按显示宽度截断，保留控制序列
func clipLine(s string, width int) string {
	return ansi.Truncate(s, width, "")
}
