package view

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"minesweeper/game"
)

// gutter は行番号の列幅です
const gutter = "   "

// Render は盤面を固定幅のテキストとして書き出します
func Render(w io.Writer, b *game.Board) error {
	bw := bufio.NewWriter(w)

	// 列番号 (十の位)
	bw.WriteString(gutter)
	for x := 1; x <= b.Width; x++ {
		if x <= 9 {
			bw.WriteByte(' ')
		} else {
			fmt.Fprintf(bw, "%d", x/10)
		}
	}

	// 列番号 (一の位)
	bw.WriteString("\n" + gutter)
	for x := 1; x <= b.Width; x++ {
		fmt.Fprintf(bw, "%d", x%10)
	}
	bw.WriteString("\n\n")

	for y, row := range b.Cells {
		i := y + 1
		if i <= 9 {
			fmt.Fprintf(bw, " %d ", i)
		} else {
			fmt.Fprintf(bw, "%d ", i)
		}
		for _, c := range row {
			bw.WriteByte(c.Symbol())
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// String は Render の結果を文字列で返します
func String(b *game.Board) string {
	var sb strings.Builder
	if b == nil {
		return ""
	}
	_ = Render(&sb, b)
	return sb.String()
}
