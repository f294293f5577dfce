package game

import (
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"

	"minesweeper/logger"
)

const (
	MinDimension = 8
	MaxDimension = 16 // 含まない
)

// NewBoard はランダムなサイズと地雷配置で盤面を初期化して返します
func NewBoard(src Source) *Board {
	width := MinDimension + src.IntN(MaxDimension-MinDimension)
	height := MinDimension + src.IntN(MaxDimension-MinDimension)

	cells := make([][]Cell, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]Cell, width)
		for x := 0; x < width; x++ {
			cells[y][x] = newCell(src)
		}
	}

	board := &Board{
		Width:  width,
		Height: height,
		Cells:  cells,
	}
	board.calculateNeighbors()

	logger.With(logrus.Fields{
		"width":  width,
		"height": height,
		"mines":  board.MineCount(),
	}).Debug("board generated")

	return board
}

// NewBoardFromMines は与えられた地雷配置から盤面を作ります
// 行の長さは最初の行に揃えます
func NewBoardFromMines(mines [][]bool) *Board {
	height := len(mines)
	width := 0
	if height > 0 {
		width = len(mines[0])
	}

	cells := make([][]Cell, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]Cell, width)
		for x := 0; x < width && x < len(mines[y]); x++ {
			cells[y][x].IsMine = mines[y][x]
		}
	}

	board := &Board{
		Width:  width,
		Height: height,
		Cells:  cells,
	}
	board.calculateNeighbors()
	return board
}

// calculateNeighbors は地雷ごとに周囲8マスの NeighborCount を加算します
func (b *Board) calculateNeighbors() {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if !b.Cells[y][x].IsMine {
				continue
			}
			b.Neighbors(y, x, func(r, c int) {
				b.Cells[r][c].NeighborCount++
			})
		}
	}
}

// Cell は座標が範囲内ならそのマスを返します
// 範囲外ならエラーではなく ok=false を返します
func (b *Board) Cell(row, col int) (*Cell, bool) {
	if row < 0 || row >= b.Height || col < 0 || col >= b.Width {
		return nil, false
	}
	return &b.Cells[row][col], true
}

// Neighbors は範囲内の周囲8マスについて fn を呼びます (自分自身は含まない)
func (b *Board) Neighbors(row, col int, fn func(r, c int)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if _, ok := b.Cell(row+dy, col+dx); ok {
				fn(row+dy, col+dx)
			}
		}
	}
}

// ToggleFlag は指定された座標のフラグを切り替えます
func (b *Board) ToggleFlag(row, col int) {
	cell, ok := b.Cell(row, col)
	if !ok {
		return
	}

	// 開いているマスにはフラグを置けない
	if cell.IsVisible {
		cell.IsFlag = false
		return
	}

	cell.IsFlag = !cell.IsFlag
}

type pos struct{ row, col int }

// Probe は指定された座標のマスを開けます
// 地雷なら Detonated、それ以外は Continue を返します
func (b *Board) Probe(row, col int) Outcome {
	// 1. 範囲外チェック
	cell, ok := b.Cell(row, col)
	if !ok {
		return Continue
	}

	// 2. 地雷判定 (開ける前に判定する)
	if cell.IsMine {
		return Detonated
	}

	// 3. 0連鎖 (Flood Fill)
	// 一度開いたマスは二度とキューから広がらないので必ず終わる
	var queue deque.Deque[pos]
	queue.PushBack(pos{row, col})

	for queue.Len() > 0 {
		p := queue.PopFront()
		c := &b.Cells[p.row][p.col]
		if c.IsVisible || c.IsMine {
			continue
		}

		c.IsVisible = true
		c.IsFlag = false

		if c.NeighborCount == 0 {
			b.Neighbors(p.row, p.col, func(r, cc int) {
				if !b.Cells[r][cc].IsVisible {
					queue.PushBack(pos{r, cc})
				}
			})
		}
	}

	return Continue
}

// IsWon は全ての地雷にフラグがあり、地雷以外にフラグがない場合に true を返します
func (b *Board) IsWon() bool {
	for y := range b.Cells {
		for x := range b.Cells[y] {
			c := b.Cells[y][x]
			if c.IsMine != c.IsFlag {
				return false
			}
		}
	}
	return true
}

// MakeVisible は全マスを開けます (ゲーム終了時の表示用)
func (b *Board) MakeVisible() {
	for y := range b.Cells {
		for x := range b.Cells[y] {
			b.Cells[y][x].IsVisible = true
			b.Cells[y][x].IsFlag = false
		}
	}
}

// MineCount は地雷の総数を返します
func (b *Board) MineCount() int {
	n := 0
	for y := range b.Cells {
		for x := range b.Cells[y] {
			if b.Cells[y][x].IsMine {
				n++
			}
		}
	}
	return n
}

// FlagCount は立っているフラグの数を返します
func (b *Board) FlagCount() int {
	n := 0
	for y := range b.Cells {
		for x := range b.Cells[y] {
			if b.Cells[y][x].IsFlag {
				n++
			}
		}
	}
	return n
}
