package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse が返すエラー。errors.Is で判定できます
var (
	ErrTokenCount = errors.New("expected \"row col\" or \"row col F\"")
	ErrNotInteger = errors.New("row and col must be integers")
)

// Command はプレイヤーの1手です。Row と Col は入力どおり1始まり
type Command struct {
	Row  int
	Col  int
	Flag bool
}

// Parse は "row col" (開ける) か "row col <任意>" (フラグ切り替え) を読みます
// 3つ目のトークンは中身を見ず、あるかどうかだけを見ます
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 && len(fields) != 3 {
		return Command{}, fmt.Errorf("%w: got %d tokens", ErrTokenCount, len(fields))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Command{}, fmt.Errorf("%w: row %q", ErrNotInteger, fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, fmt.Errorf("%w: col %q", ErrNotInteger, fields[1])
	}

	return Command{Row: row, Col: col, Flag: len(fields) == 3}, nil
}

// Index は盤面用の0始まりの座標を返します
func (c Command) Index() (row, col int) {
	return c.Row - 1, c.Col - 1
}
