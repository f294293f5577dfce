package game

// MineProbability は各マスが地雷になる確率です
const MineProbability = 1.0 / 10.0

func newCell(src Source) Cell {
	return Cell{IsMine: src.Float64() < MineProbability}
}

// Symbol はマスを1文字で表します
// 未開封は「.」、フラグは「F」、地雷は「x」、0は空白、それ以外は数字
func (c Cell) Symbol() byte {
	if !c.IsVisible {
		if c.IsFlag {
			return 'F'
		}
		return '.'
	}
	if c.IsMine {
		return 'x'
	}
	if c.NeighborCount == 0 {
		return ' '
	}
	return byte('0' + c.NeighborCount)
}
