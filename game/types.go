package game

// Cell は1つのマスの情報を持ちます
type Cell struct {
	IsMine        bool // 地雷かどうか (生成後は変わらない)
	IsFlag        bool // フラグが立てられているか
	IsVisible     bool // すでに開けられたか
	NeighborCount int  // 周囲8マスにある地雷の数
}

// Board はゲーム盤面全体を持ちます
type Board struct {
	Width  int      // 横のマス数
	Height int      // 縦のマス数
	Cells  [][]Cell // [row][col] の2次元配列でマスを管理
}

// Outcome は Probe の結果です
type Outcome int

const (
	Continue  Outcome = iota // ゲーム継続
	Detonated                // 地雷を踏んだ
)

// String はログ用の結果名を返します
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Detonated:
		return "detonated"
	}
	return "unknown"
}

// Source は盤面生成に使う乱数源です。*rand.Rand (math/rand/v2) がそのまま使えます
type Source interface {
	IntN(n int) int
	Float64() float64
}
