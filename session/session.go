package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"minesweeper/game"
	"minesweeper/input"
	"minesweeper/logger"
	"minesweeper/view"
)

// State はゲームの進行状態です
type State int

const (
	Playing State = iota
	Won
	Lost
)

// String はログ用の状態名を返します
func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

const (
	greeting   = "\nTerminal Minesweeper!\nDo you feel lucky? Well, do ya, cypherpunk?\n\n"
	prompt     = "Enter \"row col\" to probe, or \"row col F\" to toggle flag.\n\n"
	invalidMsg = "\n Invalid input, try again.\n\n\n"
	lostBanner = "!!!BOOOOOOOOOM!!! GAME OVER!"
	wonBanner  = "YOU WON THE GAME!"
)

// ErrInputClosed は入力が読めなくなったときに返されます
var ErrInputClosed = errors.New("input closed before the game ended")

// Session は1ゲーム分の盤面と入出力を管理します
type Session struct {
	board *game.Board
	in    *bufio.Reader
	out   io.Writer
	state State
	moves int

	lostStyle lipgloss.Style
	wonStyle  lipgloss.Style
}

// New はセッションを初期化します
func New(board *game.Board, in io.Reader, out io.Writer) *Session {
	r := lipgloss.NewRenderer(out)
	return &Session{
		board:     board,
		in:        bufio.NewReader(in),
		out:       out,
		state:     Playing,
		lostStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		wonStyle:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	}
}

// State は現在の進行状態を返します
func (s *Session) State() State { return s.state }

// Board はセッションが持つ盤面を返します
func (s *Session) Board() *game.Board { return s.board }

// Moves はこれまでに適用した手の数を返します
func (s *Session) Moves() int { return s.moves }

// Apply は1手を盤面に適用して新しい状態を返します
// 終了状態では何もしません
func (s *Session) Apply(cmd input.Command) State {
	if s.state != Playing {
		return s.state
	}

	row, col := cmd.Index()
	s.moves++

	log := logger.With(logrus.Fields{
		"move": s.moves,
		"row":  row,
		"col":  col,
		"flag": cmd.Flag,
	})

	if cmd.Flag {
		s.board.ToggleFlag(row, col)
	} else if s.board.Probe(row, col) == game.Detonated {
		s.state = Lost
		log.Info("mine detonated")
		return s.state
	}

	if s.board.IsWon() {
		s.state = Won
		log.Info("all mines flagged")
		return s.state
	}

	log.Debug("move applied")
	return s.state
}

// Run はゲームが終わるまで入力を読み続けます
// 入力が途切れた場合はエラーを返します
func (s *Session) Run() (State, error) {
	if _, err := io.WriteString(s.out, greeting); err != nil {
		return s.state, err
	}

	for s.state == Playing {
		if err := s.show(); err != nil {
			return s.state, err
		}
		if _, err := io.WriteString(s.out, prompt); err != nil {
			return s.state, err
		}

		line, err := s.readLine()
		if err != nil {
			return s.state, err
		}

		cmd, err := input.Parse(line)
		if err != nil {
			logger.Debug("rejected input (%d bytes): %v", len(line), err)
			if _, err := io.WriteString(s.out, invalidMsg); err != nil {
				return s.state, err
			}
			continue
		}

		s.Apply(cmd)
	}

	return s.state, s.finish()
}

// readLine は改行までを1行として読みます。行の長さに上限はありません
// 最後の行に改行がなくても1行として扱います
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) {
		if line != "" {
			return line, nil
		}
		return "", ErrInputClosed
	}
	return "", fmt.Errorf("read input: %w", err)
}

func (s *Session) show() error {
	if err := view.Render(s.out, s.board); err != nil {
		return err
	}
	_, err := io.WriteString(s.out, "\n")
	return err
}

// finish は終了メッセージを表示して盤面を全て開けます
func (s *Session) finish() error {
	banner := s.wonStyle.Render(wonBanner)
	if s.state == Lost {
		banner = s.lostStyle.Render(lostBanner)
	}
	if _, err := fmt.Fprintf(s.out, "\n%s\n\n", banner); err != nil {
		return err
	}

	logger.With(logrus.Fields{
		"state": s.state.String(),
		"moves": s.moves,
		"mines": s.board.MineCount(),
		"flags": s.board.FlagCount(),
	}).Info("game over")

	s.board.MakeVisible()
	return s.show()
}
