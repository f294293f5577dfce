package main

import (
	"os"

	"minesweeper/config"
	"minesweeper/game"
	"minesweeper/logger"
	"minesweeper/session"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	if cfg.HasSeed {
		logger.Info("using fixed seed %d", cfg.Seed)
	}

	board := game.NewBoard(cfg.Rand())
	s := session.New(board, os.Stdin, os.Stdout)

	if state, err := s.Run(); err != nil {
		logger.Fatal("game aborted while %s: %v", state, err)
	}
}
