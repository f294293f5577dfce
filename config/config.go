package config

import (
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"minesweeper/logger"

	"github.com/joho/godotenv"
)

// Config は起動時の設定です
type Config struct {
	LogLevel string

	// HasSeed が true なら Seed で盤面を固定する
	Seed    uint64
	HasSeed bool
}

// Load は .env (任意) と環境変数から設定を読みます
// 何も設定しなければ毎回ランダムな盤面で、ログも warn 以上だけです
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv は getenv から設定を組み立てます
func FromEnv(getenv func(string) string) *Config {
	cfg := &Config{LogLevel: "warn"}

	if v := strings.TrimSpace(getenv("MINESWEEPER_LOG_LEVEL")); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	if v := strings.TrimSpace(getenv("MINESWEEPER_SEED")); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			logger.Warn("ignoring MINESWEEPER_SEED=%q: %v", v, err)
		} else {
			cfg.Seed = n
			cfg.HasSeed = true
		}
	}

	return cfg
}

// Rand は盤面生成に使う乱数を返します
func (c *Config) Rand() *rand.Rand {
	if c.HasSeed {
		return rand.New(rand.NewPCG(c.Seed, c.Seed))
	}
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, rand.Uint64()))
}
