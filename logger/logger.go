package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	defaultLogger *logrus.Logger
)

// Init はグローバルロガーを初期化します
// 盤面は標準出力に出すので、ログは標準エラーに書きます
func Init(level string) {
	InitWithOutput(level, os.Stderr)
}

// InitWithOutput は出力先を指定して初期化します
func InitWithOutput(level string, w io.Writer) {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		FullTimestamp:    true,
		QuoteEmptyFields: true,
	})
	l.SetLevel(parseLevel(level))

	defaultLogger = l
}

// 不明なレベルは warn として扱う
func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.WarnLevel
	}
	return lvl
}

// Get はグローバルロガーを返します。未初期化なら warn で初期化します
func Get() *logrus.Logger {
	if defaultLogger == nil {
		Init("warn")
	}
	return defaultLogger
}

// Debug は debug レベルで書きます
func Debug(msg string, args ...any) {
	Get().Debugf(msg, args...)
}

// Info は info レベルで書きます
func Info(msg string, args ...any) {
	Get().Infof(msg, args...)
}

// Warn は warn レベルで書きます
func Warn(msg string, args ...any) {
	Get().Warnf(msg, args...)
}

// Fatal は fatal レベルで書いて終了します
func Fatal(msg string, args ...any) {
	Get().Fatalf(msg, args...)
}

// With はフィールド付きのエントリを返します
func With(fields logrus.Fields) *logrus.Entry {
	return Get().WithFields(fields)
}
