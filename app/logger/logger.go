package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the application logger: human-readable console output plus
// a size-rotated file under dir.
func New(dir, level string) (zerolog.Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Logger{}, err
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "zachetka.log"),
		MaxSize:    100, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	console := zerolog.ConsoleWriter{Out: os.Stdout}
	out := io.MultiWriter(console, fileWriter)

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
