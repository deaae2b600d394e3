// internal/logging/logger.go
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New creates the game logger at level. When file is set, entries also go to
// a rotating log file. The returned closer flushes and closes that file.
func New(level, file string) (*logrus.Logger, func() error, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	logger := logrus.New()
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	if file == "" {
		logger.SetOutput(os.Stderr)
		return logger, func() error { return nil }, nil
	}

	// 10MB на файл, 3 резервные копии, неделя хранения
	lj := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
	}
	logger.SetOutput(io.MultiWriter(os.Stderr, lj))
	return logger, lj.Close, nil
}
