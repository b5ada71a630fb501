package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init configures the global zerolog logger: a console writer on stderr
// and, when logDir is set, a rotating file sink alongside it.
func Init(verbose bool, logDir string) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	isTerminal := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal,
	}

	var sink io.Writer = consoleWriter
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0755); err != nil {
			log.Warn().Err(err).Str("path", logDir).Msg("failed to create log directory, console only")
		} else {
			fileWriter := &lumberjack.Logger{
				Filename:   filepath.Join(logDir, "utilboard.log"),
				MaxSize:    16, // megabytes
				MaxBackups: 8,
				MaxAge:     90, // days
				Compress:   true,
			}
			sink = zerolog.MultiLevelWriter(consoleWriter, fileWriter)
		}
	}

	log.Logger = zerolog.New(sink).With().Timestamp().Logger()
}
