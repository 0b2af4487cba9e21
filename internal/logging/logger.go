package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type SetupParams struct {
	LogFileName string
	LogToStderr bool
	LogLevel    string
}

// Setup points the standard logrus logger at a rotating log file, stderr,
// or both. With neither, logs are discarded so they never mix with command
// output. Closing the result releases the log file and sends later entries
// to stderr.
func Setup(params SetupParams) io.Closer {
	logrus.SetLevel(GetLevel(params.LogLevel))
	if params.LogToStderr {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if params.LogFileName == "" {
		if params.LogToStderr {
			logrus.SetOutput(os.Stderr)
		} else {
			logrus.SetOutput(io.Discard)
		}
		return nopCloser{}
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		Compress:   true,
	}

	if params.LogToStderr {
		logrus.SetOutput(io.MultiWriter(os.Stderr, lumberJackLogger))
	} else {
		logrus.SetOutput(lumberJackLogger)
	}
	return fileCloser{lumberJackLogger}
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn", "warning":
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type fileCloser struct {
	*lumberjack.Logger
}

func (c fileCloser) Close() error {
	logrus.SetOutput(os.Stderr)
	return c.Logger.Close()
}
