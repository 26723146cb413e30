package common

import (
	"io"
	"path/filepath"

	"github.com/inconshreveable/log15"
	"gopkg.in/natefinch/lumberjack.v2"
)

func makeDefaultLogger(absFilePath string) io.Writer {
	return &lumberjack.Logger{
		Filename:   absFilePath,
		MaxSize:    100,
		MaxBackups: 14,
		MaxAge:     14,
		Compress:   true,
		LocalTime:  true,
	}
}

// LogHandler builds a level-filtered logfmt handler writing to a rotated
// file under path.
func LogHandler(path, filename, lvl string) log15.Handler {
	logLevel, err := log15.LvlFromString(lvl)
	if err != nil {
		logLevel = log15.LvlInfo
	}
	absFilename := filepath.Join(path, filename)
	out := makeDefaultLogger(absFilename)
	return log15.LvlFilterHandler(logLevel, log15.StreamHandler(out, log15.LogfmtFormat()))
}
