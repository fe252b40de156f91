package utils

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

type LogLevel int

// LogFile prefixes log lines with the calling file and line, LogFunc also with the function name
var LogFile bool
var LogFunc bool

const (
	LogLevelError = LogLevel(1 << iota)
	LogLevelInfo
	LogLevelNotice
	LogLevelDebug
)

var GlobalLogLevel = LogLevelError | LogLevelInfo

// LogOutput destination of all log lines
var LogOutput io.Writer = os.Stdout

var logOutputLock sync.Mutex

var logBufPool sync.Pool

//nolint:gochecknoinits
func init() {
	logBufPool.New = func() any {
		return make([]byte, 0, 512)
	}
}

func getLogBuf() []byte {
	//nolint:forcetypeassert
	return logBufPool.Get().([]byte)[:0]
}

func returnLogBuf(buf []byte) {
	//nolint:staticcheck
	logBufPool.Put(buf)
}

func Fatalf(format string, v ...any) {
	buf := getLogBuf()
	defer returnLogBuf(buf)
	_println(fmt.Appendf(innerPrint(buf, "", "FATAL"), format, v...))
	//nolint:revive,gocritic
	os.Exit(1)
}

func Errorf(prefix, format string, v ...any) {
	if GlobalLogLevel&LogLevelError == 0 {
		return
	}
	buf := getLogBuf()
	defer returnLogBuf(buf)
	_println(fmt.Appendf(innerPrint(buf, prefix, "ERROR"), format, v...))
}

func Logf(prefix, format string, v ...any) {
	if GlobalLogLevel&LogLevelInfo == 0 {
		return
	}
	buf := getLogBuf()
	defer returnLogBuf(buf)
	_println(fmt.Appendf(innerPrint(buf, prefix, "INFO"), format, v...))
}

func Noticef(prefix, format string, v ...any) {
	if GlobalLogLevel&LogLevelNotice == 0 {
		return
	}
	buf := getLogBuf()
	defer returnLogBuf(buf)
	_println(fmt.Appendf(innerPrint(buf, prefix, "NOTICE"), format, v...))
}

func IsLogLevelDebug() bool {
	return GlobalLogLevel&LogLevelDebug > 0
}

func Debugf(prefix, format string, v ...any) {
	if GlobalLogLevel&LogLevelDebug == 0 {
		return
	}
	buf := getLogBuf()
	defer returnLogBuf(buf)
	_println(fmt.Appendf(innerPrint(buf, prefix, "DEBUG"), format, v...))
}

func _println(buf []byte) {
	buf = bytes.TrimSpace(buf)
	buf = append(buf, '\n')

	logOutputLock.Lock()
	defer logOutputLock.Unlock()
	_, _ = LogOutput.Write(buf)
}

func innerPrint(buf []byte, prefix, class string) []byte {
	buf = time.Now().UTC().AppendFormat(buf, "2006-01-02 15:04:05.000")
	if !LogFile {
		return fmt.Appendf(buf, " [%s] %s ", prefix, class)
	}

	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "???"
		line = 0
		pc = 0
	}
	short := file[strings.LastIndexByte(file, '/')+1:]

	if !LogFunc {
		return fmt.Appendf(buf, " %s:%d [%s] %s ", short, line, prefix, class)
	}

	var function string
	if pc != 0 {
		if details := runtime.FuncForPC(pc); details != nil {
			function = details.Name()
		}
	}
	shortFunc := function[strings.LastIndexByte(function, '/')+1:]
	funcItems := strings.Split(shortFunc, ".")
	return fmt.Appendf(buf, " %s:%d:%s [%s] %s ", short, line, funcItems[len(funcItems)-1], prefix, class)
}
