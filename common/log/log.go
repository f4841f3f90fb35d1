package log

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	mu     sync.RWMutex
	logger = log.New(os.Stderr)
)

// InitLog 初始化全局日志
// 日志写到 stderr，stdout 留给评估结果，方便管道处理
func InitLog(appName string, logLevel string) {
	InitLogTo(os.Stderr, appName, logLevel)
}

// InitLogTo 指定输出位置，测试里用 bytes.Buffer
func InitLogTo(w io.Writer, appName string, logLevel string) {
	l := log.New(w)
	l.SetPrefix(appName)
	l.SetReportTimestamp(true)
	l.SetTimeFormat(time.DateTime)

	// 启用调用者信息（显示文件名和行号），跳过本包的封装函数
	l.SetReportCaller(true)
	l.SetCallerOffset(1)
	l.SetLevel(ParseLevel(logLevel))

	mu.Lock()
	logger = l
	mu.Unlock()
}

// ParseLevel 默认为 info 级别
func ParseLevel(logLevel string) log.Level {
	switch strings.ToLower(strings.TrimSpace(logLevel)) {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// SetLevel 配置热更新时调整级别
func SetLevel(logLevel string) {
	current().SetLevel(ParseLevel(logLevel))
}

func GetLevel() log.Level {
	return current().GetLevel()
}

func current() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Fatal(format string, args ...any) {
	if len(args) == 0 {
		current().Fatal(format)
	} else {
		current().Fatalf(format, args...)
	}
}

func Info(format string, args ...any) {
	if len(args) == 0 {
		current().Info(format)
	} else {
		current().Infof(format, args...)
	}
}

func Warn(format string, args ...any) {
	if len(args) == 0 {
		current().Warn(format)
	} else {
		current().Warnf(format, args...)
	}
}

func Error(format string, args ...any) {
	if len(args) == 0 {
		current().Error(format)
	} else {
		current().Errorf(format, args...)
	}
}

func Debug(format string, args ...any) {
	if len(args) == 0 {
		current().Debug(format)
	} else {
		current().Debugf(format, args...)
	}
}
