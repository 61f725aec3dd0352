// Package utils предоставляет файловый логгер для TUI приложений.
//
// Логгер создаёт .log файл с timestamp в имени. TUI занимает терминал,
// поэтому в stdout ничего не пишется. До InitLogger все вызовы no-op.
package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	logFile   *os.File
	logger    *logrus.Logger
	logMutex  sync.Mutex
	debugMode bool
)

// InitLoggerIn создает/открывает .log файл в указанной директории
// ("" означает текущую).
//
// Имя файла: phoenix-YYYY-MM-DD-HH-MM.log
func InitLoggerIn(dir string) error {
	logMutex.Lock()
	defer logMutex.Unlock()

	if logger != nil {
		return nil
	}

	timestamp := time.Now().Format("2006-01-02-15-04")
	filename := fmt.Sprintf("phoenix-%s.log", timestamp)
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log dir: %w", err)
		}
		filename = filepath.Join(dir, filename)
	}

	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	logFile = f
	logger = newLogger(f)
	logger.WithField("file", filename).Info("Logger initialized")

	return nil
}

// InitLoggerWriter направляет лог в произвольный writer (используется в тестах).
func InitLoggerWriter(w io.Writer) {
	logMutex.Lock()
	defer logMutex.Unlock()
	logger = newLogger(w)
}

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if debugMode {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	return l
}

// SetDebug включает уровень DEBUG.
func SetDebug(enabled bool) {
	logMutex.Lock()
	defer logMutex.Unlock()
	debugMode = enabled
	if logger == nil {
		return
	}
	if enabled {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// Info - информационное сообщение.
func Info(msg string, keyvals ...any) {
	log(logrus.InfoLevel, msg, keyvals...)
}

// Error - сообщение об ошибке.
func Error(msg string, keyvals ...any) {
	log(logrus.ErrorLevel, msg, keyvals...)
}

// Debug - отладочное сообщение.
func Debug(msg string, keyvals ...any) {
	log(logrus.DebugLevel, msg, keyvals...)
}

// Warn - предупреждение.
func Warn(msg string, keyvals ...any) {
	log(logrus.WarnLevel, msg, keyvals...)
}

// log превращает пары key/value в logrus.Fields. Непарный хвост отбрасывается.
func log(level logrus.Level, msg string, keyvals ...any) {
	logMutex.Lock()
	defer logMutex.Unlock()

	if logger == nil {
		return
	}

	fields := make(logrus.Fields, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fields[fmt.Sprint(keyvals[i])] = keyvals[i+1]
	}

	logger.WithFields(fields).Log(level, msg)
}

// Close закрывает лог-файл.
//
// Вызывается через defer в main().
func Close() {
	logMutex.Lock()
	defer logMutex.Unlock()

	if logFile != nil {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "[LOGGER WARNING: Close failed: %v]\n", err)
		}
		logFile = nil
	}
	logger = nil
}
