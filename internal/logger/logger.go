package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

type LogLevel int

type Logger struct {
	logLevel LogLevel
	logDir   string
	prefix   string
	file     *os.File
	logger   *log.Logger
}

const (
	DEBUG LogLevel = iota
	INFO
	ERROR
)

const DefaultPrefix = "MiniCheck"

var (
	registryMu sync.RWMutex
	registry   = map[string]*Logger{}
)

func Get(name string) (logger *Logger) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	if ln, ok := registry[name]; ok {
		return ln
	}

	return nil
}

// New returns the logger registered under name, creating a dated log file in
// logDir the first time.
func New(name string, logDir string, logLevel LogLevel) (*Logger, error) {
	return NewWithPrefix(name, logDir, DefaultPrefix, logLevel)
}

func NewWithPrefix(name, logDir, prefix string, logLevel LogLevel) (*Logger, error) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if logger, exists := registry[name]; exists {
		return logger, nil
	}

	logger := &Logger{
		logLevel: logLevel,
		logDir:   logDir,
		prefix:   prefix,
	}
	if err := logger.init(); err != nil {
		return nil, err
	}

	registry[name] = logger
	return logger, nil
}

// NewWriter registers a logger that writes to w instead of a file. It
// replaces, and closes, any logger already registered under name.
func NewWriter(name string, w io.Writer, logLevel LogLevel) *Logger {
	registryMu.Lock()
	defer registryMu.Unlock()

	if old, exists := registry[name]; exists {
		old.closeFile()
	}

	logger := &Logger{
		logLevel: logLevel,
		logger:   log.New(w, "", 0),
	}
	registry[name] = logger
	return logger
}

// Discard is a logger that drops everything. It is not registered.
func Discard() *Logger {
	return &Logger{logLevel: ERROR + 1, logger: log.New(io.Discard, "", 0)}
}

func (l *Logger) init() error {
	if err := os.MkdirAll(l.logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02")

	logFile, err := os.OpenFile(
		filepath.Join(l.logDir, fmt.Sprintf("%s-%s.log", l.prefix, timestamp)),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.file = logFile
	l.logger = log.New(logFile, "", log.Ldate|log.Ltime|log.Lshortfile)

	return nil
}

func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DEBUG, nil
	case "info", "":
		return INFO, nil
	case "error":
		return ERROR, nil
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "debug"
	case INFO:
		return "info"
	case ERROR:
		return "error"
	}
	return fmt.Sprintf("LogLevel(%d)", int(l))
}

func (l *Logger) Info(format string, v ...any) {
	if l.logLevel <= INFO {
		l.logger.Output(2, fmt.Sprintf("INFO: "+format, v...))
	}
}

func (l *Logger) Debug(format string, v ...any) {
	if l.logLevel <= DEBUG {
		l.logger.Output(2, fmt.Sprintf("DEBUG: "+format, v...))
	}
}

func (l *Logger) Error(format string, v ...any) {
	if l.logLevel <= ERROR {
		l.logger.Output(2, fmt.Sprintf("ERROR: "+format, v...))
	}
}

// Close releases the log file and unregisters the logger, so the next New
// under the same name opens a fresh one.
func (l *Logger) Close() error {
	registryMu.Lock()
	for name, registered := range registry {
		if registered == l {
			delete(registry, name)
		}
	}
	registryMu.Unlock()

	return l.closeFile()
}

func (l *Logger) closeFile() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func ResetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()

	for _, l := range registry {
		l.closeFile()
	}
	registry = map[string]*Logger{}
}
