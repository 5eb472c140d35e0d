package logging

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Logger is the component-tagged logger shared by every package in the module.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// FileLogger writes one timestamped line per entry to w.
type FileLogger struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

func NewFileLogger(w io.Writer) *FileLogger { return &FileLogger{w: w, now: time.Now} }

func (l *FileLogger) Infof(component string, format string, args ...interface{}) {
	l.write("INFO", component, format, args...)
}

func (l *FileLogger) Errorf(component string, format string, args ...interface{}) {
	l.write("ERROR", component, format, args...)
}

func (l *FileLogger) write(level, component, format string, args ...interface{}) {
	timestamp := l.now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}

// OrNoop returns l, or a NoopLogger when l is nil.
func OrNoop(l Logger) Logger {
	if l == nil {
		return NoopLogger{}
	}
	return l
}
