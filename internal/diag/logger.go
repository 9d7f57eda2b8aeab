// Package diag carries the engine's ambient logging and error taxonomy.
//
// Logger is a small hand-rolled circular-buffer logger: component enable
// flags, a buffered async writer goroutine, Logf-style convenience methods.
package diag

import (
	"fmt"
	"sync"
	"time"
)

// LogLevel is the severity of a log entry.
type LogLevel int

const (
	LogLevelNone LogLevel = iota
	LogLevelError
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelError:
		return "ERROR"
	case LogLevelWarning:
		return "WARNING"
	case LogLevelInfo:
		return "INFO"
	case LogLevelDebug:
		return "DEBUG"
	default:
		return "NONE"
	}
}

// Component names the subsystem that produced a log entry.
type Component string

const (
	ComponentInput    Component = "Input"
	ComponentDocument Component = "Document"
	ComponentGesture  Component = "Gesture"
	ComponentAudio    Component = "Audio"
	ComponentHaptic   Component = "Haptic"
	ComponentCamera   Component = "Camera"
	ComponentExport   Component = "Export"
	ComponentSystem   Component = "System"
)

// Entry is a single log record.
type Entry struct {
	Timestamp time.Time
	Component Component
	Level     LogLevel
	Message   string
	Data      map[string]any
}

// Format renders the entry the way the console/debug stream prints it.
func (e Entry) Format() string {
	return fmt.Sprintf("[%s] [%s] %s: %s", e.Timestamp.Format("15:04:05.000"), e.Component, e.Level, e.Message)
}

// Logger is a bounded, component-filtered, asynchronous logger.
type Logger struct {
	entries    []Entry
	entriesMu  sync.RWMutex
	maxEntries int
	writeIndex int
	entryCount int

	componentEnabled map[Component]bool
	componentMu      sync.RWMutex

	minLevel LogLevel
	levelMu  sync.RWMutex

	logChan  chan Entry
	shutdown chan struct{}
	wg       sync.WaitGroup

	subsMu sync.Mutex
	subs   []chan Entry
}

// NewLogger creates a logger with all components enabled at Info level.
func NewLogger(maxEntries int) *Logger {
	if maxEntries < 64 {
		maxEntries = 64
	}
	l := &Logger{
		entries:    make([]Entry, maxEntries),
		maxEntries: maxEntries,
		componentEnabled: map[Component]bool{
			ComponentInput:    true,
			ComponentDocument: true,
			ComponentGesture:  true,
			ComponentAudio:    true,
			ComponentHaptic:   true,
			ComponentCamera:   true,
			ComponentExport:   true,
			ComponentSystem:   true,
		},
		minLevel: LogLevelInfo,
		logChan:  make(chan Entry, 1000),
		shutdown: make(chan struct{}),
	}
	l.wg.Add(1)
	go l.run()
	return l
}

func (l *Logger) run() {
	defer l.wg.Done()
	for {
		select {
		case e := <-l.logChan:
			l.addEntry(e)
		case <-l.shutdown:
			for {
				select {
				case e := <-l.logChan:
					l.addEntry(e)
				default:
					return
				}
			}
		}
	}
}

func (l *Logger) addEntry(e Entry) {
	l.entriesMu.Lock()
	l.entries[l.writeIndex] = e
	l.writeIndex = (l.writeIndex + 1) % l.maxEntries
	if l.entryCount < l.maxEntries {
		l.entryCount++
	}
	l.entriesMu.Unlock()

	l.subsMu.Lock()
	for _, s := range l.subs {
		select {
		case s <- e:
		default:
		}
	}
	l.subsMu.Unlock()
}

// Close drains pending entries and stops the writer goroutine.
func (l *Logger) Close() {
	close(l.shutdown)
	l.wg.Wait()
}

// Log records an entry if its component and level pass the current filters.
func (l *Logger) Log(component Component, level LogLevel, message string, data map[string]any) {
	l.componentMu.RLock()
	enabled := l.componentEnabled[component]
	l.componentMu.RUnlock()
	if !enabled {
		return
	}

	l.levelMu.RLock()
	min := l.minLevel
	l.levelMu.RUnlock()
	if level > min {
		return
	}

	entry := Entry{Timestamp: time.Now(), Component: component, Level: level, Message: message, Data: data}
	select {
	case l.logChan <- entry:
	default:
		// buffer full: drop rather than block the render/input loop
	}
}

// Logf logs a formatted message.
func (l *Logger) Logf(component Component, level LogLevel, format string, args ...any) {
	l.Log(component, level, fmt.Sprintf(format, args...), nil)
}

// SetComponentEnabled toggles logging for a component.
func (l *Logger) SetComponentEnabled(c Component, enabled bool) {
	l.componentMu.Lock()
	l.componentEnabled[c] = enabled
	l.componentMu.Unlock()
}

// SetMinLevel sets the minimum level that will be recorded.
func (l *Logger) SetMinLevel(level LogLevel) {
	l.levelMu.Lock()
	l.minLevel = level
	l.levelMu.Unlock()
}

// GetRecentEntries returns the most recent n entries, oldest first.
func (l *Logger) GetRecentEntries(n int) []Entry {
	l.entriesMu.RLock()
	defer l.entriesMu.RUnlock()

	if l.entryCount == 0 {
		return nil
	}
	all := make([]Entry, l.entryCount)
	if l.entryCount < l.maxEntries {
		copy(all, l.entries[:l.entryCount])
	} else {
		for i := 0; i < l.entryCount; i++ {
			all[i] = l.entries[(l.writeIndex+i)%l.maxEntries]
		}
	}
	if n >= len(all) || n <= 0 {
		return all
	}
	return all[len(all)-n:]
}

// Subscribe returns a channel that receives every future entry, for the
// loopback debug stream (internal/diag/wsstream). Call Unsubscribe when done.
func (l *Logger) Subscribe(buf int) chan Entry {
	ch := make(chan Entry, buf)
	l.subsMu.Lock()
	l.subs = append(l.subs, ch)
	l.subsMu.Unlock()
	return ch
}

// Unsubscribe removes a channel registered via Subscribe.
func (l *Logger) Unsubscribe(ch chan Entry) {
	l.subsMu.Lock()
	defer l.subsMu.Unlock()
	for i, s := range l.subs {
		if s == ch {
			l.subs = append(l.subs[:i], l.subs[i+1:]...)
			close(ch)
			return
		}
	}
}
