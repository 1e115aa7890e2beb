package notify

import (
	"log/slog"
	"sync"
)

// Observer receives published error records.
type Observer func(*Error)

// Notifier fans error records out to named observers.
type Notifier struct {
	mu        sync.RWMutex
	observers map[string]Observer
}

// NewNotifier creates an empty notifier. Most callers want [Shared].
func NewNotifier() *Notifier {
	return &Notifier{observers: make(map[string]Observer)}
}

var shared = NewNotifier()

// Shared returns the process-wide notifier that file operations publish to.
func Shared() *Notifier {
	return shared
}

// Register adds an observer under name, replacing any previous observer
// with the same name.
func (n *Notifier) Register(name string, o Observer) {
	if o == nil {
		n.Unregister(name)
		return
	}
	n.mu.Lock()
	n.observers[name] = o
	n.mu.Unlock()
}

// Unregister removes the observer registered under name, if any.
func (n *Notifier) Unregister(name string) {
	n.mu.Lock()
	delete(n.observers, name)
	n.mu.Unlock()
}

// Notify publishes e to every registered observer. Observers run on the
// calling goroutine, outside the registry lock.
func (n *Notifier) Notify(e *Error) {
	if e == nil {
		return
	}
	n.mu.RLock()
	obs := make([]Observer, 0, len(n.observers))
	for _, o := range n.observers {
		obs = append(obs, o)
	}
	n.mu.RUnlock()

	for _, o := range obs {
		o(e)
	}
}

// LogObserver bridges records into structured logging.
func LogObserver(l *slog.Logger) Observer {
	return func(e *Error) {
		attrs := []any{
			slog.String("category", e.Code.String()),
			slog.Int("os_code", e.SystemCode),
		}
		if path := e.Path(); path != "" {
			attrs = append(attrs, slog.String("path", path))
		}
		l.Error(e.Message, attrs...)
	}
}
