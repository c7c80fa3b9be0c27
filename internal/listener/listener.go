package listener

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/tayloree/voicecart/internal/logger"
)

// ErrAlreadyListening is returned by Start when a session loop is running.
var ErrAlreadyListening = errors.New("listener already started")

// State is the listener's lifecycle state.
type State int

const (
	Idle State = iota
	Listening
	Stopping
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Listening:
		return "listening"
	case Stopping:
		return "stopping"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// DefaultLanguage is used when no language option is given.
const DefaultLanguage = "en-US"

// Listener keeps a recognizer running continuously. When a session ends
// while the listener is Listening, a new session is started. Recognition
// errors are reported to the handler and return the listener to Idle.
type Listener struct {
	rec     Recognizer
	handler Handler
	lang    string
	log     logger.Log

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	done   chan struct{}
}

// Option configures a Listener.
type Option func(*Listener)

func WithLanguage(lang string) Option {
	return func(l *Listener) {
		if lang != "" {
			l.lang = lang
		}
	}
}

func WithLogger(log logger.Log) Option {
	return func(l *Listener) { l.log = log }
}

// New creates an idle Listener.
func New(rec Recognizer, handler Handler, opts ...Option) *Listener {
	l := &Listener{
		rec:     rec,
		handler: handler,
		lang:    DefaultLanguage,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State reports the current lifecycle state.
func (l *Listener) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Language reports the locale passed to the recognizer.
func (l *Listener) Language() string {
	return l.lang
}

// Start opens the first session and runs the session loop in a goroutine.
// An error starting the first session is returned and leaves the listener
// Idle.
func (l *Listener) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != Idle {
		return ErrAlreadyListening
	}

	sessionCtx, cancel := context.WithCancel(ctx)
	events, err := l.rec.Start(sessionCtx, l.lang)
	if err != nil {
		cancel()
		return fmt.Errorf("starting recognizer: %w", err)
	}

	l.state = Listening
	l.cancel = cancel
	l.done = make(chan struct{})
	l.log.Debug("listener started", zap.String("lang", l.lang))
	go l.run(sessionCtx, events, l.done)
	return nil
}

// Stop cancels the running session and waits for the loop to exit. Any
// transcript in flight is dropped. Stop must not be called from a Handler
// method.
func (l *Listener) Stop() {
	l.mu.Lock()
	if l.state != Listening {
		done := l.done
		l.mu.Unlock()
		if done != nil {
			<-done
		}
		return
	}
	l.state = Stopping
	cancel, done := l.cancel, l.done
	l.mu.Unlock()

	cancel()
	<-done
}

// Wait blocks until the session loop exits, either after Stop, a
// recognition error or the recognizer running out of sessions.
func (l *Listener) Wait() {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (l *Listener) run(ctx context.Context, events <-chan Event, done chan struct{}) {
	defer func() {
		l.mu.Lock()
		l.cancel()
		l.state = Idle
		l.cancel = nil
		l.mu.Unlock()
		close(done)
		l.log.Debug("listener stopped")
	}()

	for {
		var (
			ev Event
			ok bool
		)
		select {
		case <-ctx.Done():
			return
		case ev, ok = <-events:
		}
		if !ok {
			ev = Event{Kind: End}
		}
		if ctx.Err() != nil {
			return
		}

		switch ev.Kind {
		case Interim:
			l.handler.Interim(ev.Text)
		case Final:
			l.handler.Final(ctx, ev.Text)
		case Error:
			err := ev.Err
			if err == nil {
				err = &RecognitionError{Kind: OtherError}
			}
			l.log.Warn("recognition failed", zap.Error(err))
			l.handler.Failed(err)
			return
		case End:
			if l.State() != Listening {
				return
			}
			next, err := l.rec.Start(ctx, l.lang)
			if err != nil {
				if !errors.Is(err, ErrSourceClosed) && ctx.Err() == nil {
					l.handler.Failed(fmt.Errorf("restarting recognizer: %w", err))
				}
				return
			}
			l.log.Debug("recognizer session restarted")
			events = next
		}
	}
}
