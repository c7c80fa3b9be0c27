package listener

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrSourceClosed is returned by a Recognizer that can start no more
// sessions, e.g. because its input reached EOF.
var ErrSourceClosed = errors.New("recognizer source closed")

// EventKind tags a recognizer event.
type EventKind int

const (
	Interim EventKind = iota
	Final
	Error
	End
)

func (k EventKind) String() string {
	switch k {
	case Interim:
		return "interim"
	case Final:
		return "final"
	case Error:
		return "error"
	case End:
		return "end"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one update from a recognition session. Err is set for Error
// events only.
type Event struct {
	Kind EventKind
	Text string
	Err  error
}

// ErrorKind classifies recognition failures.
type ErrorKind string

const (
	NoSpeech         ErrorKind = "no-speech"
	PermissionDenied ErrorKind = "permission-denied"
	OtherError       ErrorKind = "other"
)

// ParseErrorKind maps an engine error code to an ErrorKind. Unknown codes
// are OtherError.
func ParseErrorKind(code string) ErrorKind {
	switch ErrorKind(strings.ToLower(strings.TrimSpace(code))) {
	case NoSpeech:
		return NoSpeech
	case PermissionDenied, "not-allowed":
		return PermissionDenied
	default:
		return OtherError
	}
}

// RecognitionError is a failure reported by the transcription engine.
type RecognitionError struct {
	Kind    ErrorKind
	Message string
}

func (e *RecognitionError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("speech recognition error (%s): %s", e.Kind, e.Message)
	case e.Kind == NoSpeech:
		return "no speech detected"
	case e.Kind == PermissionDenied:
		return "microphone permission denied"
	default:
		return fmt.Sprintf("speech recognition error (%s)", e.Kind)
	}
}

// Recognizer starts transcription sessions. The returned channel carries the
// session's events and is closed when the session ends; a closed channel
// counts as an End event. Sessions stop when ctx is cancelled.
type Recognizer interface {
	Start(ctx context.Context, lang string) (<-chan Event, error)
}

// Handler receives a listener's output. Final is called synchronously on the
// listener goroutine, so the next event is not read until it returns.
type Handler interface {
	Interim(text string)
	Final(ctx context.Context, text string)
	Failed(err error)
}

// HandlerFuncs adapts plain functions to Handler. Nil fields are skipped.
type HandlerFuncs struct {
	OnInterim func(text string)
	OnFinal   func(ctx context.Context, text string)
	OnFailed  func(err error)
}

func (h HandlerFuncs) Interim(text string) {
	if h.OnInterim != nil {
		h.OnInterim(text)
	}
}

func (h HandlerFuncs) Final(ctx context.Context, text string) {
	if h.OnFinal != nil {
		h.OnFinal(ctx, text)
	}
}

func (h HandlerFuncs) Failed(err error) {
	if h.OnFailed != nil {
		h.OnFailed(err)
	}
}
