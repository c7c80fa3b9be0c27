package listener

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

// LineRecognizer turns lines of text into recognition events, one line per
// event. It stands in for a speech engine on terminals and in scripts:
//
//	~partial text     interim transcript
//	!kind message     recognition error (no-speech, permission-denied, other)
//	(empty line)      end of session
//	anything else     final transcript
//
// EOF ends the current session and makes further Start calls fail with
// ErrSourceClosed.
type LineRecognizer struct {
	r     io.Reader
	once  sync.Once
	lines chan string

	mu     sync.Mutex
	closed bool
}

// NewLineRecognizer reads events from r.
func NewLineRecognizer(r io.Reader) *LineRecognizer {
	return &LineRecognizer{r: r, lines: make(chan string)}
}

// Start implements Recognizer. The language is ignored.
func (lr *LineRecognizer) Start(ctx context.Context, _ string) (<-chan Event, error) {
	lr.once.Do(func() { go lr.pump() })

	lr.mu.Lock()
	closed := lr.closed
	lr.mu.Unlock()
	if closed {
		return nil, ErrSourceClosed
	}

	events := make(chan Event)
	go lr.session(ctx, events)
	return events, nil
}

func (lr *LineRecognizer) pump() {
	defer close(lr.lines)
	sc := bufio.NewScanner(lr.r)
	for sc.Scan() {
		lr.lines <- sc.Text()
	}
}

func (lr *LineRecognizer) session(ctx context.Context, events chan<- Event) {
	defer close(events)
	for {
		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return
		case line, ok = <-lr.lines:
		}
		if !ok {
			lr.mu.Lock()
			lr.closed = true
			lr.mu.Unlock()
			return
		}

		ev, end := parseLine(line)
		if end {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
		if ev.Kind == Error {
			return
		}
	}
}

func parseLine(line string) (Event, bool) {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return Event{}, true
	case strings.HasPrefix(line, "~"):
		return Event{Kind: Interim, Text: strings.TrimSpace(line[1:])}, false
	case strings.HasPrefix(line, "!"):
		code, msg, _ := strings.Cut(strings.TrimSpace(line[1:]), " ")
		return Event{Kind: Error, Err: &RecognitionError{
			Kind:    ParseErrorKind(code),
			Message: strings.TrimSpace(msg),
		}}, false
	default:
		return Event{Kind: Final, Text: line}, false
	}
}
