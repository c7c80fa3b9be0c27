package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tayloree/voicecart/internal/assistant"
	"github.com/tayloree/voicecart/internal/display"
	"github.com/tayloree/voicecart/internal/listener"
)

var (
	flagMode  string
	flagPlain bool
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Listen continuously and apply each transcript",
	Long: "Starts a continuous listening session. In a terminal, an interactive view\n" +
		"takes typed transcripts; Tab switches between command and search mode.\n\n" +
		"Piped input is read one transcript per line:\n" +
		"  ~partial text     interim transcript (shown, not applied)\n" +
		"  !kind message     recognition error (no-speech, permission-denied); stops listening\n" +
		"  (empty line)      end of session; listening restarts automatically\n" +
		"  anything else     final transcript",
	Example: `  voicecart listen
  voicecart listen --mode search --lang es-ES
  printf 'add milk\nremove bread\n' | voicecart listen --plain`,
	Args: cobra.NoArgs,
	RunE: runListen,
}

func init() {
	f := listenCmd.Flags()
	f.StringVarP(&flagMode, "mode", "m", "command", "Start in mode: command or search")
	f.BoolVar(&flagPlain, "plain", false, "Read transcripts line by line without the interactive view")
	rootCmd.AddCommand(listenCmd)
}

func runListen(cmd *cobra.Command, _ []string) error {
	mode, err := assistant.ParseMode(flagMode)
	if err != nil {
		return invalidArgsError(err.Error(), "voicecart listen --mode search")
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !flagPlain && !flagJSON && isInteractiveSession(cmd.InOrStdin(), cmd.OutOrStdout()) {
		return runListenTUI(ctx, cmd, a, mode)
	}
	return runListenLines(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), a, mode)
}

// lineSession prints each transcript's outcome as it is handled.
type lineSession struct {
	app    *app
	mode   assistant.Mode
	stdout io.Writer
	stderr io.Writer

	mu     sync.Mutex
	failed error
}

func (s *lineSession) Interim(text string) {
	if flagJSON {
		return
	}
	display.PrintWarning(s.stderr, "… "+text)
}

func (s *lineSession) Final(ctx context.Context, text string) {
	out, err := s.app.assistant.Handle(ctx, s.mode, text)
	if errors.Is(err, context.Canceled) {
		return
	}
	if flagJSON {
		if jerr := display.PrintOutcomeJSON(s.stdout, out); jerr != nil {
			s.app.log.Warn("writing outcome", zap.Error(jerr))
		}
		return
	}
	if err != nil {
		display.PrintError(s.stdout, out.Message)
		return
	}
	display.PrintOutcome(s.stdout, out)
}

func (s *lineSession) Failed(err error) {
	s.mu.Lock()
	s.failed = err
	s.mu.Unlock()
	if !flagJSON {
		display.PrintError(s.stderr, err.Error())
	}
}

func (s *lineSession) err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failed
}

func runListenLines(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, a *app, mode assistant.Mode) error {
	session := &lineSession{app: a, mode: mode, stdout: stdout, stderr: stderr}
	l := listener.New(listener.NewLineRecognizer(stdin), session,
		listener.WithLanguage(a.cfg.Language),
		listener.WithLogger(a.log),
	)
	if err := l.Start(ctx); err != nil {
		return recognitionError(err)
	}
	l.Wait()

	if err := session.err(); err != nil {
		return recognitionError(err)
	}
	return nil
}

func recognitionError(err error) error {
	var re *listener.RecognitionError
	if errors.As(err, &re) && re.Kind == listener.PermissionDenied {
		return &cliError{
			Code:        "PERMISSION_DENIED",
			Message:     err.Error(),
			Suggestions: []string{"Allow microphone access, then run `voicecart listen` again."},
			ExitCode:    ExitUpstream,
		}
	}
	return &cliError{
		Code:        "RECOGNITION_ERROR",
		Message:     fmt.Sprintf("listening: %v", err),
		Suggestions: []string{"voicecart listen", `voicecart say "add milk"`},
		ExitCode:    ExitUpstream,
	}
}
