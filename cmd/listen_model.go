package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tayloree/voicecart/internal/assistant"
	"github.com/tayloree/voicecart/internal/display"
	"github.com/tayloree/voicecart/internal/listener"
	"github.com/tayloree/voicecart/internal/shopping"
	"github.com/tayloree/voicecart/internal/suggest"
)

const (
	listenLogSize      = 8
	listenResultsShown = 4
)

var (
	lsHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	lsMetaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	lsHintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	lsSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	lsOKStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	lsErrStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	lsDoneStyle    = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	lsPriceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	lsModeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
)

// typedRecognizer feeds transcripts typed into the listen view to a
// listener. Its sessions end only when the listener cancels them.
type typedRecognizer struct {
	input chan string
}

func newTypedRecognizer() *typedRecognizer {
	return &typedRecognizer{input: make(chan string, 8)}
}

func (r *typedRecognizer) Start(ctx context.Context, _ string) (<-chan listener.Event, error) {
	events := make(chan listener.Event)
	go func() {
		defer close(events)
		for {
			select {
			case <-ctx.Done():
				return
			case text := <-r.input:
				select {
				case events <- listener.Event{Kind: listener.Final, Text: text}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return events, nil
}

// submit queues text without blocking the UI; a full queue drops it.
func (r *typedRecognizer) submit(text string) bool {
	select {
	case r.input <- text:
		return true
	default:
		return false
	}
}

type outcomeMsg struct {
	out assistant.Outcome
	err error
}

type listenFailedMsg struct {
	err error
}

type suggestionsMsg struct {
	suggestions []suggest.Suggestion
}

type logLine struct {
	text string
	ok   bool
}

type listenModel struct {
	ctx      context.Context
	app      *app
	engine   *suggest.Engine
	inputs   map[assistant.Mode]*typedRecognizer
	mode     assistant.Mode
	language string

	input   textinput.Model
	spinner spinner.Model
	pending int

	items       []shopping.Item
	suggestions []suggest.Suggestion
	log         []logLine
	fatalErr    error

	width int
}

func newListenModel(ctx context.Context, a *app, mode assistant.Mode, inputs map[assistant.Mode]*typedRecognizer) listenModel {
	in := textinput.New()
	in.Placeholder = `say something like "add 2 milk"`
	in.Prompt = "› "
	in.CharLimit = 200
	in.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	return listenModel{
		ctx:      ctx,
		app:      a,
		engine:   a.suggestEngine(),
		inputs:   inputs,
		mode:     mode,
		language: a.cfg.Language,
		input:    in,
		spinner:  spin,
		items:    a.store.Items(),
	}
}

func (m listenModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.refreshSuggestions())
}

func (m listenModel) refreshSuggestions() tea.Cmd {
	a, engine, ctx := m.app, m.engine, m.ctx
	return func() tea.Msg {
		return suggestionsMsg{suggestions: engine.Suggest(ctx, a.store.Items(), a.store.History(), a.store.Searches())}
	}
}

func (m listenModel) acceptSuggestion(s suggest.Suggestion) tea.Cmd {
	a, ctx := m.app, m.ctx
	return func() tea.Msg {
		out, err := a.assistant.AcceptSuggestion(ctx, s)
		return outcomeMsg{out: out, err: err}
	}
}

func (m listenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = maxInt(20, msg.Width-8)
		return m, nil

	case outcomeMsg:
		if m.pending > 0 {
			m.pending--
		}
		if errors.Is(msg.err, context.Canceled) {
			return m, nil
		}
		m.pushLog(msg.out.Message, msg.err == nil)
		for i, p := range msg.out.Results {
			if i == listenResultsShown {
				m.pushLog(fmt.Sprintf("  … %d more", len(msg.out.Results)-i), true)
				break
			}
			m.pushLog(fmt.Sprintf("  %s  $%.2f", p.Name, p.Price), true)
		}
		m.items = m.app.store.Items()
		return m, m.refreshSuggestions()

	case listenFailedMsg:
		m.fatalErr = msg.err
		return m, tea.Quit

	case suggestionsMsg:
		m.suggestions = msg.suggestions
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if m.mode == assistant.ModeCommand {
				m.mode = assistant.ModeSearch
			} else {
				m.mode = assistant.ModeCommand
			}
			return m, nil
		case "ctrl+a":
			if len(m.suggestions) == 0 {
				return m, nil
			}
			top := m.suggestions[0]
			m.suggestions = m.suggestions[1:]
			m.pending++
			return m, m.acceptSuggestion(top)
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.Reset()
			if !m.inputs[m.mode].submit(text) {
				m.pushLog("Still working on earlier transcripts, try again", false)
				return m, nil
			}
			m.pending++
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *listenModel) pushLog(text string, ok bool) {
	if text == "" {
		return
	}
	m.log = append(m.log, logLine{text: text, ok: ok})
	if len(m.log) > listenLogSize {
		m.log = m.log[len(m.log)-listenLogSize:]
	}
}

func (m listenModel) View() string {
	var b strings.Builder

	status := "listening"
	if m.pending > 0 {
		status = m.spinner.View() + " working"
	}
	fmt.Fprintf(&b, "%s  %s  %s\n\n",
		lsHeaderStyle.Render("voicecart"),
		lsModeStyle.Render(string(m.mode)+" mode"),
		lsMetaStyle.Render(fmt.Sprintf("%s | %s", m.language, status)),
	)

	fmt.Fprintf(&b, "%s\n", lsSectionStyle.Render(fmt.Sprintf("Shopping list (%d)", len(m.items))))
	if len(m.items) == 0 {
		fmt.Fprintf(&b, "  %s\n", lsHintStyle.Render("empty"))
	}
	for _, it := range m.items {
		name := it.Name
		box := "[ ]"
		if it.Completed {
			box, name = "[x]", lsDoneStyle.Render(name)
		}
		line := fmt.Sprintf("  %s %s ×%d", box, name, it.Quantity)
		if it.Price != nil {
			line += "  " + lsPriceStyle.Render(fmt.Sprintf("$%.2f", *it.Price))
		}
		fmt.Fprintf(&b, "%s  %s\n", line, lsHintStyle.Render(display.ShortID(it.ID)))
	}

	if len(m.suggestions) > 0 {
		fmt.Fprintf(&b, "\n%s\n", lsSectionStyle.Render("Suggestions"))
		for i, s := range m.suggestions {
			fmt.Fprintf(&b, "  %d. %s  %s\n", i+1, s.Name, lsHintStyle.Render(s.Reason))
		}
	}

	if len(m.log) > 0 {
		b.WriteString("\n")
		for _, l := range m.log {
			style := lsOKStyle
			if !l.ok {
				style = lsErrStyle
			}
			fmt.Fprintf(&b, "%s\n", style.Render(l.text))
		}
	}

	fmt.Fprintf(&b, "\n%s\n%s\n",
		m.input.View(),
		lsHintStyle.Render("enter: submit • tab: switch mode • ctrl+a: add top suggestion • esc: quit"),
	)
	return b.String()
}

func runListenTUI(ctx context.Context, cmd *cobra.Command, a *app, mode assistant.Mode) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	inputs := map[assistant.Mode]*typedRecognizer{
		assistant.ModeCommand: newTypedRecognizer(),
		assistant.ModeSearch:  newTypedRecognizer(),
	}
	p := tea.NewProgram(
		newListenModel(ctx, a, mode, inputs),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	// One listener per mode; the assistant serializes their transcripts.
	listeners := make([]*listener.Listener, 0, len(inputs))
	for m, rec := range inputs {
		handlerMode := m
		l := listener.New(rec, listener.HandlerFuncs{
			OnFinal: func(ctx context.Context, text string) {
				out, err := a.assistant.Handle(ctx, handlerMode, text)
				p.Send(outcomeMsg{out: out, err: err})
			},
			OnFailed: func(err error) {
				p.Send(listenFailedMsg{err: err})
			},
		}, listener.WithLanguage(a.cfg.Language), listener.WithLogger(a.log))
		if err := l.Start(ctx); err != nil {
			return recognitionError(err)
		}
		listeners = append(listeners, l)
	}
	defer func() {
		for _, l := range listeners {
			l.Stop()
		}
	}()

	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return internalError("running listen view", err)
	}
	if lm, ok := final.(listenModel); ok && lm.fatalErr != nil {
		return recognitionError(lm.fatalErr)
	}
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
