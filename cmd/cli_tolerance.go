package cmd

import (
	"fmt"
	"strings"
)

// valueFlags lists every long flag voicecart accepts and whether it takes a
// value.
var valueFlags = map[string]bool{
	"json":        false,
	"config":      true,
	"data-dir":    true,
	"storage":     true,
	"catalog-url": true,
	"lang":        true,
	"mode":        true,
	"min":         true,
	"max":         true,
	"sort":        true,
	"category":    true,
	"limit":       true,
	"accept":      true,
	"addr":        true,
	"fallback":    false,
	"seed":        true,
	"plain":       false,
	"help":        false,
}

var flagAliases = map[string]string{
	"language":  "lang",
	"locale":    "lang",
	"dir":       "data-dir",
	"datadir":   "data-dir",
	"backend":   "storage",
	"catalog":   "catalog-url",
	"url":       "catalog-url",
	"min-price": "min",
	"max-price": "max",
	"port":      "addr",
	"listen":    "addr",
	"top":       "limit",
}

// commandPolicy says how the words after a command may be rewritten.
// bareFlags: the command takes no free text, so `json` means `--json`.
// nested: the next word may itself be a command name.
type commandPolicy struct {
	name      string
	bareFlags bool
	nested    bool
}

var commandPolicies = []commandPolicy{
	{name: "say"},
	{name: "search"},
	{name: "listen"},
	{name: "list", bareFlags: true},
	{name: "toggle"},
	{name: "qty"},
	{name: "remove"},
	{name: "clear-completed"},
	{name: "stats", bareFlags: true},
	{name: "suggest", bareFlags: true},
	{name: "history", bareFlags: true},
	{name: "categories", bareFlags: true},
	{name: "languages", bareFlags: true},
	{name: "catalog", nested: true},
	{name: "completion", nested: true},
	{name: "help", nested: true},
}

var knownCommands = func() []string {
	names := make([]string, len(commandPolicies))
	for i, p := range commandPolicies {
		names[i] = p.name
	}
	return names
}()

func policyFor(command string) commandPolicy {
	for _, p := range commandPolicies {
		if p.name == command {
			return p
		}
	}
	return commandPolicy{name: command}
}

// rewrite is the outcome of normalizing one token.
type rewrite struct {
	token      string
	note       string
	flag       bool
	wantsValue bool
	command    bool
}

// argRewriter walks the arguments once, tracking which command is active
// and whether the next token is a flag value.
type argRewriter struct {
	command      string
	nestedTaken  bool
	bareFlags    bool
	pendingValue bool
	passthrough  bool
}

func normalizeCLIArgs(args []string) ([]string, []string) {
	rw := &argRewriter{bareFlags: true}
	out := make([]string, 0, len(args))
	var notes []string

	for i, tok := range args {
		r := rw.next(tok)
		out = append(out, r.token)
		if r.note != "" {
			notes = append(notes, r.note)
		}
		if r.flag && r.wantsValue && !strings.Contains(r.token, "=") && i < len(args)-1 {
			rw.pendingValue = true
		}
	}
	return out, notes
}

func (rw *argRewriter) next(tok string) rewrite {
	switch {
	case rw.passthrough:
		return rewrite{token: tok}
	case rw.pendingValue:
		rw.pendingValue = false
		return rewrite{token: tok}
	case tok == "--":
		rw.passthrough = true
		return rewrite{token: tok}
	}

	r := rw.classify(tok)
	if r.command {
		if rw.command == "" {
			p := policyFor(r.token)
			rw.command = p.name
			rw.bareFlags = p.bareFlags
		} else {
			rw.nestedTaken = true
		}
	}
	return r
}

func (rw *argRewriter) acceptsCommand() bool {
	return rw.command == "" || (policyFor(rw.command).nested && !rw.nestedTaken)
}

func (rw *argRewriter) classify(tok string) rewrite {
	switch {
	case strings.HasPrefix(tok, "--"):
		return dashedFlag(tok, strings.TrimPrefix(tok, "--"), false)
	case strings.HasPrefix(tok, "-") && len(tok) > 2:
		return dashedFlag(tok, strings.TrimPrefix(tok, "-"), true)
	case strings.HasPrefix(tok, "-"):
		return rewrite{token: tok, flag: true}
	}

	if strings.Contains(tok, "=") {
		name, value := splitFlag(tok)
		if canonical, ok := resolveFlagName(name); ok {
			return flagRewrite(tok, "--"+canonical+value, canonical)
		}
	}

	if rw.acceptsCommand() {
		if corrected, ok := resolveCommand(tok); ok {
			r := rewrite{token: corrected, command: true}
			if corrected != tok {
				r.note = rewriteNote("command `%s`", tok, corrected)
			}
			return r
		}
	}

	if rw.bareFlags {
		if canonical, ok := resolveFlagName(tok); ok {
			return flagRewrite(tok, "--"+canonical, canonical)
		}
	}
	return rewrite{token: tok}
}

// dashedFlag canonicalizes `--name[=v]` and `-name[=v]`. A single-dash long
// flag is always reported, even when the name itself was right.
func dashedFlag(tok, body string, singleDash bool) rewrite {
	name, value := splitFlag(body)
	canonical, ok := resolveFlagName(name)
	if !ok {
		return rewrite{token: tok, flag: true}
	}
	fixed := "--" + canonical + value
	if fixed == tok && !singleDash {
		return rewrite{token: fixed, flag: true, wantsValue: valueFlags[canonical]}
	}
	return flagRewrite(tok, fixed, canonical)
}

func flagRewrite(from, to, canonical string) rewrite {
	return rewrite{
		token:      to,
		note:       rewriteNote("`%s`", from, to),
		flag:       true,
		wantsValue: valueFlags[canonical],
	}
}

func rewriteNote(subject, from, to string) string {
	return fmt.Sprintf("interpreted "+subject+" as `%s`; use `%s` next time.", from, to, to)
}

func resolveFlagName(raw string) (string, bool) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "_", "-")
	if canonical, ok := flagAliases[name]; ok {
		return canonical, true
	}
	if _, ok := valueFlags[name]; ok {
		return name, true
	}
	names := make([]string, 0, len(valueFlags))
	for flag := range valueFlags {
		names = append(names, flag)
	}
	return closestMatch(name, names, 2)
}

func resolveCommand(raw string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for _, known := range knownCommands {
		if name == known {
			return known, true
		}
	}
	return closestMatch(name, knownCommands, 2)
}

func explainCLIError(err error) string {
	return formatCLIErrorText(classifyCLIError(err))
}

func splitFlag(value string) (string, string) {
	if name, v, ok := strings.Cut(value, "="); ok {
		return name, "=" + v
	}
	return value, ""
}

// extractUnknownValue pulls the offending token out of a cobra error such
// as `unknown flag: --stroage` or `unknown command "serch" for "voicecart"`.
func extractUnknownValue(msg, marker string) string {
	_, rest, ok := strings.Cut(msg, marker)
	if !ok {
		return ""
	}
	rest = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rest), ":"))

	for _, quote := range []string{`"`, "`"} {
		if inner, found := strings.CutPrefix(rest, quote); found {
			if value, _, closed := strings.Cut(inner, quote); closed {
				return value
			}
		}
	}
	if fields := strings.Fields(rest); len(fields) > 0 {
		return strings.Trim(fields[0], "\"`")
	}
	return ""
}

func closestMatch(target string, candidates []string, maxDistance int) (string, bool) {
	best, bestDist := "", maxDistance+1
	for _, candidate := range candidates {
		if d := levenshtein(target, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best, bestDist <= maxDistance
}

// levenshtein is the edit distance between a and b, counted in runes.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		diag := row[0]
		row[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			above := row[j]
			row[j] = min(above+1, row[j-1]+1, diag+cost)
			diag = above
		}
	}
	return row[len(rb)]
}
