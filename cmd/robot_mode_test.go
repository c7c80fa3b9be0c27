package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tayloree/voicecart/internal/assistant"
	"github.com/tayloree/voicecart/internal/listener"
	"github.com/tayloree/voicecart/internal/shopping"
	"github.com/tayloree/voicecart/internal/voice"
)

func TestShouldAutoJSON(t *testing.T) {
	assert.True(t, shouldAutoJSON([]string{"list"}, false))
	assert.True(t, shouldAutoJSON([]string{"say", "add milk"}, false))
	assert.False(t, shouldAutoJSON([]string{"list", "--json"}, false))
	assert.False(t, shouldAutoJSON([]string{"completion", "zsh"}, false))
	assert.False(t, shouldAutoJSON([]string{"catalog", "serve"}, false))
	assert.False(t, shouldAutoJSON([]string{"--help"}, false))
	assert.False(t, shouldAutoJSON([]string{"list"}, true))
}

func TestFirstCommand_SkipsFlagValues(t *testing.T) {
	assert.Equal(t, "listen", firstCommand([]string{"--lang", "fr-FR", "listen"}))
	assert.Equal(t, "say", firstCommand([]string{"-l", "fr-FR", "say", "add milk"}))
	assert.Equal(t, "list", firstCommand([]string{"--json", "list"}))
	assert.Equal(t, "", firstCommand([]string{"--", "list"}))
}

func TestPrintQuickStart_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := printQuickStart(&buf, true)
	require.NoError(t, err)

	var payload quickStartJSON
	err = json.Unmarshal(buf.Bytes(), &payload)
	require.NoError(t, err)

	assert.Equal(t, "voicecart", payload.Name)
	assert.NotEmpty(t, payload.Usage)
	assert.Len(t, payload.Examples, 3)
}

func TestPrintCLIErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	err := printCLIErrorJSON(&buf, classifyCLIError(invalidArgsError("bad flag", "voicecart list --json")))
	require.NoError(t, err)

	var payload map[string]any
	err = json.Unmarshal(buf.Bytes(), &payload)
	require.NoError(t, err)

	errorObject, ok := payload["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "INVALID_ARGS", errorObject["code"])
	assert.Equal(t, "bad flag", errorObject["message"])
	assert.EqualValues(t, ExitInvalidArgs, errorObject["exitCode"])
}

func TestClassifyCLIError_Upstream(t *testing.T) {
	cliErr := classifyCLIError(errors.New("searching catalog: unexpected status 500 from http://x"))
	assert.Equal(t, "UPSTREAM_ERROR", cliErr.Code)
	assert.Equal(t, ExitUpstream, cliErr.ExitCode)
}

func TestOutcomeError(t *testing.T) {
	t.Run("not recognized", func(t *testing.T) {
		out := assistant.Outcome{Message: "Command not recognized."}
		var cliErr *cliError
		require.ErrorAs(t, outcomeError(out, voice.ErrNotRecognized), &cliErr)
		assert.Equal(t, "NOT_RECOGNIZED", cliErr.Code)
		assert.Equal(t, ExitNotRecognized, cliErr.ExitCode)
		assert.Equal(t, "Command not recognized.", cliErr.Message)
	})

	t.Run("not available with hints", func(t *testing.T) {
		out := assistant.Outcome{Message: "pelotn is not available in the store."}
		err := &assistant.NotAvailableError{Phrase: "pelotn", Hints: []string{"Peloton Bike"}}
		var cliErr *cliError
		require.ErrorAs(t, outcomeError(out, err), &cliErr)
		assert.Equal(t, "NOT_FOUND", cliErr.Code)
		assert.Equal(t, ExitNotFound, cliErr.ExitCode)
		assert.Equal(t, []string{`Did you mean "Peloton Bike"?`, `voicecart search "pelotn"`}, cliErr.Suggestions)
	})

	t.Run("remove miss", func(t *testing.T) {
		var cliErr *cliError
		require.ErrorAs(t, outcomeError(assistant.Outcome{}, shopping.ErrItemNotFound), &cliErr)
		assert.Equal(t, ExitNotFound, cliErr.ExitCode)
	})

	t.Run("other", func(t *testing.T) {
		var cliErr *cliError
		require.ErrorAs(t, outcomeError(assistant.Outcome{}, errors.New("disk full")), &cliErr)
		assert.Equal(t, ExitInternal, cliErr.ExitCode)
	})
}

func TestRecognitionError(t *testing.T) {
	var cliErr *cliError
	require.ErrorAs(t, recognitionError(&listener.RecognitionError{Kind: listener.PermissionDenied}), &cliErr)
	assert.Equal(t, "PERMISSION_DENIED", cliErr.Code)
	assert.Equal(t, "microphone permission denied", cliErr.Message)

	require.ErrorAs(t, recognitionError(&listener.RecognitionError{Kind: listener.NoSpeech}), &cliErr)
	assert.Equal(t, "RECOGNITION_ERROR", cliErr.Code)
	assert.Equal(t, "listening: no speech detected", cliErr.Message)
}

func TestResolveItemID(t *testing.T) {
	items := []shopping.Item{
		{ID: "3f2a9c10-aaaa", Name: "Whole Milk"},
		{ID: "3f2b0000-bbbb", Name: "Bread"},
		{ID: "77aa0000-cccc", Name: "Eggs"},
	}

	id, err := resolveItemID(items, "77")
	require.NoError(t, err)
	assert.Equal(t, "77aa0000-cccc", id)

	id, err = resolveItemID(items, "3F2A")
	require.NoError(t, err)
	assert.Equal(t, "3f2a9c10-aaaa", id)

	var cliErr *cliError
	_, err = resolveItemID(items, "3f2")
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, ExitInvalidArgs, cliErr.ExitCode)
	assert.Contains(t, cliErr.Message, "matches 2 items")

	_, err = resolveItemID(items, "zz")
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, ExitNotFound, cliErr.ExitCode)
}
