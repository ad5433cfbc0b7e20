package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/chatkeeper/internal/client/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *[]string {
	t.Helper()

	var output []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, arg := range args {
			output = append(output, arg.(string))
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &output
}

func TestChat_PrintsReply(t *testing.T) {
	out := captureOutput(t)
	b := &stubBackend{chatReply: "hello there"}
	a := newTestApp(b)

	require.NoError(t, a.Chat(context.Background(), "hi"))

	assert.Equal(t, []string{"hi"}, b.sent)
	assert.Contains(t, *out, "bot> hello there")
}

func TestChat_BackendFailure(t *testing.T) {
	a := newTestApp(&stubBackend{chatErr: api.ErrServer})

	assert.ErrorIs(t, a.Chat(context.Background(), "hi"), api.ErrServer)
}

func TestChat_PromptsWhenMessageEmpty(t *testing.T) {
	stubInput(t, "prompted message", "")
	captureOutput(t)

	b := &stubBackend{chatReply: "ok"}
	a := newTestApp(b)

	require.NoError(t, a.Chat(context.Background(), ""))
	assert.Equal(t, []string{"prompted message"}, b.sent)
}

func TestHistory_PrintsExchanges(t *testing.T) {
	out := captureOutput(t)
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	a := newTestApp(&stubBackend{history: []api.Exchange{
		{ID: "a", UserMessage: "q1", BotResponse: "r1", CreatedAt: created},
		{ID: "b", UserMessage: "q2", BotResponse: "r2", CreatedAt: created},
	}})

	require.NoError(t, a.History(context.Background()))

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "you> q1")
	assert.Contains(t, joined, "bot> r1")
	assert.Contains(t, joined, "you> q2")
	assert.Contains(t, joined, "2025-01-02 03:04:05")
}

func TestHistory_Empty(t *testing.T) {
	out := captureOutput(t)
	a := newTestApp(&stubBackend{})

	require.NoError(t, a.History(context.Background()))
	assert.Contains(t, *out, "No exchanges yet")
}
