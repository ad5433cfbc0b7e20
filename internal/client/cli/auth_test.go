package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/chatkeeper/internal/client/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBackend struct {
	signupErr error
	loginErr  error
	logoutErr error
	chatReply string
	chatErr   error
	history   []api.Exchange
	sent      []string
}

func (s *stubBackend) Signup(ctx context.Context, username string, password []byte) error {
	return s.signupErr
}

func (s *stubBackend) Login(ctx context.Context, username string, password []byte) error {
	return s.loginErr
}

func (s *stubBackend) Logout(ctx context.Context) error { return s.logoutErr }

func (s *stubBackend) Chat(ctx context.Context, message string) (string, error) {
	if s.chatErr != nil {
		return "", s.chatErr
	}
	s.sent = append(s.sent, message)
	return s.chatReply, nil
}

func (s *stubBackend) History(ctx context.Context) ([]api.Exchange, error) {
	return s.history, nil
}

func newTestApp(b backend) *App {
	return &App{backend: b, reader: bufio.NewReader(strings.NewReader(""))}
}

// stubInput replaces the interactive prompts for the duration of the test.
func stubInput(t *testing.T, username, password string) {
	t.Helper()

	origText := getSimpleText
	origPassword := getPassword
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		return username, nil
	}
	getPassword = func(w io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPassword
	})
}

func TestSignup_LogsUserIn(t *testing.T) {
	stubInput(t, "alice", "pw")
	a := newTestApp(&stubBackend{})

	require.NoError(t, a.Signup(context.Background()))
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "alice", a.status())
}

func TestSignup_UsernameTaken(t *testing.T) {
	stubInput(t, "alice", "pw")
	a := newTestApp(&stubBackend{signupErr: api.ErrAlreadyExists})

	assert.ErrorIs(t, a.Signup(context.Background()), api.ErrAlreadyExists)
	assert.False(t, a.isLoggedIn())
}

func TestLogin_Success(t *testing.T) {
	stubInput(t, "alice", "pw")
	a := newTestApp(&stubBackend{})

	require.NoError(t, a.Login(context.Background()))
	assert.True(t, a.isLoggedIn())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	stubInput(t, "alice", "wrong")
	a := newTestApp(&stubBackend{loginErr: api.ErrUnauthorized})

	assert.ErrorIs(t, a.Login(context.Background()), api.ErrUnauthorized)
	assert.False(t, a.isLoggedIn())
}

func TestLogout_ClearsLoginState(t *testing.T) {
	a := newTestApp(&stubBackend{})
	a.userName = "alice"

	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "anonymous", a.status())
}
