// Package cli implements the interactive terminal client for the chatkeeper
// backend.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/chatkeeper/internal/client/api"
	"github.com/dmitrijs2005/chatkeeper/internal/client/config"
)

// backend is the API surface the CLI needs. The real api.Client satisfies it;
// tests provide stubs.
type backend interface {
	Signup(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	Chat(ctx context.Context, message string) (string, error)
	History(ctx context.Context) ([]api.Exchange, error)
}

type App struct {
	config   *config.Config
	backend  backend
	reader   *bufio.Reader
	userName string
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := api.NewClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{config: c, backend: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) status() string {
	if a.userName == "" {
		return "anonymous"
	}
	return a.userName
}

func (a *App) Run(ctx context.Context) {
	fmt.Println("ChatKeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
