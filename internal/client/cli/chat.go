package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Chat sends one message to the model and prints the reply. When message is
// empty the user is prompted for one.
func (a *App) Chat(ctx context.Context, message string) error {
	if message == "" {
		var err error
		message, err = getSimpleText(a.reader, "Enter message", os.Stdout)
		if err != nil {
			return err
		}
	}
	if message == "" {
		printlnFn("Nothing to send")
		return nil
	}

	reply, err := a.backend.Chat(ctx, message)
	if err != nil {
		log.Printf("Chat unsuccessful: %s", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("bot> %s", reply))
	return nil
}

// History prints every logged exchange for the current user, oldest first.
func (a *App) History(ctx context.Context) error {
	exchanges, err := a.backend.History(ctx)
	if err != nil {
		log.Printf("History unsuccessful: %s", err.Error())
		return err
	}

	if len(exchanges) == 0 {
		printlnFn("No exchanges yet")
		return nil
	}

	for _, exchange := range exchanges {
		printlnFn(fmt.Sprintf("[%s]", exchange.CreatedAt.Format("2006-01-02 15:04:05")))
		printlnFn(fmt.Sprintf("you> %s", exchange.UserMessage))
		printlnFn(fmt.Sprintf("bot> %s", exchange.BotResponse))
	}
	return nil
}
