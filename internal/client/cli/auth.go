package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/chatkeeper/internal/client/api"
	"github.com/dmitrijs2005/chatkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts the user for a username and password and attempts to create
// a new account. The backend opens a session on success, so a successful
// signup leaves the user logged in.
//
// The password byte slice is securely wiped before returning.
func (a *App) Signup(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.backend.Signup(ctx, userName, password); err != nil {
		if errors.Is(err, api.ErrAlreadyExists) {
			log.Printf("Username is taken, try another one")
		} else {
			log.Printf("Signup unsuccessful: %s", err.Error())
		}
		return err
	}

	a.userName = userName
	fmt.Println("Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate. On
// success the session cookie lives in the backend's jar and a.userName is
// set. The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.backend.Login(ctx, userName, password); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			log.Printf("Invalid username or password")
		} else {
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return err
	}

	a.userName = userName
	log.Printf("Login successful")
	return nil
}

// Logout revokes the server-side session and clears the local login state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.backend.Logout(ctx); err != nil {
		log.Printf("Logout unsuccessful: %s", err.Error())
		return err
	}
	a.userName = ""
	return nil
}
