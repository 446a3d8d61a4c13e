package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tafuta/internal/client/session"
	"github.com/dmitrijs2005/tafuta/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for an email and password and signs in via the session
// manager. The service's failure message is shown to the user; the password
// buffer is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Register prompts for an email and password and creates a new account.
// Same messaging contract as Login.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Register(ctx, email, string(password)); err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Logout ends the session. From the user's point of view it always succeeds:
// remote failures are absorbed by the session manager.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// Whoami prints the current session identity.
func (a *App) Whoami(ctx context.Context) error {
	s := a.session.State()
	if s.Route() != session.RouteHome {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	if s.User != nil {
		fmt.Fprintf(a.out, "Signed in as %s (id %s)\n", s.User.Email, s.User.ID)
	}
	return nil
}
