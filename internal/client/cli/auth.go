package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jobhub/internal/client/services"
)

var (
	ErrLoginFailed        = errors.New("login failed")
	ErrRegistrationFailed = errors.New("registration failed")
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and starts a session. The last username that
// logged in successfully is offered as the default.
//
// The reason for a failed login is logged by the session store; the user
// only sees that it failed.
func (a *App) Login(ctx context.Context) error {
	last := a.session.LastUsername(ctx)
	prompt := "Enter username or email"
	if last != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, last)
	}

	userName, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if userName == "" {
		userName = last
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if !a.session.Login(ctx, userName, string(password)) {
		fmt.Fprintln(a.out, "Login unsuccessful")
		return ErrLoginFailed
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.session.User().Name)
	return nil
}

// Register prompts for a name, an email and a password, creates the account
// and logs into it with the email.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	data := services.RegistrationData{Name: name, Email: email}
	if !a.session.Register(ctx, data, string(password)) {
		fmt.Fprintln(a.out, "Registration unsuccessful")
		return ErrRegistrationFailed
	}

	fmt.Fprintf(a.out, "Success! Logged in as %s\n", a.session.User().Name)
	return nil
}

// Logout ends the current session. It never fails.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Whoami prints the current session.
func (a *App) Whoami(_ context.Context) error {
	u := a.session.User()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "ID:           %s\n", u.ID)
	fmt.Fprintf(a.out, "Name:         %s\n", u.Name)
	fmt.Fprintf(a.out, "Email:        %s\n", u.Email)
	fmt.Fprintf(a.out, "Type:         %s\n", u.UserType)
	fmt.Fprintf(a.out, "Location:     %s\n", u.Location.Country)
	fmt.Fprintf(a.out, "Subscription: %s\n", u.Subscription)
	fmt.Fprintf(a.out, "Since:        %s\n", u.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}
