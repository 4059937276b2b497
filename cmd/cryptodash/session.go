package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"cryptodash/internal/app"
)

// passwordEnv lets scripts pass the password without a flag.
const passwordEnv = "CRYPTODASH_PASSWORD"

type loginCmd struct {
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in and save the session" }
func (*loginCmd) Usage() string {
	return `cryptodash login -email <email> [-password <password>]

  Sends the credentials to AUTH_URL and saves the session. The password may
  also be given in the CRYPTODASH_PASSWORD environment variable.
`
}

func (p *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.email, "email", "", "Account email.")
	f.StringVar(&p.password, "password", "", "Account password.")
}

func (p *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	password := p.password
	if password == "" {
		password = os.Getenv(passwordEnv)
	}
	if p.email == "" || password == "" {
		return usageError(f, "email and password are required")
	}

	return withApp(ctx, func(ctx context.Context, a *app.App) error {
		user, _, err := a.Sessions.Login(ctx, p.email, password)
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
		return nil
	})
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "clear the saved session" }
func (*logoutCmd) Usage() string {
	return `cryptodash logout

  Deletes the saved user and token.
`
}

func (*logoutCmd) SetFlags(*flag.FlagSet) {}

func (*logoutCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(ctx, func(ctx context.Context, a *app.App) error {
		if err := a.Sessions.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	})
}

type whoamiCmd struct{}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "show the logged-in user" }
func (*whoamiCmd) Usage() string {
	return `cryptodash whoami

  Prints the user of the saved session.
`
}

func (*whoamiCmd) SetFlags(*flag.FlagSet) {}

func (*whoamiCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(ctx, func(ctx context.Context, a *app.App) error {
		user, ok := a.Sessions.Current()
		if !ok {
			if a.Sessions.IsAuthenticated() {
				fmt.Println("Logged in (user details unavailable)")
				return nil
			}
			return errLoginRequired
		}
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		return nil
	})
}
