package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"habitdash/internal/models"
)

type LoginCmd struct {
	Email    string `help:"Account email."`
	Password string `help:"Account password (prompted when omitted)." env:"HABIT_PASSWORD"`
}

func (c *LoginCmd) Run(ctx *Context) error {
	creds := models.LoginData{Email: c.Email, Password: c.Password}
	if creds.Email == "" || creds.Password == "" {
		if err := credentialsForm(&creds.Email, &creds.Password, nil).Run(); err != nil {
			return err
		}
	}

	user, err := ctx.Session.SignIn(ctx.Ctx, creds)
	if err != nil {
		return fmt.Errorf("sign in failed: %w", err)
	}
	ctx.printf("Signed in as %s\n", displayName(user))
	return nil
}

type RegisterCmd struct {
	Email    string `help:"Account email."`
	Password string `help:"Account password (prompted when omitted)." env:"HABIT_PASSWORD"`
	Name     string `help:"Display name."`
}

func (c *RegisterCmd) Run(ctx *Context) error {
	data := models.RegisterData{Email: c.Email, Password: c.Password, Name: c.Name}
	if data.Email == "" || data.Password == "" {
		if err := credentialsForm(&data.Email, &data.Password, &data.Name).Run(); err != nil {
			return err
		}
	}

	user, err := ctx.Session.SignUp(ctx.Ctx, data)
	if err != nil {
		return fmt.Errorf("sign up failed: %w", err)
	}
	ctx.printf("Registered and signed in as %s\n", displayName(user))
	return nil
}

func credentialsForm(email, password, name *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Email").
			Value(email).
			Validate(func(s string) error {
				if !strings.Contains(s, "@") {
					return errors.New("enter a valid email")
				}
				return nil
			}),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(password).
			Validate(func(s string) error {
				if s == "" {
					return errors.New("password is required")
				}
				return nil
			}),
	}
	if name != nil {
		fields = append(fields, huh.NewInput().Title("Name").Value(name))
	}
	return huh.NewForm(huh.NewGroup(fields...))
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.Session.SignOut(ctx.Ctx); err != nil {
		return err
	}
	ctx.printf("Signed out\n")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	tok, err := ctx.Session.StoredToken()
	if err != nil {
		return err
	}
	if tok == "" {
		ctx.printf("Not signed in\n")
		return nil
	}
	user, err := ctx.Session.CurrentUser(ctx.Ctx)
	if err != nil {
		return err
	}
	ctx.printf("%s <%s>\n", displayName(user), user.Email)
	return nil
}

func displayName(u models.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
