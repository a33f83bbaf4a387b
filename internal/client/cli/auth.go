package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/carrental/internal/client/services"
	"github.com/dmitrijs2005/carrental/internal/common"
)

// Register prompts for the profile and creates an account. Validation
// failures are announced by the auth service; other errors are printed.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	first, err := getSimpleText(a.reader, "First name", a.out)
	if err != nil {
		return err
	}
	last, err := getSimpleText(a.reader, "Last name", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone", a.out)
	if err != nil {
		return err
	}

	_, err = a.auth.Register(ctx, services.RegisterRequest{
		Email: email, Password: password, FirstName: first, LastName: last, Phone: phone,
	})
	return a.reportUnannounced(ctx, err)
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	_, err = a.auth.Login(ctx, email, password)
	return a.reportUnannounced(ctx, err)
}

func (a *App) Logout(ctx context.Context) error {
	return a.reportUnannounced(ctx, a.auth.Logout(ctx))
}

func (a *App) Whoami(ctx context.Context) error {
	u := a.auth.CurrentUser()
	if u == nil {
		a.println("Not signed in")
		return nil
	}
	a.printf("%s <%s>\n", u.FullName(), u.Email)
	if u.Phone != "" {
		a.printf("Phone: %s\n", u.Phone)
	}
	a.printf("Member since %s\n", u.CreatedAt.Local().Format(dateLayout))
	if u.IsAdmin {
		a.println("Role: administrator")
	}
	return nil
}

// reportUnannounced prints errors the services did not already send to the
// notifier: anything that is not a *common.Error.
func (a *App) reportUnannounced(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	var ue *common.Error
	if !errors.As(err, &ue) {
		a.log.Error(ctx, "command failed", "error", err)
		a.printf("Error: %v\n", err)
	}
	return err
}

// report prints any error, user-facing or not.
func (a *App) report(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	var ue *common.Error
	if !errors.As(err, &ue) {
		a.log.Error(ctx, "command failed", "error", err)
	}
	a.printf("Error: %s\n", common.Message(err))
	return err
}
