package cli

import (
	"context"
	"os"
)

// Login prompts for credentials and hands them to the coordinator. Outcome
// feedback (welcome or failure) arrives through the notifier; this handler
// only reports input errors.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	return a.coordinator.Login(ctx, email, password)
}
