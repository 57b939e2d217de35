package cli

import (
	"context"
	"os"
)

// Signup prompts for the new account's details. On success the coordinator
// leaves the caller logged in as the created student.
func (a *App) Signup(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

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

	a.coordinator.Signup(ctx, name, email, password)
	return nil
}
