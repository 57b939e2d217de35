package cli

import "context"

func (a *App) Logout(ctx context.Context) error {
	a.coordinator.Logout(ctx)
	return nil
}
