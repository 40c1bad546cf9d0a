package cli

import (
	"fmt"
	"log/slog"

	"keyshift/internal/autostart"
)

// AutostartCmd groups login registration subcommands.
type AutostartCmd struct {
	Enable  AutostartEnable  `cmd:"" help:"Start keyshift at login"`
	Disable AutostartDisable `cmd:"" help:"Stop starting keyshift at login"`
	Status  AutostartStatus  `cmd:"" help:"Show whether keyshift starts at login"`
}

type AutostartEnable struct{}

func (a *AutostartEnable) Run(logger *slog.Logger) error {
	if err := autostart.Enable(); err != nil {
		return err
	}
	logger.Info("Autostart enabled", "command", autostart.Command())
	return nil
}

type AutostartDisable struct{}

func (a *AutostartDisable) Run(logger *slog.Logger) error {
	if err := autostart.Disable(); err != nil {
		return err
	}
	logger.Info("Autostart disabled")
	return nil
}

type AutostartStatus struct{}

func (a *AutostartStatus) Run() error {
	if autostart.IsEnabled() {
		fmt.Printf("enabled: %s\n", autostart.Command())
	} else {
		fmt.Println("disabled")
	}
	return nil
}
