package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"keyshift/internal/engine"
	"keyshift/internal/input"
	"keyshift/internal/osutils"
	"keyshift/internal/tray"
)

// RunCmd installs the hook.
type RunCmd struct {
	NoTray bool `help:"Run without a tray icon" env:"KEYSHIFT_NO_TRAY"`
}

// Run is called by Kong when the run command is executed.
func (r *RunCmd) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !osutils.IsElevated() {
		logger.Warn("Not running elevated; keys typed into elevated windows will not be remapped")
	}

	cfg := engine.DefaultConfig()
	emitter := engine.NewEmitter(input.NewSender(), logger)
	d := engine.NewDispatcher(cfg, engine.NewGuard(), input.AsyncKeyState{}, emitter, logger)
	hook := input.NewHook(d, logger)

	logger.Info("Starting keyshift", "version", Version, "toggle", cfg.Toggle.String(),
		"modifier", cfg.Modifier.String(), "triggers", cfg.Table.Len())

	if r.NoTray {
		return hook.Run(ctx)
	}

	t := tray.New("keyshift - Caps Lock remapper")
	t.AddCheckItem("Remapping enabled", d.Enabled(), d.SetEnabled)
	t.AddSeparator()
	t.AddMenuItem("Quit", func() {
		logger.Info("Quit requested from tray")
		t.Stop()
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- hook.Run(ctx)
		t.Stop()
	}()
	go func() {
		<-ctx.Done()
		t.Stop()
	}()

	t.Run()
	stop()
	return <-errCh
}
