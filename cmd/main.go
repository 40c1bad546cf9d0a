// keyshift - Caps Lock layer keyboard remapper
package main

import (
	"os"

	"keyshift/internal/cli"
	"keyshift/internal/log"
)

func main() {
	var c cli.CLI
	parser, err := cli.NewParser(&c, cli.FindUserConfig(os.Args[1:]))
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to build command line: " + err.Error() + "\n")
		os.Exit(2)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	logger, closeFiles, err := log.SetupLogger(c.Log.Level, c.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, f := range closeFiles {
			_ = f.Close()
		}
	}()

	ctx.Bind(logger)
	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
