// Package cli defines the keyshift command line.
package cli

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"keyshift/internal/config"
)

// Version is set at build time.
var Version = "dev"

// LogFlags configure logging.
type LogFlags struct {
	Level string `help:"Log level" default:"info" enum:"trace,debug,info,warn,error" env:"KEYSHIFT_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" type:"path" env:"KEYSHIFT_LOG_FILE"`
}

// CLI is the root command.
type CLI struct {
	ConfigFile string   `name:"config" help:"Settings file (json, yaml or toml)" type:"path" env:"KEYSHIFT_CONFIG"`
	Log        LogFlags `embed:"" prefix:"log-"`

	Run       RunCmd       `cmd:"" default:"withargs" help:"Install the keyboard hook and remap keys until stopped"`
	Table     TableCmd     `cmd:"" help:"Print the built-in remap table"`
	Settings  SettingsCmd  `cmd:"" help:"Settings file helpers"`
	Autostart AutostartCmd `cmd:"" help:"Manage starting at login"`
	Version   VersionCmd   `cmd:"" help:"Show version"`
}

// NewParser builds the kong parser. Settings files are layered below flags
// and environment: userConfig first, then the working directory, then the
// per-user config directory.
func NewParser(cli *CLI, userConfig string, options ...kong.Option) (*kong.Kong, error) {
	jsonPaths, yamlPaths, tomlPaths := config.CandidatePaths(userConfig)
	opts := []kong.Option{
		kong.Name(config.AppName),
		kong.Description("Caps Lock layer keyboard remapper"),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	}
	return kong.New(cli, append(opts, options...)...)
}

// FindUserConfig extracts --config from args before kong parses them, so
// the file can be layered into the parse.
func FindUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("KEYSHIFT_CONFIG")
}
