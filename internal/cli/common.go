package cli

import (
	"flag"
	"udpsyslog/internal/global"
)

// Flags shared by every subcommand

func SetGlobalArguments(fs *flag.FlagSet) {
	fs.IntVar(&global.Verbosity, "v", 1, "Progress message detail, higher is more verbose <0...5>")
	fs.IntVar(&global.Verbosity, "verbosity", 1, "Progress message detail, higher is more verbose <0...5>")
}

func SetCommon(fs *flag.FlagSet, configPath *string) {
	fs.StringVar(configPath, "c", global.DefaultConfigPath, "Path to the configuration file")
	fs.StringVar(configPath, "config", global.DefaultConfigPath, "Path to the configuration file")
}
