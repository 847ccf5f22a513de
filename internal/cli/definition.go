package cli

import "udpsyslog/internal/global"

func DefineOptions() (cmdOpts *global.CommandSet) {
	cmdOpts = &global.CommandSet{
		CommandName:     RootCLICommand,
		Description:     "UDP Syslog Client (udpsyslog)",
		FullDescription: "  Formats and transmits log messages to a remote syslog collector over UDP",
		ChildCommands: map[string]*global.CommandSet{
			"send": {
				CommandName:     "send",
				Description:     "Send messages",
				FullDescription: "Frames messages with legacy BSD syslog priority and transmits them to the configured destination",
			},
			"configure": {
				CommandName:     "configure",
				Description:     "Write client configuration",
				FullDescription: "Writes the configuration file with destination and queue settings",
			},
			"version": {
				CommandName:     "version",
				Description:     "Show version information",
				FullDescription: "Displays program version and build details",
			},
		},
	}
	return
}
