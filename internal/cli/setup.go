package cli

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"udpsyslog/internal/global"

	"golang.org/x/term"
)

// Writes the client configuration file.
// Prompts interactively when attached to a terminal and no flags were
// given, otherwise uses flag values directly.
func SetupMode(cliOpts *global.CommandSet, commandname string, args []string) {
	var configPath string
	var address string
	var port int
	var tag string

	commandFlags := flag.NewFlagSet(commandname, flag.ExitOnError)
	SetGlobalArguments(commandFlags)
	SetCommon(commandFlags, &configPath)
	commandFlags.StringVar(&address, "a", "", "Destination address to write to the config")
	commandFlags.StringVar(&address, "address", "", "Destination address to write to the config")
	commandFlags.IntVar(&port, "p", 0, "Destination port to write to the config")
	commandFlags.IntVar(&port, "port", 0, "Destination port to write to the config")
	commandFlags.StringVar(&tag, "t", "", "Default tag to write to the config")
	commandFlags.StringVar(&tag, "tag", "", "Default tag to write to the config")

	commandFlags.Usage = func() {
		PrintHelpMenu(commandFlags, commandname, cliOpts)
	}
	commandFlags.Parse(args[0:])

	interactive := term.IsTerminal(int(os.Stdout.Fd()))

	// Don't overwrite existing without confirmation
	_, err := os.Stat(configPath)
	if err == nil {
		// No terminal - no overwrite
		if !interactive {
			fmt.Printf("Existing configuration file present, not overwriting\n")
			return
		}

		// File exists, prompt user for confirmation to overwrite
		fmt.Printf("Configuration file already exists at '%s'. Are you SURE you want to overwrite it? (yes/no): ", configPath)
		reader := bufio.NewReader(os.Stdin)
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)

		if strings.ToLower(input) != "yes" {
			fmt.Printf("Not overwriting configuration file\n")
			return
		}
	}

	if interactive && address == "" {
		reader := bufio.NewReader(os.Stdin)

		fmt.Print("Destination address (empty for local hostname): ")
		input, _ := reader.ReadString('\n')
		address = strings.TrimSpace(input)

		fmt.Printf("Destination port (empty for %d): ", global.DefaultSyslogPort)
		input, _ = reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input != "" {
			port, err = strconv.Atoi(input)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid port '%s': %v\n", input, err)
				os.Exit(1)
			}
		}

		fmt.Print("Default tag (empty for program name): ")
		input, _ = reader.ReadString('\n')
		tag = strings.TrimSpace(input)
	}

	cfg := global.JSONConfig{
		Network: global.NetConf{
			Address: address,
			Port:    port,
		},
		Tag: tag,
	}

	err = WriteConfig(configPath, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote configuration to '%s'\n", configPath)
}
