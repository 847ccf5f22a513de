package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"udpsyslog/internal/global"
	"udpsyslog/internal/logctx"
	"udpsyslog/pkg/client"
	"udpsyslog/pkg/protocol"
)

// One-shot or stdin-streamed message submission through the client library
func SendMode(ctx context.Context, cliOpts *global.CommandSet, commandname string, args []string) {
	var configPath string
	var host string
	var port int
	var tag string
	var facilityName string
	var severityName string
	var message string

	commandFlags := flag.NewFlagSet(commandname, flag.ExitOnError)
	SetGlobalArguments(commandFlags)
	SetCommon(commandFlags, &configPath)
	commandFlags.StringVar(&host, "H", "", "Destination host (overrides config and environment)")
	commandFlags.StringVar(&host, "host", "", "Destination host (overrides config and environment)")
	commandFlags.IntVar(&port, "p", 0, "Destination port (overrides config and environment)")
	commandFlags.IntVar(&port, "port", 0, "Destination port (overrides config and environment)")
	commandFlags.StringVar(&tag, "t", "", "Tag identifying the emitting program")
	commandFlags.StringVar(&tag, "tag", "", "Tag identifying the emitting program")
	commandFlags.StringVar(&facilityName, "f", "", "Facility name (omit to send with severity-only priority)")
	commandFlags.StringVar(&facilityName, "facility", "", "Facility name (omit to send with severity-only priority)")
	commandFlags.StringVar(&severityName, "s", "info", "Severity name")
	commandFlags.StringVar(&severityName, "severity", "info", "Severity name")
	commandFlags.StringVar(&message, "m", "", "Message text (omit to stream lines from stdin)")
	commandFlags.StringVar(&message, "message", "", "Message text (omit to stream lines from stdin)")

	commandFlags.Usage = func() {
		PrintHelpMenu(commandFlags, commandname, cliOpts)
	}
	commandFlags.Parse(args[0:])

	// Subcommand flags may have raised the verbosity
	logctx.SetLogLevel(ctx, global.Verbosity)
	ctx = logctx.AppendCtxTag(ctx, global.NSCLI)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags override the config file
	if host == "" {
		host = cfg.Network.Address
	}
	if port == 0 {
		port = cfg.Network.Port
	}
	if tag == "" {
		tag = cfg.Tag
	}
	if tag == "" {
		tag = "udpsyslog"
	}

	severity, err := protocol.SeverityToCode(severityName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var hasFacility bool
	var facility int
	if facilityName != "" {
		facility, err = protocol.FacilityToCode(facilityName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		hasFacility = true
	}

	sender, err := client.Start(ctx, client.Options{
		Host:         host,
		Port:         port,
		MinQueueSize: cfg.Queue.MinSize,
		MaxQueueSize: cfg.Queue.MaxSize,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting sender: %v\n", err)
		os.Exit(1)
	}

	submit := func(text string) {
		if hasFacility {
			sender.SendFacility(facility, tag, severity, text)
		} else {
			sender.Send(tag, severity, text)
		}
	}

	if message != "" {
		submit(message)
	} else {
		// Stream mode, one datagram per stdin line
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			submit(scanner.Text())
		}
		if scanErr := scanner.Err(); scanErr != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", scanErr)
		}
	}

	// Wait out the backlog, then stop drains whatever remains before
	// releasing the socket
	if !sender.Drain(global.StopAckTimeout) {
		fmt.Fprintf(os.Stderr, "Warning: queued messages did not flush in time\n")
	}
	err = sender.Stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error stopping sender: %v\n", err)
		os.Exit(1)
	}
}
