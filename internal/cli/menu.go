package cli

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"udpsyslog/internal/global"
)

const RootCLICommand string = "root"

const helpMenuTrailer = `
Report bugs via the project issue tracker.
`

// Standardized help menu for the root command and its subcommands
func PrintHelpMenu(fs *flag.FlagSet, command string, rootCmd *global.CommandSet) {
	current := rootCmd
	usageParts := []string{os.Args[0]}

	if command != "" && command != RootCLICommand {
		sub, ok := rootCmd.ChildCommands[command]
		if !ok {
			fmt.Printf("Unknown command: %s\n", command)
			return
		}
		current = sub
		usageParts = append(usageParts, current.CommandName)
	}

	if len(current.ChildCommands) > 0 {
		usageParts = append(usageParts, "[subcommand]")
	}
	if current.UsageOption != "" {
		usageParts = append(usageParts, current.UsageOption)
	}
	fmt.Printf("Usage: %s\n\n", strings.Join(usageParts, " "))

	if current == rootCmd {
		fmt.Println(current.Description)
		fmt.Println(current.FullDescription)
		fmt.Println()
	} else if current.FullDescription != "" {
		fmt.Println("  Description:")
		fmt.Printf("    %s\n\n", current.FullDescription)
	}

	printSubcommands(current)
	printFlagOptions(fs)

	if current == rootCmd {
		fmt.Print(helpMenuTrailer)
	}
}

func printSubcommands(cmd *global.CommandSet) {
	if len(cmd.ChildCommands) == 0 {
		return
	}

	names := make([]string, 0, len(cmd.ChildCommands))
	maxLen := 0
	for name := range cmd.ChildCommands {
		names = append(names, name)
		if len(name) > maxLen {
			maxLen = len(name)
		}
	}
	sort.Strings(names)

	fmt.Println("  Subcommands:")
	for _, name := range names {
		padding := strings.Repeat(" ", maxLen-len(name)+2)
		fmt.Printf("    %s%s - %s\n", name, padding, cmd.ChildCommands[name].Description)
	}
	fmt.Println()
}

// Merges short/long aliases sharing usage text onto one aligned line
func printFlagOptions(fs *flag.FlagSet) {
	type option struct {
		short      string
		long       string
		usage      string
		defaultVal string
	}

	byUsage := make(map[string]*option)
	options := []*option{}

	fs.VisitAll(func(arg *flag.Flag) {
		opt, ok := byUsage[arg.Usage]
		if !ok {
			opt = &option{usage: arg.Usage, defaultVal: arg.DefValue}
			byUsage[arg.Usage] = opt
			options = append(options, opt)
		}
		if len(arg.Name) == 1 {
			opt.short = "-" + arg.Name
		} else {
			opt.long = "--" + arg.Name
		}
	})

	// Left column text, long-only flags aligned past the short slot
	left := func(opt *option) (text string) {
		switch {
		case opt.short != "" && opt.long != "":
			text = opt.short + ", " + opt.long
		case opt.short != "":
			text = opt.short
		default:
			text = "    " + opt.long
		}
		return
	}

	sort.Slice(options, func(a, b int) bool {
		nameA := strings.TrimLeft(left(options[a]), "- ")
		nameB := strings.TrimLeft(left(options[b]), "- ")
		return strings.ToLower(nameA) < strings.ToLower(nameB)
	})

	maxLen := 0
	for _, opt := range options {
		if len(left(opt)) > maxLen {
			maxLen = len(left(opt))
		}
	}

	fmt.Println("  Options:")
	for _, opt := range options {
		text := left(opt)
		padding := strings.Repeat(" ", maxLen-len(text)+2)

		// Skip printing any "empty" defaults
		desc := opt.usage
		if opt.defaultVal != "" && opt.defaultVal != "false" && opt.defaultVal != "0" {
			desc += fmt.Sprintf(" [default: %s]", opt.defaultVal)
		}

		fmt.Printf("    %s%s%s\n", text, padding, desc)
	}
}
