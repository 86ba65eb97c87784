package crossforge

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gookit/color"
	"golang.org/x/term"
)

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// printHelp prints the commands table
func printHelp() {
	colSuccess.Println("Usage: crossforge <command> [arguments]")
	colSuccess.Println("Running without a command starts a full release build")
	fmt.Println()
	color.Info.Println("Available Commands:")

	type cmdInfo struct {
		Cmd  string
		Args string
		Desc string
	}
	cmds := []cmdInfo{
		{"build, b", "", "Build release binaries for all configured targets"},
		{"check, c", "", "Verify the project's build configuration"},
		{"archive, a", "[format]", "Bundle the release directory into a tarball (gz, xz, zst)"},
		{"upload, u", "[--prefix <p>]", "Upload release artifacts to the configured bucket"},
		{"version, --version", "", "Version information"},
		{"help, -h", "", "Show this help"},
	}

	maxLen := 0
	for _, c := range cmds {
		length := len(c.Cmd) + len(c.Args)
		if c.Args != "" {
			length++
		}
		if length > maxLen {
			maxLen = length
		}
	}
	columnWidth := maxLen + 4

	for _, c := range cmds {
		var usageString string
		if c.Args != "" {
			usageString = fmt.Sprintf("  %s %s", c.Cmd, c.Args)
		} else {
			usageString = fmt.Sprintf("  %s", c.Cmd)
		}

		fmt.Print("  ")
		color.Bold.Print(c.Cmd)
		if c.Args != "" {
			fmt.Print(" ")
			color.Cyan.Print(c.Args)
		}

		pad := columnWidth - len(usageString)
		if pad < 1 {
			pad = 1
		}
		fmt.Print(strings.Repeat(" ", pad))
		color.Info.Println(c.Desc)
	}
	fmt.Println()
}

// Main is the CLI entrypoint for crossforge.
func Main() {
	// 1. CONTEXT AND SIGNAL SETUP
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigs:
			colArrow.Print("\n-> ")
			color.Danger.Printf("Received %v. Cancelling build gracefully\n", sig)
			cancel()
			// Give the child a moment to die and flush its buffers
			time.Sleep(100 * time.Millisecond)
			select {
			case <-sigs:
				colArrow.Print("\n-> ")
				color.Danger.Printf("Second interrupt received. Forcing immediate exit.\n")
				os.Exit(130)
			case <-time.After(2 * time.Second):
				colArrow.Print("\n-> ")
				color.Danger.Printf("Graceful shutdown timeout. Exiting.\n")
				os.Exit(130)
			}
		case <-ctx.Done():
		}
	}()

	if !isTerminal() {
		color.Disable()
	}

	cfg, err := loadConfig(ConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to read %s: %v\n", ConfigFile, err)
	}
	initConfig(cfg)

	UserExec = NewExecutor(ctx)
	host := DetectHost()

	command := "build"
	var args []string
	if len(os.Args) > 1 {
		command = os.Args[1]
		args = os.Args[2:]
	}

	switch command {
	case "build", "b":
		if err := runBuild(cfg, UserExec, host); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "check", "c":
		os.Exit(runCheck(UserExec))

	case "archive", "a":
		format := cfg.ArchiveFormat
		if len(args) > 0 {
			format = args[0]
		}
		if BinName == "" {
			m, err := readCargoManifest(".")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			BinName = m.Package.Name
		}
		path, err := archiveRelease(OutputDir, BinName, format)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printSuccess("Created %s", path)

	case "upload", "u":
		if BinName == "" {
			m, err := readCargoManifest(".")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			BinName = m.Package.Name
		}
		if err := handleUploadCommand(args, cfg, UserExec); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "version", "--version", "-v":
		fmt.Printf("crossforge %s (%s) built %s\n", version, arch, buildDate)

	case "help", "-h", "--help":
		printHelp()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printHelp()
		os.Exit(1)
	}
}
