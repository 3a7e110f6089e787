package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tepidprint/tepid/internal/bootstrap"
	"github.com/tepidprint/tepid/internal/config"
	"github.com/tepidprint/tepid/internal/version"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	flag.Usage = printUsage
	flag.Parse()

	if *showVersion {
		version.PrintVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	switch args[0] {
	case "server":
		if err := bootstrap.Run(ctx, cfg); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	case "resolve":
		runResolve(ctx, cfg, args[1:])
	case "local-user":
		runLocalUser(ctx, cfg, args[1:])
	default:
		fmt.Printf("Unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf("Usage: %s [OPTIONS] COMMAND\n\n", os.Args[0])
	fmt.Println("TEPID identity and session service")
	fmt.Println("\nCommands:")
	fmt.Println("  server                          Start the HTTP server")
	fmt.Println("  resolve <identifier>            Resolve a short id, long id or student id and print it as JSON")
	fmt.Println("  local-user add <id> <role> [password]")
	fmt.Println("                                  Create a local account (password generated when omitted)")
	fmt.Println("  local-user list                 List local accounts")
	fmt.Println("\nOptions:")
	fmt.Println("  -v, --version    Show version information")
	fmt.Println("  -h, --help       Show this help message")
}

func runResolve(ctx context.Context, cfg *config.Config, args []string) {
	if len(args) != 1 {
		printUsage()
		os.Exit(1)
	}

	user, err := bootstrap.Resolve(ctx, cfg, args[0])
	if err != nil {
		log.Fatalf("Failed to resolve %s: %v", args[0], err)
	}
	printJSON(user)
}

func runLocalUser(ctx context.Context, cfg *config.Config, args []string) {
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "add":
		if len(args) < 3 || len(args) > 4 {
			printUsage()
			os.Exit(1)
		}
		password := ""
		if len(args) == 4 {
			password = args[3]
		}
		generated, err := bootstrap.CreateLocalUser(ctx, cfg, args[1], args[2], password)
		if err != nil {
			log.Fatalf("Failed to create local user: %v", err)
		}
		if password == "" {
			fmt.Printf("Created %s (%s) with password: %s\n", args[1], args[2], generated)
		} else {
			fmt.Printf("Created %s (%s)\n", args[1], args[2])
		}
	case "list":
		users, err := bootstrap.ListLocalUsers(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to list local users: %v", err)
		}
		printJSON(users)
	default:
		printUsage()
		os.Exit(1)
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
}
