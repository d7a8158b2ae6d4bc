package main

import (
	"fmt"
	"os"
	"strings"
)

const version = "0.0.1-dev"

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		// No subcommand — default to extract
		return runExtract(os.Args[1:])
	}

	switch os.Args[1] {
	case "extract":
		return runExtract(os.Args[2:])
	case "--version", "-v":
		fmt.Println("tsgraph", version)
		return 0
	case "--help", "-h":
		printUsage()
		return 0
	default:
		// Check if first arg starts with - (it's a flag, not a subcommand)
		if strings.HasPrefix(os.Args[1], "-") {
			return runExtract(os.Args[1:])
		}
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		return 2
	}
}

func printUsage() {
	fmt.Println("tsgraph - TypeScript type graph extraction")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  tsgraph [flags]               Extract type graph (default)")
	fmt.Println("  tsgraph extract [flags]       Extract type graph")
	fmt.Println()
	fmt.Println("Global Flags:")
	fmt.Println("  --version, -v          Print version and exit")
	fmt.Println("  --help, -h             Print this help message")
	fmt.Println()
	fmt.Println("Extract Flags:")
	fmt.Println("  --project, -p <path>   Path to tsconfig.json (default: tsconfig.json)")
	fmt.Println("  --config <path>        Path to tsgraph.config.json")
	fmt.Println("  --out <path>           Output path for the graph JSON")
	fmt.Println("  --pretty               Indent the graph JSON")
	fmt.Println("  --strict               Treat extraction warnings as errors")
	fmt.Println("  --quiet                Suppress extraction warnings")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  tsgraph")
	fmt.Println("  tsgraph extract --project tsconfig.build.json")
	fmt.Println("  tsgraph extract --out dist/typegraph.json --pretty")
	fmt.Println("  tsgraph --config tsgraph.config.json")
	fmt.Println()
}
