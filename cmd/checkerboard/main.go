package main

import (
	"fmt"
	"log"
	"os"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Configure logging to stderr (stdout is for MCP protocol and command output)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("CHECKERBOARD_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("checkerboard v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if err := newRootCmd(debug).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
