package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

var (
	gitCommit string
	sessionID string
)

func init() {
	sessionID = uuid.New().String() + ":" + time.Now().Format("20060102T150405")
}

func newCmdVersion() *cli.Command {
	return &cli.Command{
		Name:        "version",
		Usage:       "Print version information of this binary.",
		Description: "Print version information of this binary.",
		Action: func(c *cli.Context) error {
			printVersion()
			return nil
		},
	}
}

func printVersion() {
	fmt.Println("DATAKIT BENCH CLI")
	fmt.Printf("Commit: %s\n", gitCommit)
	fmt.Printf("Session: %s\n", sessionID)
	if info, ok := debug.ReadBuildInfo(); ok {
		fmt.Println("More info:")
		for _, setting := range info.Settings {
			if isAnyOf(setting.Key, "-compiler", "GOARCH", "GOOS", "GOAMD64", "vcs.revision", "vcs.time") {
				fmt.Printf("  %s: %s\n", setting.Key, setting.Value)
			}
		}
	}
	fmt.Println("Go version:", runtime.Version())
	fmt.Println("Num CPU:", runtime.NumCPU())
}

func isAnyOf(s string, anyOf ...string) bool {
	return slices.Contains(anyOf, s)
}
