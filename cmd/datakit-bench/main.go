// Command datakit-bench is the demonstrator CLI for the datakit core
// engine: a thin urfave/cli/v2 shell exercising DKS, the reliable
// numeric scanner, the dod/xof codecs via bbits, and the multidict hash
// index end to end, one command per concern, with a signal-aware
// context, sorted flags and commands, and klog.Fatal on a top-level
// error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, syscall.SIGTERM, syscall.SIGINT)
		select {
		case <-interrupt:
			fmt.Println()
			klog.Info("received interrupt signal")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(interrupt)
	}()

	app := &cli.App{
		Name:        "datakit-bench",
		Description: "Demonstrator CLI exercising the datakit core data-encoding engine (DKS, the reliable numeric scanner, the dod/xof time-series codecs, and the multidict hash index).",
		Flags:       []cli.Flag{},
		Commands: []*cli.Command{
			newCmdDks(),
			newCmdScan(),
			newCmdSeries(),
			newCmdDict(),
			newCmdVersion(),
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	if err := app.RunContext(ctx, os.Args); err != nil {
		klog.Fatal(err)
	}
}
