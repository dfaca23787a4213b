package main

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/rpcpool/datakit/bbits"
)

func newCmdSeries() *cli.Command {
	return &cli.Command{
		Name:        "series",
		Usage:       "Append a synthetic time series and read it back through bbits.",
		Description: "Appends 5000 (key, value) pairs to a DodDod and a DodXof container, confirms the round trip, and reports segment count plus Welford statistics.",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "n", Value: 5000, Usage: "number of elements to append"},
		},
		Action: func(c *cli.Context) error {
			n := c.Int("n")

			dd := bbits.NewDodDod()
			for i := 0; i < n; i++ {
				dd.Append(int64(i)*1000, int64(i)*2)
			}
			keys, vals, _, err := dd.GetOffsetCount(0, -1, false)
			if err != nil {
				return err
			}
			for i := range keys {
				if keys[i] != int64(i)*1000 || vals[i] != int64(i)*2 {
					return fmt.Errorf("doddod round-trip mismatch at %d: got (%d,%d)", i, keys[i], vals[i])
				}
			}
			klog.Infof("doddod: %d elements across %d segments (%s per segment budget)",
				dd.Elements(), dd.Segments(), humanize.Bytes(4096))

			dx := bbits.NewDodXof()
			for i := 0; i < n; i++ {
				dx.Append(int64(i)*100, float64(i)*0.123+42.0)
			}
			_, _, stats, err := dx.GetOffsetCount(0, -1, true)
			if err != nil {
				return err
			}
			expectedMean := 0.0
			for i := 0; i < n; i++ {
				expectedMean += float64(i)*0.123 + 42.0
			}
			expectedMean /= float64(n)
			klog.Infof("dodxof: %d elements across %d segments, mean=%.6f (expected %.6f, |diff|=%.2e)",
				dx.Elements(), dx.Segments(), stats.Mean, expectedMean, math.Abs(stats.Mean-expectedMean))

			tailKeys, tailVals, _, err := dd.GetOffsetCount(-3, 3, false)
			if err != nil {
				return err
			}
			fmt.Printf("last 3 doddod pairs: %v / %v\n", tailKeys, tailVals)
			return nil
		},
	}
}
