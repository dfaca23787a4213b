package main

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/rpcpool/datakit/dks"
)

func newCmdDks() *cli.Command {
	return &cli.Command{
		Name:        "dks",
		Usage:       "Exercise the size-classed string buffer (DKS).",
		Description: "Grows, formats, and hashes a DKS buffer across several storage-class promotions, reporting storage class and allocation size at each step.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "seed", Value: "--", Usage: "initial buffer contents"},
		},
		Action: func(c *cli.Context) error {
			s := dks.New([]byte(c.String("seed")))
			klog.Infof("new(%q): len=%d avail=%d class=%s alloc=%s",
				c.String("seed"), s.Len(), s.Avail(), s.Class(),
				humanize.Bytes(s.AllocSize()))

			s.CatFmt("Hello %s World %I,%I--", "Hi!", int64(math.MinInt64), int64(math.MaxInt64))
			fmt.Println(string(s.Bytes()))
			klog.Infof("after cat_fmt: len=%d class=%s alloc=%s", s.Len(), s.Class(), humanize.Bytes(s.AllocSize()))

			for _, n := range []uint64{32, 1024, 1 << 20} {
				s.ExpandBy(n)
				klog.Infof("expand_by(%s): class=%s avail=%s alloc=%s",
					humanize.Bytes(n), s.Class(), humanize.Bytes(s.Avail()), humanize.Bytes(s.AllocSize()))
			}

			hi, lo := s.XXH3_128(0)
			fmt.Printf("xxh3_128 = %016x%016x\n", hi, lo)
			return nil
		},
	}
}
