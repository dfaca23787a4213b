package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/rpcpool/datakit/multidict"
	"github.com/rpcpool/datakit/multidict/flatslot"
)

func newCmdDict() *cli.Command {
	return &cli.Command{
		Name:        "dict",
		Usage:       "Drive the incrementally-rehashed multidict through a full lifecycle.",
		Description: "Drives a full dict lifecycle at a CLI-friendly scale: inserts N keys, expands to trigger rehashing, confirms finds succeed mid-rehash, deletes half, then scans and confirms every survivor is visited.",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "n", Value: 2000, Usage: "number of keys to insert"},
		},
		Action: func(c *cli.Context) error {
			n := c.Int("n")
			d := multidict.New(flatslot.New, 0)

			for i := 0; i < n; i++ {
				key := []byte(fmt.Sprintf("key-%d", i))
				val := []byte(fmt.Sprintf("val-%d", i))
				d.Add(key, val)
			}
			klog.Infof("inserted %d keys: %+v, used_bytes=%s", n, d.Stats(), humanize.Bytes(d.UsedBytes()))

			d.Expand(uint64(n) * 4)
			found := 0
			for i := 0; i < n; i++ {
				key := []byte(fmt.Sprintf("key-%d", i))
				if _, ok := d.Find(key); ok {
					found++
				}
			}
			klog.Infof("after expand (state=%s): found %d/%d while rehashing", d.State(), found, n)

			for i := 0; i < n/2; i++ {
				d.Delete([]byte(fmt.Sprintf("key-%d", i)))
			}
			klog.Infof("after deleting half: count=%d", d.Count())

			seen := make(map[string]bool)
			cursor := uint64(0)
			for {
				cursor = d.Scan(cursor, func(k, v []byte) { seen[string(k)] = true })
				if cursor == 0 {
					break
				}
			}
			missing := 0
			for i := n / 2; i < n; i++ {
				if !seen[fmt.Sprintf("key-%d", i)] {
					missing++
				}
			}
			klog.Infof("scan visited %d distinct surviving keys (%d missing of %d expected)", len(seen), missing, n-n/2)
			return nil
		},
	}
}
