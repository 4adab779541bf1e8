// SPDX-License-Identifier: MIT

// Command confseq evaluates time-uniform boundaries and confidence sequences
// from the command line.
//
//	confseq bound --family normal --v 250 --alpha 0.05 --v-opt 100
//	confseq grid  --config grid.yaml --yaml
//	confseq cs    --method empbern --file data.txt --running-intersection
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
