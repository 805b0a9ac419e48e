package main

import (
	"context"
	"errors"
	"os"

	"github.com/secmon-lab/depfix/pkg/cli"
)

func main() {
	if err := cli.New().Run(context.Background(), os.Args); err != nil {
		var status *cli.ExitStatus
		if errors.As(err, &status) {
			os.Exit(status.Status())
		}
		os.Exit(1)
	}
}
