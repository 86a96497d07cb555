package main

import (
	"fmt"
	"os"

	"github.com/partbench/partbench/internal/cli"
	"github.com/partbench/partbench/pkg/buildinfo"
)

func main() {
	cli.SetVersion(buildinfo.Version, buildinfo.Commit, buildinfo.Date)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
