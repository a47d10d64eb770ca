package main

import (
	"github.com/gefyra/gefyra/internal/adapters/in/cli"
)

var (
	version string
	commit  string
	date    string
)

func main() {
	if version != "" {
		cli.SetVersionInfo(version, commit, date)
	}
	cli.Execute()
}
