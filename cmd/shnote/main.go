// shnote - run commands with a stated WHAT and WHY
// Source: https://github.com/wangnov/shnote

package main

import (
	"os"

	"github.com/wangnov/shnote/internal/cli"
	"github.com/wangnov/shnote/internal/cli/shared"
)

func main() {
	os.Exit(shared.ExitCode(cli.Execute()))
}
