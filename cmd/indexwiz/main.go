// Package main provides the entry point for the indexwiz CLI.
package main

import (
	"fmt"
	"os"

	"github.com/Aman-CERP/indexwiz/cmd/indexwiz/cmd"
	wizerrors "github.com/Aman-CERP/indexwiz/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		msg := wizerrors.FormatForCLI(err)
		if cmd.DebugEnabled() {
			msg = wizerrors.FormatForUser(err, true) + "\n"
		}
		_, _ = fmt.Fprint(os.Stderr, msg)
		os.Exit(1)
	}
}
