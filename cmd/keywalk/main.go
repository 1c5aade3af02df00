package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/vinser/keywalk/internal/app"
	"github.com/vinser/keywalk/internal/flags"
)

func main() {
	if err := app.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			os.Exit(0)
		case errors.Is(err, flags.ErrUsage):
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
