package main

import (
	"context"
	"os"

	"github.com/numsys-go/numsys/internal/app"
	apperrors "github.com/numsys-go/numsys/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		if app.IsConfigError(err) {
			os.Exit(apperrors.ExitErrorConfig)
		}
		os.Exit(apperrors.ExitErrorGeneric)
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}
