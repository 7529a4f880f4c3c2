package main

import (
	"context"
	"os"

	"github.com/agbru/ultranum/internal/app"
	apperrors "github.com/agbru/ultranum/internal/errors"
)

func main() {
	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.ExitErrorConfig)
	}
	os.Exit(application.Run(context.Background(), os.Stdout))
}
