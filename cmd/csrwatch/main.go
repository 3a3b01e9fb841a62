package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"csrwatch/internal/calendar"
)

func main() {
	_ = godotenv.Load()

	cmd := newRootCommand()
	err := cmd.Execute()
	if err != nil && !errors.Is(err, errMissingData) && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps a run outcome to the process exit code cron wrappers key on:
// 0 all data present, 1 missing data was found and reported, 2 the requested
// date does not exist, 3 configuration or catalog failure.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errMissingData):
		return 1
	case errors.Is(err, calendar.ErrInvalidDate):
		return 2
	default:
		return 3
	}
}
