package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/linkgridgo/internal/app"
	"github.com/vk/linkgridgo/internal/cli"
	"github.com/vk/linkgridgo/internal/config"
	"github.com/vk/linkgridgo/internal/hcl"
	"github.com/vk/linkgridgo/internal/yamlcfg"
)

// main is the entrypoint for the linkgridgo application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW, logW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors (an unreadable or malformed
	// description); recover it into a clean error for the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	linkgridApp := app.NewApp(outW, logW, appConfig, chooseLoader(appConfig.ProjectPath))
	return linkgridApp.Run(context.Background())
}

// chooseLoader picks the description loader by file extension. Directories
// default to HCL.
func chooseLoader(path string) config.Loader {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return yamlcfg.NewLoader()
	}
	return hcl.NewLoader()
}
