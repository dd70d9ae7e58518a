// Package main provides a CLI that builds a super villain, fires a weapon,
// and waits for the villain's plan.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	platformcmd "github.com/louisbranch/supervillain/internal/platform/cmd"
	"github.com/louisbranch/supervillain/internal/platform/config"
	apperrors "github.com/louisbranch/supervillain/internal/platform/errors"

	villaincmd "github.com/louisbranch/supervillain/internal/cmd/villain"
)

func main() {
	cfg, err := villaincmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitCodef(config.ExitUsage, "Error: %s", apperrors.Localize(err, cfg.Locale))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceVillain, func(ctx context.Context) error {
		return villaincmd.Run(ctx, cfg, os.Stdout, os.Stderr)
	})
	if err != nil {
		config.Exitf("Error: %s", apperrors.Localize(err, cfg.Locale))
	}
}
