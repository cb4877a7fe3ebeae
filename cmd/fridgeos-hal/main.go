// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/amccaugh/fridgeos/pkg/log"
	halsvc "github.com/amccaugh/fridgeos/service/hal"
)

func main() {
	addr := flag.String("addr", ":8001", "HTTP listen address")
	hardwareConfig := flag.String("hardware-config", "/etc/fridgeos/hardware.toml", "path to the hardware TOML document")
	flag.Parse()

	logger := log.NewDefaultLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := halsvc.New(
		halsvc.WithAddr(*addr),
		halsvc.WithHardwareConfigPath(*hardwareConfig),
		halsvc.WithLogger(logger),
	)

	if err := svc.Run(ctx); err != nil {
		logger.Error("fridgeos-hal exited", "error", err)
		panic(err)
	}
}
