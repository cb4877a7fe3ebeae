// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"
	"time"

	"github.com/amccaugh/fridgeos/pkg/log"
	halsvc "github.com/amccaugh/fridgeos/service/hal"
	smsvc "github.com/amccaugh/fridgeos/service/statemachine"
	"github.com/amccaugh/fridgeos/service/supervisor"
)

func main() {
	halAddr := flag.String("hal-addr", ":8001", "HTTP listen address for the HAL service")
	hardwareConfig := flag.String("hardware-config", "/etc/fridgeos/hardware.toml", "path to the hardware TOML document")
	smAddr := flag.String("sm-addr", ":8000", "HTTP listen address for the state machine service")
	smConfig := flag.String("statemachine-config", "/etc/fridgeos/statemachine.toml", "path to the state machine TOML document")
	pollingInterval := flag.Duration("polling-interval", 5*time.Second, "default polling interval if not set in config")
	flag.Parse()

	logger := log.NewDefaultLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sup := supervisor.New(
		supervisor.WithName("fridgeos"),
		supervisor.WithLogger(logger),
		supervisor.WithHAL(
			halsvc.WithAddr(*halAddr),
			halsvc.WithHardwareConfigPath(*hardwareConfig),
			halsvc.WithLogger(logger),
		),
		supervisor.WithStateMachine(
			smsvc.WithAddr(*smAddr),
			smsvc.WithConfigPath(*smConfig),
			smsvc.WithHALBaseURL("http://localhost"+*halAddr),
			smsvc.WithDefaultPollingInterval(*pollingInterval),
			smsvc.WithLogger(logger),
		),
	)

	if err := sup.Run(ctx); err != nil {
		logger.Error("fridgeos exited", "error", err)
		panic(err)
	}
}
