// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"
	"time"

	"github.com/amccaugh/fridgeos/pkg/log"
	smsvc "github.com/amccaugh/fridgeos/service/statemachine"
)

func main() {
	addr := flag.String("addr", ":8000", "HTTP listen address")
	configPath := flag.String("config", "/etc/fridgeos/statemachine.toml", "path to the state machine TOML document")
	halBaseURL := flag.String("hal-url", "http://localhost:8001", "base URL of the HAL service")
	pollingInterval := flag.Duration("polling-interval", 5*time.Second, "default polling interval if not set in config")
	flag.Parse()

	logger := log.NewDefaultLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := smsvc.New(
		smsvc.WithAddr(*addr),
		smsvc.WithConfigPath(*configPath),
		smsvc.WithHALBaseURL(*halBaseURL),
		smsvc.WithDefaultPollingInterval(*pollingInterval),
		smsvc.WithLogger(logger),
	)

	if err := svc.Run(ctx); err != nil {
		logger.Error("fridgeos-statemachine exited", "error", err)
		panic(err)
	}
}
