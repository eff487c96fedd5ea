package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	ocypus "github.com/fatkhur1960/ocypus-digital"
	"github.com/fatkhur1960/ocypus-digital/internal/adapters/sensors"
	"github.com/fatkhur1960/ocypus-digital/internal/ports"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	var err error

	switch cmd {
	case "run":
		err = runCommand(os.Args[2:])
	case "validate":
		err = validateCommand(os.Args[2:])
	case "probe":
		err = probeCommand(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		printUsage()
		err = fmt.Errorf("unknown command %q", cmd)
	}

	if err != nil {
		log.Fatalf("ocypus-digital %s: %v", cmd, err)
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cfgPath := fs.String("config", "./config.yaml", "Path to configuration file")
	logLevel := fs.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logger := logrus.New()
	logger.SetLevel(level)

	rt, err := ocypus.Conf(*cfgPath, ocypus.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("start runtime: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return rt.Run(ctx)
}

func validateCommand(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	cfgPath := fs.String("config", "./config.yaml", "Path to configuration file to validate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := ocypus.LoadConfig(*cfgPath); err != nil {
		return err
	}
	fmt.Printf("config %s looks good\n", *cfgPath)
	return nil
}

func probeCommand(args []string) error {
	fs := flag.NewFlagSet("probe", flag.ExitOnError)
	timeout := fs.Duration("timeout", 5*time.Second, "Per-command timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	candidates := append(
		[]ports.Sensor{sensors.NewCPUSensor(*timeout)},
		sensors.GPUBackends(*timeout)...,
	)

	for _, s := range candidates {
		if !s.Probe() {
			fmt.Printf("%-16s not available\n", s.Name())
			continue
		}
		temp, err := s.Read(ctx)
		if err != nil {
			fmt.Printf("%-16s available, read failed: %v\n", s.Name(), err)
			continue
		}
		fmt.Printf("%-16s %.1f°C\n", s.Name(), temp)
	}
	return nil
}

func printUsage() {
	fmt.Printf(`ocypus-digital

Usage:
  ocypus-digital <command> [flags]

Commands:
  run        Mirror temperature readings onto the display until interrupted
  validate   Load and validate a config file without starting the monitor
  probe      Report availability of every sensor backend and try a reading

Examples:
  ocypus-digital run -config ./config.yaml -log-level debug
  ocypus-digital validate -config ./config.yaml
  ocypus-digital probe -timeout 3s
`)
}
