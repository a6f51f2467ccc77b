package main

import (
	"log"
	"os"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/services/logger"
)

func main() {
	conf, err := core.NewConfig()
	if err != nil {
		log.Fatal(err)
	}
	std, err := logsvc.NewConsoleLogger(os.Stderr, conf.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	logger := logsvc.NewRollbarLogger(std, conf)

	cli := commandLine{
		conf:   conf,
		std:    std,
		logger: logger,
		in:     os.Stdin,
		out:    os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		logger.Fatal("roster failed", err)
	}
}
