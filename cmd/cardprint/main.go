package main

import (
	"github.com/kpauljoseph/cardprint/pkg/logger"
)

func main() {
	log := logger.New(logger.WithPrefix("[cardprint] "))
	defer log.Sync()

	if err := newRootCmd(log).Execute(); err != nil {
		log.Fatal("%v", err)
	}
}
