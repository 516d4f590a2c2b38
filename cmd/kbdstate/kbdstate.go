package main

import (
	"os"

	"github.com/clambin/kbdstate/internal/cmd"
	log "github.com/sirupsen/logrus"
)

var version = "change-me"

func main() {
	if err := cmd.Main(os.Args[1:], version); err != nil {
		log.WithError(err).Fatal("kbdstate failed")
	}
}
