package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/claimforge/claimforge/claimforge/forgecli"
)

func main() {
	app := forgecli.GetApp()
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
