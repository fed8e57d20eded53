package main

import (
	"context"
	"log"
	"os"

	"github.com/nxtlabs/nxtcli/internal/buildinfo"
	"github.com/nxtlabs/nxtcli/internal/client/cli"
	"github.com/nxtlabs/nxtcli/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
