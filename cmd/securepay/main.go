package main

import (
	"context"
	"log"
	"os"

	"securepay/internal/buildinfo"
	"securepay/internal/cli"
	"securepay/internal/config"
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
