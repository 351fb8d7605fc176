package main

import (
	"context"
	"log"
	"os"

	"github.com/restomate/poscli/internal/buildinfo"
	"github.com/restomate/poscli/internal/cli"
	"github.com/restomate/poscli/internal/config"
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
