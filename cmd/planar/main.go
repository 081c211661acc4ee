package main

import (
	"context"
	"log"
	"os"

	"github.com/PlanarStandardMTG/planar-cli/internal/buildinfo"
	"github.com/PlanarStandardMTG/planar-cli/internal/cli"
	"github.com/PlanarStandardMTG/planar-cli/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
