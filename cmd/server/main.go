package main

import (
	"context"
	"log"

	"github.com/akorchak/caseflow/internal/server"
	"github.com/akorchak/caseflow/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
