package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/gophaccount/internal/server"
	"github.com/dmitrijs2005/gophaccount/internal/server/config"
)

func main() {

	ctx := context.Background()
	if err := run(ctx, config.LoadConfig()); err != nil {
		log.Fatalf("%v", err)
	}

}

// run blocks until the app stops; it fails only when the app cannot start.
func run(ctx context.Context, cfg *config.Config) error {
	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		return err
	}

	app.Run(ctx)
	return nil
}
