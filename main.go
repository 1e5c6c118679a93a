package main

import (
	"fmt"
	"log"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/afero"

	"github.com/dmoreno/shelfkeeper/internal/store"
	"github.com/dmoreno/shelfkeeper/internal/webserver"
)

var version string = "unknown"

func main() {
	var cfg Config
	var appFs = afero.NewOsFs()

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(fmt.Sprintf("Error parsing configuration from environment variables: %s", err))
	}

	app := webserver.New(webserver.Config{Version: version}, store.New(appFs, cfg.LibraryPath))

	fmt.Printf("Shelfkeeper version %s started listening on port %s\n\n", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
