package main

import (
	"flag"
	"log"

	"github.com/The-Hackers-Corner/thc-website/config"
	"github.com/The-Hackers-Corner/thc-website/controllers"
	"github.com/The-Hackers-Corner/thc-website/database"
	"github.com/The-Hackers-Corner/thc-website/routes"
	"github.com/The-Hackers-Corner/thc-website/utils"
)

func main() {
	migrate := flag.Bool("migrate", false, "run database migrations before starting")
	seed := flag.Bool("seed", false, "insert demo categories, challenges and users")
	flag.Parse()

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.InitJWT(cfg.JWT.Secret)

	database.Connect(cfg)
	database.InitRedis(cfg)

	if *migrate {
		database.MigrateTables()
	}
	if *seed {
		if err := database.Seed(); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	controllers.Init(database.DB, database.RDB)

	r := routes.SetupRouter()

	log.Printf("Starting server on %s", cfg.Server.Addr)
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
