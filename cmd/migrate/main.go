package main

import (
	"database/sql"
	"flag"

	"laundry/cmd"
	"laundry/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
)

// migrate applies the schema migrations without starting the service.
func main() {
	envFile := flag.String("env", ".env", "optional dotenv file")
	flag.Parse()

	configs, err := cmd.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	db, err := sql.Open("postgres", configs.DSN())
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	defer db.Close()

	if err = db.Ping(); err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("Error applying migrations: %v", err)
	}
	log.Info("Migrations applied")
}
