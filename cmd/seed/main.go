package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"rentify/database"
	"rentify/internal/utils"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numLandlords := seedCmd.Int("landlords", utils.DefaultNumLandlords, "Number of test landlords to create")
	numTenants := seedCmd.Int("tenants", utils.DefaultNumTenants, "Number of test tenants to create")
	numProperties := seedCmd.Int("properties", utils.DefaultNumProperties, "Number of test properties to create")
	skipProperties := seedCmd.Bool("skip-properties", false, "Seed only cities and consumers")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])

		database.ConnectDatabase()
		if err := database.MigrateDatabase(); err != nil {
			log.Fatalf("Error running migrations: %v", err)
		}

		if err := utils.SeedCities(database.DB); err != nil {
			log.Fatalf("Error seeding cities: %v", err)
		}
		if err := utils.SeedConsumers(database.DB, *numLandlords, *numTenants); err != nil {
			log.Fatalf("Error seeding consumers: %v", err)
		}
		if !*skipProperties {
			if err := utils.SeedProperties(database.DB, *numProperties); err != nil {
				log.Fatalf("Error seeding properties: %v", err)
			}
		}
		log.Println("Seeding complete")

	case "clear":
		database.ConnectDatabase()

		log.Println("Clearing test data")
		if err := utils.ClearTestData(database.DB); err != nil {
			log.Fatalf("Error clearing test data: %v", err)
		}

	case "stats":
		database.ConnectDatabase()

		counts, err := utils.TableCounts(database.DB)
		if err != nil {
			log.Fatalf("Error getting stats: %v", err)
		}
		log.Println("Database statistics:")
		for table, count := range counts {
			log.Printf("   %s: %d rows", table, count)
		}

	case "help":
		printHelp()

	default:
		fmt.Printf("Unknown subcommand: %s\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Database utility tool for Rentify")
	fmt.Println("\nUsage:")
	fmt.Println("  db-tool COMMAND [OPTIONS]")
	fmt.Println("\nCommands:")
	fmt.Println("  seed         Create test cities, consumers and properties")
	fmt.Println("               Options:")
	fmt.Println("                 --landlords=N        Number of test landlords (default: 20)")
	fmt.Println("                 --tenants=N          Number of test tenants (default: 50)")
	fmt.Println("                 --properties=N       Number of test properties (default: 100)")
	fmt.Println("                 --skip-properties    Seed only cities and consumers")
	fmt.Println("")
	fmt.Println("  clear        Delete all @example.com test data")
	fmt.Println("")
	fmt.Println("  stats        Show row counts for the main tables")
	fmt.Println("")
	fmt.Println("  help         Show this help message")
	fmt.Println("")
	fmt.Println("Examples:")
	fmt.Println("  db-tool seed --landlords=10 --tenants=30 --properties=50")
	fmt.Println("  db-tool stats")
	fmt.Println("  db-tool clear")
	fmt.Println("")
	fmt.Println("Environment variables:")
	fmt.Println("  DB_HOST      Database host (default: localhost)")
	fmt.Println("  DB_PORT      Database port (default: 5432)")
	fmt.Println("  DB_USER      Database user (default: postgres)")
	fmt.Println("  DB_PASSWORD  Database password")
	fmt.Println("  DB_NAME      Database name (default: rentify)")
	fmt.Println("  DB_SSLMODE   Database SSL mode (default: disable)")
}
