// Command main runs the database seeder for LeaveDesk.
package main

import (
	"flag"
	"log"

	"leavedesk/internal/config"
	"leavedesk/internal/database"
	"leavedesk/internal/seed"
)

func main() {
	// Parse command line flags
	extraEmployees := flag.Int("employees", 10, "Number of extra random employees to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	withRequests := flag.Bool("requests", true, "Create sample vacation requests")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: baseline org + %d extra employees, clean=%v\n", *extraEmployees, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	_, err = database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run seeder
	s := seed.NewSeeder(database.DB)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
	}

	org, err := s.SeedOrg()
	if err != nil {
		log.Fatalf("❌ Organization seeding failed: %v", err)
	}

	extras, err := s.SeedExtraEmployees(org, *extraEmployees)
	if err != nil {
		log.Fatalf("❌ Employee seeding failed: %v", err)
	}

	if *withRequests {
		if err := s.SeedRequests(org, extras); err != nil {
			log.Fatalf("❌ Request seeding failed: %v", err)
		}
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Printf("📧 All test users have the password: %s", seed.DefaultPassword)
}
