package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/walterBrayan/BackTalentHub/pkg/auth"
)

// Seeds a demo account plus the standard-skills catalog the suggestion
// endpoint searches against. Safe to re-run: everything upserts.
func main() {
	fmt.Println("seeding demo user and skill catalog...")

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")
	demoEmail := os.Getenv("DEMO_EMAIL")
	demoPassword := os.Getenv("DEMO_PASSWORD")

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()

	if demoEmail != "" && demoPassword != "" {
		hash, err := auth.HashPassword(demoPassword)
		if err != nil {
			log.Fatalf("cannot hash password: %v", err)
		}
		query := `
			INSERT INTO users (id, name, email, password_hash)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (email) DO UPDATE SET password_hash = $4
		`
		if _, err := pool.Exec(ctx, query, uuid.New(), "Demo User", demoEmail, hash); err != nil {
			log.Fatalf("cannot add user: %v", err)
		}
		fmt.Printf("added or updated demo user '%s'\n", demoEmail)
	}

	technical := []string{
		"Python", "JavaScript", "TypeScript", "Go", "Java", "C#", "PHP", "Ruby",
		"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Docker", "Kubernetes",
		"AWS", "Azure", "Google Cloud", "Git", "Linux", "React", "Angular", "Vue.js",
		"Node.js", "Django", "Flask", "Spring Boot", "REST APIs", "GraphQL", "Kafka",
		"Terraform", "CI/CD", "Machine Learning", "Data Analysis", "Excel",
	}
	soft := []string{
		"Communication", "Teamwork", "Leadership", "Problem Solving",
		"Critical Thinking", "Time Management", "Adaptability", "Creativity",
		"Empathy", "Negotiation", "Public Speaking", "Conflict Resolution",
		"Decision Making", "Attention to Detail", "Mentoring",
	}

	query := `
		INSERT INTO standard_skills (normalized_name, display_name, skill_type)
		VALUES ($1, $2, $3)
		ON CONFLICT (normalized_name, skill_type) DO UPDATE SET display_name = $2
	`
	count := 0
	for _, name := range technical {
		if _, err := pool.Exec(ctx, query, strings.ToLower(name), name, 1); err != nil {
			log.Fatalf("cannot seed skill %q: %v", name, err)
		}
		count++
	}
	for _, name := range soft {
		if _, err := pool.Exec(ctx, query, strings.ToLower(name), name, 2); err != nil {
			log.Fatalf("cannot seed skill %q: %v", name, err)
		}
		count++
	}

	fmt.Printf("seeded %d standard skills successfully!\n", count)
}
