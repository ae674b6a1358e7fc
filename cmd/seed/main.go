package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/craftnet/backend/config"
	"github.com/craftnet/backend/internal/database"
	"github.com/craftnet/backend/internal/models"
)

// Seeds a handful of demo accounts with profiles, companies, posts and
// follower edges for local development.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demopassword123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	seedUsers := []struct {
		username string
		email    string
		name     string
		job      string
	}{
		{username: "mariab", email: "maria@example.com", name: "Maria Beck", job: "Carpenter"},
		{username: "stefank", email: "stefan@example.com", name: "Stefan Kurz", job: "Electrician"},
		{username: "anneliese", email: "anneliese@example.com", name: "Anneliese Vogt", job: "Painter"},
	}

	users := make([]models.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		var existing models.User
		err := db.Where("username = ?", su.username).First(&existing).Error
		if err == nil {
			log.Printf("User %s already exists, skipping", su.username)
			users = append(users, existing)
			continue
		}

		user := models.User{
			Username:     su.username,
			Email:        su.email,
			PasswordHash: string(hashed),
		}
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			profile := models.Profile{
				UserID: user.ID,
				Name:   su.name,
				Job:    su.job,
			}
			return tx.Create(&profile).Error
		})
		if err != nil {
			log.Fatalf("Failed to seed user %s: %v", su.username, err)
		}
		log.Printf("Created user %s", su.username)
		users = append(users, user)
	}

	if len(users) < 2 {
		return
	}

	company := models.Company{
		OwnerID:  users[0].ID,
		Name:     "Beck Woodworks",
		Location: "Hamburg",
	}
	if err := db.Where("name = ? AND location = ?", company.Name, company.Location).
		FirstOrCreate(&company).Error; err != nil {
		log.Fatalf("Failed to seed company: %v", err)
	}

	post := models.Post{
		OwnerID: users[0].ID,
		Title:   "Restoring an oak workbench",
		Content: "Stripped, sanded and re-oiled a fifty year old bench this weekend.",
	}
	if err := db.Where("owner_id = ? AND title = ?", post.OwnerID, post.Title).
		FirstOrCreate(&post).Error; err != nil {
		log.Fatalf("Failed to seed post: %v", err)
	}

	edge := models.Follower{OwnerID: users[1].ID, FollowedID: users[0].ID}
	if err := db.Where("owner_id = ? AND followed_id = ?", edge.OwnerID, edge.FollowedID).
		FirstOrCreate(&edge).Error; err != nil {
		log.Fatalf("Failed to seed follower edge: %v", err)
	}

	log.Println("Seed data in place")
}
