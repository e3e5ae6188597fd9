// Seed populates the database with sample creators for local development.
// All generated accounts share the password "password123"; a fixed test
// account test@example.com / password123 is always created last.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/creator-hub/internal/config"
	"github.com/MKhiriev/creator-hub/internal/logger"
	"github.com/MKhiriev/creator-hub/internal/store"
	"github.com/MKhiriev/creator-hub/internal/utils"
	"github.com/MKhiriev/creator-hub/models"
)

const (
	seedUserCount = 20
	seedPassword  = "password123"
)

var skillsPool = []string{
	"JavaScript", "TypeScript", "React", "Next.js", "Node.js",
	"Python", "Django", "Flask", "Java", "Spring Boot",
	"Go", "Rust", "PHP", "Laravel", "Ruby", "Rails",
	"Vue.js", "Angular", "Svelte", "HTML", "CSS", "Tailwind CSS", "SCSS",
	"MongoDB", "PostgreSQL", "MySQL", "Redis", "GraphQL", "REST API",
	"Docker", "Kubernetes", "AWS", "Azure", "GCP", "CI/CD", "Git",
	"UI/UX Design", "Figma", "Adobe XD", "Photoshop", "Illustrator",
	"Product Management", "Agile", "Scrum", "Test-Driven Development",
	"Jest", "Cypress", "Playwright",
	"Machine Learning", "TensorFlow", "PyTorch", "Data Science", "SQL", "NoSQL",
}

var firstNames = []string{
	"Alice", "Bruno", "Carmen", "Diego", "Elena", "Felix", "Greta", "Hugo",
	"Irene", "Jonas", "Katya", "Liam", "Mara", "Noah", "Olga", "Pavel",
	"Quinn", "Rosa", "Sven", "Tara",
}

var lastNames = []string{
	"Anders", "Bishop", "Castro", "Dorn", "Egorov", "Fischer", "Gardner",
	"Holt", "Ivanova", "Jensen", "Klein", "Larsen", "Meier", "Novak",
	"Ortiz", "Petrov", "Quint", "Reyes", "Stein", "Torres",
}

var bioTemplates = []string{
	"Building delightful products one commit at a time.",
	"Full-stack tinkerer. Coffee first, code second.",
	"Designing interfaces people actually enjoy using.",
	"Shipping reliable backends and sleeping well at night.",
	"Open source contributor and occasional conference speaker.",
}

var avatarStyles = []string{
	"avataaars", "bottts", "identicon", "initials", "lorelei", "personas", "pixel-art",
}

func main() {
	_ = godotenv.Load()

	log := logger.NewLogger("creator-hub-seed")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.Storage.DB.DSN == "" {
		log.Fatal().Msg("database DSN is required")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	// start from a clean slate
	if _, err = db.ExecContext(ctx, `DELETE FROM profiles`); err != nil {
		log.Fatal().Err(err).Msg("error clearing profiles")
	}
	if _, err = db.ExecContext(ctx, `DELETE FROM users`); err != nil {
		log.Fatal().Err(err).Msg("error clearing users")
	}

	storages := store.NewStorages(db, log)

	passwordHash, err := utils.HashPassword(seedPassword, cfg.App.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("error hashing seed password")
	}

	created := 0
	for i := 0; i < seedUserCount; i++ {
		firstName := firstNames[rand.Intn(len(firstNames))]
		lastName := lastNames[rand.Intn(len(lastNames))]
		username := strings.ToLower(fmt.Sprintf("%s_%s%d", firstName, lastName, rand.Intn(100)))
		email := fmt.Sprintf("%s@example.com", username)

		user, err := storages.UserRepository.CreateUser(ctx, models.User{
			Email:        email,
			Username:     username,
			PasswordHash: passwordHash,
		})
		if err != nil {
			log.Warn().Err(err).Str("username", username).Msg("skipped duplicate user")
			continue
		}

		profile := models.Profile{
			UserID: user.ID,
			Name:   firstName + " " + lastName,
			Skills: randomSkills(3, 8),
		}
		// some creators go without a bio
		if rand.Intn(5) != 0 {
			bio := bioTemplates[rand.Intn(len(bioTemplates))]
			profile.Bio = &bio
		}
		avatar := avatarURL(username)
		profile.ProfileImageURL = &avatar

		if _, err = storages.ProfileRepository.CreateProfile(ctx, profile); err != nil {
			log.Warn().Err(err).Str("username", username).Msg("skipped profile")
			continue
		}

		created++
		log.Info().Str("username", username).Str("email", email).Msg("created user")
	}

	if err = createTestUser(ctx, storages, passwordHash, log); err != nil {
		log.Warn().Err(err).Msg("test user already exists")
	}

	log.Info().Int("users", created).Msg("seed completed")
	fmt.Println("You can login with:")
	fmt.Println("  Email: test@example.com")
	fmt.Printf("  Password: %s\n", seedPassword)
}

func createTestUser(ctx context.Context, storages *store.Storages, passwordHash string, log *logger.Logger) error {
	user, err := storages.UserRepository.CreateUser(ctx, models.User{
		Email:        "test@example.com",
		Username:     "testuser",
		PasswordHash: passwordHash,
	})
	if err != nil {
		return err
	}

	bio := "This is a test account for development purposes. Password: " + seedPassword
	avatar := avatarURL("testuser")
	_, err = storages.ProfileRepository.CreateProfile(ctx, models.Profile{
		UserID:          user.ID,
		Name:            "Test User",
		Bio:             &bio,
		ProfileImageURL: &avatar,
		Skills: []string{
			"JavaScript", "TypeScript", "React", "Next.js",
			"Node.js", "PostgreSQL", "Docker", "AWS",
		},
	})
	if err != nil {
		return err
	}

	log.Info().Str("username", user.Username).Str("email", user.Email).Msg("created test user")
	return nil
}

func randomSkills(min, max int) []string {
	count := min + rand.Intn(max-min+1)
	picked := rand.Perm(len(skillsPool))[:count]

	skills := make([]string, 0, count)
	for _, idx := range picked {
		skills = append(skills, skillsPool[idx])
	}
	return skills
}

func avatarURL(username string) string {
	style := avatarStyles[rand.Intn(len(avatarStyles))]
	return fmt.Sprintf("https://api.dicebear.com/7.x/%s/svg?seed=%s", style, username)
}
