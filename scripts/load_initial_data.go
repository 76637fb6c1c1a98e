package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"servicedesk-backend/internal/config"
	"servicedesk-backend/internal/database"
	"servicedesk-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Email       string `yaml:"email"`
	DisplayName string `yaml:"display_name"`
	Password    string `yaml:"password,omitempty"`
	Role        string `yaml:"role,omitempty"`
}

type TeamData struct {
	Name     string           `yaml:"name"`
	Category string           `yaml:"category,omitempty"`
	Members  []TeamMemberData `yaml:"members,omitempty"`
}

type TeamMemberData struct {
	Email string `yaml:"email"`
	Role  string `yaml:"role,omitempty"`
}

type CIData struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Status      string `yaml:"status,omitempty"`
	Description string `yaml:"description,omitempty"`
	Location    string `yaml:"location,omitempty"`
	OwnerEmail  string `yaml:"owner_email,omitempty"`
}

type ArticleData struct {
	Title       string `yaml:"title"`
	Content     string `yaml:"content"`
	Category    string `yaml:"category,omitempty"`
	AuthorEmail string `yaml:"author_email,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type CIsFile struct {
	ConfigurationItems []CIData `yaml:"configuration_items"`
}

type ArticlesFile struct {
	Articles []ArticleData `yaml:"articles"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent, // no SQL noise while seeding
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	cis, err := loadCIs(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration items: %w", err)
	}

	articles, err := loadArticles(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load articles: %w", err)
	}

	// Users first; everything else references them by email
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users))

	teamCreated := 0
	for _, teamData := range teams {
		created, err := createTeam(db, teamData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		if created {
			teamCreated++
		}
	}
	log.Printf("Teams: %d created, %d total", teamCreated, len(teams))

	ciCreated := 0
	for _, ciData := range cis {
		created, err := createCI(db, ciData, userMap)
		if err != nil {
			log.Printf("Warning: failed to create configuration item %s: %v", ciData.Name, err)
			continue
		}
		if created {
			ciCreated++
		}
	}
	log.Printf("Configuration items: %d created, %d total", ciCreated, len(cis))

	articleCreated := 0
	for _, articleData := range articles {
		created, err := createArticle(db, articleData, userMap)
		if err != nil {
			log.Printf("Warning: failed to create article %q: %v", articleData.Title, err)
			continue
		}
		if created {
			articleCreated++
		}
	}
	log.Printf("Knowledge base articles: %d created, %d total", articleCreated, len(articles))

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var file UsersFile
	if err := readYAML(filepath.Join(dataDir, "users.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Users, nil
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var file TeamsFile
	if err := readYAML(filepath.Join(dataDir, "teams.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Teams, nil
}

func loadCIs(dataDir string) ([]CIData, error) {
	var file CIsFile
	if err := readYAML(filepath.Join(dataDir, "configuration_items.yaml"), &file); err != nil {
		return nil, err
	}
	return file.ConfigurationItems, nil
}

func loadArticles(dataDir string) ([]ArticleData, error) {
	var file ArticlesFile
	if err := readYAML(filepath.Join(dataDir, "kb_articles.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Articles, nil
}

// readYAML reads a YAML file into target. A missing file is not an error;
// the corresponding section is simply skipped.
func readYAML(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, target)
}

func createUser(db *gorm.DB, data UserData) (*models.User, bool, error) {
	var existing models.User
	err := db.First(&existing, "email = ?", data.Email).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	user := &models.User{
		Email:       data.Email,
		DisplayName: data.DisplayName,
	}
	if data.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, false, err
		}
		hashStr := string(hash)
		user.Password = &hashStr
	}
	if err := db.Create(user).Error; err != nil {
		return nil, false, err
	}

	role := models.UserRoleName(data.Role)
	if data.Role == "" {
		role = models.RoleUser
	}
	if !role.IsValid() {
		return nil, false, fmt.Errorf("unknown role %q", data.Role)
	}
	if err := db.Create(&models.UserRole{UserID: user.ID, Role: role}).Error; err != nil {
		return nil, false, err
	}

	return user, true, nil
}

func createTeam(db *gorm.DB, data TeamData, userMap map[string]*models.User) (bool, error) {
	var existing models.Team
	err := db.First(&existing, "name = ?", data.Name).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	team := &models.Team{
		Name:     data.Name,
		Category: data.Category,
	}
	if err := db.Create(team).Error; err != nil {
		return false, err
	}

	for _, memberData := range data.Members {
		user, ok := userMap[memberData.Email]
		if !ok {
			log.Printf("Warning: team %s references unknown user %s, skipping", data.Name, memberData.Email)
			continue
		}
		role := memberData.Role
		if role == "" {
			role = "member"
		}
		member := &models.TeamMember{
			TeamID: team.ID,
			UserID: user.ID,
			Role:   role,
		}
		if err := db.Create(member).Error; err != nil {
			return false, err
		}
	}

	return true, nil
}

func createCI(db *gorm.DB, data CIData, userMap map[string]*models.User) (bool, error) {
	var existing models.ConfigurationItem
	err := db.First(&existing, "name = ?", data.Name).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	status := models.CIStatus(data.Status)
	if data.Status == "" {
		status = models.CIStatusActive
	}
	if !status.IsValid() {
		return false, fmt.Errorf("unknown status %q", data.Status)
	}

	ci := &models.ConfigurationItem{
		Name:        data.Name,
		Type:        data.Type,
		Status:      status,
		Description: data.Description,
		Location:    data.Location,
	}
	if data.OwnerEmail != "" {
		if owner, ok := userMap[data.OwnerEmail]; ok {
			ci.OwnerID = &owner.ID
		}
	}

	return true, db.Create(ci).Error
}

func createArticle(db *gorm.DB, data ArticleData, userMap map[string]*models.User) (bool, error) {
	var existing models.KBArticle
	err := db.First(&existing, "title = ?", data.Title).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	article := &models.KBArticle{
		Title:    data.Title,
		Content:  data.Content,
		Category: data.Category,
	}
	if data.AuthorEmail != "" {
		if author, ok := userMap[data.AuthorEmail]; ok {
			article.AuthorID = &author.ID
		}
	}

	return true, db.Create(article).Error
}
