package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gamecenter-backend/internal/config"
	"gamecenter-backend/internal/database"
	"gamecenter-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type GameData struct {
	Name                string `yaml:"name"`
	Category            string `yaml:"category,omitempty"`
	Location            string `yaml:"location,omitempty"`
	AverageDuration     int    `yaml:"average_duration"`
	MinimumBreakMinutes int    `yaml:"minimum_break_minutes"`
	IsActive            bool   `yaml:"is_active"`
}

type MappingData struct {
	EventNamePattern string `yaml:"event_name_pattern"`
	GameName         string `yaml:"game_name"`
	IsActive         bool   `yaml:"is_active"`
}

type GameMasterData struct {
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	Email       string `yaml:"email"`
	PhoneNumber string `yaml:"phone_number,omitempty"`
	Role        string `yaml:"role"`
	Password    string `yaml:"password,omitempty"`
	IsActive    bool   `yaml:"is_active"`
}

type CompetencyData struct {
	GMEmail         string `yaml:"gm_email"`
	GameName        string `yaml:"game_name"`
	CompetencyLevel int    `yaml:"competency_level"`
	TrainingDate    string `yaml:"training_date,omitempty"`
	Notes           string `yaml:"notes,omitempty"`
}

type AvailabilityData struct {
	GMEmail   string   `yaml:"gm_email"`
	Date      string   `yaml:"date"`
	TimeSlots []string `yaml:"time_slots"`
}

// File structures
type GamesFile struct {
	Games []GameData `yaml:"games"`
}

type MappingsFile struct {
	Mappings []MappingData `yaml:"mappings"`
}

type GameMastersFile struct {
	GameMasters []GameMasterData `yaml:"game_masters"`
}

type CompetenciesFile struct {
	Competencies []CompetencyData `yaml:"competencies"`
}

type AvailabilitiesFile struct {
	Availabilities []AvailabilityData `yaml:"availabilities"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
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
	var gamesFile GamesFile
	if err := readYAML(filepath.Join(dataDir, "games.yaml"), &gamesFile); err != nil {
		return fmt.Errorf("failed to load games: %w", err)
	}

	var mappingsFile MappingsFile
	if err := readYAML(filepath.Join(dataDir, "mappings.yaml"), &mappingsFile); err != nil {
		return fmt.Errorf("failed to load mappings: %w", err)
	}

	var gmsFile GameMastersFile
	if err := readYAML(filepath.Join(dataDir, "game_masters.yaml"), &gmsFile); err != nil {
		return fmt.Errorf("failed to load game masters: %w", err)
	}

	var compFile CompetenciesFile
	if err := readYAML(filepath.Join(dataDir, "competencies.yaml"), &compFile); err != nil {
		return fmt.Errorf("failed to load competencies: %w", err)
	}

	var availFile AvailabilitiesFile
	if err := readYAML(filepath.Join(dataDir, "availabilities.yaml"), &availFile); err != nil {
		return fmt.Errorf("failed to load availabilities: %w", err)
	}

	// Games first; mappings and competencies reference them by name
	gameMap := make(map[string]*models.Game)
	gameCreated := 0
	for _, gameData := range gamesFile.Games {
		game, created, err := createGame(db, gameData)
		if err != nil {
			return fmt.Errorf("failed to create game %s: %w", gameData.Name, err)
		}
		gameMap[gameData.Name] = game
		if created {
			gameCreated++
		}
	}
	log.Printf("Games: %d created, %d total", gameCreated, len(gamesFile.Games))

	mappingCreated := 0
	for _, mappingData := range mappingsFile.Mappings {
		created, err := createMapping(db, mappingData, gameMap)
		if err != nil {
			log.Printf("Warning: failed to create mapping %q: %v", mappingData.EventNamePattern, err)
			continue
		}
		if created {
			mappingCreated++
		}
	}
	log.Printf("Mappings: %d created, %d total", mappingCreated, len(mappingsFile.Mappings))

	gmMap := make(map[string]*models.GameMaster)
	gmCreated := 0
	for _, gmData := range gmsFile.GameMasters {
		gm, created, err := createGameMaster(db, gmData)
		if err != nil {
			return fmt.Errorf("failed to create game master %s: %w", gmData.Email, err)
		}
		gmMap[gmData.Email] = gm
		if created {
			gmCreated++
		}
	}
	log.Printf("Game masters: %d created, %d total", gmCreated, len(gmsFile.GameMasters))

	compCreated := 0
	for _, compData := range compFile.Competencies {
		created, err := createCompetency(db, compData, gmMap, gameMap)
		if err != nil {
			log.Printf("Warning: failed to create competency %s/%s: %v", compData.GMEmail, compData.GameName, err)
			continue
		}
		if created {
			compCreated++
		}
	}
	log.Printf("Competencies: %d created, %d total", compCreated, len(compFile.Competencies))

	availCreated := 0
	for _, availData := range availFile.Availabilities {
		created, err := createAvailability(db, availData, gmMap)
		if err != nil {
			log.Printf("Warning: failed to create availability %s/%s: %v", availData.GMEmail, availData.Date, err)
			continue
		}
		if created {
			availCreated++
		}
	}
	log.Printf("Availabilities: %d created, %d total", availCreated, len(availFile.Availabilities))

	return nil
}

func readYAML(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, target)
}

func createGame(db *gorm.DB, data GameData) (*models.Game, bool, error) {
	var existing models.Game
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	avg := data.AverageDuration
	if avg == 0 {
		avg = 60
	}
	game := models.Game{
		Name:                data.Name,
		Category:            data.Category,
		Location:            data.Location,
		AverageDuration:     avg,
		MinimumBreakMinutes: data.MinimumBreakMinutes,
		IsActive:            data.IsActive,
	}
	if err := db.Create(&game).Error; err != nil {
		return nil, false, err
	}
	return &game, true, nil
}

func createMapping(db *gorm.DB, data MappingData, gameMap map[string]*models.Game) (bool, error) {
	game, ok := gameMap[data.GameName]
	if !ok {
		return false, fmt.Errorf("unknown game %q", data.GameName)
	}

	var existing models.EventGameMapping
	err := db.Where("event_name_pattern = ? AND game_id = ?", data.EventNamePattern, game.ID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	mapping := models.EventGameMapping{
		EventNamePattern: data.EventNamePattern,
		GameID:           game.ID,
		IsActive:         data.IsActive,
	}
	if err := db.Create(&mapping).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createGameMaster(db *gorm.DB, data GameMasterData) (*models.GameMaster, bool, error) {
	var existing models.GameMaster
	err := db.Where("email = ?", data.Email).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	role := models.GameMasterRole(data.Role)
	if role != models.GameMasterRoleAdmin {
		role = models.GameMasterRoleGM
	}

	gm := models.GameMaster{
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		Role:        role,
		IsActive:    data.IsActive,
	}
	if data.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, false, err
		}
		gm.PasswordHash = string(hash)
	}
	if err := db.Create(&gm).Error; err != nil {
		return nil, false, err
	}
	return &gm, true, nil
}

func createCompetency(db *gorm.DB, data CompetencyData, gmMap map[string]*models.GameMaster, gameMap map[string]*models.Game) (bool, error) {
	gm, ok := gmMap[data.GMEmail]
	if !ok {
		return false, fmt.Errorf("unknown game master %q", data.GMEmail)
	}
	game, ok := gameMap[data.GameName]
	if !ok {
		return false, fmt.Errorf("unknown game %q", data.GameName)
	}

	var existing models.GMCompetency
	err := db.Where("gm_id = ? AND game_id = ?", gm.ID, game.ID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	comp := models.GMCompetency{
		GMID:            gm.ID,
		GameID:          game.ID,
		CompetencyLevel: data.CompetencyLevel,
		Notes:           data.Notes,
	}
	if data.TrainingDate != "" {
		t, err := time.Parse("2006-01-02", data.TrainingDate)
		if err != nil {
			return false, fmt.Errorf("invalid training_date %q: %w", data.TrainingDate, err)
		}
		comp.TrainingDate = &t
	}
	if err := db.Create(&comp).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createAvailability(db *gorm.DB, data AvailabilityData, gmMap map[string]*models.GameMaster) (bool, error) {
	gm, ok := gmMap[data.GMEmail]
	if !ok {
		return false, fmt.Errorf("unknown game master %q", data.GMEmail)
	}
	date, err := time.Parse("2006-01-02", data.Date)
	if err != nil {
		return false, fmt.Errorf("invalid date %q: %w", data.Date, err)
	}

	var existing models.GMAvailability
	err = db.Where("gm_id = ? AND date = ?", gm.ID, date).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	av := models.GMAvailability{
		GMID: gm.ID,
		Date: date,
	}
	if err := av.SetSlots(data.TimeSlots); err != nil {
		return false, err
	}
	if err := db.Create(&av).Error; err != nil {
		return false, err
	}
	return true, nil
}
