package database

import (
	"fmt"
	"time"

	"servicedesk-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	AutoMigrate     bool
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	if !opts.AutoMigrate {
		opts.AutoMigrate = true
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Required extension for UUID generation (BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	// Explicit join models so link inserts can use ON CONFLICT DO NOTHING
	// and so the composite-PK join tables get FK cascade on both sides.
	if err := db.SetupJoinTable(&models.Ticket{}, "CIs", &models.TicketCI{}); err != nil {
		return nil, fmt.Errorf("setup join table ticket_cis: %w", err)
	}
	if err := db.SetupJoinTable(&models.Problem{}, "Tickets", &models.ProblemTicket{}); err != nil {
		return nil, fmt.Errorf("setup join table problem_tickets: %w", err)
	}
	if err := db.SetupJoinTable(&models.Change{}, "CIs", &models.ChangeCI{}); err != nil {
		return nil, fmt.Errorf("setup join table change_cis: %w", err)
	}
	if err := db.SetupJoinTable(&models.Change{}, "Problems", &models.ChangeProblem{}); err != nil {
		return nil, fmt.Errorf("setup join table change_problems: %w", err)
	}

	if opts.AutoMigrate {
		all := []interface{}{
			&models.User{},
			&models.UserRole{},
			&models.Team{},
			&models.TeamMember{},
			&models.Ticket{},
			&models.Comment{},
			&models.ConfigurationItem{},
			&models.Problem{},
			&models.Change{},
			&models.KBArticle{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}
