package database

import (
	"fe_exam_backend/internal/config"
	"fe_exam_backend/internal/model"
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.AnswerEvent{},
		&model.ExamResult{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := seedAdmin(db); err != nil {
		return nil, err
	}

	return db, nil
}

func openDialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", "sqlite":
		path := cfg.Path
		if path == "" {
			path = "fe_exam.db"
		}
		return sqlite.Open(path), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
			cfg.ParseTime,
		)
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host,
			cfg.Port,
			cfg.User,
			cfg.Password,
			cfg.DBName,
		)
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// seedAdmin creates the default administrator account on an empty user
// table so a fresh install can log in and upload banks.
func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("change-me-on-first-login"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Name:     "admin",
		Email:    "admin@example.com",
		Password: string(hashed),
		Role:     model.Admin,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Println("Seeded default admin account (admin@example.com), reset its password immediately")
	return nil
}
