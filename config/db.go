package config

import (
	"fmt"
	"os"
	"strings"

	"sais/domain"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

// GetDatabaseURL builds the database connection string. DATABASE_URL wins over
// the individual DB_* variables.
func GetDatabaseURL() (string, error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		dsn, err := pq.ParseURL(url)
		if err != nil {
			return "", fmt.Errorf("invalid DATABASE_URL: %w", err)
		}
		return dsn, nil
	}

	sslMode := os.Getenv("DB_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"), sslMode)
	return dsn, nil
}

// GetSeedEnabled reads DB_SEED; seeding is on unless explicitly disabled.
func GetSeedEnabled() bool {
	v := strings.ToLower(os.Getenv("DB_SEED"))
	return v != "false" && v != "0" && v != "no"
}

// BootDB connects, migrates and (optionally) seeds the database.
func BootDB() (*gorm.DB, error) {
	url, err := GetDatabaseURL()
	if err != nil {
		return nil, err
	}

	db, err = OpenDB(url)
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return db, err
	}

	if GetSeedEnabled() {
		if err := SeedDB(db); err != nil {
			return db, err
		}
	}

	GetLogrusInstance().Info("DB initialized")
	return db, nil
}

func OpenDB(dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                                   NewGormLogger(GetLogrusInstance(), GetGormLogLevel()),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return conn, nil
}

type foreignKey struct {
	table, column, refTable, refColumn, onDelete string
}

func (fk foreignKey) name() string {
	return fmt.Sprintf("fk_%s_%s", fk.table, fk.column)
}

// Geography, applicants and applications cascade downwards; a gender or
// marital status still in use cannot be deleted.
var foreignKeys = []foreignKey{
	{"sub_counties", "county_id", "counties", "county_id", "CASCADE"},
	{"locations", "sub_county_id", "sub_counties", "sub_county_id", "CASCADE"},
	{"sub_locations", "location_id", "locations", "location_id", "CASCADE"},
	{"villages", "sub_location_id", "sub_locations", "sub_location_id", "CASCADE"},
	{"applicants", "village_id", "villages", "village_id", "CASCADE"},
	{"applicants", "gender_id", "gender_categories", "gender_id", "RESTRICT"},
	{"applicants", "marital_status_id", "marital_statuses", "marital_status_id", "RESTRICT"},
	{"phone_numbers", "applicant_id", "applicants", "applicant_id", "CASCADE"},
	{"applications", "applicant_id", "applicants", "applicant_id", "CASCADE"},
	{"applications", "officer_id", "officers", "officer_id", "CASCADE"},
	{"applied_programs", "application_id", "applications", "application_id", "CASCADE"},
	{"applied_programs", "program_id", "social_assistance_programs", "program_id", "CASCADE"},
}

// Migrate creates the tables and the foreign keys of the delete policy.
func Migrate(db *gorm.DB) error {
	// Tables without foreign keys first
	if err := db.AutoMigrate(
		&domain.County{},
		&domain.GenderCategory{},
		&domain.MaritalStatus{},
		&domain.Officer{},
		&domain.SocialAssistanceProgram{},
	); err != nil {
		return fmt.Errorf("failed to migrate base tables: %w", err)
	}

	if err := db.AutoMigrate(
		&domain.SubCounty{},
		&domain.Location{},
		&domain.SubLocation{},
		&domain.Village{},
		&domain.Applicant{},
		&domain.PhoneNumber{},
		&domain.Application{},
		&domain.AppliedProgram{},
	); err != nil {
		return fmt.Errorf("failed to migrate relational tables: %w", err)
	}

	for _, fk := range foreignKeys {
		if err := db.Exec(fmt.Sprintf(`DO $$ BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
			ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s) ON UPDATE CASCADE ON DELETE %s;
		END IF;
	END $$`, fk.name(), fk.table, fk.name(), fk.column, fk.refTable, fk.refColumn, fk.onDelete)).Error; err != nil {
			return fmt.Errorf("failed to create constraint %s: %w", fk.name(), err)
		}
	}

	return nil
}
