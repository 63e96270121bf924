package config

import (
	"fmt"
	model "skillpass/repository"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var enumQueries = []string{
	`CREATE TYPE skillpass.user_role AS ENUM ('ADMIN', 'ORGANIZER', 'EXPERT', 'PARTICIPANT')`,
	`CREATE TYPE skillpass.event_status AS ENUM ('DRAFT', 'REGISTRATION_OPEN', 'REGISTRATION_CLOSED', 'IN_PROGRESS', 'SCORING', 'RESULTS_PUBLISHED')`,
	`CREATE TYPE skillpass.criterion_type AS ENUM ('M', 'J')`,
	`CREATE TYPE skillpass.team_member_role AS ENUM ('CAPTAIN', 'MEMBER')`,
	`CREATE TYPE skillpass.application_status AS ENUM ('PENDING', 'APPROVED', 'REJECTED')`,
}

func InitDB(host string, port string, user string, password string, dbName string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, password, dbName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "skillpass.",
			SingularTable: false,
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return db, Migrate(db)
}

func Migrate(db *gorm.DB) error {
	x := db.Exec(`CREATE SCHEMA IF NOT EXISTS skillpass`)
	if x.Error != nil {
		return x.Error
	}
	for _, query := range enumQueries {
		x := db.Exec(query)
		if x.Error != nil {
			if strings.Contains(x.Error.Error(), "already exists") {
				continue
			}
			return x.Error
		}
	}

	return db.AutoMigrate(
		&model.User{},
		&model.Event{},
		&model.Application{},
		&model.Team{},
		&model.TeamMember{},
		&model.AssessmentSchema{},
		&model.AssessmentModule{},
		&model.SubCriterion{},
		&model.SkillGroup{},
		&model.Criterion{},
		&model.Score{},
		&model.SkillPassport{},
	)
}
