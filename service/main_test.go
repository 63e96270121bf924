package service

import (
	"bytes"
	"fmt"
	"log"
	"skillpass/config"
	"skillpass/repository"
	"strconv"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/ory/dockertest/v3"
	"github.com/xuri/excelize/v2"
)

var db *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}

	// uses pool to try to connect to Docker
	err = pool.Client.Ping()
	if err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	// pulls an image, creates a container based on it and runs it
	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "DATABASE_NAME=postgres"})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(600) // Tell docker to hard kill the container in 10 minutes
	sqlInfo := fmt.Sprintf(
		"host=localhost port=%s user=postgres password=postgres dbname=postgres sslmode=disable search_path=skillpass",
		resource.GetPort("5432/tcp"))

	// exponential backoff-retry, because the application in the container might not be ready to accept connections yet
	if err := pool.Retry(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(sqlInfo), &gorm.Config{
			NamingStrategy: schema.NamingStrategy{
				TablePrefix:   "skillpass.",
				SingularTable: false,
			},
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return err
		}
		return config.Migrate(db)
	}); err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	defer func() {
		if err := pool.Purge(resource); err != nil {
			log.Fatalf("Could not purge resource: %s", err)
		}
	}()
	m.Run()
}

func TearDown() {
	db.Exec("DELETE FROM skillpass.scores")
	db.Exec("DELETE FROM skillpass.skill_passports")
	db.Exec("DELETE FROM skillpass.criteria")
	db.Exec("DELETE FROM skillpass.sub_criteria")
	db.Exec("DELETE FROM skillpass.assessment_modules")
	db.Exec("DELETE FROM skillpass.skill_groups")
	db.Exec("DELETE FROM skillpass.assessment_schemas")
	db.Exec("DELETE FROM skillpass.team_members")
	db.Exec("DELETE FROM skillpass.teams")
	db.Exec("DELETE FROM skillpass.applications")
	db.Exec("DELETE FROM skillpass.events")
	db.Exec("DELETE FROM skillpass.users")
}

// SetUp creates one event with two teams of two participants each.
func SetUp() *repository.Event {
	users := make([]*repository.User, 0)
	for i := 1; i <= 4; i++ {
		user := &repository.User{
			Email:        fmt.Sprintf("user%d@example.com", i),
			PasswordHash: "x",
			FirstName:    fmt.Sprintf("First%d", i),
			LastName:     fmt.Sprintf("Last%d", i),
			Role:         repository.RoleParticipant,
		}
		db.Create(user)
		users = append(users, user)
	}

	event := &repository.Event{
		Name:              "event1",
		Competency:        "Industrial robotics",
		Status:            repository.EventStatusScoring,
		RegistrationStart: time.Now(),
		RegistrationEnd:   time.Now(),
		EventStart:        time.Now(),
		EventEnd:          time.Now(),
		MaxTeamSize:       4,
		MinTeamSize:       1,
		Teams: []*repository.Team{
			{
				Name: "team1",
				Members: []*repository.TeamMember{
					{UserId: users[0].Id, Role: repository.TeamMemberRoleCaptain},
					{UserId: users[1].Id, Role: repository.TeamMemberRoleMember},
				},
			},
			{
				Name: "team2",
				Members: []*repository.TeamMember{
					{UserId: users[2].Id, Role: repository.TeamMemberRoleCaptain},
					{UserId: users[3].Id, Role: repository.TeamMemberRoleMember},
				},
			},
		},
	}
	db.Create(event)
	return event
}

// rubricWorkbook builds an xlsx with module A (two criteria, groups 1 and 2)
// and module B (one criterion, group 1), 10 points each.
func rubricWorkbook(t *testing.T) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := "Assessment criteria"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatal(err)
	}
	rows := [][]interface{}{
		{"Code", "Name", "Type", "Aspect", "Score", "Verification", "", "Section", "Max"},
		{}, {}, {}, {},
		{"A", "First module", ""},
		{"1", "Sub 1", ""},
		{"", "Criterion one", "M", "", "", "", "", "1", "10"},
		{"", "Criterion two", "M", "", "", "", "", "2", "10"},
		{"B", "Second module", ""},
		{"1", "Sub 1", ""},
		{"", "Criterion three", "M", "", "", "", "", "1", "10"},
	}
	for i, row := range rows {
		if err := f.SetSheetRow(sheet, "A"+strconv.Itoa(i+1), &row); err != nil {
			t.Fatal(err)
		}
	}
	buffer, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buffer
}

// emptyWorkbook builds an xlsx with the header block but no module rows.
func emptyWorkbook(t *testing.T) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := "Assessment criteria"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatal(err)
	}
	header := []interface{}{"Code", "Name", "Type", "Aspect", "Score", "Verification", "", "Section", "Max"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatal(err)
	}
	buffer, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buffer
}

// eventCriterionIds flattens the schema tree into criterion ids in display order.
func eventCriterionIds(t *testing.T, schema *repository.AssessmentSchema) []int {
	t.Helper()
	ids := make([]int, 0)
	for _, module := range schema.Modules {
		for _, subCriterion := range module.SubCriteria {
			for _, criterion := range subCriterion.Criteria {
				ids = append(ids, criterion.Id)
			}
		}
	}
	return ids
}
