// Package seed populates the database with a small organization and
// sample vacation requests for local development.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"leavedesk/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password assigned to every seeded account.
const DefaultPassword = "Password123!"

// Seeder wraps a DB handle with seeding operations.
type Seeder struct {
	db *gorm.DB
}

func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// ClearAll removes all seeded data. Requests go first, then users, then
// locations, respecting foreign keys.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, stmt := range []string{
		"DELETE FROM vacation_requests",
		"DELETE FROM users",
		"DELETE FROM locations",
	} {
		if err := s.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("clear failed: %w", err)
		}
	}
	return nil
}

type OrgChart struct {
	locations   []models.Location
	admin       *models.User
	supervisors []models.User
	employees   []models.User
}

// SeedOrg creates the baseline organization: three offices, an admin,
// one supervisor per office, and a handful of employees including one
// with no supervisor at all.
func (s *Seeder) SeedOrg() (*OrgChart, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	password := string(hash)

	locations := []models.Location{
		{Name: "Headquarters", Address: "123 Main St, Anytown, USA"},
		{Name: "North Branch", Address: "456 North Rd, Frostburg, USA"},
		{Name: "West Campus", Address: "789 West Blvd, Sunnyshore, USA"},
	}
	if err := s.db.Create(&locations).Error; err != nil {
		return nil, fmt.Errorf("create locations: %w", err)
	}
	log.Printf("✓ Created %d locations", len(locations))

	admin := models.User{
		FirstName: "Admin", LastName: "User", Email: "admin@example.com",
		Password: password, Role: models.RoleAdmin,
		LocationID: &locations[0].ID, EmployeeCode: "ADM001",
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}

	supervisors := []models.User{
		{FirstName: "Sup", LastName: "One", Email: "sup.one@example.com",
			Password: password, Role: models.RoleSupervisor,
			LocationID: &locations[0].ID, EmployeeCode: "SUP001"},
		{FirstName: "Sup", LastName: "Two", Email: "sup.two@example.com",
			Password: password, Role: models.RoleSupervisor,
			LocationID: &locations[1].ID, EmployeeCode: "SUP002"},
		{FirstName: "Sup", LastName: "Three", Email: "sup.three@example.com",
			Password: password, Role: models.RoleSupervisor,
			LocationID: &locations[2].ID, EmployeeCode: "SUP003"},
	}
	if err := s.db.Create(&supervisors).Error; err != nil {
		return nil, fmt.Errorf("create supervisors: %w", err)
	}
	log.Printf("✓ Created admin and %d supervisors", len(supervisors))

	employees := []models.User{
		{FirstName: "Emp", LastName: "Alpha", Email: "emp.alpha@example.com",
			Password: password, Role: models.RoleEmployee,
			LocationID: &locations[0].ID, SupervisorID: &supervisors[0].ID, EmployeeCode: "EMP001"},
		{FirstName: "Emp", LastName: "Beta", Email: "emp.beta@example.com",
			Password: password, Role: models.RoleEmployee,
			LocationID: &locations[0].ID, SupervisorID: &supervisors[0].ID, EmployeeCode: "EMP002"},
		{FirstName: "Emp", LastName: "Gamma", Email: "emp.gamma@example.com",
			Password: password, Role: models.RoleEmployee,
			LocationID: &locations[1].ID, SupervisorID: &supervisors[1].ID, EmployeeCode: "EMP003"},
		{FirstName: "Emp", LastName: "Delta", Email: "emp.delta@example.com",
			Password: password, Role: models.RoleEmployee,
			LocationID: &locations[2].ID, SupervisorID: &supervisors[2].ID, EmployeeCode: "EMP004"},
		// Reports to nobody; only admins can action this one's requests.
		{FirstName: "Emp", LastName: "Orphan", Email: "emp.orphan@example.com",
			Password: password, Role: models.RoleEmployee,
			LocationID: &locations[2].ID, EmployeeCode: "EMP005"},
	}
	if err := s.db.Create(&employees).Error; err != nil {
		return nil, fmt.Errorf("create employees: %w", err)
	}
	log.Printf("✓ Created %d employees", len(employees))

	return &OrgChart{
		locations:   locations,
		admin:       &admin,
		supervisors: supervisors,
		employees:   employees,
	}, nil
}

// SeedExtraEmployees generates n random employees spread across the
// existing locations and supervisors.
func (s *Seeder) SeedExtraEmployees(org *OrgChart, n int) ([]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	extras := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		sup := org.supervisors[rand.Intn(len(org.supervisors))]
		extras = append(extras, models.User{
			FirstName:    gofakeit.FirstName(),
			LastName:     gofakeit.LastName(),
			Email:        fmt.Sprintf("employee%d@%s", i+1, gofakeit.DomainName()),
			Password:     string(hash),
			Role:         models.RoleEmployee,
			LocationID:   sup.LocationID,
			SupervisorID: &sup.ID,
			EmployeeCode: fmt.Sprintf("EMP%03d", 100+i),
		})
	}
	if len(extras) == 0 {
		return extras, nil
	}
	if err := s.db.Create(&extras).Error; err != nil {
		return nil, fmt.Errorf("create extra employees: %w", err)
	}
	log.Printf("✓ Created %d extra employees", len(extras))
	return extras, nil
}

// SeedRequests creates a few vacation requests per employee in a mix of
// states so the pending queues and histories are non-empty.
func (s *Seeder) SeedRequests(org *OrgChart, extras []models.User) error {
	employees := append([]models.User{}, org.employees...)
	employees = append(employees, extras...)

	created := 0
	for _, emp := range employees {
		for i := 0; i < 1+rand.Intn(3); i++ {
			start := time.Now().AddDate(0, 0, 7+rand.Intn(60))
			request := models.VacationRequest{
				RequesterID: emp.ID,
				StartDate:   start,
				EndDate:     start.AddDate(0, 0, 1+rand.Intn(10)),
				Reason:      gofakeit.Sentence(6),
				Status:      models.RequestStatusPending,
				RequestedAt: time.Now().Add(-time.Duration(rand.Intn(72)) * time.Hour),
			}

			// Roughly half the requests stay pending; the rest get decided
			// by the employee's supervisor, or the admin when there is none.
			if rand.Intn(2) == 0 {
				actor := org.admin
				if emp.SupervisorID != nil {
					for i := range org.supervisors {
						if org.supervisors[i].ID == *emp.SupervisorID {
							actor = &org.supervisors[i]
						}
					}
				}
				now := time.Now()
				request.ActionedByID = &actor.ID
				request.ActionedAt = &now
				if rand.Intn(3) == 0 {
					request.Status = models.RequestStatusRejected
					comments := "Team coverage is too thin in that window."
					request.DecisionComments = &comments
				} else {
					request.Status = models.RequestStatusApproved
				}
			}

			if err := s.db.Create(&request).Error; err != nil {
				return fmt.Errorf("create request: %w", err)
			}
			created++
		}
	}
	log.Printf("✓ Created %d vacation requests", created)
	return nil
}
