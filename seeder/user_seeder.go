package seeder

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"go.mongodb.org/mongo-driver/mongo"

	"employee-attendance/models"
	"employee-attendance/pkg/logging"
	"employee-attendance/pkg/password"
)

// DemoPassword is the password of every seeded demo account.
const DemoPassword = "Password123"

const demoAdminEmail = "admin@example.com"

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

var departmentPositions = map[string][]string{
	"Finance":         {"Senior Accountant", "Junior Accountant", "Financial Analyst"},
	"Human Resources": {"HR Manager", "HR Specialist", "Recruitment Officer"},
	"Engineering":     {"Software Engineer", "Frontend Developer", "Backend Developer", "DevOps Engineer"},
	"Marketing":       {"Marketing Manager", "Content Creator", "Digital Marketing Analyst"},
	"Customer Care":   {"Support Specialist", "Customer Service Representative"},
}

var (
	firstNames = []string{"Budi", "Siti", "Agus", "Dewi", "Joko", "Rina", "Andi", "Maya", "Fajar", "Putri", "Rizky", "Ayu"}
	lastNames  = []string{"Santoso", "Wijaya", "Putra", "Utami", "Nugroho", "Rahayu", "Pratama", "Lestari", "Setiawan", "Hidayat"}
)

// SeedUsers creates a demo admin and count employees. Accounts whose email
// already exists are skipped. It returns the number of accounts created.
func SeedUsers(ctx context.Context, users UserStore, count int, rng *rand.Rand) (int, error) {
	hashed, err := password.Hash(DemoPassword)
	if err != nil {
		return 0, err
	}

	departments := make([]string, 0, len(departmentPositions))
	for d := range departmentPositions {
		departments = append(departments, d)
	}
	sort.Strings(departments)

	accounts := []models.User{{
		Name:       "Demo Admin",
		Email:      demoAdminEmail,
		Role:       models.RoleAdmin,
		Position:   "General Manager",
		Department: "Management",
	}}
	for i := 1; i <= count; i++ {
		dept := departments[rng.Intn(len(departments))]
		positions := departmentPositions[dept]
		accounts = append(accounts, models.User{
			Name:       firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))],
			Email:      fmt.Sprintf("employee%02d@example.com", i),
			Role:       models.RoleUser,
			Position:   positions[rng.Intn(len(positions))],
			Department: dept,
		})
	}

	created := 0
	for i := range accounts {
		u := accounts[i]
		existing, err := users.FindUserByEmail(ctx, u.Email)
		if err != nil {
			return created, err
		}
		if existing != nil {
			logging.Debug().Str("email", u.Email).Msg("demo user exists, skipping")
			continue
		}
		u.Password = hashed
		if _, err := users.CreateUser(ctx, &u); err != nil {
			return created, fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		created++
	}

	logging.Info().Int("created", created).Msg("demo users seeded")
	return created, nil
}
