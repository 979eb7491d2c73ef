package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"pardarsh/internal/database"
	"pardarsh/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "pardarsh.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Project{},
		&domain.ProjectReport{},
		&domain.Review{},
		&domain.Complaint{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM complaints")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM project_reports")
	db.Exec("DELETE FROM projects")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	officialHash, _ := bcrypt.GenerateFromPassword([]byte("official123"), bcrypt.DefaultCost)
	official := domain.User{
		Email:        "official@gov.in",
		PasswordHash: string(officialHash),
		Role:         domain.RoleOfficial,
		LegalName:    "Rajesh Kumar",
		PhoneNumber:  "+91 98765 43210",
		Address:      "Public Works Department, Bhopal",
	}
	db.Create(&official)
	log.Println("Official created: official@gov.in / official123")

	contractors := []domain.User{}
	contractorNames := []string{"Sharma Constructions", "Verma Infra Pvt Ltd", "Patel Builders"}
	for i, name := range contractorNames {
		hash, _ := bcrypt.GenerateFromPassword([]byte("contractor123"), bcrypt.DefaultCost)
		contractor := domain.User{
			Email:        fmt.Sprintf("contractor%d@example.com", i+1),
			PasswordHash: string(hash),
			Role:         domain.RoleContractor,
			LegalName:    name,
			PhoneNumber:  fmt.Sprintf("+91 98765 000%02d", i+1),
			AadharNumber: fmt.Sprintf("1234 5678 90%02d", i+10),
			FaithScore:   float64(60 + i*10),
		}
		db.Create(&contractor)
		contractors = append(contractors, contractor)
	}

	citizenHash, _ := bcrypt.GenerateFromPassword([]byte("citizen123"), bcrypt.DefaultCost)
	citizen := domain.User{
		Email:        "citizen@example.com",
		PasswordHash: string(citizenHash),
		Role:         domain.RoleGeneral,
		LegalName:    "Anita Deshmukh",
	}
	db.Create(&citizen)

	// ================== PROJECTS ==================
	log.Println("Creating projects...")

	assigned := domain.Project{
		Name:             "NH-45 Bridge Rehabilitation",
		Region:           "Indore",
		Description:      "Deck replacement and pier strengthening on the NH-45 river crossing",
		TenderDetails:    "Tender PWD/2025/114, awarded via open bidding",
		Deadline:         time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Status:           domain.ProjectInProgress,
		ContractorID:     &contractors[0].ID,
		MaterialCost:     4200000,
		LaborCost:        1800000,
		ConstructionCost: 7500000,
		CreatedBy:        official.ID,
	}
	db.Create(&assigned)

	open := domain.Project{
		Name:          "District Hospital Wing Extension",
		Region:        "Bhopal",
		Description:   "Two-floor extension with a 40-bed ward and diagnostics block",
		TenderDetails: "Tender PWD/2025/131, bids open until award",
		Deadline:      time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
		Status:        domain.ProjectOpen,
		CreatedBy:     official.ID,
	}
	db.Create(&open)

	completed := domain.Project{
		Name:             "Rural Road Package 7",
		Region:           "Ujjain",
		Description:      "12 km of all-weather village roads under PMGSY",
		Deadline:         time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		Status:           domain.ProjectCompleted,
		ContractorID:     &contractors[1].ID,
		MaterialCost:     2100000,
		LaborCost:        900000,
		ConstructionCost: 3400000,
		CreatedBy:        official.ID,
	}
	db.Create(&completed)

	// ================== REPORTS ==================
	log.Println("Creating weekly reports...")
	for week := 1; week <= 3; week++ {
		report := domain.ProjectReport{
			ProjectID:     assigned.ID,
			ContractorID:  contractors[0].ID,
			WeekNumber:    week,
			WeekStartDate: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC).AddDate(0, 0, (week-1)*7),
			Expenses: domain.Expenses{
				Materials: 120000 + float64(week)*10000,
				Labor:     45000,
				Equipment: 30000,
				Other:     5000,
			},
			ProgressDetails:      fmt.Sprintf("Week %d: pier strengthening and deck formwork", week),
			CompletionPercentage: float64(week * 8),
			NextWeekPlan:         "Continue deck casting on the north span",
			Status:               domain.ReportSubmitted,
		}
		db.Create(&report)
	}

	// ================== REVIEWS ==================
	log.Println("Creating reviews...")
	db.Create(&domain.Review{
		ContractorID: contractors[1].ID,
		ProjectID:    completed.ID,
		ReviewerID:   official.ID,
		Rating:       4,
		Comment:      "Delivered on time, minor snag-list items remained",
	})

	// ================== COMPLAINTS ==================
	log.Println("Creating complaints...")
	db.Create(&domain.Complaint{
		ComplaintID: "a1b2c3d4e5f6",
		ProjectID:   assigned.ID,
		Subject:     "Night work without barriers",
		Description: "Workers pouring concrete after dark with no safety barriers along the approach road",
		Status:      domain.ComplaintPending,
		Evidence:    datatypes.NewJSONSlice([]string{"photo-approach-road.jpg"}),
	})

	log.Println("Seed completed")
	log.Println("Test accounts:")
	log.Println("Official:    official@gov.in / official123")
	log.Println("Contractors: contractor1..3@example.com / contractor123")
	log.Println("Citizen:     citizen@example.com / citizen123")
	log.Println("Tracking token for the sample complaint: a1b2c3d4e5f6")
}
