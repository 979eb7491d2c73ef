package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"pardarsh/internal/config"
	"pardarsh/internal/database"
	"pardarsh/internal/domain"
	"pardarsh/internal/middleware"
	"pardarsh/internal/modules/auth"
	"pardarsh/internal/modules/complaint"
	"pardarsh/internal/modules/contractor"
	"pardarsh/internal/modules/project"
	"pardarsh/internal/modules/report"
	jwtsvc "pardarsh/internal/pkg/jwt"
	"pardarsh/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Project{},
		&domain.ProjectReport{},
		&domain.Review{},
		&domain.Complaint{},
	); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	reportRepo := repository.NewReportRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	projectHandler := project.NewHandler(project.NewService(projectRepo, userRepo))
	reportHandler := report.NewHandler(report.NewService(reportRepo, projectRepo))
	contractorHandler := contractor.NewHandler(contractor.NewService(userRepo, reviewRepo, projectRepo))
	complaintHandler := complaint.NewHandler(complaint.NewService(complaintRepo, projectRepo))

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)
		projectHandler.RegisterPublicRoutes(api)
		reportHandler.RegisterPublicRoutes(api)
		contractorHandler.RegisterPublicRoutes(api)
		complaintHandler.RegisterPublicRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			contractorHandler.RegisterProtectedRoutes(protected)

			contractorOnly := protected.Group("")
			contractorOnly.Use(middleware.RequireRole(domain.RoleContractor))
			{
				reportHandler.RegisterContractorRoutes(contractorOnly)
			}

			official := protected.Group("")
			official.Use(middleware.RequireRole(domain.RoleOfficial))
			{
				projectHandler.RegisterOfficialRoutes(official)
				complaintHandler.RegisterOfficialRoutes(official)
			}
		}
	}

	log.Printf("Listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
