package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ci-request-api/config"
	"ci-request-api/internal/admin"
	"ci-request-api/internal/auth"
	"ci-request-api/internal/catalog"
	"ci-request-api/internal/logs"
	"ci-request-api/internal/middlewares"
	"ci-request-api/internal/request"
)

func main() {
	cfg := config.LoadConfig()

	dsn := "host=" + cfg.DBHost +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" port=" + cfg.DBPort +
		" sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&auth.User{},
		&catalog.Service{},
		&catalog.SupportGroup{},
		&catalog.CIType{},
		&catalog.CIFunction{},
		&catalog.Brand{},
		&catalog.Location{},
		&catalog.Customer{},
		&catalog.System{},
		&catalog.Application{},
		&catalog.Project{},
		&catalog.Supplier{},
		&catalog.SRRelease{},
		&catalog.ConfigurationItem{},
		&request.SoftwareRequest{},
		&logs.SystemLog{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := catalog.Seed(db); err != nil {
		log.Fatal("Failed to seed master data:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authRequired := middlewares.AuthMiddleware(&cfg)

	logService := &logs.LogService{DB: db}
	logs.RegisterRoutes(r, logService, authRequired)

	authService := &auth.AuthService{DB: db}
	auth.RegisterRoutes(r, authService, logService, &cfg, authRequired)

	catalogService := catalog.NewCatalogService(db)
	catalog.RegisterRoutes(r, catalogService, authRequired)

	requestService := request.NewRequestService(db, logService)
	request.RegisterRoutes(r, requestService, authRequired)

	adminService := &admin.AdminService{DB: db}
	admin.RegisterRoutes(r, adminService, authRequired)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on 0.0.0.0:%s ...", port)
	log.Fatal(r.Run("0.0.0.0:" + port))
}
