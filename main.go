// @title FE Exam Prep API
// @version 1.0
// @description Backend server for the Fundamental Information Technology Engineer exam study platform.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"fe_exam_backend/internal/app"
	"fe_exam_backend/internal/config"
)

func main() {
	configDir := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg, *configDir)
	application.Run()
}
