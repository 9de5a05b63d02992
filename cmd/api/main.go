package main

import (
	_ "solari_planner/docs"
	"solari_planner/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Solari Planner Service API
// @version         1.0
// @description     Project cost planning and tracking for solar installations (planned vs. actual costs) backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
