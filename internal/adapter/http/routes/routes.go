package routes

import (
	"context"
	"os"
	"strconv"

	_ "solari_planner/docs" // swagger spec, committed output of swag init
	"solari_planner/internal/adapter/http/handlers"
	"solari_planner/internal/adapter/persistence/repository"
	"solari_planner/internal/infrastructure/database"
	"solari_planner/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run wires the application and starts the server.
func Run() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "solari-planner").Logger()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(logger)

	port := defaultPort
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		port = v
	}

	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		logger.Fatal().Err(err).Msg("failed to start the application")
	}
}

func getRoutes(logger zerolog.Logger) {
	ctx := logger.WithContext(context.Background())

	ddb, err := database.NewDynamoDBClient(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create dynamodb client")
	}

	projectRepo := repository.NewProjectDynamoRepository(ddb, logger)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, logger)
	// Best-effort: a failed load starts an empty session, it never aborts
	// startup.
	projectUseCase.Restore(ctx)

	projectHandler := handlers.NewProjectHandler(projectUseCase)
	catalogHandler := handlers.NewCatalogHandler()

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPlannerRoutes(v1, projectHandler, catalogHandler)
}

func setMiddlewares(logger zerolog.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
