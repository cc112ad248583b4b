package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"optizen-service/internal/app/config"
	"optizen-service/internal/app/delivery/http/middlewares"
	"optizen-service/internal/app/delivery/http/routers"
	"optizen-service/internal/app/drivers/database"
	"optizen-service/internal/app/drivers/logger"
	"optizen-service/internal/app/services/core/cases"
	"optizen-service/internal/app/services/core/masterdata"
	"optizen-service/internal/app/services/core/patients"
	sharedredis "optizen-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Master data
	masterDataRepository := masterdata.NewMasterDataMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	if bootstrap.InternalConfig.App.MasterDataCacheEnabled {
		masterDataRepository = masterdata.NewMasterDataRedisCache(
			masterDataRepository,
			redisRepository,
			bootstrap.Logger,
			time.Duration(bootstrap.InternalConfig.App.MasterDataCacheTTLInMinute)*time.Minute,
		)
	}
	pharmacyItemRepository := masterdata.NewPharmacyItemMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	categoryResolver := masterdata.NewCategoryResolver(masterDataRepository, pharmacyItemRepository)
	masterDataUsecase := masterdata.NewMasterDataUsecase(masterDataRepository)
	masterDataController := masterdata.NewMasterDataController(bootstrap.Logger, masterDataUsecase, bootstrap.InternalConfig)

	// Patient
	patientRepository := patients.NewPatientMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// Case
	caseRepository := cases.NewCaseMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	caseResolver := cases.NewCaseResolver(categoryResolver)
	caseUsecase := cases.NewCaseUsecase(caseRepository, patientRepository, caseResolver)
	caseController := cases.NewCaseController(bootstrap.Logger, caseUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, caseController, masterDataController)
}
