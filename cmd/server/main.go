package main

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/kmori/techtrends/internal/auth"
	"github.com/kmori/techtrends/internal/config"
	myHTTP "github.com/kmori/techtrends/internal/handler/http"
	"github.com/kmori/techtrends/internal/logger"
	"github.com/kmori/techtrends/internal/objectstore"
	"github.com/kmori/techtrends/internal/server"
	"github.com/kmori/techtrends/internal/service"
	"github.com/kmori/techtrends/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("techtrends-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Storage.Region),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading AWS configs")
	}

	db := dynamodb.NewFromConfig(awsCfg)
	presigner := s3.NewPresignClient(s3.NewFromConfig(awsCfg))

	storages := store.NewStorages(db, cfg.Storage, log)
	services := service.NewServices(storages, log)

	verifier := auth.NewTokenVerifier(cfg.Auth, log)
	uploads := objectstore.NewAvatarStore(presigner, cfg.Uploads, log)

	handler := myHTTP.NewHandler(services, verifier, uploads, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
