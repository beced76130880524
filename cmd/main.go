package main

import (
	"os"

	"github.com/KidKyzo/Smart-Fit-sub000/config"
	"github.com/KidKyzo/Smart-Fit-sub000/routes"
	"github.com/KidKyzo/Smart-Fit-sub000/utils"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	defer func() { _ = config.Log.Sync() }()

	config.InitDB()
	utils.InitS3()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	config.Log.Info("listening", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		config.Log.Fatal("server exited", zap.Error(err))
	}
}
