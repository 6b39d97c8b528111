package app

import (
	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/server"
	"github.com/zenavi/storefront-backend/internal/utils"
)

type Config struct {
	Port           string
	AllowedOrigins []string
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	origins := server.ParseOrigins(utils.GetEnv("ALLOWED_ORIGINS", "", log))
	return Config{
		Port:           port,
		AllowedOrigins: origins,
	}
}
