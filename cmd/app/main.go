package main

import (
	"atria/config"
	"atria/di"
	"atria/docs"
	"atria/shared/logger"
)

// @title Atria CRM API
// @version 1.0
// @description Clinic and agency CRM: patients, providers, appointments, service catalog, companies, projects and social content planning.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	docs.SwaggerInfo.Host = cfg.Server.Host

	http := di.InitializeService()
	http.Serve()
}
