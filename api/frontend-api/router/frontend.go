// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package frontend_routers

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	frontendApi "github.com/rapidaai/gujarati-frontend/api/frontend-api/api"
	internal_frontend "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/frontend"
	"github.com/rapidaai/gujarati-frontend/pkg/commons"
)

func FrontendApiRoute(engine *gin.Engine, logger commons.Logger, service *internal_frontend.Service) {
	logger.Info("FrontendApiRoute added to engine.")
	apiv1 := engine.Group("v1")
	fApi := frontendApi.NewFrontendApi(logger, service)
	{
		apiv1.POST("/normalize", fApi.Normalize)
		apiv1.POST("/phonemize", fApi.Phonemize)
		apiv1.POST("/analyze", fApi.Analyze)
		apiv1.POST("/batch/normalize", fApi.BatchNormalize)
		apiv1.GET("/numerals/:value", fApi.Numeral)
		apiv1.GET("/stream", fApi.Stream)
	}
}

// HealthCheckRoutes registers the probes. client may be nil.
func HealthCheckRoutes(engine *gin.Engine, logger commons.Logger, client *redis.Client) {
	logger.Info("Internal HealthCheckRoutes added to engine.")
	apiv1 := engine.Group("")
	hcApi := frontendApi.NewHealthCheckApi(logger, client)
	{
		apiv1.GET("/readiness/", hcApi.Readiness)
		apiv1.GET("/healthz/", hcApi.Healthz)
	}
}
