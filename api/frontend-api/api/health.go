// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package frontend_api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	internal_cache "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/cache"
	"github.com/rapidaai/gujarati-frontend/pkg/commons"
)

type HealthCheckApi struct {
	logger commons.Logger
	redis  *redis.Client
}

// NewHealthCheckApi reports service health. client may be nil when caching is disabled.
func NewHealthCheckApi(logger commons.Logger, client *redis.Client) *HealthCheckApi {
	return &HealthCheckApi{logger: logger, redis: client}
}

func (hApi *HealthCheckApi) Readiness(c *gin.Context) {
	if hApi.redis != nil {
		if err := internal_cache.Ping(c.Request.Context(), hApi.redis); err != nil {
			hApi.logger.Warnf("readiness: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"ready": false, "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"ready": true})
}

func (hApi *HealthCheckApi) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"healthy": true})
}
