// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package frontend_routers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal_frontend "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/frontend"
	"github.com/rapidaai/gujarati-frontend/pkg/commons"
)

func TestRoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, err := commons.NewApplicationLogger(commons.WithLevel("error"))
	require.NoError(t, err)
	service, err := internal_frontend.NewService(logger)
	require.NoError(t, err)

	engine := gin.New()
	FrontendApiRoute(engine, logger, service)
	HealthCheckRoutes(engine, logger, nil)

	registered := make(map[string]bool)
	for _, r := range engine.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, route := range []string{
		http.MethodPost + " /v1/normalize",
		http.MethodPost + " /v1/phonemize",
		http.MethodPost + " /v1/analyze",
		http.MethodPost + " /v1/batch/normalize",
		http.MethodGet + " /v1/numerals/:value",
		http.MethodGet + " /v1/stream",
		http.MethodGet + " /readiness/",
		http.MethodGet + " /healthz/",
	} {
		assert.True(t, registered[route], route)
	}
}
