// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package frontend_api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	internal_frontend "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/frontend"
	internal_numerals "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/numerals"
	internal_type "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/type"
	"github.com/rapidaai/gujarati-frontend/pkg/commons"
)

type FrontendApi struct {
	logger  commons.Logger
	service *internal_frontend.Service
}

func NewFrontendApi(logger commons.Logger, service *internal_frontend.Service) *FrontendApi {
	return &FrontendApi{logger: logger, service: service}
}

type NormalizeRequest struct {
	Text string `json:"text"`
}

type PhonemizeRequest struct {
	Text      string `json:"text"`
	Normalize bool   `json:"normalize"`
}

type AnalyzeRequest struct {
	Text         string `json:"text" binding:"required"`
	SentenceType string `json:"sentence_type" binding:"omitempty,oneof=statement question exclamation"`
}

type BatchNormalizeRequest struct {
	Texts []string `json:"texts" binding:"required,min=1,max=256"`
}

// Normalize
//
// @Router /v1/normalize [post]
// @Summary Convert written Gujarati text to its spoken form
// @Success 200 {object} internal_frontend.NormalizeResult
// @Failure 422 {object} gin.H
func (fApi *FrontendApi) Normalize(c *gin.Context) {
	var req NormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := fApi.service.Normalize(c.Request.Context(), req.Text)
	if err != nil {
		fApi.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Phonemize
//
// @Router /v1/phonemize [post]
// @Summary Convert Gujarati text to IPA phonemes
func (fApi *FrontendApi) Phonemize(c *gin.Context) {
	var req PhonemizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := fApi.service.Phonemize(c.Request.Context(), req.Text, req.Normalize)
	if err != nil {
		fApi.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Analyze
//
// @Router /v1/analyze [post]
// @Summary Tokenize, phonemize and score the prosody of every sentence
func (fApi *FrontendApi) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var sentenceType internal_type.SentenceType
	if req.SentenceType != "" {
		sentenceType = internal_type.SentenceTypeFromStr(req.SentenceType)
	}
	analysis, err := fApi.service.Analyze(c.Request.Context(), req.Text, sentenceType)
	if err != nil {
		fApi.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// BatchNormalize
//
// @Router /v1/batch/normalize [post]
// @Summary Normalize many texts, results are returned in request order
func (fApi *FrontendApi) BatchNormalize(c *gin.Context) {
	var req BatchNormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	results, err := fApi.service.NormalizeBatch(c.Request.Context(), req.Texts)
	if err != nil {
		fApi.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// Numeral
//
// @Router /v1/numerals/:value [get]
// @Summary Read a number in Gujarati
func (fApi *FrontendApi) Numeral(c *gin.Context) {
	reading, err := fApi.service.Numeral(c.Param("value"))
	if err != nil {
		fApi.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reading)
}

func (fApi *FrontendApi) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, internal_frontend.ErrInvalidCharacters):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, internal_numerals.ErrNotANumber):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		fApi.logger.Errorf("frontend request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
