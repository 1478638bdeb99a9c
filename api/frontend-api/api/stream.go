// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package frontend_api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const streamWriteTimeout = 5 * time.Second

var streamUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type StreamFrame struct {
	ID         string   `json:"id,omitempty"`
	Text       string   `json:"text"`
	Normalized string   `json:"normalized,omitempty"`
	Phonemes   []string `json:"phonemes,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// Stream normalizes and phonemizes every text frame received on the socket
// and answers with one JSON frame per input, in order.
//
// @Router /v1/stream [get]
// @Success 101 "Switching Protocols"
func (fApi *FrontendApi) Stream(c *gin.Context) {
	conn, err := streamUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		fApi.logger.Errorf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				fApi.logger.Warnf("stream closed unexpectedly: %v", err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		frame := StreamFrame{Text: string(payload)}
		result, err := fApi.service.Phonemize(ctx, frame.Text, true)
		frame.ID = result.ID
		frame.Normalized = result.Normalized
		frame.Phonemes = result.Phonemes
		if err != nil {
			frame.Error = err.Error()
		}

		if err := writeFrame(conn, frame); err != nil {
			fApi.logger.Warnf("stream write failed: %v", err)
			return
		}
	}
}

func writeFrame(conn *websocket.Conn, frame StreamFrame) error {
	if err := conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}
	return conn.WriteJSON(frame)
}
