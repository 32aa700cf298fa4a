/**
* Name: 			session_handler.go
* Description: 		덱 세션 생성, 조회, 삭제 REST 핸들러
* Workflow: 		POST로 세션과 토큰 발급 -> 토큰으로 조회/삭제 -> /ws/deck 연결
 */
package handler

import (
	"context"
	"net/http"
	"time"

	"SwipeDeck/internal/deck"
	"SwipeDeck/internal/middleware"

	"github.com/gin-gonic/gin"
)

type CreateSessionResponse struct {
	SessionID string    `json:"session_id" example:"3f0c9a4e-8d5b-4c1e-9a57-0b3f1d2e6c7a"`
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateSession godoc
// @Summary      덱 세션 생성
// @Description  새 덱을 생성하고 세션 토큰을 발급합니다. 클라이언트 IP별 요청 수 제한이 있습니다.
// @Tags         Session
// @Produce      json
// @Success      201 {object} handler.CreateSessionResponse
// @Failure      429 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/sessions [post]
func (h *Handler) CreateSession(c *gin.Context) {
	entry := h.store.Create()
	id := entry.Loop.ID()

	token, expiresAt, err := h.issuer.Generate(id)
	if err != nil {
		_ = h.store.Delete(id)
		h.mapError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreateSessionResponse{SessionID: id, Token: token, ExpiresAt: expiresAt})
}

// GetSession godoc
// @Summary      덱 세션 상태 조회
// @Tags         Session
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "세션 ID"
// @Success      200 {object} deck.Snapshot
// @Failure      401 {object} handler.ErrorResponse
// @Failure      403 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/sessions/{id} [get]
func (h *Handler) GetSession(c *gin.Context) {
	id, ok := h.ownSession(c)
	if !ok {
		return
	}
	entry, err := h.store.Get(id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), queryTimeout)
	defer cancel()
	snap, err := deck.Query(ctx, entry.Loop, (*deck.Session).Snapshot)
	if err != nil {
		h.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// DeleteSession godoc
// @Summary      덱 세션 종료
// @Tags         Session
// @Security     BearerAuth
// @Param        id path string true "세션 ID"
// @Success      204
// @Failure      401 {object} handler.ErrorResponse
// @Failure      403 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/sessions/{id} [delete]
func (h *Handler) DeleteSession(c *gin.Context) {
	id, ok := h.ownSession(c)
	if !ok {
		return
	}
	if err := h.store.Delete(id); err != nil {
		h.mapError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// 토큰의 세션 ID와 경로의 세션 ID가 같아야 함
func (h *Handler) ownSession(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if id != c.GetString(middleware.SessionIDKey) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Token does not belong to this session"})
		return "", false
	}
	return id, true
}
