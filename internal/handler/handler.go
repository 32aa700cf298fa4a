/**
* Name: 			handler.go
* Description: 		Gin HTTP 핸들러 공통 구성 (라우팅, 에러 응답)
* Workflow: 		NewHandler -> Register -> 각 엔드포인트
 */
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"SwipeDeck/internal/auth"
	"SwipeDeck/internal/deck"
	"SwipeDeck/internal/middleware"
	"SwipeDeck/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const queryTimeout = 2 * time.Second

type ErrorResponse struct {
	Error string `json:"error" example:"에러 원인 및 설명"`
}

// SessionStore is the part of storage.SessionStore the handlers use.
type SessionStore interface {
	Create() *storage.Entry
	Get(id string) (*storage.Entry, error)
	Delete(id string) error
}

type TokenIssuer interface {
	middleware.TokenValidator
	Generate(sessionID string) (string, time.Time, error)
}

type Handler struct {
	store    SessionStore
	issuer   TokenIssuer
	gen      deck.Generator
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func NewHandler(store SessionStore, issuer TokenIssuer, gen deck.Generator, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		issuer: issuer,
		gen:    gen,
		logger: logger,
		// Origin은 CORS 설정과 동일하게 상위에서 제한
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Register mounts the API and websocket routes. createLimit guards session
// creation and may be nil.
func (h *Handler) Register(r gin.IRouter, createLimit gin.HandlerFunc) {
	r.GET("/health", h.Health)

	api := r.Group("/api")
	api.GET("/profiles", h.ListProfiles)

	create := []gin.HandlerFunc{h.CreateSession}
	if createLimit != nil {
		create = append([]gin.HandlerFunc{createLimit}, create...)
	}
	api.POST("/sessions", create...)

	protected := api.Group("/sessions").Use(middleware.SessionToken(h.issuer))
	{
		protected.GET("/:id", h.GetSession)
		protected.DELETE("/:id", h.DeleteSession)
	}

	r.GET("/ws/deck", middleware.SessionToken(h.issuer), h.HandleDeckConnection)
}

// Health godoc
// @Summary      헬스 체크
// @Tags         System
// @Produce      plain
// @Success      200 {string} string "OK"
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (h *Handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrSessionNotFound), errors.Is(err, deck.ErrLoopStopped):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Session not found"})
	case errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid token"})
	default:
		h.logger.Error("internal error", "request_id", c.GetString(middleware.RequestIDKey), "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
	}
}
