/**
* Name: 			deck_connection.go
* Description: 		덱 세션 WebSocket 연결 관리
* Workflow: 		토큰 검증 -> 업그레이드 -> Surface 연결 -> 읽기/쓰기 펌프 -> 연결 해제
 */
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"SwipeDeck/internal/deck"
	"SwipeDeck/internal/middleware"
	"SwipeDeck/internal/storage"
	"SwipeDeck/internal/wire"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	outboxSize     = 256
)

// HandleDeckConnection godoc
// @Summary      덱 WebSocket 연결
// @Description  토큰의 세션에 WebSocket을 연결합니다. 서버가 렌더 명령을 보내고 클라이언트는 포인터/버튼/트랜지션 이벤트를 보냅니다.
// @Description  <br>
// @Description  **참고: 이것은 표준 HTTP API가 아닙니다.**
// @Description  클라이언트는 `ws://` 또는 `wss://` 스킴을 사용하여 연결해야 하며, 인증은 **쿼리 파라미터('token')**로 수행됩니다.
// @Tags         WebSocket (Deck)
// @Param        token query string true "세션 생성 시 발급받은 토큰"
// @Success      101 {string} string "101 Switching Protocols"
// @Failure      401 {object} handler.ErrorResponse "토큰 누락 또는 유효하지 않은 토큰"
// @Failure      404 {object} handler.ErrorResponse "세션 없음"
// @Router       /ws/deck [get]
func (h *Handler) HandleDeckConnection(c *gin.Context) {
	sessionID := c.GetString(middleware.SessionIDKey)
	entry, err := h.store.Get(sessionID)
	if err != nil {
		h.mapError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "session_id", sessionID, "error", err)
		return
	}
	defer conn.Close()

	logger := h.logger.With("session_id", sessionID, "remote", c.ClientIP())
	logger.Info("websocket connected")
	manageDeckSession(c.Request.Context(), conn, entry, logger)
	logger.Info("websocket disconnected")
}

func manageDeckSession(parentCtx context.Context, conn *websocket.Conn, entry *storage.Entry, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	out := make(chan wire.Command, outboxSize)
	superseded := entry.Surface.Attach(out, ctx.Done())
	defer entry.Surface.Detach(out)

	// 같은 세션에 새 연결이 붙으면 이전 연결은 종료
	go func() {
		select {
		case <-superseded:
			logger.Info("websocket superseded by a newer connection")
			cancel()
		case <-ctx.Done():
		}
	}()

	// 재연결 시 진행 중인 dismissal을 마무리하고 덱을 다시 렌더링
	if !entry.Loop.Do(func(s *deck.Session) { s.SetSurface(entry.Surface) }) {
		logger.Warn("session loop already stopped")
		return
	}

	var wg sync.WaitGroup
	wg.Add(2)

	// Client -> Server, 읽기 전담
	go func() {
		defer wg.Done()
		defer cancel()
		readPump(ctx, conn, entry.Loop, out, logger)
	}()

	// Server -> Client, 쓰기 전담
	go func() {
		defer wg.Done()
		defer cancel()
		writePump(ctx, conn, out, entry.Loop.Done(), logger)
	}()

	wg.Wait()
}

func readPump(ctx context.Context, conn *websocket.Conn, loop *deck.Loop, out chan<- wire.Command, logger *slog.Logger) {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		messageType, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("readPump(): read failed", "error", err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			logger.Warn("readPump(): unsupported message type", "type", messageType)
			continue
		}

		task, err := wire.Decode(raw)
		if err != nil {
			logger.Warn("readPump(): bad message", "error", err)
			select {
			case out <- wire.ErrorCommand(err):
			case <-ctx.Done():
				return
			}
			continue
		}
		if !loop.Do(task) {
			return
		}
	}
}

func writePump(ctx context.Context, conn *websocket.Conn, out <-chan wire.Command, loopDone <-chan struct{}, logger *slog.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		// 블로킹된 ReadMessage 해제
		conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-loopDone:
			logger.Info("writePump(): session ended")
			return
		case cmd := <-out:
			payload, err := json.Marshal(cmd)
			if err != nil {
				logger.Error("writePump(): encode command", "op", cmd.Op, "error", err)
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				logger.Warn("writePump(): write failed", "error", err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
