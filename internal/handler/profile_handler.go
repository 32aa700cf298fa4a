package handler

import (
	"net/http"
	"strconv"

	"SwipeDeck/internal/generator"
	"SwipeDeck/internal/models"

	"github.com/gin-gonic/gin"
)

type ProfilesResponse struct {
	Profiles []models.Profile `json:"profiles"`
}

// ListProfiles godoc
// @Summary      합성 프로필 생성
// @Description  덱과 같은 규칙으로 새 프로필 목록을 생성합니다. 저장되지 않습니다.
// @Tags         Profiles
// @Produce      json
// @Param        count query int false "생성할 프로필 수 (1..100, 기본 12)"
// @Success      200 {object} handler.ProfilesResponse
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/profiles [get]
func (h *Handler) ListProfiles(c *gin.Context) {
	count := generator.DefaultCount
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > generator.MaxCount {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "count must be an integer between 1 and 100"})
			return
		}
		count = n
	}
	c.JSON(http.StatusOK, ProfilesResponse{Profiles: h.gen.Generate(count)})
}
