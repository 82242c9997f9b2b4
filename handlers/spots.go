package handlers

import (
	"net/http"

	"partnerapi/models"
	"partnerapi/services"

	"github.com/gin-gonic/gin"
)

type SpotHandler struct {
	spots *services.SpotsService
}

func NewSpotHandler(spots *services.SpotsService) *SpotHandler {
	return &SpotHandler{spots: spots}
}

// Create 新增車位
func (h *SpotHandler) Create(c *gin.Context) {
	var req models.CreateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "無效的輸入資料", err.Error())
		return
	}

	spot, err := h.spots.Create(c.Request.Context(), c.Param("eventId"), req)
	if err != nil {
		failWith(c, "新增車位失敗", err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "車位新增成功", spot)
}

// FindAll 查詢活動的所有車位
func (h *SpotHandler) FindAll(c *gin.Context) {
	spots, err := h.spots.FindAll(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		failWith(c, "查詢車位失敗", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "查詢成功", spots)
}

// FindOne 查詢特定車位
func (h *SpotHandler) FindOne(c *gin.Context) {
	spot, err := h.spots.FindOne(c.Request.Context(), c.Param("eventId"), c.Param("spotId"))
	if err != nil {
		failWith(c, "查詢車位失敗", err)
		return
	}
	if spot == nil {
		ErrorResponse(c, http.StatusNotFound, "車位不存在", models.ErrSpotNotFound.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "查詢成功", spot)
}

// Update 更新車位
func (h *SpotHandler) Update(c *gin.Context) {
	var req models.UpdateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "無效的輸入資料", err.Error())
		return
	}

	spot, err := h.spots.Update(c.Request.Context(), c.Param("eventId"), c.Param("spotId"), req)
	if err != nil {
		failWith(c, "更新車位失敗", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "車位更新成功", spot)
}

// Remove 刪除車位
func (h *SpotHandler) Remove(c *gin.Context) {
	spot, err := h.spots.Remove(c.Request.Context(), c.Param("eventId"), c.Param("spotId"))
	if err != nil {
		failWith(c, "刪除車位失敗", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "車位刪除成功", spot)
}
