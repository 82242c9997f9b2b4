package handlers

import (
	"net/http"

	"partnerapi/models"
	"partnerapi/services"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	events *services.EventsService
}

func NewEventHandler(events *services.EventsService) *EventHandler {
	return &EventHandler{events: events}
}

func (h *EventHandler) Create(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "無效的輸入資料", err.Error())
		return
	}

	event, err := h.events.Create(c.Request.Context(), req)
	if err != nil {
		failWith(c, "新增活動失敗", err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "活動新增成功", event)
}

func (h *EventHandler) FindAll(c *gin.Context) {
	events, err := h.events.FindAll(c.Request.Context())
	if err != nil {
		failWith(c, "查詢活動失敗", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "查詢成功", events)
}

func (h *EventHandler) FindOne(c *gin.Context) {
	event, err := h.events.FindOne(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		failWith(c, "查詢活動失敗", err)
		return
	}
	if event == nil {
		ErrorResponse(c, http.StatusNotFound, "活動不存在", models.ErrEventNotFound.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "查詢成功", event)
}

func (h *EventHandler) Update(c *gin.Context) {
	var req models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "無效的輸入資料", err.Error())
		return
	}

	event, err := h.events.Update(c.Request.Context(), c.Param("eventId"), req)
	if err != nil {
		failWith(c, "更新活動失敗", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "活動更新成功", event)
}

func (h *EventHandler) Remove(c *gin.Context) {
	event, err := h.events.Remove(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		failWith(c, "刪除活動失敗", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "活動刪除成功", event)
}

// Reserve 預約車位並開票
func (h *EventHandler) Reserve(c *gin.Context) {
	var req models.ReserveSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "無效的輸入資料", err.Error())
		return
	}

	tickets, err := h.events.Reserve(c.Request.Context(), c.Param("eventId"), req)
	if err != nil {
		failWith(c, "預約失敗", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "預約成功", tickets)
}
