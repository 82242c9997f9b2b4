package handlers

import (
	"net/http"

	"partnerapi/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// IssueToken 以 API key 換取 token
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var input struct {
		APIKey  string `json:"api_key" binding:"required"`
		Partner string `json:"partner" binding:"required,max=50"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "無效的輸入資料", err.Error())
		return
	}

	token, err := h.auth.IssueToken(input.APIKey, input.Partner)
	if err != nil {
		failWith(c, "認證失敗", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "認證成功", gin.H{"token": token})
}
