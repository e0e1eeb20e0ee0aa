package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripreco/internal/catalog"
	"tripreco/internal/session"
	"tripreco/pkg/utils"
)

type SessionController struct {
	store session.StoreInterface
	cat   *catalog.Catalog
}

func NewSessionController(store session.StoreInterface, cat *catalog.Catalog) *SessionController {
	return &SessionController{
		store: store,
		cat:   cat,
	}
}

type createSessionRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

func (sc *SessionController) CreateSessionHandler(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	if _, ok := sc.cat.UserByID(req.UserID); !ok {
		utils.HandleServiceError(c, utils.ErrUserNotFound)
		return
	}

	sess, token, err := sc.store.Create(c.Request.Context(), req.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"session": sess, "token": token}, "Session created")
}

func (sc *SessionController) EndSessionHandler(c *gin.Context) {
	if err := sc.store.End(c.Request.Context(), c.GetString("session_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Session ended")
}
