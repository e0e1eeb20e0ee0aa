package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripreco/internal/query"
	"tripreco/internal/session"
	"tripreco/pkg/utils"
)

type SearchController struct {
	extractor query.SignalExtractorInterface
	resolver  *query.Resolver
	store     session.StoreInterface
}

func NewSearchController(extractor query.SignalExtractorInterface, resolver *query.Resolver, store session.StoreInterface) *SearchController {
	return &SearchController{
		extractor: extractor,
		resolver:  resolver,
		store:     store,
	}
}

type parseSearchRequest struct {
	Text string `json:"text" binding:"required"`
}

type parseSearchResponse struct {
	query.ParsedQuery
	// Fuzzy city suggestions, only when no destination resolved.
	Suggestions []string `json:"suggestions,omitempty"`
}

func (sc *SearchController) ParseSearchHandler(c *gin.Context) {
	var req parseSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "text is required")
		return
	}

	sessID := c.GetString("session_id")
	if _, err := sc.store.Get(c.Request.Context(), sessID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	pq, err := sc.extractor.Parse(c.Request.Context(), req.Text, sc.store.ScopedCache(sessID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp := parseSearchResponse{ParsedQuery: pq}
	if pq.DestinationID == "" {
		resp.Suggestions = sc.resolver.SuggestFromText(req.Text, 3)
	}

	utils.RespondSuccess(c, resp, "Query parsed")
}
