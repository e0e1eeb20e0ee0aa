package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripreco/internal/catalog"
	"tripreco/internal/query"
	"tripreco/internal/reco"
	"tripreco/internal/session"
	"tripreco/pkg/utils"
)

type TripController struct {
	cat       *catalog.Catalog
	store     session.StoreInterface
	extractor query.SignalExtractorInterface
	trips     reco.TripServiceInterface
}

func NewTripController(cat *catalog.Catalog, store session.StoreInterface, extractor query.SignalExtractorInterface, trips reco.TripServiceInterface) *TripController {
	return &TripController{
		cat:       cat,
		store:     store,
		extractor: extractor,
		trips:     trips,
	}
}

type tripBundleRequest struct {
	DestinationID string   `json:"destination_id" binding:"required"`
	Text          string   `json:"text"`
	StartDate     string   `json:"start_date"`
	Nights        *int     `json:"nights"`
	Origin        string   `json:"origin"`
	BudgetMax     *int     `json:"budget_max"`
	MaxStops      *int     `json:"max_stops"`
	Tags          []string `json:"tags"`
}

func (tc *TripController) BuildTripBundleHandler(c *gin.Context) {
	var req tripBundleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "destination_id is required")
		return
	}

	sessID := c.GetString("session_id")
	sess, err := tc.store.Get(c.Request.Context(), sessID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	user, ok := tc.cat.UserByID(sess.UserID)
	if !ok {
		utils.HandleServiceError(c, utils.ErrUserNotFound)
		return
	}

	var start time.Time
	if req.StartDate != "" {
		start, err = time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
			return
		}
	}

	pq := query.ParsedQuery{Tags: []string{}}
	if req.Text != "" {
		pq, err = tc.extractor.Parse(c.Request.Context(), req.Text, tc.store.ScopedCache(sessID))
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
	}

	// Explicit fields override whatever the text parse produced.
	if req.Nights != nil {
		pq.Nights = req.Nights
	}
	if req.Origin != "" {
		pq.Origin = req.Origin
	}
	if req.BudgetMax != nil {
		pq.BudgetMax = req.BudgetMax
	}
	if req.MaxStops != nil {
		pq.MaxStops = req.MaxStops
	}
	pq.Tags = append(pq.Tags, req.Tags...)

	bundle, err := tc.trips.BuildTripBundle(c.Request.Context(), user, req.DestinationID, pq, start)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bundle, "Trip bundle built")
}
