package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripreco/internal/catalog"
	"tripreco/internal/query"
	"tripreco/internal/reco"
	"tripreco/pkg/utils"
)

type TransportController struct {
	cat *catalog.Catalog
}

func NewTransportController(cat *catalog.Catalog) *TransportController {
	return &TransportController{cat: cat}
}

func (tc *TransportController) FlightsHandler(c *gin.Context) {
	q := reco.FlightQuery{
		From: c.Query("from"),
		To:   c.Query("to"),
	}
	if v := c.Query("max_price"); v != "" {
		q.MaxPrice = query.ParseBudget(v)
	}
	if v := c.Query("max_stops"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid max_stops")
			return
		}
		q.MaxStops = &n
	}

	res := reco.FilterFlights(tc.cat.Flights(), q)
	if limit := atoiDefault(c.Query("limit"), 20); len(res) > limit {
		res = res[:limit]
	}
	utils.RespondSuccess(c, res, "Fetched flights")
}

func (tc *TransportController) TrainsHandler(c *gin.Context) {
	q := reco.TrainQuery{
		From:      c.Query("from"),
		To:        c.Query("to"),
		SeatClass: c.Query("class"),
	}
	if v := c.Query("max_price"); v != "" {
		q.MaxPrice = query.ParseBudget(v)
	}

	res := reco.FilterTrains(tc.cat.Trains(), q)
	if limit := atoiDefault(c.Query("limit"), 20); len(res) > limit {
		res = res[:limit]
	}
	utils.RespondSuccess(c, res, "Fetched trains")
}
