package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tripreco/internal/catalog"
	"tripreco/internal/query"
	"tripreco/internal/reco"
	"tripreco/internal/session"
	"tripreco/pkg/utils"
)

type RecoController struct {
	cat   *catalog.Catalog
	store session.StoreInterface
}

func NewRecoController(cat *catalog.Catalog, store session.StoreInterface) *RecoController {
	return &RecoController{
		cat:   cat,
		store: store,
	}
}

type hotelRecommendation struct {
	Hotel       catalog.Hotel `json:"hotel"`
	Explanation string        `json:"explanation"`
}

func (rc *RecoController) DestinationsHandler(c *gin.Context) {
	user, _, ok := rc.sessionUser(c)
	if !ok {
		return
	}

	pq := signalsFromQuery(c)
	dests := reco.RecommendDestinations(rc.cat, user.Profile, pq, atoiDefault(c.Query("limit"), 6))
	utils.RespondSuccess(c, dests, "Fetched destination recommendations")
}

func (rc *RecoController) HotelsHandler(c *gin.Context) {
	user, cache, ok := rc.sessionUser(c)
	if !ok {
		return
	}

	pq := signalsFromQuery(c)
	hotels := reco.RecommendHotels(rc.cat, user.Profile, pq, user.PastTrips, atoiDefault(c.Query("limit"), 6))

	ctx := c.Request.Context()
	items := make([]hotelRecommendation, 0, len(hotels))
	for _, h := range hotels {
		// Explanation text is memoized per (session, hotel).
		var expl string
		key := "explain::" + h.ID
		if hit, err := cache.Get(ctx, key, &expl); err != nil || !hit {
			expl = reco.ExplainHotel(h)
			_ = cache.Set(ctx, key, expl)
		}
		items = append(items, hotelRecommendation{Hotel: h, Explanation: expl})
	}

	utils.RespondSuccess(c, items, "Fetched hotel recommendations")
}

func (rc *RecoController) sessionUser(c *gin.Context) (catalog.User, *session.ScopedCache, bool) {
	sessID := c.GetString("session_id")
	sess, err := rc.store.Get(c.Request.Context(), sessID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return catalog.User{}, nil, false
	}
	user, ok := rc.cat.UserByID(sess.UserID)
	if !ok {
		utils.HandleServiceError(c, utils.ErrUserNotFound)
		return catalog.User{}, nil, false
	}
	return user, rc.store.ScopedCache(sessID), true
}

// signalsFromQuery rebuilds a ParsedQuery from explicit query params, for
// callers that already hold parsed signals instead of raw text.
func signalsFromQuery(c *gin.Context) query.ParsedQuery {
	pq := query.ParsedQuery{Tags: []string{}}
	if id := c.Query("destination_id"); id != "" {
		pq.DestinationID = id
	}
	if v := c.Query("budget_max"); v != "" {
		pq.BudgetMax = query.ParseBudget(v)
	}
	if v := c.Query("tags"); v != "" {
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				pq.Tags = append(pq.Tags, t)
			}
		}
	}
	if v := c.Query("nights"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			pq.Nights = &n
		}
	}
	return pq
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
