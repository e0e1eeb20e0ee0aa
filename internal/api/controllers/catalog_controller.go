package controllers

import (
	"github.com/gin-gonic/gin"

	"tripreco/internal/catalog"
	"tripreco/pkg/utils"
)

type CatalogController struct {
	cat *catalog.Catalog
}

func NewCatalogController(cat *catalog.Catalog) *CatalogController {
	return &CatalogController{cat: cat}
}

func (cc *CatalogController) ListDestinationsHandler(c *gin.Context) {
	utils.RespondSuccess(c, cc.cat.Destinations(), "Fetched destinations")
}

func (cc *CatalogController) ListPOIsHandler(c *gin.Context) {
	id := c.Param("id")
	if _, ok := cc.cat.DestinationByID(id); !ok {
		utils.HandleServiceError(c, utils.ErrDestinationNotFound)
		return
	}
	utils.RespondSuccess(c, cc.cat.POIs(id), "Fetched POIs")
}
