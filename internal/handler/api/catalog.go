package api

import (
	"net/http"
	"strconv"

	resdto "pos-core/internal/handler/dto/response"
	"pos-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List products
// @Description List sellable product variants with promotion-resolved prices
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param search query string false "Product name filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.ProductResponse
// @Failure 401 {object} map[string]string
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	limit := parseInt32(c.Query("limit"), 20)
	offset := parseInt32(c.Query("offset"), 0)

	views, err := h.catalogQueries.ListProducts(c.Request.Context(), c.Query("search"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductViews(views))
}

func parseInt32(value string, fallback int32) int32 {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(parsed)
}
