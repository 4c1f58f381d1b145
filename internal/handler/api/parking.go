package api

import (
	"net/http"

	reqdto "facility-parking/internal/handler/dto/request"
	resdto "facility-parking/internal/handler/dto/response"
	"facility-parking/internal/handler/httperr"
	"facility-parking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ParkingHandler struct {
	queries queries.ParkingQueries
}

func NewParkingHandler(parkingQueries queries.ParkingQueries) *ParkingHandler {
	return &ParkingHandler{queries: parkingQueries}
}

// @Summary Quote parking fee
// @Description Cheapest fee for a stay. Passes are chosen automatically and any tickets sent are ignored.
// @Description An exit before entry still answers 200 with a zero-fee result.
// @Tags parking
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Stay"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /api/parking/quote [post]
func (h *ParkingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result := h.queries.Quote(c.Request.Context(), req.ToInput())
	c.JSON(http.StatusOK, resdto.FromPricingResult(result))
}

// @Summary Quote parking fee with chosen passes
// @Description Prices exactly the tickets sent after capping them to the per-stay limits.
// @Description Refused passes are listed in receipt.unapplied.
// @Tags parking
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Stay and tickets"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /api/parking/quote/manual [post]
func (h *ParkingHandler) QuoteManual(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result := h.queries.QuoteWithPasses(c.Request.Context(), req.ToInput())
	c.JSON(http.StatusOK, resdto.FromPricingResult(result))
}
