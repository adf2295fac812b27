package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PriceRequest is the PATCH /price body.
// Price is a pointer so that an explicit 0 passes the required check.
type PriceRequest struct {
	Price *uint64 `json:"price" binding:"required"`
}

// handleGetPrice returns the current price as a decimal string
func (s *Server) handleGetPrice(c *gin.Context) {
	price, ok := s.pricing.Current(c.Request.Context())
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	c.String(http.StatusOK, strconv.FormatUint(price, 10))
}

// handlePatchPrice sets the price
func (s *Server) handlePatchPrice(c *gin.Context) {
	var req PriceRequest
	if err := c.BindJSON(&req); err != nil {
		// BindJSON already aborted with 400
		return
	}

	s.pricing.Update(c.Request.Context(), *req.Price)
	c.Status(http.StatusOK)
}

// handleDeletePrice clears the price
func (s *Server) handleDeletePrice(c *gin.Context) {
	s.pricing.Reset(c.Request.Context())
	c.Status(http.StatusOK)
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}

// handleReady handles readiness requests
func (s *Server) handleReady(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ready",
		"price_present": s.pricing.Present(),
	})
}
