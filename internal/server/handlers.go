package server

import (
	"net/http"

	"mintkitchen/api/internal/domain"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleRoot(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{
		"message":           "Mint Kitchen API is running",
		"version":           s.cfg.App.Version,
		"square_configured": s.configured,
	})
}

func (s *Server) handleMenu(c *gin.Context) {
	menu, err := s.services.Catalog.Menu(c.Request.Context())
	if err != nil {
		abortWithError(c, "fetching menu", err)
		return
	}
	respond(c, http.StatusOK, menu)
}

func (s *Server) handleCategories(c *gin.Context) {
	categories, err := s.services.Catalog.Categories(c.Request.Context())
	if err != nil {
		abortWithError(c, "fetching categories", err)
		return
	}
	respond(c, http.StatusOK, gin.H{"categories": categories})
}

func (s *Server) handleItem(c *gin.Context) {
	raw, err := s.services.Catalog.Item(c.Request.Context(), c.Param("item_id"))
	if err != nil {
		abortWithError(c, "fetching item", err)
		return
	}
	respond(c, http.StatusOK, raw)
}

func (s *Server) handleCreateOrder(c *gin.Context) {
	var in domain.CreateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := s.services.Orders.CreateOrder(c.Request.Context(), in)
	if err != nil {
		abortWithError(c, "creating order", err)
		return
	}
	respond(c, http.StatusOK, result)
}

func (s *Server) handleCreatePayment(c *gin.Context) {
	var in domain.CreatePaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := s.services.Payments.CreatePayment(c.Request.Context(), in)
	if err != nil {
		abortWithError(c, "creating payment", err)
		return
	}
	respond(c, http.StatusOK, result)
}
