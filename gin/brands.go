package gin

import (
	"net/http"

	"github.com/brandforge/metagen"
	"github.com/gin-gonic/gin"
)

func (s *Server) handleListBrands(c *gin.Context) {
	brands, err := s.Brands.FindBrands(c.Request.Context(), metagen.BrandFilter{})
	if err != nil {
		abortWithError(c, err)
		return
	}
	if brands == nil {
		brands = []*metagen.Brand{}
	}
	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

func (s *Server) handleCreateBrand(c *gin.Context) {
	var brand metagen.Brand
	if err := c.ShouldBindJSON(&brand); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := s.Brands.CreateBrand(c.Request.Context(), &brand); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, brand)
}

func (s *Server) handleGetBrand(c *gin.Context) {
	brand, err := s.Brands.FindBrandByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, brand)
}

func (s *Server) handleDeleteBrand(c *gin.Context) {
	if err := s.Brands.DeleteBrand(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
