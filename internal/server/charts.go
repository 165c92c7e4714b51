package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	analyticsdomain "github.com/openretail/salesboard/internal/analytics/domain"
)

// chartData serves one analytical view. The result is serialized as-is;
// unknown questions come back as an empty array.
func (s *Server) chartData(c *gin.Context) {
	q := analyticsdomain.Question(c.Param("question"))

	data, err := s.analytics.Query(c.Request.Context(), q)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}
