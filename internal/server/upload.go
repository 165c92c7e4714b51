package server

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// uploadCSV ingests one multipart CSV batch. Row-level failures come
// back as diagnostics in the report; a non-nil service error means the
// batch was rolled back.
func (s *Server) uploadCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("csv_file")
	if err != nil {
		AbortWithError(c, fmt.Errorf("%w: csv_file is required", ErrInvalidRequest))
		return
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".csv") {
		AbortWithError(c, fmt.Errorf("%w: only .csv files are accepted", ErrInvalidRequest))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		AbortWithError(c, err)
		return
	}
	defer f.Close()

	report, err := s.ingest.IngestCSV(c.Request.Context(), f)
	if err != nil {
		s.log.Error("csv batch rejected",
			zap.String("filename", fileHeader.Filename),
			zap.Error(err),
		)
		AbortWithError(c, err)
		return
	}

	success := report.TotalRows - report.SkippedRows
	rowsIngested.Add(float64(success))
	rowsSkipped.Add(float64(report.SkippedRows))

	c.JSON(http.StatusOK, gin.H{
		"total_rows":   report.TotalRows,
		"success_rows": success,
		"skipped_rows": report.SkippedRows,
		"diagnostics":  report.Diagnostics,
	})
}
