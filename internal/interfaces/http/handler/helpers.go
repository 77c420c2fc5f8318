package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// optionalYear parses the optional ?year= query parameter
func optionalYear(c *gin.Context) (*int, error) {
	raw := c.Query("year")
	if raw == "" {
		return nil, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &year, nil
}

// parseRecordID parses a numeric path parameter
func parseRecordID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
