package api

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultHistoryLimit = 50

func (m ApiHandler) getPricingHistory(c *gin.Context) {
	if m.PricingHistoryRepository == nil {
		returnErrorJsonCode(fmt.Errorf("pricing history is not configured"), c, 503, "internal")
		return
	}

	limit := int64(defaultHistoryLimit)
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil || parsed <= 0 {
			returnErrorJsonCode(fmt.Errorf("limit must be a positive integer"), c, 400, "malformed")
			return
		}
		limit = parsed
	}

	rows, err := m.PricingHistoryRepository.List(limit)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, rows)
}
