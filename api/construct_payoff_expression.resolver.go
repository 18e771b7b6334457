package api

import (
	"fmt"

	"optionpricer/internal/expression"

	"github.com/gin-gonic/gin"
)

type constructPayoffExpressionRequest struct {
	UserInput string `json:"input"`
}

func (m ApiHandler) constructPayoffExpression(c *gin.Context) {
	if m.GptRepository == nil {
		returnErrorJsonCode(fmt.Errorf("payoff construction is not configured"), c, 503, "internal")
		return
	}

	var requestBody constructPayoffExpressionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	response, err := m.GptRepository.ConstructPayoffExpression(
		c.Request.Context(),
		requestBody.UserInput,
	)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	// never hand back a formula the pricer would reject
	if _, err := expression.Compile(response.Expression, expression.Env{}); err != nil {
		returnErrorJsonCode(
			fmt.Errorf("generated expression %q is invalid: %w", response.Expression, err),
			c, 502, "internal",
		)
		return
	}

	c.JSON(200, response)
}
