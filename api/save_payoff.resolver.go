package api

import (
	"fmt"

	"optionpricer/internal/db/models/postgres/public/model"
	"optionpricer/internal/expression"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type savePayoffRequest struct {
	Name             string `json:"name"`
	PayoffExpression string `json:"payoffExpression"`
}

func (m ApiHandler) savePayoff(c *gin.Context) {
	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401, "unauthorized")
		return
	}

	var requestBody savePayoffRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}
	if requestBody.Name == "" {
		returnErrorJsonCode(fmt.Errorf("name is required"), c, 400, "malformed")
		return
	}

	// only statically valid expressions are worth keeping
	if _, err := expression.Compile(requestBody.PayoffExpression, expression.Env{}); err != nil {
		returnErrorJson(err, c)
		return
	}

	err = m.SavedPayoffRepository.Add(model.SavedPayoff{
		UserID:           userAccountID,
		Name:             requestBody.Name,
		PayoffExpression: requestBody.PayoffExpression,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"message": "saved"})
}

func userAccountIDFromContext(c *gin.Context) (uuid.UUID, error) {
	ginUserAccountID, ok := c.Get("userAccountID")
	if !ok {
		return uuid.Nil, fmt.Errorf("must be logged in")
	}
	userAccountIDStr, ok := ginUserAccountID.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("misformatted user account id")
	}

	userAccountID, err := uuid.Parse(userAccountIDStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("misformatted user account id: %w", err)
	}

	return userAccountID, nil
}
