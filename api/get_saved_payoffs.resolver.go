package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type getSavedPayoffsResponse struct {
	SavedPayoffID    uuid.UUID `json:"savedPayoffID"`
	Name             string    `json:"name"`
	PayoffExpression string    `json:"payoffExpression"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (m ApiHandler) getSavedPayoffs(c *gin.Context) {
	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401, "unauthorized")
		return
	}

	savedPayoffs, err := m.SavedPayoffRepository.List(userAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []getSavedPayoffsResponse{}
	for _, p := range savedPayoffs {
		out = append(out, getSavedPayoffsResponse{
			SavedPayoffID:    p.SavedPayoffID,
			Name:             p.Name,
			PayoffExpression: p.PayoffExpression,
			CreatedAt:        p.CreatedAt,
		})
	}

	c.JSON(200, out)
}
