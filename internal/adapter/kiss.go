package adapter

import (
	app_errors "lingo-gate/internal/errors"
	"lingo-gate/internal/response"
	"lingo-gate/internal/translate"

	"github.com/gin-gonic/gin"
)

func init() {
	Register(kissAdapter{})
}

// kissAdapter serves the kiss-translator client. The shape matches the
// generic adapter but is kept as a distinct surface so the two client bases
// can evolve independently.
type kissAdapter struct{}

type kissRequest struct {
	Text string `json:"text" binding:"required"`
	From string `json:"from"`
	To   string `json:"to" binding:"required"`
}

type kissResponse struct {
	Text string `json:"text"`
	From string `json:"from"`
	To   string `json:"to"`
}

func (kissAdapter) Name() string {
	return "kiss"
}

func (kissAdapter) Handle(c *gin.Context, svc *translate.Service) {
	var req kissRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	result, ok := run(c, svc, translate.Request{Text: req.Text, Source: req.From, Target: req.To})
	if !ok {
		return
	}

	response.JSON(c, kissResponse{Text: result.Text, From: result.Source, To: result.Target})
}
