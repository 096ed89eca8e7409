package adapter

import (
	app_errors "lingo-gate/internal/errors"
	"lingo-gate/internal/response"
	"lingo-gate/internal/translate"

	"github.com/gin-gonic/gin"
)

func init() {
	Register(genericAdapter{})
}

// genericAdapter is the native wire format: a direct passthrough of the
// canonical request and result.
type genericAdapter struct{}

type genericRequest struct {
	Text string `json:"text" binding:"required"`
	From string `json:"from"`
	To   string `json:"to" binding:"required"`
}

type genericResponse struct {
	Text string `json:"text"`
	From string `json:"from"`
	To   string `json:"to"`
}

func (genericAdapter) Name() string {
	return "translate"
}

func (genericAdapter) Handle(c *gin.Context, svc *translate.Service) {
	var req genericRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	result, ok := run(c, svc, translate.Request{Text: req.Text, Source: req.From, Target: req.To})
	if !ok {
		return
	}

	response.JSON(c, genericResponse{Text: result.Text, From: result.Source, To: result.Target})
}
