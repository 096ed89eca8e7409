package adapter

import (
	"strings"
	"time"

	app_errors "lingo-gate/internal/errors"
	"lingo-gate/internal/response"
	"lingo-gate/internal/translate"

	"github.com/gin-gonic/gin"
)

func init() {
	Register(deeplxAdapter{})
}

// deeplxAdapter serves DeepLX-compatible clients. Language codes arrive in
// upper case and are returned upper-cased; the internal pipeline works on
// lower-case ISO codes.
type deeplxAdapter struct{}

type deeplxRequest struct {
	Text       string `json:"text" binding:"required"`
	SourceLang string `json:"source_lang" binding:"required"`
	TargetLang string `json:"target_lang" binding:"required"`
}

type deeplxResponse struct {
	Code         int      `json:"code"`
	ID           int64    `json:"id"`
	Data         string   `json:"data"`
	Alternatives []string `json:"alternatives"`
	SourceLang   string   `json:"source_lang"`
	TargetLang   string   `json:"target_lang"`
	Method       string   `json:"method"`
}

func (deeplxAdapter) Name() string {
	return "deeplx"
}

func (deeplxAdapter) Handle(c *gin.Context, svc *translate.Service) {
	var req deeplxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	result, ok := run(c, svc, translate.Request{
		Text:   req.Text,
		Source: strings.ToLower(req.SourceLang),
		Target: strings.ToLower(req.TargetLang),
	})
	if !ok {
		return
	}

	response.JSON(c, deeplxResponse{
		Code:         200,
		ID:           time.Now().UnixMilli(),
		Data:         result.Text,
		Alternatives: []string{},
		SourceLang:   strings.ToUpper(result.Source),
		TargetLang:   strings.ToUpper(result.Target),
		Method:       "Free",
	})
}
