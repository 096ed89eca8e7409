package adapter

import (
	app_errors "lingo-gate/internal/errors"
	"lingo-gate/internal/response"
	"lingo-gate/internal/translate"

	"github.com/gin-gonic/gin"
)

func init() {
	Register(immersiveAdapter{})
}

// immersiveAdapter serves the immersive-translate batch format. Items are
// translated sequentially in input order; any single failure fails the
// whole request with no partial results.
type immersiveAdapter struct{}

type immersiveRequest struct {
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang" binding:"required"`
	// TextList is a pointer so a missing field is rejected at decode time
	// while an explicit empty list still succeeds with no translations.
	TextList *[]string `json:"text_list" binding:"required"`
}

type immersiveItem struct {
	DetectedSourceLang string `json:"detected_source_lang"`
	Text               string `json:"text"`
}

type immersiveResponse struct {
	Translations []immersiveItem `json:"translations"`
}

func (immersiveAdapter) Name() string {
	return "imme"
}

func (immersiveAdapter) Handle(c *gin.Context, svc *translate.Service) {
	var req immersiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	textList := *req.TextList
	translations := make([]immersiveItem, 0, len(textList))
	chars := 0
	var last translate.Result
	for _, text := range textList {
		result, err := svc.Do(translate.Request{
			Text:   text,
			Source: req.SourceLang,
			Target: req.TargetLang,
		})
		if err != nil {
			response.Error(c, app_errors.ParseAPIError(err))
			return
		}
		chars += len(text)
		last = result
		translations = append(translations, immersiveItem{
			DetectedSourceLang: result.Source,
			Text:               result.Text,
		})
	}
	if len(translations) > 0 {
		annotate(c, last.Source, last.Target, chars)
	}

	response.JSON(c, immersiveResponse{Translations: translations})
}
