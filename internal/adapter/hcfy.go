package adapter

import (
	app_errors "lingo-gate/internal/errors"
	"lingo-gate/internal/response"
	"lingo-gate/internal/translate"

	"github.com/gin-gonic/gin"
)

func init() {
	Register(hcfyAdapter{})
}

// hcfyAdapter serves the hcfy ("划词翻译") dictionary extension, which names
// languages in human-readable form instead of ISO codes. The name table
// covers the three languages the extension ships with; anything else passes
// through unchanged in both directions rather than erroring.
type hcfyAdapter struct{}

// hcfyCodeByName maps hcfy display names to ISO 639-1 codes. The extension
// says 日语 for Japanese, which maps to "ja" (not the legacy "jp" tag).
var hcfyCodeByName = map[string]string{
	"中文(简体)": "zh",
	"英语":     "en",
	"日语":     "ja",
}

var hcfyNameByCode = map[string]string{
	"zh": "中文(简体)",
	"en": "英语",
	"ja": "日语",
}

func hcfyCode(name string) string {
	if code, ok := hcfyCodeByName[name]; ok {
		return code
	}
	return name
}

func hcfyName(code string) string {
	if name, ok := hcfyNameByCode[code]; ok {
		return name
	}
	return code
}

type hcfyRequest struct {
	Text        string   `json:"text" binding:"required"`
	Source      string   `json:"source"`
	Destination []string `json:"destination"`
}

type hcfyResponse struct {
	Text string `json:"text"`
	From string `json:"from"`
	To   string `json:"to"`
	// Result is a single-element list; the shape is reserved for future
	// multi-candidate output.
	Result []string `json:"result"`
}

func (hcfyAdapter) Name() string {
	return "hcfy"
}

func (hcfyAdapter) Handle(c *gin.Context, svc *translate.Service) {
	var req hcfyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	source := ""
	if req.Source != "" {
		source = hcfyCode(req.Source)
	}

	target := selectHcfyTarget(req.Destination, source)

	result, ok := run(c, svc, translate.Request{Text: req.Text, Source: source, Target: target})
	if !ok {
		return
	}

	response.JSON(c, hcfyResponse{
		Text:   req.Text,
		From:   hcfyName(result.Source),
		To:     hcfyName(result.Target),
		Result: []string{result.Text},
	})
}

// selectHcfyTarget picks the target language from the destination list.
// An empty list defaults to English; when the first entry names the source
// language itself, the second entry is used instead so text is never
// translated into its own language.
func selectHcfyTarget(destination []string, source string) string {
	if len(destination) == 0 {
		return "en"
	}
	if source != "" && len(destination) >= 2 && hcfyCode(destination[0]) == source {
		return hcfyCode(destination[1])
	}
	return hcfyCode(destination[0])
}
