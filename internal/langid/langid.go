// Package langid resolves request language codes. Explicit codes are parsed
// as BCP 47 tags reduced to their ISO 639-1 primary subtag; absent codes are
// auto-detected, constrained to the languages the registry actually loaded.
package langid

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	app_errors "lingo-gate/internal/errors"

	"github.com/pemistahl/lingua-go"
	"golang.org/x/text/language"
)

// autoSource values of the source field that request auto-detection.
const autoSource = "auto"

// ParseCode parses a language code into its ISO 639-1 form. Regional
// subtags are accepted and stripped ("en-US" -> "en").
func ParseCode(code string) (string, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return "", app_errors.NewValidationError(fmt.Sprintf("Invalid language code: '%s'. Please use ISO 639-1 format.", code))
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", app_errors.NewValidationError(fmt.Sprintf("Invalid language code: '%s'. Please use ISO 639-1 format.", code))
	}
	iso := base.String()
	if len(iso) != 2 {
		return "", app_errors.NewValidationError(fmt.Sprintf("Language '%s' doesn't have an ISO 639-1 code", code))
	}
	return iso, nil
}

// linguaByCode finds the lingua language for an ISO 639-1 code.
func linguaByCode(code string) (lingua.Language, bool) {
	for _, lang := range lingua.AllLanguages() {
		if strings.ToLower(lang.IsoCode639_1().String()) == code {
			return lang, true
		}
	}
	return lingua.Unknown, false
}

// Resolver resolves source and target languages for translation requests.
// The constrained detector only considers languages present in the model
// registry: unconstrained detection could pick a language with no loaded
// model, which would surface as a less specific unsupported-pair error later.
type Resolver struct {
	detector lingua.LanguageDetector
	allowed  map[string]struct{}
}

// NewResolver builds a resolver whose detector is constrained to the given
// ISO 639-1 codes. Codes with no detector support are skipped with the
// remaining ones still honored; lingua needs at least two candidates, so a
// single-language allow-list is padded with English as a tie-breaker
// (detections outside the allow-list still fail resolution).
func NewResolver(codes []string) *Resolver {
	allowed := make(map[string]struct{}, len(codes))
	var candidates []lingua.Language
	for _, code := range codes {
		if _, ok := allowed[code]; ok {
			continue
		}
		lang, ok := linguaByCode(code)
		if !ok {
			continue
		}
		allowed[code] = struct{}{}
		candidates = append(candidates, lang)
	}
	if len(candidates) == 1 && candidates[0] != lingua.English {
		candidates = append(candidates, lingua.English)
	}

	var detector lingua.LanguageDetector
	if len(candidates) >= 2 {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			Build()
	}

	return &Resolver{detector: detector, allowed: allowed}
}

// Allowed returns the sorted allow-list, mainly for logging.
func (r *Resolver) Allowed() []string {
	codes := make([]string, 0, len(r.allowed))
	for code := range r.allowed {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ResolveSource resolves the source language. An absent, empty or "auto"
// explicit code triggers constrained detection over text; detection failure
// is an error, never a silent default.
func (r *Resolver) ResolveSource(explicit, text string) (string, error) {
	if explicit != "" && explicit != autoSource {
		return ParseCode(explicit)
	}

	if r.detector == nil {
		return "", app_errors.NewDetectionError("Language detection unavailable: no models loaded")
	}
	lang, ok := r.detector.DetectLanguageOf(text)
	if !ok {
		return "", app_errors.NewDetectionError("Language detection failed: text may be too short or ambiguous")
	}
	code := strings.ToLower(lang.IsoCode639_1().String())
	if _, allowed := r.allowed[code]; !allowed {
		return "", app_errors.NewDetectionError(fmt.Sprintf("Detected language '%s' has no loaded model", code))
	}
	return code, nil
}

// ResolveTarget resolves the target language, which must always be explicit.
func (r *Resolver) ResolveTarget(code string) (string, error) {
	if code == "" {
		return "", app_errors.NewValidationError("Target language is required")
	}
	return ParseCode(code)
}

var (
	globalDetectorOnce sync.Once
	globalDetector     lingua.LanguageDetector
)

// Detect identifies the language of text without an allow-list. Used by the
// standalone detect endpoint, where no target model set is implied.
func Detect(text string) (string, error) {
	globalDetectorOnce.Do(func() {
		globalDetector = lingua.NewLanguageDetectorBuilder().
			FromAllSpokenLanguages().
			Build()
	})
	lang, ok := globalDetector.DetectLanguageOf(text)
	if !ok {
		return "", app_errors.NewDetectionError("Language detection failed: text may be too short or ambiguous")
	}
	return strings.ToLower(lang.IsoCode639_1().String()), nil
}
