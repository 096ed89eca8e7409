// Package registry discovers language-pair model bundles on disk and
// registers them with the translation engine at startup.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"lingo-gate/internal/engine"
	"lingo-gate/internal/langid"
	"lingo-gate/internal/types"

	"github.com/sirupsen/logrus"
)

// engineConfigTemplate is the marian decoder configuration registered with
// the engine for every bundle. Beam size 1 (greedy) with 8-bit quantized
// matrix multiply and bounded workspace; these are engine defaults, not
// user-configurable at this layer.
const engineConfigTemplate = `beam-size: 1
normalize: 1.0
word-penalty: 0
max-length-break: 128
mini-batch-words: 1024
workspace: 128
max-length-factor: 2.0
skip-cost: True
quiet: True
quiet_translation: True
gemm-precision: int8shiftAll

models: [%s]
vocabs: [%s, %s]
shortlist: [%s, false]`

// LanguagePair is an ordered (source, target) combination for which a model
// has been loaded.
type LanguagePair struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// modelBundle holds the resolved file paths of one discovered pair directory.
// All four paths are required before the bundle may be registered.
type modelBundle struct {
	pairKey       string
	srcVocabPath  string
	trgVocabPath  string
	weightsPath   string
	shortlistPath string
}

// Registry scans a models directory and accumulates the supported pair set.
// Discovery runs once before the service accepts requests; the registry is
// read-only afterwards.
type Registry struct {
	engine    engine.Engine
	modelsDir string
	pairs     []LanguagePair
}

// New creates a registry and runs discovery. A bundle that cannot be
// registered aborts startup: a silently-missing pair is worse than a
// startup failure.
func New(eng engine.Engine, cfg types.EngineConfig) (*Registry, error) {
	r := &Registry{engine: eng, modelsDir: cfg.ModelsDir}
	if err := r.discover(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) discover() error {
	if err := os.MkdirAll(r.modelsDir, 0755); err != nil {
		return fmt.Errorf("failed to create models directory %s: %w", r.modelsDir, err)
	}

	entries, err := os.ReadDir(r.modelsDir)
	if err != nil {
		return fmt.Errorf("failed to read models directory %s: %w", r.modelsDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pairKey := entry.Name()
		pairDir := filepath.Join(r.modelsDir, pairKey)
		logrus.Infof("Looking for models in %s", pairDir)

		pair, err := r.registerBundle(pairKey, pairDir)
		if err != nil {
			return err
		}
		r.pairs = append(r.pairs, pair)
		logrus.Infof("Loaded model for language pair '%s'", pairKey)
	}

	if len(r.pairs) == 0 {
		logrus.Warnf("No models found in %s; all translation requests will fail", r.modelsDir)
	}

	return nil
}

// registerBundle classifies the files of one pair directory, validates the
// bundle and registers it with the engine.
func (r *Registry) registerBundle(pairKey, pairDir string) (LanguagePair, error) {
	pair, err := parsePairKey(pairKey)
	if err != nil {
		return LanguagePair{}, err
	}

	bundle, err := collectModelFiles(pairKey, pairDir)
	if err != nil {
		return LanguagePair{}, err
	}

	config := fmt.Sprintf(engineConfigTemplate,
		bundle.weightsPath, bundle.srcVocabPath, bundle.trgVocabPath, bundle.shortlistPath)

	if err := r.engine.LoadModel(pairKey, config); err != nil {
		return LanguagePair{}, fmt.Errorf("failed to register model for language pair '%s': %w", pairKey, err)
	}

	return pair, nil
}

// parsePairKey splits a directory name like "enzh" into its two ISO 639-1
// halves.
func parsePairKey(pairKey string) (LanguagePair, error) {
	if len(pairKey) != 4 {
		return LanguagePair{}, fmt.Errorf("invalid language pair format: '%s'. Expected format like 'enzh', 'jaen'", pairKey)
	}
	source, err := langid.ParseCode(pairKey[0:2])
	if err != nil {
		return LanguagePair{}, fmt.Errorf("invalid source language in pair '%s': %w", pairKey, err)
	}
	target, err := langid.ParseCode(pairKey[2:4])
	if err != nil {
		return LanguagePair{}, fmt.Errorf("invalid target language in pair '%s': %w", pairKey, err)
	}
	return LanguagePair{Source: source, Target: target}, nil
}

// collectModelFiles classifies every file in a pair directory by suffix.
// A *.spm file without a srcvocab/trgvocab prefix is a shared vocabulary
// assigned to both sides.
func collectModelFiles(pairKey, pairDir string) (modelBundle, error) {
	bundle := modelBundle{pairKey: pairKey}

	entries, err := os.ReadDir(pairDir)
	if err != nil {
		return bundle, fmt.Errorf("failed to read model directory %s: %w", pairDir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		path, err := filepath.Abs(filepath.Join(pairDir, name))
		if err != nil {
			return bundle, err
		}

		switch {
		case strings.HasSuffix(name, ".spm"):
			if strings.HasPrefix(name, "srcvocab") {
				bundle.srcVocabPath = path
			} else if strings.HasPrefix(name, "trgvocab") {
				bundle.trgVocabPath = path
			} else {
				bundle.srcVocabPath = path
				bundle.trgVocabPath = path
			}
		case strings.HasSuffix(name, ".intgemm.alphas.bin"), strings.HasSuffix(name, ".intgemm8.bin"):
			bundle.weightsPath = path
		case strings.HasSuffix(name, ".s2t.bin"):
			bundle.shortlistPath = path
		}
	}

	if bundle.weightsPath == "" || bundle.srcVocabPath == "" || bundle.trgVocabPath == "" || bundle.shortlistPath == "" {
		return bundle, fmt.Errorf("missing required model files for language pair '%s'", pairKey)
	}

	return bundle, nil
}

// Pairs returns the supported language pairs in discovery order.
func (r *Registry) Pairs() []LanguagePair {
	pairs := make([]LanguagePair, len(r.pairs))
	copy(pairs, r.pairs)
	return pairs
}

// Languages returns the sorted union of languages appearing on either side
// of any supported pair. This is the detection allow-list.
func (r *Registry) Languages() []string {
	seen := make(map[string]struct{}, len(r.pairs)*2)
	for _, pair := range r.pairs {
		seen[pair.Source] = struct{}{}
		seen[pair.Target] = struct{}{}
	}
	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// IsSupported reports whether a model is loaded for (from, to), delegating
// to the engine capability.
func (r *Registry) IsSupported(from, to string) bool {
	return r.engine.IsSupported(from, to)
}
