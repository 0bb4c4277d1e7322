package schema

import (
	"sort"
	"strings"
)

// knownTextVectorizers are module-name substrings that indicate a configured
// text vectorizer. Matched case-insensitively against every location a
// vectorizer can hide in (class level, legacy moduleConfig, named vector
// configs, per-property config).
var knownTextVectorizers = []string{
	"text2vec",
	"multi2vec",
	"transformers",
	"contextionary",
	"openai",
	"cohere",
	"huggingface",
	"jinaai",
	"voyageai",
	"palm",
	"ollama",
}

// HasTextVectorizer reports whether the class has any text vectorizer
// configured. Checks, in order: the legacy class-level vectorizer string,
// legacy moduleConfig keys, the newer named vectorizers map (including the
// nested vectorizer.name shape), and per-property module/vectorizer configs.
// A nil class reports false.
func HasTextVectorizer(c *Class) bool {
	if c == nil {
		return false
	}
	if isTextVectorizerName(c.Vectorizer) {
		return true
	}
	for key := range c.ModuleConfig {
		if isTextVectorizerName(key) {
			return true
		}
	}
	if vectorizersHaveText(c.Vectorizers) {
		return true
	}
	for _, p := range c.Properties {
		for key := range p.ModuleConfig {
			if isTextVectorizerName(key) {
				return true
			}
		}
		for key := range p.VectorizerConfig {
			if isTextVectorizerName(key) {
				return true
			}
		}
	}
	return false
}

func vectorizersHaveText(vectorizers map[string]any) bool {
	for _, v := range vectorizers {
		cfg, ok := v.(map[string]any)
		if !ok {
			continue
		}
		// v2 shape: {"vectorizer": {"name": "...", ...}} or
		// {"vectorizer": {"text2vec-openai": {...}}}
		if vec, ok := cfg["vectorizer"].(map[string]any); ok {
			if name, ok := vec["name"].(string); ok && isTextVectorizerName(name) {
				return true
			}
			for key := range vec {
				if isTextVectorizerName(key) {
					return true
				}
			}
		}
		for key := range cfg {
			if isTextVectorizerName(key) {
				return true
			}
		}
	}
	return false
}

// nonVectorizerModules are module-name prefixes that share a provider suffix
// with vectorizers (generative-openai, reranker-cohere) but do not embed.
var nonVectorizerModules = []string{"generative-", "reranker-", "qna-"}

func isNonVectorizerModule(name string) bool {
	lower := strings.ToLower(name)
	for _, prefix := range nonVectorizerModules {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

func isTextVectorizerName(name string) bool {
	if name == "" || strings.EqualFold(name, "none") || isNonVectorizerModule(name) {
		return false
	}
	lower := strings.ToLower(name)
	for _, known := range knownTextVectorizers {
		if strings.Contains(lower, known) {
			return true
		}
	}
	return false
}

// VectorizerModel returns the configured embedding model name, best effort.
// Searches legacy moduleConfig and the named vectorizers map for a "model"
// setting. Returns "" when nothing is found.
func VectorizerModel(c *Class) string {
	if c == nil {
		return ""
	}
	if m := modelFromConfig(c.ModuleConfig); m != "" {
		return m
	}
	for _, name := range sortedKeys(c.Vectorizers) {
		cfg, ok := c.Vectorizers[name].(map[string]any)
		if !ok {
			continue
		}
		if vec, ok := cfg["vectorizer"].(map[string]any); ok {
			if m := modelFromConfig(vec); m != "" {
				return m
			}
		}
		if m := modelFromConfig(cfg); m != "" {
			return m
		}
	}
	return ""
}

// modelFromConfig digs one level of module config for a "model" string.
// Vectorizer modules are consulted before other modules so a paired
// generative or reranker module cannot shadow the embedding model, and keys
// are walked in sorted order so the result is stable across calls.
func modelFromConfig(cfg map[string]any) string {
	keys := sortedKeys(cfg)
	for _, vectorizerPass := range []bool{true, false} {
		for _, key := range keys {
			if isTextVectorizerName(key) != vectorizerPass || isNonVectorizerModule(key) {
				continue
			}
			sub, ok := cfg[key].(map[string]any)
			if !ok {
				continue
			}
			switch m := sub["model"].(type) {
			case string:
				return m
			case map[string]any:
				// contextionary-style nested model descriptor
				if name, ok := m["name"].(string); ok {
					return name
				}
			}
		}
	}
	if m, ok := cfg["model"].(string); ok {
		return m
	}
	return ""
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// EstimateDimensions guesses the embedding dimension from a model name.
// The table is a best-effort heuristic over common models and goes stale as
// new ones ship; callers must treat a miss (ok=false) as "unknown", not zero.
func EstimateDimensions(model string) (int, bool) {
	lower := strings.ToLower(model)
	switch {
	case lower == "":
		return 0, false
	case strings.Contains(lower, "text-embedding-3-large"):
		return 3072, true
	case strings.Contains(lower, "text-embedding-3-small"):
		return 1536, true
	case strings.Contains(lower, "ada-002"):
		return 1536, true
	case strings.Contains(lower, "sentence-transformers"), strings.Contains(lower, "minilm"):
		return 768, true
	case strings.Contains(lower, "cohere") && strings.Contains(lower, "v3"),
		strings.HasPrefix(lower, "embed-") && strings.Contains(lower, "v3"):
		return 1024, true
	default:
		return 0, false
	}
}
