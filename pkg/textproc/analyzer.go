/*
Copyright 2026 The KeySearch Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package textproc turns raw document or query text into the normalized token
// stream that the index is keyed by. The coordinator and the workers share
// this package; a term only matches at query time if both sides produce
// byte-identical tokens.
package textproc

import (
	"fmt"
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/kljensen/snowball"
)

// Language selects the stopword list and stemming algorithm applied during
// analysis. The set of languages is closed; adding one means adding a
// stopword list and a stemmer, nothing else.
type Language string

const (
	// English uses the Porter-style snowball stemmer.
	English Language = "english"
	// Spanish uses the Snowball spanish stemmer.
	Spanish Language = "spanish"
)

// ParseLanguage maps a configuration string to a supported Language.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, nil
	case Spanish:
		return Spanish, nil
	case "":
		return English, nil
	default:
		return "", fmt.Errorf("unsupported language %q", s)
	}
}

const defaultStemCacheSize = 65536

// Config holds the configuration for an Analyzer.
type Config struct {
	// Language selects stopwords and stemmer.
	Language Language `json:"language"`
	// StemCacheSize bounds the token -> stem memoization cache.
	StemCacheSize int `json:"stemCacheSize"`
}

// DefaultConfig returns a default configuration for an Analyzer.
func DefaultConfig() *Config {
	return &Config{
		Language:      English,
		StemCacheSize: defaultStemCacheSize,
	}
}

// Analyzer normalizes text deterministically: lowercase, tokenize on word
// boundaries, drop non-alphabetic tokens, strip stopwords, stem. Duplicates
// survive in positional order so callers can count frequencies.
//
// Analyze is safe for concurrent use.
type Analyzer struct {
	language  Language
	stopwords map[string]struct{}

	// stems memoizes stemmer output. Stemming dominates analysis cost and
	// real corpora repeat tokens heavily, so a small bounded cache makes
	// repeated warm-ups free.
	stems *lru.Cache[string, string]
}

// NewAnalyzer creates an Analyzer for the configured language. The stopword
// list is resolved here; stems are computed on first use and memoized in a
// cache owned by this Analyzer, not shared with other analyzers.
func NewAnalyzer(cfg *Config) (*Analyzer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	lang, err := ParseLanguage(string(cfg.Language))
	if err != nil {
		return nil, err
	}

	size := cfg.StemCacheSize
	if size <= 0 {
		size = defaultStemCacheSize
	}

	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize stem cache: %w", err)
	}

	return &Analyzer{
		language:  lang,
		stopwords: stopwordsFor(lang),
		stems:     cache,
	}, nil
}

// Language returns the language this analyzer was built for.
func (a *Analyzer) Language() Language {
	return a.language
}

// Analyze runs the full normalization pipeline over text and returns the
// ordered token list. An empty result is valid and means the text carries no
// indexable terms.
func (a *Analyzer) Analyze(text string) []string {
	lowered := strings.ToLower(text)

	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	var tokens []string
	for _, field := range fields {
		if !isAlphabetic(field) {
			continue
		}
		if _, stop := a.stopwords[field]; stop {
			continue
		}
		tokens = append(tokens, a.stem(field))
	}

	return tokens
}

// stem returns the stemmed form of token, consulting the memoization cache
// first.
func (a *Analyzer) stem(token string) string {
	if cached, ok := a.stems.Get(token); ok {
		return cached
	}

	stemmed, err := snowball.Stem(token, string(a.language), false)
	if err != nil || stemmed == "" {
		// The stemmer only fails on unsupported languages, which
		// ParseLanguage already rules out; fall through to the raw token.
		stemmed = token
	}

	a.stems.Add(token, stemmed)
	return stemmed
}

// isAlphabetic reports whether every rune in s is a letter. Tokens carrying
// digits or symbols are not indexable.
func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}
