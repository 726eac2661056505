// internal/scoring/scoring.go
package scoring

import (
	"math"
	"math/rand"
	"strings"
)

// Strategy scores how relevant a candidate text is to a query.
// Implementations must return values in [0.0, 1.0].
type Strategy interface {
	Score(query, candidate string) float64
}

// NoiseFunc produces a perturbation in [-bound, bound). Injected by tests
// to make scoring deterministic.
type NoiseFunc func(bound float64) float64

// Lexical scores by token-set overlap. The raw Jaccard similarity is
// perturbed by bounded noise, lifted by a fixed bias, and clamped so
// results with any overlap at all tend to clear typical thresholds.
type Lexical struct {
	NoiseBound float64
	Bias       float64
	Noise      NoiseFunc
}

// NewLexical creates a Lexical strategy with the default noise source.
func NewLexical(noiseBound, bias float64) *Lexical {
	return &Lexical{
		NoiseBound: noiseBound,
		Bias:       bias,
	}
}

// Score computes the biased token-set similarity between query and candidate.
// If either side has no tokens the score is 0.0 regardless of bias.
func (l *Lexical) Score(query, candidate string) float64 {
	queryTokens := Tokenize(query)
	candidateTokens := Tokenize(candidate)

	if len(queryTokens) == 0 || len(candidateTokens) == 0 {
		return 0.0
	}

	base := Jaccard(queryTokens, candidateTokens)
	return Clamp01(base + l.noise() + l.Bias)
}

func (l *Lexical) noise() float64 {
	if l.NoiseBound <= 0 {
		return 0.0
	}
	if l.Noise != nil {
		return l.Noise(l.NoiseBound)
	}
	return (rand.Float64()*2 - 1) * l.NoiseBound
}

// Tokenize lowercases the text and splits it into a set of
// whitespace-separated tokens.
func Tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(text)) {
		tokens[word] = struct{}{}
	}
	return tokens
}

// Jaccard computes |intersection| / |union| of two token sets.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0.0
	}

	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection

	return float64(intersection) / float64(union)
}

// Clamp01 clamps a score to [0.0, 1.0].
func Clamp01(x float64) float64 {
	return math.Max(0.0, math.Min(1.0, x))
}

// Round4 rounds a score to 4 decimal places for stable wire output.
func Round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
