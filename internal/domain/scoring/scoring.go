// Package scoring computes archetype classifications from quiz answers.
// Two strategies exist: trait-weighted matching against catalog profiles,
// and semantic voting through the trait lookup table. A strategy is picked
// at construction and never blended per call.
package scoring

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/ethoslab/archetype/internal/domain/catalog"
	"github.com/ethoslab/archetype/internal/domain/types"
	"github.com/ethoslab/archetype/pkg/logger"
	"github.com/ethoslab/archetype/pkg/metrics"
)

// Strategy identifiers accepted by New.
const (
	StrategyTraitWeighted = "trait_weighted"
	StrategySemantic      = "semantic"
)

// Trait-weighted scoring weights.
const (
	exactTraitScore    = 2
	strengthMatchScore = 1
	percentScale       = 100
)

// Outcome is the result of one classification.
type Outcome struct {
	// Archetype is the winner after tie-breaking.
	Archetype types.Archetype
	// Scores holds the raw per-archetype scores, dense over the catalog.
	Scores types.Scores
	// Breakdown holds independent integer percentages per archetype.
	// Values are not renormalized; the sum may differ from 100.
	Breakdown types.Breakdown
	// Unmapped lists input traits the semantic table did not recognize.
	Unmapped []string
}

// Engine classifies a list of trait words into an archetype.
type Engine interface {
	// Classify computes the outcome for the given traits, honoring ctx
	// for cancellation. Unrecognized traits never cause an error.
	Classify(ctx context.Context, traits []string) (Outcome, error)

	// Breakdown returns only the percentage distribution for the traits.
	Breakdown(ctx context.Context, traits []string) (types.Breakdown, error)

	// Strategy returns the engine's strategy identifier.
	Strategy() string
}

// New constructs the engine for the named strategy.
func New(strategy string, opts ...Option) (Engine, error) {
	s := newSettings(opts...)
	switch strategy {
	case StrategyTraitWeighted:
		return &traitWeighted{log: s.log, profiles: catalog.Profiles()}, nil
	case StrategySemantic:
		return &semanticVote{log: s.log}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// traitWeighted scores each input trait against every catalog profile:
// an exact, case-sensitive match on a defining trait scores 2, and a
// case-insensitive substring hit inside any strength phrase scores 1.
// Both can apply to the same trait. Ties keep the earliest archetype
// in catalog order.
type traitWeighted struct {
	log      logger.Logger
	profiles []catalog.Profile
}

func (e *traitWeighted) Strategy() string { return StrategyTraitWeighted }

func (e *traitWeighted) Classify(ctx context.Context, traits []string) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, fmt.Errorf("classify: %w", err)
	}
	start := time.Now()

	scores := zeroScores()
	for i := range e.profiles {
		p := &e.profiles[i]
		for _, trait := range traits {
			if containsExact(p.Traits, trait) {
				scores[p.ID] += exactTraitScore
			}
			if matchesStrength(p.Strengths, trait) {
				scores[p.ID] += strengthMatchScore
			}
		}
	}

	total := 0
	for _, v := range scores {
		total += v
	}

	out := Outcome{
		Archetype: pickWinner(scores, catalog.Order()),
		Scores:    scores,
		Breakdown: percentages(scores, total),
	}

	metrics.RecordClassification(string(out.Archetype), e.Strategy())
	metrics.RecordScoringLatency(float64(time.Since(start).Microseconds()) / 1000.0)

	return out, nil
}

func (e *traitWeighted) Breakdown(ctx context.Context, traits []string) (types.Breakdown, error) {
	out, err := e.Classify(ctx, traits)
	if err != nil {
		return nil, err
	}
	return out.Breakdown, nil
}

// semanticVote resolves each input trait through the semantic lookup
// table and counts one vote per hit. Unmapped traits are skipped and
// counted, never an error. Ties resolve alphabetically. Percentages
// divide by the input length, including unmapped entries.
type semanticVote struct {
	log logger.Logger
}

func (e *semanticVote) Strategy() string { return StrategySemantic }

func (e *semanticVote) Classify(ctx context.Context, traits []string) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, fmt.Errorf("classify: %w", err)
	}
	start := time.Now()

	scores := zeroScores()
	var unmapped []string
	for _, trait := range traits {
		a, ok := catalog.ArchetypeForTrait(trait)
		if !ok {
			unmapped = append(unmapped, trait)
			metrics.RecordUnmappedTrait()
			if e.log != nil {
				e.log.Warn(ctx, "trait not in semantic table", logger.String("trait", trait))
			}
			continue
		}
		scores[a]++
	}

	divisor := len(traits)
	if divisor == 0 {
		divisor = 1
	}

	out := Outcome{
		Archetype: pickWinner(scores, alphabeticalOrder()),
		Scores:    scores,
		Breakdown: percentages(scores, divisor),
		Unmapped:  unmapped,
	}

	metrics.RecordClassification(string(out.Archetype), e.Strategy())
	metrics.RecordScoringLatency(float64(time.Since(start).Microseconds()) / 1000.0)

	return out, nil
}

func (e *semanticVote) Breakdown(ctx context.Context, traits []string) (types.Breakdown, error) {
	out, err := e.Classify(ctx, traits)
	if err != nil {
		return nil, err
	}
	return out.Breakdown, nil
}

func zeroScores() types.Scores {
	s := make(types.Scores, len(catalog.Order()))
	for _, a := range catalog.Order() {
		s[a] = 0
	}
	return s
}

// pickWinner returns the first archetype in order with the strictly
// highest score, so earlier entries win ties.
func pickWinner(scores types.Scores, order []types.Archetype) types.Archetype {
	winner := order[0]
	best := scores[winner]
	for _, a := range order[1:] {
		if scores[a] > best {
			winner = a
			best = scores[a]
		}
	}
	return winner
}

// percentages rounds each share independently, half away from zero.
// A zero divisor yields an all-zero breakdown.
func percentages(scores types.Scores, divisor int) types.Breakdown {
	b := make(types.Breakdown, len(scores))
	for a, v := range scores {
		if divisor <= 0 {
			b[a] = 0
			continue
		}
		b[a] = int(math.Round(float64(v) / float64(divisor) * percentScale))
	}
	return b
}

func alphabeticalOrder() []types.Archetype {
	order := catalog.Order()
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	return order
}

func containsExact(defined []string, trait string) bool {
	for _, d := range defined {
		if d == trait {
			return true
		}
	}
	return false
}

func matchesStrength(strengths []string, trait string) bool {
	needle := strings.ToLower(trait)
	for _, s := range strengths {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}
