package query

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"tripreco/internal/catalog"
)

// ParseCache is the session-scoped cache the extractor memoizes bundles
// in. Identical raw text within one session returns the identical bundle.
type ParseCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
}

type SignalExtractorInterface interface {
	Parse(ctx context.Context, text string, cache ParseCache) (ParsedQuery, error)
}

var (
	budgetHintRe = regexp.MustCompile(`(?i)(?:under|below|less than|up to|upto)\s*([0-9.,kKmM₹$usd ]+)`)
	nightsRe     = regexp.MustCompile(`(?i)(\d+)\s*(?:nights|night)`)
	fromTokenRe  = regexp.MustCompile(`\bfrom\b`)
)

// SignalExtractor merges semantic-parser output with local heuristics
// into one ParsedQuery, tracking per-field provenance. Any parser failure
// degrades silently to the pure-local path.
type SignalExtractor struct {
	parser   SemanticParser
	local    *LocalParser
	resolver *Resolver
	cat      *catalog.Catalog
	group    singleflight.Group
	logger   zerolog.Logger
}

func NewSignalExtractor(parser SemanticParser, local *LocalParser, resolver *Resolver, cat *catalog.Catalog, logger zerolog.Logger) SignalExtractorInterface {
	return &SignalExtractor{
		parser:   parser,
		local:    local,
		resolver: resolver,
		cat:      cat,
		logger:   logger,
	}
}

func (e *SignalExtractor) Parse(ctx context.Context, text string, cache ParseCache) (ParsedQuery, error) {
	if strings.TrimSpace(text) == "" {
		return ParsedQuery{Tags: []string{}}, nil
	}

	key := "parse::" + text
	if cache != nil {
		var cached ParsedQuery
		if ok, err := cache.Get(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	v, err, _ := e.group.Do(text, func() (any, error) {
		return e.extract(ctx, text), nil
	})
	if err != nil {
		return ParsedQuery{Tags: []string{}}, err
	}
	pq := v.(ParsedQuery)

	if cache != nil {
		if err := cache.Set(ctx, key, pq); err != nil {
			e.logger.Warn().Err(err).Msg("parse cache set failed")
		}
	}
	return pq, nil
}

func (e *SignalExtractor) extract(ctx context.Context, text string) ParsedQuery {
	sig, src := e.signals(ctx, text)

	prov := make(map[string]Source)
	pq := ParsedQuery{Tags: []string{}, Intent: DetectIntent(text)}

	if len(sig.Tags) > 0 {
		pq.Tags = sig.Tags
		prov["tags"] = src
	}
	if sig.TripType != "" {
		pq.TripType = sig.TripType
		prov["trip_type"] = src
	}
	if sig.MaxStops != nil {
		pq.MaxStops = sig.MaxStops
		prov["max_stops"] = src
	}

	// Destination: a supplied id must exist in the catalog or it is
	// dropped; free-text destination goes through the resolver; the
	// positional scan is the last resort.
	if sig.DestinationID != "" {
		if _, ok := e.cat.DestinationByID(sig.DestinationID); ok {
			pq.DestinationID = sig.DestinationID
			prov["destination_id"] = src
		}
	}
	if pq.DestinationID == "" && sig.Destination != "" {
		if id := e.resolver.ResolveID(sig.Destination); id != "" {
			pq.DestinationID = id
			prov["destination_id"] = src
		}
	}
	if pq.DestinationID == "" {
		if id := e.resolver.DetectDestination(text); id != "" {
			pq.DestinationID = id
			prov["destination_id"] = SourceHeuristic
		}
	}

	// Origin: keep a supplied token verbatim when the resolver cannot
	// canonicalize it; user-provided origins are not discarded.
	originVal := sig.Origin
	if originVal == "" {
		originVal = sig.From
	}
	if originVal != "" {
		if resolved := e.resolver.Resolve(originVal); resolved != "" {
			pq.Origin = resolved
		} else {
			pq.Origin = originVal
		}
		prov["origin"] = src
	} else if detected := e.resolver.DetectOrigin(text); detected != "" {
		pq.Origin = detected
		prov["origin"] = SourceHeuristic
	}

	if budget := firstBudget(sig); budget != nil {
		pq.BudgetMax = budget
		prov["budget_max"] = src
	} else if m := budgetHintRe.FindStringSubmatch(text); m != nil {
		if b := ParseBudget(m[1]); b != nil {
			pq.BudgetMax = b
			prov["budget_max"] = SourceHeuristic
		}
	}

	if sig.Nights != nil {
		pq.Nights = sig.Nights
		prov["nights"] = src
	} else if m := nightsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			pq.Nights = &n
			prov["nights"] = SourceHeuristic
		}
	}

	e.cleanup(&pq, prov, text)
	pq.Provenance = prov
	return pq
}

// cleanup drops origins that were only guessed: a heuristic origin equal
// to the destination city, and any heuristic origin on a single-mode
// query with no explicit "from".
func (e *SignalExtractor) cleanup(pq *ParsedQuery, prov map[string]Source, text string) {
	if pq.DestinationID != "" && pq.Origin != "" && prov["origin"] != SourceExternal {
		if d, ok := e.cat.DestinationByID(pq.DestinationID); ok && strings.EqualFold(d.Name, pq.Origin) {
			pq.Origin = ""
			delete(prov, "origin")
		}
	}
	if pq.Origin != "" && pq.Intent.SingleMode() &&
		prov["origin"] == SourceHeuristic && !fromTokenRe.MatchString(strings.ToLower(text)) {
		pq.Origin = ""
		delete(prov, "origin")
	}
}

func (e *SignalExtractor) signals(ctx context.Context, text string) (Signals, Source) {
	if e.parser == nil {
		sig, _ := e.local.Parse(ctx, text)
		return sig, e.local.Source()
	}
	sig, err := e.parser.Parse(ctx, text)
	if err != nil {
		e.logger.Warn().Err(err).Msg("semantic parse failed, falling back to local heuristics")
		sig, _ = e.local.Parse(ctx, text)
		return sig, e.local.Source()
	}
	return sig, e.parser.Source()
}

// firstBudget applies the source priority order: numeric budget_max,
// numeric max_price, then string forms, then the loose "budget" field.
func firstBudget(sig Signals) *int {
	if b := numericBudget(sig.BudgetMax); b != nil {
		return b
	}
	if b := numericBudget(sig.MaxPrice); b != nil {
		return b
	}
	if b := stringBudget(sig.BudgetMax); b != nil {
		return b
	}
	if b := stringBudget(sig.MaxPrice); b != nil {
		return b
	}
	return ParseBudgetValue(sig.Budget)
}

func numericBudget(v any) *int {
	switch n := v.(type) {
	case int:
		return &n
	case int64:
		i := int(n)
		return &i
	case float64:
		i := int(n)
		return &i
	default:
		return nil
	}
}

func stringBudget(v any) *int {
	if s, ok := v.(string); ok {
		return ParseBudget(s)
	}
	return nil
}
