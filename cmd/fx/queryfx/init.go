package queryfx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"tripreco/internal/catalog"
	"tripreco/internal/query"
	"tripreco/internal/shared"
)

var Module = fx.Provide(
	provideSemanticParser, provideResolver, provideExtractor)

// provideSemanticParser wires the configured external parser, or nil for
// the pure-local pipeline.
func provideSemanticParser(cfg shared.Config, logger zerolog.Logger) query.SemanticParser {
	switch cfg.ParserProvider {
	case "openai":
		if cfg.OpenAIKey != "" {
			return query.NewOpenAIParser(cfg.OpenAIKey, cfg.ParserModel, cfg.ParserRPS, cfg.ParserTimeout)
		}
		logger.Warn().Msg("openai parser requested without api key, using local heuristics")
	case "gemini":
		if cfg.GeminiKey == "" {
			logger.Warn().Msg("gemini parser requested without api key, using local heuristics")
			break
		}
		p, err := query.NewGeminiParser(cfg.GeminiKey, cfg.ParserModel, cfg.ParserRPS, cfg.ParserTimeout)
		if err != nil {
			logger.Warn().Err(err).Msg("gemini parser init failed, using local heuristics")
			break
		}
		return p
	}
	return nil
}

func provideResolver(cat *catalog.Catalog) *query.Resolver {
	return query.NewResolver(cat)
}

func provideExtractor(parser query.SemanticParser, resolver *query.Resolver, cat *catalog.Catalog, logger zerolog.Logger) query.SignalExtractorInterface {
	return query.NewSignalExtractor(parser, query.NewLocalParser(cat), resolver, cat, logger)
}
