package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Ren-zee/exploremore/internal/censor"
	"github.com/Ren-zee/exploremore/internal/config"
	"github.com/Ren-zee/exploremore/internal/service/wordlist"
)

// ImportWordFile loads a one-word-per-line file into the censor_words table
// of the configured store.
func ImportWordFile(ctx context.Context, cfg *config.Config, logger *slog.Logger, path string) (wordlist.ImportResult, error) {
	words, err := censor.FileSource{Path: path}.Words(ctx)
	if err != nil {
		return wordlist.ImportResult{}, err
	}

	st, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		return wordlist.ImportResult{}, err
	}
	defer st.close()

	filter := censor.NewFilter(nil)
	loader := censor.NewLoader(logger, filter, censor.NewStoreSource(st.words))
	svc := wordlist.NewService(logger, st.words, loader, filter)

	res, err := svc.ImportWords(ctx, words)
	if err != nil {
		return res, fmt.Errorf("import %s: %w", path, err)
	}
	return res, nil
}
