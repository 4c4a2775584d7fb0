package wordlist

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/Ren-zee/exploremore/internal/censor"
	"github.com/Ren-zee/exploremore/internal/domain"
)

const MaxWordLength = 100

type wordRepo interface {
	List(ctx context.Context) ([]domain.CensorWord, error)
	Add(ctx context.Context, word string) (*domain.CensorWord, error)
	Remove(ctx context.Context, word string) error
}

type reloader interface {
	Reload(ctx context.Context) (int, error)
}

type statsSource interface {
	Stats() censor.Stats
}

// Service manages the database-backed part of the censor word list and
// republishes the snapshot after every change.
type Service struct {
	words  wordRepo
	loader reloader
	filter statsSource
	log    *slog.Logger
}

// NewService creates a new word list service.
func NewService(log *slog.Logger, words wordRepo, loader reloader, filter statsSource) *Service {
	return &Service{
		words:  words,
		loader: loader,
		filter: filter,
		log:    log.With("service", "wordlist"),
	}
}

// ListWords returns every stored word, active or not.
func (s *Service) ListWords(ctx context.Context) ([]domain.CensorWord, error) {
	words, err := s.words.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list censor words: %w", err)
	}
	return words, nil
}

// AddWord stores a word (or re-activates a removed one) and reloads the
// snapshot. A failed reload is logged; the next sync picks the word up.
func (s *Service) AddWord(ctx context.Context, word string) (*domain.CensorWord, error) {
	w, err := normalizeWord(word)
	if err != nil {
		return nil, err
	}

	cw, err := s.words.Add(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("add censor word: %w", err)
	}

	s.log.InfoContext(ctx, "censor word added", slog.String("word", w))
	s.reload(ctx)
	return cw, nil
}

// RemoveWord deactivates a word and reloads the snapshot. Words that only
// come from a file or URL source stay in effect.
func (s *Service) RemoveWord(ctx context.Context, word string) error {
	w, err := normalizeWord(word)
	if err != nil {
		return err
	}

	if err := s.words.Remove(ctx, w); err != nil {
		return fmt.Errorf("remove censor word: %w", err)
	}

	s.log.InfoContext(ctx, "censor word removed", slog.String("word", w))
	s.reload(ctx)
	return nil
}

// ImportResult summarizes an ImportWords run.
type ImportResult struct {
	Added   int
	Skipped []string
}

// ImportWords adds every valid word and reloads the snapshot once. Invalid
// entries are skipped and reported; a store failure aborts the import.
func (s *Service) ImportWords(ctx context.Context, words []string) (ImportResult, error) {
	var res ImportResult
	seen := make(map[string]struct{}, len(words))
	for _, raw := range words {
		w, err := normalizeWord(raw)
		if err != nil {
			res.Skipped = append(res.Skipped, raw)
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}

		if _, err := s.words.Add(ctx, w); err != nil {
			return res, fmt.Errorf("import censor word %q: %w", w, err)
		}
		res.Added++
	}

	s.log.InfoContext(ctx, "censor words imported",
		slog.Int("added", res.Added),
		slog.Int("skipped", len(res.Skipped)),
	)
	if res.Added > 0 {
		s.reload(ctx)
	}
	return res, nil
}

// Reload rebuilds the snapshot from all sources and returns its size.
func (s *Service) Reload(ctx context.Context) (int, error) {
	n, err := s.loader.Reload(ctx)
	if err != nil {
		return 0, domain.NewStorageError("", "reload word list", err)
	}
	return n, nil
}

// Stats reports the live censor counters.
func (s *Service) Stats() censor.Stats {
	return s.filter.Stats()
}

func (s *Service) reload(ctx context.Context) {
	if _, err := s.loader.Reload(ctx); err != nil {
		s.log.WarnContext(ctx, "word list reload after change failed", slog.String("error", err.Error()))
	}
}

func normalizeWord(word string) (string, error) {
	w := domain.NormalizeText(word)
	if w == "" {
		return "", domain.NewValidationError("word", "required")
	}
	if utf8.RuneCountInString(w) > MaxWordLength {
		return "", domain.NewValidationError("word", "max 100 characters")
	}
	if censor.Compile([]string{w}).Len() == 0 {
		return "", domain.NewValidationError("word", "must not be punctuation only")
	}
	return w, nil
}
