package censor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Source supplies raw word list entries.
type Source interface {
	Name() string
	Words(ctx context.Context) ([]string, error)
}

// StaticSource is a fixed in-process list.
type StaticSource []string

func (s StaticSource) Name() string { return "static" }

func (s StaticSource) Words(context.Context) ([]string, error) {
	return []string(s), nil
}

// FileSource reads a newline-separated list. Blank lines and lines starting
// with '#' are skipped.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return "file:" + s.Path }

func (s FileSource) Words(context.Context) ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	words, err := parseList(f)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", s.Path, err)
	}
	return words, nil
}

// URLSource downloads a newline-separated list over HTTP.
type URLSource struct {
	url    string
	client *resty.Client
}

// NewURLSource creates a URLSource with the given request timeout.
func NewURLSource(url string, timeout time.Duration) *URLSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &URLSource{
		url: url,
		client: resty.New().
			SetTimeout(timeout).
			SetHeader("Accept", "text/plain"),
	}
}

func (s *URLSource) Name() string { return "url:" + s.url }

func (s *URLSource) Words(ctx context.Context) ([]string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("fetch word list: %w", err)
	}
	if resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("fetch word list: status %d", resp.StatusCode())
	}
	return parseList(strings.NewReader(resp.String()))
}

type wordStore interface {
	ActiveWords(ctx context.Context) ([]string, error)
}

// StoreSource reads active words from a database-backed store.
type StoreSource struct {
	store wordStore
}

// NewStoreSource wraps store as a Source.
func NewStoreSource(store wordStore) *StoreSource {
	return &StoreSource{store: store}
}

func (s *StoreSource) Name() string { return "db" }

func (s *StoreSource) Words(ctx context.Context) ([]string, error) {
	words, err := s.store.ActiveWords(ctx)
	if err != nil {
		return nil, fmt.Errorf("load active words: %w", err)
	}
	return words, nil
}

func parseList(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
