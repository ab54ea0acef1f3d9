package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"
)

// ErrRejected is returned when the server refuses the request outright.
var ErrRejected = errors.New("input request rejected")

// Fetcher downloads puzzle inputs.
type Fetcher struct {
	BaseURL  string
	Year     int
	Session  string
	Attempts uint
	Delay    time.Duration
	Client   *http.Client
	Logger   *zap.Logger
}

// URL returns the input URL for day.
func (f *Fetcher) URL(day int) string {
	return fmt.Sprintf("%s/%d/day/%d/input", strings.TrimRight(f.BaseURL, "/"), f.Year, day)
}

// Fetch downloads the raw input for day, retrying transient failures.
func (f *Fetcher) Fetch(ctx context.Context, day int) (string, error) {
	if day < 1 || day > 25 {
		return "", fmt.Errorf("day %d out of range", day)
	}
	if f.Session == "" {
		return "", fmt.Errorf("%w: no session cookie", ErrRejected)
	}
	logger := f.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	attempts := f.Attempts
	if attempts == 0 {
		attempts = 1
	}

	url := f.URL(day)
	body, err := retry.DoWithData(func() (string, error) {
		return f.get(ctx, url)
	},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(f.Delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			logger.Warn("Input download failed, retrying",
				zap.Int("day", day),
				zap.Uint("attempt", attempt+1),
				zap.Uint("attempts", attempts),
				zap.Error(err))
		}),
	)
	if err != nil {
		return "", fmt.Errorf("failed to download day %d: %w", day, err)
	}
	logger.Debug("Downloaded input", zap.Int("day", day), zap.Int("bytes", len(body)))
	return body, nil
}

func (f *Fetcher) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", retry.Unrecoverable(err)
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: f.Session})
	req.Header.Set("User-Agent", "aoc2024 input fetcher")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	switch {
	case resp.StatusCode == http.StatusOK:
		return string(data), nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", fmt.Errorf("server returned %s", resp.Status)
	default:
		msg := strings.TrimSpace(string(data))
		if len(msg) > 200 {
			msg = msg[:200]
		}
		return "", retry.Unrecoverable(fmt.Errorf("%w: %s: %s", ErrRejected, resp.Status, msg))
	}
}

// Download fetches day and writes it to the loader's path, replacing the
// file atomically. It returns the written path.
func (f *Fetcher) Download(ctx context.Context, day int, l Loader) (string, error) {
	body, err := f.Fetch(ctx, day)
	if err != nil {
		return "", err
	}
	path := l.Path(day)
	if err := writeAtomic(path, []byte(body)); err != nil {
		return "", err
	}
	return path, nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create input dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".input-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write input: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write input: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move input into place: %w", err)
	}
	return nil
}
