package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	bloom "github.com/EricLagergren/bitbloom"
	"github.com/EricLagergren/bitbloom/internal/config"
	"github.com/EricLagergren/bitbloom/internal/stats"
)

// filter is the part of bloom.Filter that run needs, independent of the
// digest type.
type filter interface {
	Add(key string)
	Has(key string) bool
	Stats() (hashes, nbits uint64)
	Size() int
}

func newFilter(cfg *config.Config) (filter, error) {
	switch cfg.Hasher {
	case config.HasherSipHash:
		return asFilter(bloom.NewChecked[string, bloom.SipHash[string]](cfg.Capacity, cfg.ErrorRate))
	case config.HasherMurmur3:
		return asFilter(bloom.NewChecked[string, bloom.Murmur3[string]](cfg.Capacity, cfg.ErrorRate))
	default:
		return nil, fmt.Errorf("unknown hasher %q", cfg.Hasher)
	}
}

// asFilter keeps a nil *bloom.Filter from becoming a non-nil filter.
func asFilter[H bloom.Hasher[string]](f *bloom.Filter[string, H], err error) (filter, error) {
	if err != nil {
		return nil, fmt.Errorf("failed to create filter: %w", err)
	}
	return f, nil
}

// run inserts every even line among the first 2*Capacity lines of the word
// list, then queries all of those lines and scores the answers.
func run(cfg *config.Config, logger log.Logger) (*stats.Stats, error) {
	f, err := newFilter(cfg)
	if err != nil {
		return nil, err
	}
	hashes, nbits := f.Stats()
	level.Info(logger).Log("msg", "created filter", "hasher", cfg.Hasher,
		"capacity", cfg.Capacity, "error_rate", cfg.ErrorRate, "nbits", nbits, "hashes", hashes)

	file, err := os.Open(cfg.Words)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer file.Close()

	limit := cfg.Capacity * 2
	inserted := 0
	err = scanLines(file, limit, func(i int, word string) {
		if i%2 == 0 {
			f.Add(word)
			inserted++
		}
	})
	if err != nil {
		return nil, err
	}
	if inserted < cfg.Capacity {
		level.Warn(logger).Log("msg", "word list shorter than requested", "inserted", inserted, "capacity", cfg.Capacity)
	}
	level.Debug(logger).Log("msg", "inserted words", "count", inserted, "estimated", f.Size())

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind word list: %w", err)
	}

	var s stats.Stats
	err = scanLines(file, limit, func(i int, word string) {
		s.Score(f.Has(word), i%2 == 0)
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanLines(r io.Reader, limit int, fn func(i int, line string)) error {
	sc := bufio.NewScanner(r)
	for i := 0; i < limit && sc.Scan(); i++ {
		fn(i, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read word list: %w", err)
	}
	return nil
}
