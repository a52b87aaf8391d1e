package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/require"

	"github.com/EricLagergren/bitbloom/internal/config"
)

func writeWords(t *testing.T, n int) string {
	t.Helper()
	var sb strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "word%d\n", i)
	}
	path := filepath.Join(t.TempDir(), "words")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0644))
	return path
}

func TestRun(t *testing.T) {
	for _, hasher := range []string{config.HasherSipHash, config.HasherMurmur3} {
		t.Run(hasher, func(t *testing.T) {
			cfg := &config.Config{
				Words:     writeWords(t, 20000),
				Capacity:  5000,
				ErrorRate: 0.05,
				Hasher:    hasher,
			}
			s, err := run(cfg, log.NewNopLogger())
			require.NoError(t, err)

			require.Equal(t, 10000, s.Total())
			require.Equal(t, 5000, s.TruePos)
			require.Zero(t, s.FalseNeg)
			require.Equal(t, 5000, s.FalsePos+s.TrueNeg)
			require.Less(t, s.Rate(), 0.1)
		})
	}
}

func TestRun_ShortWordList(t *testing.T) {
	cfg := &config.Config{
		Words:     writeWords(t, 7),
		Capacity:  100,
		ErrorRate: 0.01,
		Hasher:    config.HasherSipHash,
	}
	s, err := run(cfg, log.NewNopLogger())
	require.NoError(t, err)
	require.Equal(t, 7, s.Total())
	require.Equal(t, 4, s.TruePos)
	require.Zero(t, s.FalseNeg)
}

func TestRun_MissingWordList(t *testing.T) {
	cfg := config.Default()
	cfg.Words = filepath.Join(t.TempDir(), "missing")
	_, err := run(cfg, log.NewNopLogger())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewFilter_UnknownHasher(t *testing.T) {
	cfg := config.Default()
	cfg.Hasher = "md5"
	_, err := newFilter(cfg)
	require.ErrorContains(t, err, "unknown hasher")
}
