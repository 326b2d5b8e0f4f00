package domain_test

import (
	"testing"
	"time"

	"github.com/modboard/modboard/internal/board/domain"
	"github.com/stretchr/testify/require"
)

func TestStampRoundTrip(t *testing.T) {
	t.Parallel()

	parsed, err := domain.ParseStamp("05/01/19 22:42")
	require.NoError(t, err)
	require.Equal(t, 2019, parsed.Year())
	require.Equal(t, time.January, parsed.Month())
	require.Equal(t, 5, parsed.Day())

	p := domain.Post{PostedAt: parsed}
	require.Equal(t, "05/01/19 22:42", p.Stamp())
}

func TestParseStampRejectsOtherLayouts(t *testing.T) {
	t.Parallel()

	_, err := domain.ParseStamp("2019-01-05 22:42")
	require.Error(t, err)
}

func TestIsUnfiltered(t *testing.T) {
	t.Parallel()

	require.True(t, domain.IsUnfiltered(""))
	require.True(t, domain.IsUnfiltered(domain.AllModules))
	require.False(t, domain.IsUnfiltered("CSC348"))
	require.False(t, domain.IsUnfiltered("all modules"))
}
