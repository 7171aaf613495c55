package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOrDefault(t *testing.T) {
	fallback := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	got, err := DateOrDefault("", fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, got)

	got, err = DateOrDefault(" 2024-04-01 ", fallback)
	require.NoError(t, err)
	assert.Equal(t, "2024-04-01", got.Format(time.DateOnly))

	_, err = DateOrDefault("01/04/2024", fallback)
	assert.Error(t, err)
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 10.35, RoundMoney(10.345000001))
	assert.Equal(t, 0.0, RoundMoney(0))
	assert.Equal(t, 99.99, RoundMoney(99.994))
}

func TestReference(t *testing.T) {
	ref, err := Reference("PAY")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "PAY-"))
	assert.Len(t, ref, len("PAY-")+referenceLength)
	assert.Equal(t, -1, strings.IndexAny(ref[4:], "IO01"))
}
