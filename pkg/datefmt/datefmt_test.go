package datefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	d := time.Date(1920, time.January, 2, 0, 0, 0, 0, time.UTC)

	s, err := Format(&d)
	require.NoError(t, err)
	assert.Equal(t, "Jan 2, 1920", s)

	_, err = Format(nil)
	assert.ErrorIs(t, err, ErrUnavailable)

	zero := time.Time{}
	_, err = Format(&zero)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFormatOrAndInput(t *testing.T) {
	d := time.Date(1992, time.March, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Mar 31, 1992", FormatOr(&d, "-"))
	assert.Equal(t, "-", FormatOr(nil, "-"))
	assert.Equal(t, "1992-03-31", FormatInput(&d))
	assert.Equal(t, "", FormatInput(nil))

	parsed, err := ParseInput("1992-03-31")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(d))

	_, err = ParseInput("31/03/1992")
	assert.Error(t, err)
}
