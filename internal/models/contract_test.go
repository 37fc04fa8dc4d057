package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewContract(t *testing.T) {
	contract, err := NewContract(7, 5, date(2030, 1, 1), date(2030, 1, 10))

	require.NoError(t, err)
	assert.Equal(t, uint(7), contract.PropertyID)
	assert.Equal(t, uint(5), contract.TenantID)
}

func TestNewContract_RejectsMissingReferences(t *testing.T) {
	_, err := NewContract(0, 5, date(2030, 1, 1), date(2030, 1, 10))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewContract(7, 0, date(2030, 1, 1), date(2030, 1, 10))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateContractDates(t *testing.T) {
	assert.NoError(t, ValidateContractDates(date(2030, 1, 1), date(2030, 1, 2)))

	// Equal dates are rejected: the end must be strictly later.
	err := ValidateContractDates(date(2030, 1, 1), date(2030, 1, 1))
	assert.ErrorIs(t, err, ErrValidation)

	err = ValidateContractDates(date(2030, 1, 10), date(2030, 1, 1))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRangesOverlap(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"partial overlap", date(2030, 1, 1), date(2030, 1, 10), date(2030, 1, 5), date(2030, 1, 15), true},
		{"contained", date(2030, 1, 1), date(2030, 1, 31), date(2030, 1, 10), date(2030, 1, 20), true},
		{"identical", date(2030, 1, 1), date(2030, 1, 10), date(2030, 1, 1), date(2030, 1, 10), true},
		{"shared endpoint", date(2030, 1, 1), date(2030, 1, 10), date(2030, 1, 10), date(2030, 1, 20), true},
		{"adjacent days", date(2030, 1, 1), date(2030, 1, 10), date(2030, 1, 11), date(2030, 1, 20), false},
		{"disjoint", date(2030, 1, 1), date(2030, 1, 10), date(2030, 2, 1), date(2030, 2, 10), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RangesOverlap(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			// Overlap is symmetric.
			assert.Equal(t, tc.want, RangesOverlap(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}
