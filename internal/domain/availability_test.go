package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		available int
		total     int
		want      Availability
	}{
		{name: "no spots", available: 0, total: 10, want: AvailabilityFull},
		{name: "one of ten", available: 1, total: 10, want: AvailabilityLow},
		{name: "two of ten", available: 2, total: 10, want: AvailabilityLow},
		{name: "exactly 0.3 is ample", available: 3, total: 10, want: AvailabilityAmple},
		{name: "half", available: 5, total: 10, want: AvailabilityAmple},
		{name: "all free", available: 10, total: 10, want: AvailabilityAmple},
		{name: "single seat free", available: 1, total: 1, want: AvailabilityAmple},
		{name: "just under boundary", available: 29, total: 100, want: AvailabilityLow},
		{name: "just on boundary", available: 30, total: 100, want: AvailabilityAmple},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.available, tt.total)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_InvalidCapacity(t *testing.T) {
	tests := []struct {
		name      string
		available int
		total     int
	}{
		{name: "zero total", available: 0, total: 0},
		{name: "negative total", available: 0, total: -1},
		{name: "negative available", available: -1, total: 10},
		{name: "more available than total", available: 11, total: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.available, tt.total)
			assert.ErrorIs(t, err, ErrInvalidCapacity)
		})
	}
}
