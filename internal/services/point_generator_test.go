package services

import (
	"delivery-sim/internal/domain"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeliveryPoints(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	depot := domain.Position{X: 0, Y: 0}

	points, err := GenerateDeliveryPoints(rng, 12, domain.GridSize, depot)
	require.NoError(t, err)
	require.Len(t, points, 12)

	seen := map[domain.Position]bool{}
	for i, dp := range points {
		assert.Equal(t, fmt.Sprintf("delivery-%d", i+1), dp.ID)
		assert.Equal(t, addressPool[i%len(addressPool)], dp.Address)
		assert.NotEqual(t, depot, dp.Position)
		assert.True(t, dp.Position.InGrid(domain.GridSize))
		assert.False(t, seen[dp.Position], "duplicate %v", dp.Position)
		assert.Contains(t, domain.Priorities, dp.Priority)
		assert.False(t, dp.Delivered)
		seen[dp.Position] = true
	}
}

func TestGenerateDeliveryPointsFillsGrid(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	depot := domain.Position{X: 1, Y: 1}

	points, err := GenerateDeliveryPoints(rng, 8, 3, depot)
	require.NoError(t, err)
	assert.Len(t, points, 8)
}

func TestGenerateDeliveryPointsSameSeedSamePoints(t *testing.T) {
	depot := domain.Position{X: 0, Y: 0}

	a, err := GenerateDeliveryPoints(rand.New(rand.NewPCG(42, 42)), 7, domain.GridSize, depot)
	require.NoError(t, err)
	b, err := GenerateDeliveryPoints(rand.New(rand.NewPCG(42, 42)), 7, domain.GridSize, depot)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateDeliveryPointsRejectsBadInput(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))

	cases := []struct {
		name     string
		count    int
		gridSize int
		depot    domain.Position
	}{
		{"grid full", 100, 10, domain.Position{}},
		{"more than grid", 150, 10, domain.Position{}},
		{"negative count", -1, 10, domain.Position{}},
		{"zero grid", 1, 0, domain.Position{}},
		{"depot outside", 3, 10, domain.Position{X: 10, Y: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GenerateDeliveryPoints(rng, tc.count, tc.gridSize, tc.depot)
			assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
		})
	}
}
