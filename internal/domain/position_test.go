package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceProperties(t *testing.T) {
	cells := []Position{{0, 0}, {3, 0}, {9, 9}, {4, 7}, {2, 5}}

	for _, a := range cells {
		assert.Equal(t, 0, Distance(a, a))
		for _, b := range cells {
			assert.Equal(t, Distance(a, b), Distance(b, a), "symmetry %v %v", a, b)
			for _, c := range cells {
				assert.LessOrEqual(t, Distance(a, c), Distance(a, b)+Distance(b, c))
			}
		}
	}
}

func TestExpandPathMovesHorizontallyFirst(t *testing.T) {
	path := ExpandPath(Position{1, 1}, Position{3, 3})

	want := []Position{{2, 1}, {3, 1}, {3, 2}, {3, 3}}
	assert.Equal(t, want, path)
}

func TestExpandPathLengthMatchesDistance(t *testing.T) {
	cells := []Position{{0, 0}, {9, 0}, {0, 9}, {5, 5}, {7, 2}}

	for _, a := range cells {
		for _, b := range cells {
			path := ExpandPath(a, b)
			require.Len(t, path, Distance(a, b))
			if len(path) > 0 {
				assert.Equal(t, b, path[len(path)-1])
			}
		}
	}
}

func TestExpandPathSameCellIsEmpty(t *testing.T) {
	assert.Empty(t, ExpandPath(Position{4, 4}, Position{4, 4}))
}

func TestExpandPathBackwards(t *testing.T) {
	path := ExpandPath(Position{3, 2}, Position{1, 0})

	want := []Position{{2, 2}, {1, 2}, {1, 1}, {1, 0}}
	assert.Equal(t, want, path)
}

func TestObstacleSetCountOn(t *testing.T) {
	obstacles := NewObstacleSet(Position{2, 0}, Position{5, 5})

	assert.Equal(t, 1, obstacles.CountOn(ExpandPath(Position{0, 0}, Position{3, 0})))
	assert.Equal(t, 0, obstacles.CountOn(ExpandPath(Position{0, 1}, Position{3, 1})))
	assert.Equal(t, []Position{{2, 0}, {5, 5}}, obstacles.Cells())
}
