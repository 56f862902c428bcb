package services

import (
	"delivery-sim/internal/domain"
	"fmt"
	"math/rand/v2"
)

// Street labels assigned round-robin to generated points.
var addressPool = []string{
	"123 Oak Street", "456 Pine Avenue", "789 Maple Drive", "321 Elm Street",
	"654 Cedar Lane", "987 Birch Road", "147 Willow Way", "258 Poplar Place",
	"369 Ash Avenue", "741 Spruce Street",
}

// GenerateDeliveryPoints samples count distinct cells of a gridSize grid,
// never the depot, and returns them as pending delivery points with ids
// delivery-1..delivery-count.
//
// Rejection sampling terminates because the call is refused up front when
// the grid has no room for count points beside the depot.
func GenerateDeliveryPoints(
	rng *rand.Rand,
	count int,
	gridSize int,
	depot domain.Position,
) ([]*domain.DeliveryPoint, error) {
	if err := validateGrid(gridSize, depot); err != nil {
		return nil, fmt.Errorf("generate delivery points: %w", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("generate delivery points: %w: negative count %d", domain.ErrInvalidConfiguration, count)
	}
	if count >= gridSize*gridSize {
		return nil, fmt.Errorf(
			"generate delivery points: %w: %d points do not fit a %dx%d grid beside the depot",
			domain.ErrInvalidConfiguration, count, gridSize, gridSize,
		)
	}

	taken := map[domain.Position]struct{}{depot: {}}
	points := make([]*domain.DeliveryPoint, 0, count)

	for i := 0; i < count; i++ {
		var pos domain.Position
		for {
			pos = domain.Position{X: rng.IntN(gridSize), Y: rng.IntN(gridSize)}
			if _, ok := taken[pos]; !ok {
				break
			}
		}
		taken[pos] = struct{}{}

		points = append(points, &domain.DeliveryPoint{
			ID:       fmt.Sprintf("delivery-%d", i+1),
			Position: pos,
			Address:  addressPool[i%len(addressPool)],
			Priority: domain.Priorities[rng.IntN(len(domain.Priorities))],
		})
	}

	return points, nil
}

func validateGrid(gridSize int, depot domain.Position) error {
	if gridSize <= 0 {
		return fmt.Errorf("%w: grid size must be positive, got %d", domain.ErrInvalidConfiguration, gridSize)
	}
	if !depot.InGrid(gridSize) {
		return fmt.Errorf("%w: depot %v outside %dx%d grid", domain.ErrInvalidConfiguration, depot, gridSize, gridSize)
	}
	return nil
}
