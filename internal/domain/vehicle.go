package domain

import "fmt"

type VehicleStatus string

const (
	VehicleIdle       VehicleStatus = "idle"
	VehicleMoving     VehicleStatus = "moving"
	VehicleDelivering VehicleStatus = "delivering"
)

// Single delivery vehicle driven by the simulation.
type Vehicle struct {
	ID          string
	Position    Position
	Status      VehicleStatus
	Capacity    int
	CurrentLoad int
}

func NewVehicle(id string, capacity int, depot Position) *Vehicle {
	return &Vehicle{
		ID:       id,
		Position: depot,
		Status:   VehicleIdle,
		Capacity: capacity,
	}
}

// Load replaces the current load with n packages.
func (v *Vehicle) Load(n int) error {
	if n < 0 {
		return fmt.Errorf("load vehicle: negative load %d", n)
	}
	if n > v.Capacity {
		return fmt.Errorf("load vehicle: vehicle %s over capacity (load=%d, capacity=%d)", v.ID, n, v.Capacity)
	}
	v.CurrentLoad = n
	return nil
}

// Unload drops a single package after a delivery.
func (v *Vehicle) Unload() {
	if v.CurrentLoad > 0 {
		v.CurrentLoad--
	}
}

// Park returns the vehicle to the depot in the idle state.
func (v *Vehicle) Park(depot Position) {
	v.Position = depot
	v.Status = VehicleIdle
}
