package domain

import (
	"testing"
)

func TestVehicleLoadAndUnload(t *testing.T) {
	depot := Position{X: 0, Y: 0}
	v := NewVehicle("truck-1", 3, depot)

	if err := v.Load(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.CurrentLoad != 3 {
		t.Fatalf("load = %d, want 3", v.CurrentLoad)
	}

	v.Unload()
	v.Unload()
	if v.CurrentLoad != 1 {
		t.Fatalf("load = %d, want 1", v.CurrentLoad)
	}

	v.Unload()
	v.Unload()
	if v.CurrentLoad != 0 {
		t.Fatalf("load = %d, want 0", v.CurrentLoad)
	}
}

func TestVehicleLoadOverCapacity(t *testing.T) {
	v := NewVehicle("truck-1", 2, Position{})

	if err := v.Load(3); err == nil {
		t.Fatal("expected capacity error, got nil")
	}
	if v.CurrentLoad != 0 {
		t.Errorf("load changed on rejected call: %d", v.CurrentLoad)
	}
}

func TestVehiclePark(t *testing.T) {
	depot := Position{X: 1, Y: 1}
	v := NewVehicle("truck-1", 5, depot)
	v.Position = Position{X: 4, Y: 2}
	v.Status = VehicleMoving

	v.Park(depot)

	if v.Position != depot {
		t.Errorf("position = %v, want %v", v.Position, depot)
	}
	if v.Status != VehicleIdle {
		t.Errorf("status = %q, want %q", v.Status, VehicleIdle)
	}
}

func TestDeliveryPointMarkDeliveredOnce(t *testing.T) {
	dp := &DeliveryPoint{ID: "delivery-1"}

	if err := dp.MarkDelivered(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := dp.MarkDelivered(); err == nil {
		t.Fatal("expected error on second delivery")
	}
	if !dp.Delivered {
		t.Error("point should stay delivered")
	}
}
