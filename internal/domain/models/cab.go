package models

// Cab is a vehicle in the fleet. The identifier is assigned by the caller;
// nothing here generates IDs. A cab is never mutated or removed once added.
type Cab struct {
	ID       string  `json:"id"`
	Driver   string  `json:"driver"`
	Location string  `json:"location"`
	Type     string  `json:"type"`
	Fare     float64 `json:"fare"`
}
