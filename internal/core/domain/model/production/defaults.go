package production

// Definition describes a step to seed.
type Definition struct {
	Name           string
	OrderIndex     int
	IsDispatchStep bool
	IsMilestone    bool
}

// DefaultDefinitions is the workshop sequence for testing machines, from raw
// material procurement to dispatch.
func DefaultDefinitions() []Definition {
	return []Definition{
		{Name: "Raw Material Ordered", OrderIndex: 1},
		{Name: "Raw Material Received", OrderIndex: 2},
		{Name: "Frame Fabrication", OrderIndex: 3},
		{Name: "Outsource Machining", OrderIndex: 4},
		{Name: "Initial Assembly", OrderIndex: 5},
		{Name: "Electrical Wiring", OrderIndex: 6},
		{Name: "Final Assembly", OrderIndex: 7, IsMilestone: true},
		{Name: "Loadcell Calibration", OrderIndex: 8},
		{Name: "Verified", OrderIndex: 9, IsMilestone: true},
		{Name: "Dispatched", OrderIndex: 10, IsDispatchStep: true, IsMilestone: true},
	}
}
