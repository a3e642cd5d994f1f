package model

import "github.com/google/uuid"

// RollPreset represents a vinyl roll the shop keeps in stock.
type RollPreset struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Brand              string        `json:"brand"`
	Material           MaterialClass `json:"material"`
	RollWidth          float64       `json:"roll_width"`  // inches
	RollLength         float64       `json:"roll_length"` // feet
	PricePerLinearFoot float64       `json:"price_per_linear_foot"`
	PricePerRoll       float64       `json:"price_per_roll"`
}

// NewRollPreset creates a new RollPreset with a generated ID.
func NewRollPreset(name, brand string, material MaterialClass, width, length, pricePerFoot, pricePerRoll float64) RollPreset {
	return RollPreset{
		ID:                 uuid.New().String()[:8],
		Name:               name,
		Brand:              brand,
		Material:           material,
		RollWidth:          width,
		RollLength:         length,
		PricePerLinearFoot: pricePerFoot,
		PricePerRoll:       pricePerRoll,
	}
}

// Inventory holds the shop's saved roll presets.
type Inventory struct {
	Rolls []RollPreset `json:"rolls"`
}

// DefaultInventory returns an inventory populated with common wrap films.
func DefaultInventory() Inventory {
	return Inventory{
		Rolls: []RollPreset{
			NewRollPreset("3M IJ180Cv3 54\" x 150'", "3M", MaterialCast, 54, 150, 12.50, 1450),
			NewRollPreset("Avery MPI 1105 54\" x 150'", "Avery Dennison", MaterialCast, 54, 150, 11.75, 1375),
			NewRollPreset("Oracal 3951RA 54\" x 150'", "Orafol", MaterialCast, 54, 150, 11.25, 1310),
			NewRollPreset("Oracal 3651 54\" x 150'", "Orafol", MaterialCut, 54, 150, 7.75, 820),
			NewRollPreset("Avery MPI 3000 54\" x 150'", "Avery Dennison", MaterialCut, 54, 150, 6.95, 740),
		},
	}
}

// FindRollByID returns a pointer to the roll with the given ID, or nil.
func (inv *Inventory) FindRollByID(id string) *RollPreset {
	for i := range inv.Rolls {
		if inv.Rolls[i].ID == id {
			return &inv.Rolls[i]
		}
	}
	return nil
}

// FindRollByName returns a pointer to the first roll with the given name, or nil.
func (inv *Inventory) FindRollByName(name string) *RollPreset {
	for i := range inv.Rolls {
		if inv.Rolls[i].Name == name {
			return &inv.Rolls[i]
		}
	}
	return nil
}

// RollNames returns a list of roll preset names.
func (inv *Inventory) RollNames() []string {
	names := make([]string, len(inv.Rolls))
	for i, r := range inv.Rolls {
		names[i] = r.Name
	}
	return names
}

// ByMaterial returns the rolls stocked for the given material.
func (inv *Inventory) ByMaterial(m MaterialClass) []RollPreset {
	var rolls []RollPreset
	for _, r := range inv.Rolls {
		if r.Material == m {
			rolls = append(rolls, r)
		}
	}
	return rolls
}
