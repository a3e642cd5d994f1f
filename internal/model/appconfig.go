package model

// AppConfig holds shop-wide preferences and the defaults applied to new jobs.
type AppConfig struct {
	// Print defaults
	DefaultMaterial   MaterialClass  `json:"default_material"`
	CastPricePerFoot  float64        `json:"cast_price_per_linear_foot"`
	CutPricePerFoot   float64        `json:"cut_price_per_linear_foot"`
	Constants         PrintConstants `json:"constants"`
	WastePercent      float64        `json:"waste_percent"`       // Applied to roll estimates
	DefaultRollPreset string         `json:"default_roll_preset"` // RollPreset name

	// Contour cutter defaults
	CutterProfile string `json:"cutter_profile"` // Plotter profile name
	CutterSpeed   int    `json:"cutter_speed"`   // cm/s
	CutterForce   int    `json:"cutter_force"`   // grams

	// Application preferences
	LogLevel   string   `json:"log_level"` // "debug", "info", "warn", "error"
	RecentJobs []string `json:"recent_jobs"`
}

// DefaultAppConfig returns an AppConfig populated with the shop defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultMaterial:   MaterialCast,
		CastPricePerFoot:  12.50,
		CutPricePerFoot:   7.75,
		Constants:         DefaultPrintConstants(),
		WastePercent:      10,
		DefaultRollPreset: "3M IJ180Cv3 54\" x 150'",
		CutterProfile:     "Generic",
		CutterSpeed:       30,
		CutterForce:       120,
		LogLevel:          "info",
		RecentJobs:        []string{},
	}
}

// PriceFor returns the configured price per linear foot for a material,
// or 0 for an unknown material.
func (c AppConfig) PriceFor(m MaterialClass) float64 {
	switch m {
	case MaterialCast:
		return c.CastPricePerFoot
	case MaterialCut:
		return c.CutPricePerFoot
	default:
		return 0
	}
}

// ApplyToJob fills in the material and price of a job that has none set.
func (c AppConfig) ApplyToJob(j *PrintJob) {
	if j.Material == "" {
		j.Material = c.DefaultMaterial
	}
	if j.PricePerLinearFoot == 0 {
		j.PricePerLinearFoot = c.PriceFor(j.Material)
	}
}

// AddRecentJob moves path to the front of the recent job list, keeping at
// most max entries.
func (c *AppConfig) AddRecentJob(path string, max int) {
	recent := []string{path}
	for _, p := range c.RecentJobs {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > max {
		recent = recent[:max]
	}
	c.RecentJobs = recent
}
