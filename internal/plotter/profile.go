package plotter

// CutterProfile describes the HPGL dialect of a contour cutter.
type CutterProfile struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	UnitsPerInch float64 `json:"units_per_inch"` // Plotter units per inch (1016 = 0.025 mm)

	InitCode  []string `json:"init_code"`  // Commands at start of program
	PenSelect string   `json:"pen_select"` // Tool select (e.g., "SP1")
	SpeedCmd  string   `json:"speed_cmd"`  // Blade speed, cm/s (e.g., "VS%d"); empty if unsupported
	ForceCmd  string   `json:"force_cmd"`  // Blade force, grams (e.g., "FS%d"); empty if unsupported
	EndCode   []string `json:"end_code"`   // Commands at end of program

	Terminator string `json:"terminator"` // Appended to every command (";" or ";\n")

	IsBuiltIn bool `json:"-"`
}

// BuiltInProfiles are the cutter dialects shipped with WrapCut. Generic
// must stay last; it is the fallback for unknown names.
var BuiltInProfiles = []CutterProfile{
	{
		Name:         "Graphtec",
		Description:  "Graphtec CE/FC series in HP-GL emulation",
		UnitsPerInch: 1016,
		InitCode:     []string{"IN"},
		PenSelect:    "SP1",
		SpeedCmd:     "VS%d",
		ForceCmd:     "FS%d",
		EndCode:      []string{"PU0,0", "SP0"},
		Terminator:   ";\n",
		IsBuiltIn:    true,
	},
	{
		Name:         "Roland",
		Description:  "Roland CAMM-1 / GS series",
		UnitsPerInch: 1016,
		InitCode:     []string{"IN", "PA"},
		PenSelect:    "SP1",
		SpeedCmd:     "VS%d",
		ForceCmd:     "FS%d",
		EndCode:      []string{"PU0,0", "SP0", "IN"},
		Terminator:   ";\n",
		IsBuiltIn:    true,
	},
	{
		Name:         "Summa",
		Description:  "Summa S One / S Class in HP-GL mode",
		UnitsPerInch: 1016,
		InitCode:     []string{"IN", "PA"},
		PenSelect:    "SP1",
		SpeedCmd:     "VS%d",
		ForceCmd:     "",
		EndCode:      []string{"PU0,0", "SP0"},
		Terminator:   ";",
		IsBuiltIn:    true,
	},
	{
		Name:         "Generic",
		Description:  "Plain HP-GL, no speed or force control",
		UnitsPerInch: 1016,
		InitCode:     []string{"IN"},
		PenSelect:    "SP1",
		EndCode:      []string{"PU0,0", "SP0"},
		Terminator:   ";\n",
		IsBuiltIn:    true,
	},
}

// CustomProfiles holds user-defined profiles loaded at startup. They take
// precedence over built-ins with the same name.
var CustomProfiles []CutterProfile

// GetProfile returns a cutter profile by name, or the Generic profile if not found.
func GetProfile(name string) CutterProfile {
	for _, p := range CustomProfiles {
		if p.Name == name {
			return p
		}
	}
	for _, p := range BuiltInProfiles {
		if p.Name == name {
			return p
		}
	}
	return BuiltInProfiles[len(BuiltInProfiles)-1]
}

// GetProfileNames returns a list of all available profile names.
func GetProfileNames() []string {
	var names []string
	seen := map[string]bool{}
	for _, p := range CustomProfiles {
		names = append(names, p.Name)
		seen[p.Name] = true
	}
	for _, p := range BuiltInProfiles {
		if !seen[p.Name] {
			names = append(names, p.Name)
		}
	}
	return names
}
