package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/piwi3910/WrapCut/internal/plotter"
)

// DefaultProfilesPath returns the default file path for custom cutter profiles.
func DefaultProfilesPath() string {
	return filepath.Join(DefaultConfigDir(), "profiles.json")
}

// SaveCustomProfiles saves custom profiles to a JSON file.
func SaveCustomProfiles(path string, profiles []plotter.CutterProfile) error {
	return writeJSON(path, profiles)
}

// LoadCustomProfiles loads custom profiles from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadCustomProfiles(path string) ([]plotter.CutterProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []plotter.CutterProfile{}, nil
		}
		return nil, err
	}

	var profiles []plotter.CutterProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, err
	}

	// Ensure loaded profiles are not marked as built-in
	for i := range profiles {
		profiles[i].IsBuiltIn = false
	}
	return profiles, nil
}

// ExportProfile exports a single profile to a JSON file (for sharing).
func ExportProfile(path string, profile plotter.CutterProfile) error {
	profile.IsBuiltIn = false
	return writeJSON(path, profile)
}

// ImportProfile imports a single profile from a JSON file.
func ImportProfile(path string) (plotter.CutterProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return plotter.CutterProfile{}, err
	}

	var profile plotter.CutterProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return plotter.CutterProfile{}, err
	}

	profile.IsBuiltIn = false
	if profile.Name == "" {
		return plotter.CutterProfile{}, errors.New("imported profile has no name")
	}
	if profile.UnitsPerInch < 0 {
		return plotter.CutterProfile{}, errors.New("imported profile has negative units per inch")
	}
	return profile, nil
}
