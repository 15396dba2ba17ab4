// Command validate provides a small CLI that validates match configuration
// JSON files in the ../configs directory. It checks:
//   - JSON structure and engine-level constraints (seat count, tile IDs,
//     starting hand sizes against the shared deck, checkpoint draws)
//   - That the track builds, and reports its length and scoring lines
//   - Name collisions between the filename and the embedded config name
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/chasse-patate/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single configuration JSON file.
// It runs the engine's own config validation, builds the track to make sure
// the tile list is playable, and adds summary lines for valid files.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config engine.MatchConfig
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if config.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Config must have a name")
	}

	expectedName := strings.TrimSuffix(result.File, ".json")
	if config.Name != "" && config.Name != expectedName {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Name %q does not match filename %q", config.Name, expectedName))
	}

	if err := engine.ValidateMatchConfig(&config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	track, err := engine.BuildTrack(config.TileConfig)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Track build failed: %v", err))
		return result
	}

	sprints := 0
	for _, f := range track {
		if f.Terrain == engine.TerrainSprint {
			sprints++
		}
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Players: %d", config.NumPlayers))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Track: %d tiles, %d fields", len(config.TileConfig), len(track)))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Scoring lines: %d sprints + finish", sprints))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Starting hand: %d cards per player", config.StartingHand.Total()))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Cards dealt: %d of %d", config.StartingHand.Total()*config.NumPlayers, engine.DeckSize))
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
