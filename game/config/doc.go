// Package config provides match configuration management for Chasse Patate.
//
// The config package handles:
//   - Loading match configurations from JSON files
//   - Configuration validation and caching
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Match configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - The seat count (num_players)
//   - The track as an ordered list of tile ids (tile_config)
//   - The opening hand composition (starting_hand)
//   - Checkpoint card draw counts (checkpoints)
//   - An optional fixed seed for reproducible matches
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	matchConfig, err := manager.LoadConfig("standard")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// All configurations pass engine.ValidateMatchConfig before they are cached
// or saved.
package config
