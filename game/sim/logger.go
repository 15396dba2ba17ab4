package sim

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Logger writes game logs and batch summaries under one output directory.
type Logger struct {
	dir string
}

// NewLogger creates the output directory if needed.
func NewLogger(dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return &Logger{dir: dir}, nil
}

// Dir returns the output directory.
func (l *Logger) Dir() string { return l.dir }

// WriteGame writes one game's full record as <game_id>.json and returns the
// file path.
func (l *Logger) WriteGame(result *GameResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode game log: %w", err)
	}
	path := filepath.Join(l.dir, result.GameID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write game log: %w", err)
	}
	return path, nil
}

// WriteSummary writes one CSV row per game to summary.csv and returns the
// file path. The analyzer and spreadsheet tooling consume this file.
func (l *Logger) WriteSummary(results []*GameResult) (string, error) {
	path := filepath.Join(l.dir, "summary.csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create summary: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"game_id", "seed", "agents", "rounds", "winner", "winner_strategy", "scores", "reason", "duration_ms"}
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, r := range results {
		scores := make([]string, len(r.Scores))
		for i, s := range r.Scores {
			scores[i] = strconv.Itoa(s)
		}
		row := []string{
			r.GameID,
			strconv.FormatInt(r.Seed, 10),
			strings.Join(r.Agents, ";"),
			strconv.Itoa(r.Rounds),
			strconv.Itoa(r.Winner),
			r.WinnerName,
			strings.Join(scores, ";"),
			r.Reason,
			strconv.FormatFloat(r.DurationMS, 'f', 3, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to write summary: %w", err)
	}
	return path, nil
}

// ReadGame loads a single game log written by WriteGame.
func ReadGame(path string) (*GameResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game log: %w", err)
	}
	var result GameResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse game log %s: %w", path, err)
	}
	return &result, nil
}

// ReadGames loads every *.json game log in a directory, skipping files that
// do not parse as game logs.
func ReadGames(dir string) ([]*GameResult, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	var results []*GameResult
	for _, path := range paths {
		result, err := ReadGame(path)
		if err != nil {
			continue
		}
		results = append(results, result)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no game logs found in %s", dir)
	}
	return results, nil
}
