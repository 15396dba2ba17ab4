package engine

import "fmt"

const (
	// TileFields is the length of every race tile.
	TileFields = 20
	// CheckpointInterval is the spacing of card-draw checkpoints.
	CheckpointInterval = 10
)

// SprintPoints and FinishPoints are the awards by arrival rank at
// intermediate sprints and at the finish line.
var (
	SprintPoints = []int{3, 2, 1}
	FinishPoints = []int{12, 8, 5, 3, 1}
)

// tileTemplates maps a tile id to its 20 terrain fields.
var tileTemplates = map[int][]Terrain{
	1: repeatTerrain(TerrainFlat, 20),
	2: concatTerrain(
		repeatTerrain(TerrainFlat, 3),
		repeatTerrain(TerrainClimb, 17),
	),
	3: concatTerrain(
		repeatTerrain(TerrainFlat, 8),
		repeatTerrain(TerrainCobbles, 12),
	),
	4: concatTerrain(
		repeatTerrain(TerrainFlat, 2),
		repeatTerrain(TerrainClimb, 12),
		repeatTerrain(TerrainDescent, 6),
	),
	5: concatTerrain(
		repeatTerrain(TerrainFlat, 2),
		repeatTerrain(TerrainCobbles, 5),
		repeatTerrain(TerrainFlat, 6),
		repeatTerrain(TerrainCobbles, 5),
		repeatTerrain(TerrainFlat, 2),
	),
}

func repeatTerrain(t Terrain, n int) []Terrain {
	out := make([]Terrain, n)
	for i := range out {
		out[i] = t
	}
	return out
}

func concatTerrain(parts ...[]Terrain) []Terrain {
	var out []Terrain
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// TileIDs returns the available tile template ids.
func TileIDs() []int {
	ids := make([]int, 0, len(tileTemplates))
	for id := range tileTemplates {
		ids = append(ids, id)
	}
	return ids
}

// BuildTrack assembles a track from an ordered list of tile ids. The last
// field of every tile is a scoring field: an intermediate sprint on all tiles
// but the last, the finish line on the last.
func BuildTrack(tileConfig []int) ([]Field, error) {
	if len(tileConfig) == 0 {
		return nil, fmt.Errorf("build track: tile config is empty")
	}
	track := make([]Field, 0, len(tileConfig)*TileFields)
	for tileIdx, id := range tileConfig {
		template, ok := tileTemplates[id]
		if !ok {
			return nil, fmt.Errorf("build track: %w: %d", ErrInvalidTileID, id)
		}
		last := tileIdx == len(tileConfig)-1
		for fieldIdx, terrain := range template {
			f := Field{
				Position: tileIdx*TileFields + fieldIdx,
				Terrain:  terrain,
			}
			if fieldIdx == TileFields-1 {
				if last {
					f.Terrain = TerrainFinish
					f.Points = append([]int(nil), FinishPoints...)
				} else {
					f.Terrain = TerrainSprint
					f.Points = append([]int(nil), SprintPoints...)
				}
			}
			track = append(track, f)
		}
	}
	return track, nil
}

// IsCheckpoint reports whether crossing or landing on the position triggers a
// card draw.
func IsCheckpoint(position int) bool {
	return position > 0 && position%CheckpointInterval == 0
}
