package game

import "fmt"

// EnemyKind is the size class of an enemy bubble
type EnemyKind int

const (
	EnemyKindBig EnemyKind = iota
	EnemyKindMedium
	EnemyKindSmall
	enemyKindCount
)

// EnemyPaletteSize is the number of display colours an enemy may be tagged with.
// The core only hands out an index; frontends own the actual colours.
const EnemyPaletteSize = 6

// String returns the lowercase name of the kind
func (k EnemyKind) String() string {
	switch k {
	case EnemyKindBig:
		return "big"
	case EnemyKindMedium:
		return "medium"
	case EnemyKindSmall:
		return "small"
	default:
		return fmt.Sprintf("EnemyKind(%d)", int(k))
	}
}

// Next returns the kind a destroyed enemy splits into.
// Small enemies do not split.
func (k EnemyKind) Next() (EnemyKind, bool) {
	switch k {
	case EnemyKindBig:
		return EnemyKindMedium, true
	case EnemyKindMedium:
		return EnemyKindSmall, true
	default:
		return k, false
	}
}

// EnemyKindConfig holds configuration for each enemy kind
type EnemyKindConfig struct {
	Size  float64 `json:"size"`
	Speed float64 `json:"speed"`
	Score int     `json:"score"`
}

// GetEnemyKindConfig returns the stock configuration for an enemy kind.
// It panics on an unknown kind.
func GetEnemyKindConfig(kind EnemyKind) EnemyKindConfig {
	switch kind {
	case EnemyKindBig:
		return EnemyKindConfig{
			Size:  0.1,
			Speed: 0.1,
			Score: 1,
		}
	case EnemyKindMedium:
		return EnemyKindConfig{
			Size:  0.075,
			Speed: 0.15,
			Score: 2,
		}
	case EnemyKindSmall:
		return EnemyKindConfig{
			Size:  0.05,
			Speed: 0.25, // Smallest and fastest
			Score: 5,
		}
	default:
		panic(fmt.Sprintf("game: unknown enemy kind %d", int(kind)))
	}
}
