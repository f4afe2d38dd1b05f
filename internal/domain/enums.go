package domain

import "fmt"

// Difficulty labels preset given-count targets for generation.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// TargetGivens maps a difficulty to the number of cells left as givens.
func (d Difficulty) TargetGivens() int {
	switch d {
	case Easy:
		return 40
	case Medium:
		return 34
	case Hard:
		return 28
	default:
		return 24 // Expert
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// ParseDifficulty converts a label like "easy" into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}
