package domain

// Puzzle bundles a generated board with its solution and metadata.
type Puzzle struct {
	ID         string
	Seed       string
	GivenCount int
	Givens     Grid // 0 = cell the player fills in, 1..9 = given
	Solution   Grid
	CreatedAt  int64
}

// Hint describes a suggested placement for the host UI.
type Hint struct {
	Message string
	Cell    CellCoord
	Value   uint8
}
