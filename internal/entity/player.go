package entity

// Mark is the content of a single board cell.
type Mark uint8

const (
	EmptyCell Mark = iota
	PlayerX
	PlayerO
)

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "_"
	}
}

// Opponent - returns the mark that plays after this one. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// Cell identifies a square on the board.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
