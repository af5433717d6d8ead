package move

// Summary is a flat, serializable view of a move.
type Summary struct {
	Action   string `yaml:"action"`
	Word     string `yaml:"word,omitempty"`
	Coords   string `yaml:"coords,omitempty"`
	Row      int    `yaml:"row"`
	Col      int    `yaml:"col"`
	EndRow   int    `yaml:"end_row"`
	EndCol   int    `yaml:"end_col"`
	Vertical bool   `yaml:"vertical"`
	Tiles    string `yaml:"tiles"`
	Leave    string `yaml:"leave"`
	Score    int    `yaml:"score"`
}

func (m *Move) Summary() Summary {
	return Summary{
		Action:   m.MoveTypeString(),
		Word:     m.word,
		Coords:   m.coords,
		Row:      m.start.Row,
		Col:      m.start.Col,
		EndRow:   m.end.Row,
		EndCol:   m.end.Col,
		Vertical: m.vertical,
		Tiles:    m.TilesString(),
		Leave:    m.LeaveString(),
		Score:    m.score,
	}
}
