package gridgraph

import "encoding/json"

// cellJSON is the wire form of a Cell. Distance is null while the cell is
// unreached, since Infinity does not fit in a JavaScript number.
type cellJSON struct {
	Row       int  `json:"row"`
	Col       int  `json:"col"`
	IsStart   bool `json:"isStart"`
	IsFinish  bool `json:"isFinish"`
	IsWall    bool `json:"isWall"`
	IsVisited bool `json:"isVisited"`
	Distance  *int `json:"distance"`
	Previous  int  `json:"previous"`
}

// MarshalJSON encodes c, writing an Infinity distance as null.
func (c Cell) MarshalJSON() ([]byte, error) {
	out := cellJSON{
		Row:       c.Row,
		Col:       c.Col,
		IsStart:   c.IsStart,
		IsFinish:  c.IsFinish,
		IsWall:    c.IsWall,
		IsVisited: c.IsVisited,
		Previous:  c.Previous,
	}
	if c.Distance != Infinity {
		d := c.Distance
		out.Distance = &d
	}

	return json.Marshal(out)
}

// UnmarshalJSON decodes c. A null or missing distance becomes Infinity and a
// missing previous becomes NoPrevious.
func (c *Cell) UnmarshalJSON(data []byte) error {
	in := cellJSON{Previous: NoPrevious}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*c = Cell{
		Row:       in.Row,
		Col:       in.Col,
		IsStart:   in.IsStart,
		IsFinish:  in.IsFinish,
		IsWall:    in.IsWall,
		IsVisited: in.IsVisited,
		Distance:  Infinity,
		Previous:  in.Previous,
	}
	if in.Distance != nil {
		c.Distance = *in.Distance
	}

	return nil
}
