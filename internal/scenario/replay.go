package scenario

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/talgya/hexsettlers/internal/engine"
	"github.com/talgya/hexsettlers/internal/world"
)

// Mismatch is a scripted action whose outcome differed from its reject flag.
type Mismatch struct {
	Index      int // 1-based position in the script
	Action     engine.Action
	Err        error
	WantReject bool
}

func (m Mismatch) String() string {
	if m.WantReject {
		return fmt.Sprintf("action %d (%s by %s) was accepted, expected a rejection", m.Index, m.Action.Kind(), m.Action.Actor())
	}
	return fmt.Sprintf("action %d (%s by %s) was rejected: %v", m.Index, m.Action.Kind(), m.Action.Actor(), m.Err)
}

// Result summarizes a replay.
type Result struct {
	Applied    int
	Rejected   int
	Mismatches []Mismatch
	Winner     world.Color // ColorNone if nobody has won
}

// Replay applies every scripted action to g in order. It stops early once
// the game has a winner. Rule rejections are part of the result; an error
// means the script does not fit the game's board.
func Replay(g *engine.Game, s *Scenario) (Result, error) {
	var res Result
	for i, spec := range s.Actions {
		a, err := spec.Engine()
		if err != nil {
			return res, fmt.Errorf("action %d: %w", i+1, err)
		}
		if err := onBoard(g.Board(), a); err != nil {
			return res, fmt.Errorf("action %d: %w", i+1, err)
		}

		err = g.Apply(a)
		if err != nil {
			res.Rejected++
		} else {
			res.Applied++
		}
		if (err != nil) != spec.Reject {
			m := Mismatch{Index: i + 1, Action: a, Err: err, WantReject: spec.Reject}
			slog.Warn("unexpected outcome", "detail", m.String())
			res.Mismatches = append(res.Mismatches, m)
		}

		if c, ok := g.Winner(); ok {
			res.Winner = c
			slog.Info("game won", "player", c, "action", i+1)
			break
		}
	}
	return res, nil
}

// onBoard rejects positions that touch no registered tile, which the board
// treats as programmer errors.
func onBoard(b *world.Board, a engine.Action) error {
	var touched []world.HexCoord
	switch a := a.(type) {
	case engine.AddBuilding:
		vc := a.Position.VertexCoords()
		touched = vc[:]
	case engine.AddRoad:
		for _, e := range a.Position.EdgePositions() {
			touched = append(touched, e.Coord)
		}
	default:
		return nil
	}
	for _, c := range touched {
		if b.Contains(c) {
			return nil
		}
	}
	return errors.New("position off the board")
}
