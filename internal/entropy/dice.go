package entropy

import "fmt"

// RandomDice rolls two independent six-sided dice.
type RandomDice struct {
	die func() int
}

// NewRandomDice rolls from the client, or from crypto/rand when c is nil.
func NewRandomDice(c *Client) *RandomDice {
	return &RandomDice{die: c.Die}
}

// NewSeededDice rolls from a deterministic generator.
func NewSeededDice(seed int64) *RandomDice {
	intn := SeededIntn(seed)
	return &RandomDice{die: func() int { return intn(6) + 1 }}
}

// Roll returns the sum of two dice, in [2, 12].
func (d *RandomDice) Roll() int {
	return d.die() + d.die()
}

// ScriptedDice replays a fixed list of rolls, starting over once exhausted.
type ScriptedDice struct {
	rolls []int
	next  int
}

// NewScriptedDice validates the script. Every roll must be in [2, 12].
func NewScriptedDice(rolls ...int) (*ScriptedDice, error) {
	if len(rolls) == 0 {
		return nil, fmt.Errorf("scripted dice: no rolls")
	}
	for i, r := range rolls {
		if r < 2 || r > 12 {
			return nil, fmt.Errorf("scripted dice: roll %d is %d, want 2..12", i, r)
		}
	}
	return &ScriptedDice{rolls: append([]int(nil), rolls...)}, nil
}

// Roll returns the next scripted value.
func (d *ScriptedDice) Roll() int {
	r := d.rolls[d.next]
	d.next = (d.next + 1) % len(d.rolls)
	return r
}
