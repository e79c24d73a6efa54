// Package scenario reads YAML game scripts: the players, an optional fixed
// board, scripted dice, the development deck order and the actions to replay.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/hexsettlers/internal/economy"
	"github.com/talgya/hexsettlers/internal/engine"
	"github.com/talgya/hexsettlers/internal/entropy"
	"github.com/talgya/hexsettlers/internal/world"
)

// Scenario is a decoded game script.
type Scenario struct {
	Name    string       `yaml:"name"`
	Players []string     `yaml:"players"`
	Dice    []int        `yaml:"dice"`
	Deck    []string     `yaml:"deck"`
	Board   BoardSpec    `yaml:"board"`
	Actions []ActionSpec `yaml:"actions"`
}

// BoardSpec either lists tiles or asks for a generated board.
type BoardSpec struct {
	Radius int        `yaml:"radius"`
	Seed   int64      `yaml:"seed"`
	Robber *Coord     `yaml:"robber"`
	Tiles  []TileSpec `yaml:"tiles"`
}

// Coord is an axial coordinate.
type Coord struct {
	Q int `yaml:"q"`
	R int `yaml:"r"`
}

func (c Coord) hex() world.HexCoord { return world.HexCoord{Q: c.Q, R: c.R} }

// Spot is a vertex or edge: a tile and one of its directions.
type Spot struct {
	Q   int    `yaml:"q"`
	R   int    `yaml:"r"`
	Dir string `yaml:"dir"`
}

func (s Spot) position() (world.Position, error) {
	d, err := world.ParseDirection(s.Dir)
	if err != nil {
		return world.Position{}, err
	}
	return world.At(s.Q, s.R, d), nil
}

// TileSpec is one fixed tile. Harbors maps a corner direction to "any" or a
// resource name.
type TileSpec struct {
	Q        int               `yaml:"q"`
	R        int               `yaml:"r"`
	Resource string            `yaml:"resource"`
	Number   int               `yaml:"number"`
	Harbors  map[string]string `yaml:"harbors"`
}

// ActionSpec is one scripted action. Only the fields its kind uses are read.
type ActionSpec struct {
	Player    string         `yaml:"player"`
	Action    string         `yaml:"action"`
	At        *Spot          `yaml:"at"`        // add_building, add_road
	Building  string         `yaml:"building"`  // add_building
	Robber    *Coord         `yaml:"robber"`    // move_robber
	Victim    string         `yaml:"victim"`    // steal_resource
	To        string         `yaml:"to"`        // offer_trade
	Offer     map[string]int `yaml:"offer"`     // offer_trade
	Receive   map[string]int `yaml:"receive"`   // offer_trade
	Discard   map[string]int `yaml:"discard"`   // discard_resources
	Resource  string         `yaml:"resource"`  // monopoly
	Resources []string       `yaml:"resources"` // year_of_plenty
	Card      string         `yaml:"card"`      // use_development_card
	Give      string         `yaml:"give"`      // exchange
	Take      string         `yaml:"take"`      // exchange
	Reject    bool           `yaml:"reject"`    // expected to be rejected
}

// Load reads and decodes a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Decode reads a scenario and validates it. Unknown keys are rejected.
func Decode(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Scenario
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks everything that would otherwise panic when the scenario is
// turned into a board, dice and actions.
func (s *Scenario) Validate() error {
	if _, err := s.Colors(); err != nil {
		return err
	}
	if len(s.Dice) > 0 {
		if _, err := entropy.NewScriptedDice(s.Dice...); err != nil {
			return fmt.Errorf("dice: %w", err)
		}
	}
	for _, name := range s.Deck {
		if _, err := economy.ParseDevelopmentCard(name); err != nil {
			return fmt.Errorf("deck: %w", err)
		}
	}
	if err := s.Board.validate(); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	colors, _ := s.Colors()
	seated := make(map[world.Color]bool, len(colors))
	for _, c := range colors {
		seated[c] = true
	}
	for i, a := range s.Actions {
		act, err := a.Engine()
		if err != nil {
			return fmt.Errorf("action %d: %w", i+1, err)
		}
		for _, c := range participants(act) {
			if !seated[c] {
				return fmt.Errorf("action %d: %s is not seated", i+1, c)
			}
		}
	}
	return nil
}

// participants lists every color an action names.
func participants(a engine.Action) []world.Color {
	switch a := a.(type) {
	case engine.StealResource:
		return []world.Color{a.Player, a.Victim}
	case engine.OfferTrade:
		return []world.Color{a.Player, a.To}
	}
	return []world.Color{a.Actor()}
}

// Colors returns the seat order.
func (s *Scenario) Colors() ([]world.Color, error) {
	if len(s.Players) == 0 {
		return nil, errors.New("no players")
	}
	out := make([]world.Color, 0, len(s.Players))
	for _, name := range s.Players {
		c, err := world.ParseColor(name)
		if err != nil {
			return nil, fmt.Errorf("players: %w", err)
		}
		out = append(out, c)
	}
	return out, nil
}

// ScriptedDice returns the dice script, or false if the scenario has none.
func (s *Scenario) ScriptedDice() (*entropy.ScriptedDice, bool) {
	if len(s.Dice) == 0 {
		return nil, false
	}
	d, err := entropy.NewScriptedDice(s.Dice...)
	if err != nil {
		return nil, false
	}
	return d, true
}

// FixedDeck returns the development deck in script order, or false if the
// scenario leaves the deck to the caller.
func (s *Scenario) FixedDeck() (*economy.Deck, bool) {
	if len(s.Deck) == 0 {
		return nil, false
	}
	cards := make([]economy.DevelopmentCard, 0, len(s.Deck))
	for _, name := range s.Deck {
		c, _ := economy.ParseDevelopmentCard(name)
		cards = append(cards, c)
	}
	return economy.NewDeck(cards...), true
}

// BuildBoard assembles the listed tiles, or generates a board when none are
// listed. Generation uses the scenario's radius and seed where set and cfg
// otherwise.
func (s *Scenario) BuildBoard(cfg world.GenConfig) *world.Board {
	bs := s.Board
	if len(bs.Tiles) == 0 {
		if bs.Radius > 0 {
			cfg.Radius = bs.Radius
		}
		if bs.Seed != 0 {
			cfg.Seed = bs.Seed
		}
		return world.Generate(cfg)
	}

	b := world.NewBuilder()
	for _, ts := range bs.Tiles {
		tile, _ := ts.tile()
		b.AddTile(world.HexCoord{Q: ts.Q, R: ts.R}, tile)
	}
	if bs.Robber != nil {
		b.WithRobber(bs.Robber.hex())
	}
	return b.Build()
}

func (bs BoardSpec) validate() error {
	if len(bs.Tiles) == 0 {
		if bs.Robber != nil {
			return errors.New("robber needs listed tiles")
		}
		if bs.Radius < 0 {
			return fmt.Errorf("radius %d", bs.Radius)
		}
		return nil
	}
	seen := make(map[world.HexCoord]bool)
	for _, ts := range bs.Tiles {
		if _, err := ts.tile(); err != nil {
			return err
		}
		seen[world.HexCoord{Q: ts.Q, R: ts.R}] = true
	}
	if bs.Robber != nil && !seen[bs.Robber.hex()] {
		return fmt.Errorf("robber on unlisted tile %s", bs.Robber.hex())
	}
	return nil
}

func (ts TileSpec) tile() (*world.Tile, error) {
	at := world.HexCoord{Q: ts.Q, R: ts.R}
	res, err := world.ParseResource(ts.Resource)
	if err != nil {
		return nil, fmt.Errorf("tile %s: %w", at, err)
	}
	if ts.Number < 2 || ts.Number > 12 {
		return nil, fmt.Errorf("tile %s: number %d out of range", at, ts.Number)
	}
	if (res == world.ResourceNothing) != (ts.Number == 7) {
		return nil, fmt.Errorf("tile %s: only the desert carries 7", at)
	}
	tile := world.NewTile(res, ts.Number)
	for dir, name := range ts.Harbors {
		d, err := world.ParseDirection(dir)
		if err != nil {
			return nil, fmt.Errorf("tile %s: %w", at, err)
		}
		h, err := world.ParseHarbor(name)
		if err != nil {
			return nil, fmt.Errorf("tile %s: %w", at, err)
		}
		tile.WithHarbor(d, h)
	}
	return tile, nil
}

func resourceSet(m map[string]int) (economy.ResourceSet, error) {
	pairs := make(map[world.Resource]int, len(m))
	for name, n := range m {
		r, err := world.ParseResource(name)
		if err != nil {
			return economy.ResourceSet{}, err
		}
		if !r.Producing() || n < 0 {
			return economy.ResourceSet{}, fmt.Errorf("invalid amount %d of %s", n, name)
		}
		pairs[r] = n
	}
	return economy.Set(pairs), nil
}

func producing(name string) (world.Resource, error) {
	r, err := world.ParseResource(name)
	if err != nil {
		return 0, err
	}
	if !r.Producing() {
		return 0, fmt.Errorf("%s is not a tradeable resource", name)
	}
	return r, nil
}

// Engine converts the scripted action into an engine action.
func (a ActionSpec) Engine() (engine.Action, error) {
	player, err := world.ParseColor(a.Player)
	if err != nil {
		return nil, err
	}
	kind, err := engine.ParseActionKind(a.Action)
	if err != nil {
		return nil, err
	}

	switch kind {
	case engine.KindRollDice:
		return engine.RollDice{Player: player}, nil
	case engine.KindAddBuilding:
		if a.At == nil {
			return nil, errors.New("add_building needs at")
		}
		pos, err := a.At.position()
		if err != nil {
			return nil, err
		}
		bt := world.Settlement
		if a.Building != "" {
			if bt, err = world.ParseBuildingType(a.Building); err != nil {
				return nil, err
			}
		}
		return engine.AddBuilding{Player: player, Position: pos, Type: bt}, nil
	case engine.KindAddRoad:
		if a.At == nil {
			return nil, errors.New("add_road needs at")
		}
		pos, err := a.At.position()
		if err != nil {
			return nil, err
		}
		return engine.AddRoad{Player: player, Position: pos}, nil
	case engine.KindDiscardResources:
		set, err := resourceSet(a.Discard)
		if err != nil {
			return nil, err
		}
		return engine.DiscardResources{Player: player, Resources: set}, nil
	case engine.KindMoveRobber:
		if a.Robber == nil {
			return nil, errors.New("move_robber needs robber")
		}
		return engine.MoveRobber{Player: player, To: a.Robber.hex()}, nil
	case engine.KindStealResource:
		victim, err := world.ParseColor(a.Victim)
		if err != nil {
			return nil, err
		}
		return engine.StealResource{Player: player, Victim: victim}, nil
	case engine.KindOfferTrade:
		to, err := world.ParseColor(a.To)
		if err != nil {
			return nil, err
		}
		offer, err := resourceSet(a.Offer)
		if err != nil {
			return nil, err
		}
		receive, err := resourceSet(a.Receive)
		if err != nil {
			return nil, err
		}
		return engine.OfferTrade{Player: player, To: to, Offer: offer, Receive: receive}, nil
	case engine.KindAcceptTrade:
		return engine.AcceptTrade{Player: player}, nil
	case engine.KindDeclineTrade:
		return engine.DeclineTrade{Player: player}, nil
	case engine.KindEndTurn:
		return engine.EndTurn{Player: player}, nil
	case engine.KindYearOfPlenty:
		if len(a.Resources) != 2 {
			return nil, fmt.Errorf("year_of_plenty takes 2 resources, got %d", len(a.Resources))
		}
		first, err := producing(a.Resources[0])
		if err != nil {
			return nil, err
		}
		second, err := producing(a.Resources[1])
		if err != nil {
			return nil, err
		}
		return engine.YearOfPlenty{Player: player, First: first, Second: second}, nil
	case engine.KindMonopoly:
		r, err := producing(a.Resource)
		if err != nil {
			return nil, err
		}
		return engine.Monopoly{Player: player, Resource: r}, nil
	case engine.KindBuyDevelopmentCard:
		return engine.BuyDevelopmentCard{Player: player}, nil
	case engine.KindUseDevelopmentCard:
		card, err := economy.ParseDevelopmentCard(a.Card)
		if err != nil {
			return nil, err
		}
		return engine.UseDevelopmentCard{Player: player, Card: card}, nil
	case engine.KindExchange:
		give, err := producing(a.Give)
		if err != nil {
			return nil, err
		}
		take, err := producing(a.Take)
		if err != nil {
			return nil, err
		}
		return engine.Exchange{Player: player, Offer: give, Receive: take}, nil
	}
	return nil, fmt.Errorf("unsupported action %s", kind)
}
