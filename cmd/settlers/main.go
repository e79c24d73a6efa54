// Command settlers replays a scripted game (or opens a fresh one), journals
// every action to SQLite and reports the standings.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/talgya/hexsettlers/internal/config"
	"github.com/talgya/hexsettlers/internal/economy"
	"github.com/talgya/hexsettlers/internal/engine"
	"github.com/talgya/hexsettlers/internal/entropy"
	"github.com/talgya/hexsettlers/internal/persistence"
	"github.com/talgya/hexsettlers/internal/scenario"
	"github.com/talgya/hexsettlers/internal/world"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if err := run(cfg); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	// ── Script ────────────────────────────────────────────────────────
	var script *scenario.Scenario
	if cfg.Scenario != "" {
		var err error
		if script, err = scenario.Load(cfg.Scenario); err != nil {
			return err
		}
		slog.Info("scenario loaded", "name", script.Name, "actions", len(script.Actions))
	}

	colors, err := cfg.Colors()
	if err != nil {
		return err
	}
	if script != nil {
		if colors, err = script.Colors(); err != nil {
			return err
		}
	}

	// ── Board ─────────────────────────────────────────────────────────
	var board *world.Board
	if script != nil {
		board = script.BuildBoard(cfg.GenConfig())
	} else {
		board = world.Generate(cfg.GenConfig())
	}
	for r, n := range world.ResourceCounts(board) {
		slog.Info("tiles", "resource", r, "count", n)
	}

	// ── Randomness ────────────────────────────────────────────────────
	params := engine.Params{Board: board, Players: colors}
	switch {
	case script != nil && len(script.Dice) > 0:
		params.Dice, _ = script.ScriptedDice()
		slog.Info("dice scripted", "rolls", len(script.Dice))
	case cfg.Seed != 0:
		params.Dice = entropy.NewSeededDice(cfg.Seed)
	default:
		client := entropy.NewClient(cfg.RandomOrgKey)
		if client.Enabled() {
			slog.Info("random.org dice enabled")
		} else {
			slog.Warn("RANDOM_ORG_API_KEY not set, rolling with crypto/rand")
		}
		params.Dice = entropy.NewRandomDice(client)
	}

	intn := entropy.CryptoIntn()
	if cfg.Seed != 0 {
		intn = entropy.SeededIntn(cfg.Seed)
	}
	params.Intn = intn
	params.Deck = economy.StandardDeck(intn)
	if script != nil {
		if deck, ok := script.FixedDeck(); ok {
			params.Deck = deck
		}
	}

	g := engine.NewGame(params)

	// ── Journal ───────────────────────────────────────────────────────
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		os.MkdirAll(dir, 0755)
	}
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	gameID, err := db.CreateGame(g.Players(), cfg.Seed)
	if err != nil {
		return err
	}
	if err := db.SaveSnapshot(gameID, 0, g.Snapshot()); err != nil {
		return fmt.Errorf("initial snapshot: %w", err)
	}

	// ── Play ──────────────────────────────────────────────────────────
	var res scenario.Result
	if script != nil {
		res, err = scenario.Replay(g, script)
		if err != nil {
			return err
		}
	} else {
		rollOff(g)
	}

	if _, err := db.SaveGame(gameID, g, 0); err != nil {
		return err
	}

	report(gameID, g, res)
	if len(res.Mismatches) > 0 {
		return fmt.Errorf("%d scripted outcomes did not match", len(res.Mismatches))
	}
	return nil
}

// rollOff plays the starting-player roll-off of a fresh game.
func rollOff(g *engine.Game) {
	for g.Phase().Kind() == engine.PhaseStartingPlayer {
		g.Apply(engine.RollDice{Player: g.CurrentPlayer()})
	}
}

func report(gameID string, g *engine.Game, res scenario.Result) {
	snap := g.Snapshot()
	total := res.Applied + res.Rejected

	fmt.Printf("\nGame %s: %s actions (%s rejected), %s turn, %s phase.\n",
		gameID, humanize.Comma(int64(total)), humanize.Comma(int64(res.Rejected)),
		humanize.Ordinal(snap.Turn+1), strings.ReplaceAll(snap.Phase, "_", " "))
	for _, p := range snap.Players {
		titles := ""
		if p.Color == snap.LongestRoad {
			titles += " longest road"
		}
		if p.Color == snap.LargestArmy {
			titles += " largest army"
		}
		fmt.Printf("  %-7s %2d points, %2d cards, road %d%s\n",
			p.Color, p.Points, cardCount(p.Resources), p.RoadLength, titles)
	}
	for _, m := range res.Mismatches {
		fmt.Println("  mismatch:", m)
	}
	if snap.Winner != "" {
		fmt.Printf("Winner: %s\n", snap.Winner)
	} else {
		fmt.Printf("No winner yet; %s to move.\n", snap.Current)
	}
}

func cardCount(m map[string]int) int {
	n := 0
	for _, v := range m {
		n += v
	}
	return n
}
