// Package persistence provides the SQLite game journal: every submitted
// action with its outcome, JSON snapshots between actions, and a small
// key/value meta table.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/hexsettlers/internal/engine"
	"github.com/talgya/hexsettlers/internal/world"
)

// ErrNoSnapshot is returned when a game has no stored snapshot yet.
var ErrNoSnapshot = errors.New("no snapshot stored")

// DB wraps a SQLite connection for the game journal.
type DB struct {
	conn *sqlx.DB
}

// GameRow is one journaled game.
type GameRow struct {
	ID      string `db:"id"`
	Created string `db:"created"` // RFC 3339, UTC
	Players string `db:"players"`
	Seed    int64  `db:"seed"`
}

// ActionRow is one journaled action.
type ActionRow struct {
	GameID  string `db:"game_id"`
	Seq     int    `db:"seq"`
	Turn    int    `db:"turn"`
	Player  string `db:"player"`
	Action  string `db:"action"`
	Payload string `db:"payload"`
	Phase   string `db:"phase"`
	Next    string `db:"next"`
	Roll    int    `db:"roll"`
	Reason  string `db:"reason"`
}

// Accepted reports whether the action was committed.
func (r ActionRow) Accepted() bool { return r.Reason == "" }

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		created TEXT NOT NULL,
		players TEXT NOT NULL,
		seed INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS actions (
		game_id TEXT NOT NULL REFERENCES games(id),
		seq INTEGER NOT NULL,
		turn INTEGER NOT NULL,
		player TEXT NOT NULL,
		action TEXT NOT NULL,
		payload TEXT NOT NULL,
		phase TEXT NOT NULL,
		next TEXT NOT NULL,
		roll INTEGER NOT NULL,
		reason TEXT NOT NULL,
		PRIMARY KEY (game_id, seq)
	);

	CREATE TABLE IF NOT EXISTS snapshots (
		game_id TEXT NOT NULL REFERENCES games(id),
		seq INTEGER NOT NULL,
		state_json TEXT NOT NULL,
		PRIMARY KEY (game_id, seq)
	);

	CREATE TABLE IF NOT EXISTS game_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_actions_player ON actions(game_id, player);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// CreateGame registers a new game and returns its id.
func (db *DB) CreateGame(players []world.Color, seed int64) (string, error) {
	names := make([]string, len(players))
	for i, c := range players {
		names[i] = c.String()
	}
	id := uuid.NewString()
	_, err := db.conn.Exec(
		"INSERT INTO games (id, created, players, seed) VALUES (?, ?, ?, ?)",
		id, time.Now().UTC().Format(time.RFC3339Nano), strings.Join(names, ";"), seed,
	)
	if err != nil {
		return "", fmt.Errorf("create game: %w", err)
	}
	slog.Info("game registered", "id", id, "players", len(players), "seed", seed)
	return id, nil
}

// Games lists every journaled game, newest first.
func (db *DB) Games() ([]GameRow, error) {
	var games []GameRow
	err := db.conn.Select(&games, "SELECT id, created, players, seed FROM games ORDER BY created DESC")
	return games, err
}

func actionRow(gameID string, rec engine.Record) (ActionRow, error) {
	payload, err := json.Marshal(rec.Action)
	if err != nil {
		return ActionRow{}, fmt.Errorf("encode action %d: %w", rec.Seq, err)
	}
	row := ActionRow{
		GameID:  gameID,
		Seq:     rec.Seq,
		Turn:    rec.Turn,
		Player:  rec.Action.Actor().String(),
		Action:  rec.Action.Kind().String(),
		Payload: string(payload),
		Phase:   rec.Phase.String(),
		Next:    rec.Next.String(),
		Roll:    rec.Roll,
	}
	if rec.Err != nil {
		row.Reason = rec.Err.Error()
	}
	return row, nil
}

// AppendActions journals records in one transaction.
func (db *DB) AppendActions(gameID string, recs []engine.Record) error {
	if len(recs) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, rec := range recs {
		row, err := actionRow(gameID, rec)
		if err != nil {
			return err
		}
		_, err = tx.NamedExec(`INSERT INTO actions
			(game_id, seq, turn, player, action, payload, phase, next, roll, reason)
			VALUES (:game_id, :seq, :turn, :player, :action, :payload, :phase, :next, :roll, :reason)`,
			row,
		)
		if err != nil {
			return fmt.Errorf("insert action %d: %w", rec.Seq, err)
		}
	}

	return tx.Commit()
}

// Actions returns the journal of a game in submission order.
func (db *DB) Actions(gameID string) ([]ActionRow, error) {
	var rows []ActionRow
	err := db.conn.Select(&rows,
		`SELECT game_id, seq, turn, player, action, payload, phase, next, roll, reason
		 FROM actions WHERE game_id = ? ORDER BY seq`,
		gameID,
	)
	return rows, err
}

// Rejections counts the rejected actions of a game.
func (db *DB) Rejections(gameID string) (int, error) {
	var n int
	err := db.conn.Get(&n, "SELECT COUNT(*) FROM actions WHERE game_id = ? AND reason != ''", gameID)
	return n, err
}

// SaveSnapshot stores the state after action seq. A later save for the same
// seq replaces it.
func (db *DB) SaveSnapshot(gameID string, seq int, s engine.Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = db.conn.Exec(
		"INSERT OR REPLACE INTO snapshots (game_id, seq, state_json) VALUES (?, ?, ?)",
		gameID, seq, string(data),
	)
	return err
}

// LatestSnapshot returns the most recent snapshot of a game and the action
// seq it was taken after.
func (db *DB) LatestSnapshot(gameID string) (engine.Snapshot, int, error) {
	var row struct {
		Seq  int    `db:"seq"`
		JSON string `db:"state_json"`
	}
	err := db.conn.Get(&row,
		"SELECT seq, state_json FROM snapshots WHERE game_id = ? ORDER BY seq DESC LIMIT 1",
		gameID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return engine.Snapshot{}, 0, ErrNoSnapshot
	}
	if err != nil {
		return engine.Snapshot{}, 0, err
	}
	var s engine.Snapshot
	if err := json.Unmarshal([]byte(row.JSON), &s); err != nil {
		return engine.Snapshot{}, 0, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, row.Seq, nil
}

// SaveMeta stores a key-value pair in the meta table.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO game_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM game_meta WHERE key = ?", key)
	return value, err
}

// SaveGame journals the records not yet stored and snapshots the state after
// the last of them. from is the number of records already journaled.
func (db *DB) SaveGame(gameID string, g *engine.Game, from int) (int, error) {
	history := g.History()
	if from >= len(history) {
		return from, nil
	}
	slog.Info("saving game", "id", gameID, "actions", len(history)-from)

	if err := db.AppendActions(gameID, history[from:]); err != nil {
		return from, fmt.Errorf("save actions: %w", err)
	}
	if err := db.SaveSnapshot(gameID, len(history), g.Snapshot()); err != nil {
		return from, fmt.Errorf("save snapshot: %w", err)
	}
	if err := db.SaveMeta("last_game", gameID); err != nil {
		return from, fmt.Errorf("save meta: %w", err)
	}
	return len(history), nil
}
