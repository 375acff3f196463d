// Package prefs persists the user's theme choice between runs: the
// active preset, accent color, and token overrides, stored in a small
// SQLite database.
package prefs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/glint-ui/glint/internal/logging"
	"github.com/glint-ui/glint/theme"
)

// ErrNoSnapshot is returned when no preference has been saved yet.
var ErrNoSnapshot = errors.New("no theme snapshot saved")

const schema = `
CREATE TABLE IF NOT EXISTS theme_prefs (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	preset_tag TEXT NOT NULL,
	custom_source TEXT,
	custom_name TEXT,
	accent_hex TEXT,
	overrides_json TEXT,
	updated_at TEXT NOT NULL
);
`

// Snapshot is the persisted theme state.
type Snapshot struct {
	PresetTag    theme.PresetTag
	CustomSource string
	CustomName   string
	AccentHex    string
	Overrides    map[string]string // token wire name -> hex
}

// Capture builds a snapshot from the service's current preset plus the
// supplied accent and overrides.
func Capture(svc *theme.Service, accentHex string, overrides map[string]string) Snapshot {
	p := svc.CurrentPreset()
	return Snapshot{
		PresetTag:    p.Tag,
		CustomSource: p.Source,
		CustomName:   p.Name,
		AccentHex:    accentHex,
		Overrides:    overrides,
	}
}

// Store reads and writes theme snapshots.
type Store struct {
	db     *sql.DB
	logger zerolog.Logger
}

// Open opens (and migrates) the preference database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open prefs db %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate prefs db: %w", err)
	}
	return &Store{db: db, logger: logging.Component("prefs")}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts the single snapshot row.
func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	if snap.PresetTag == "" {
		return fmt.Errorf("snapshot preset tag is required")
	}

	var overridesJSON sql.NullString
	if len(snap.Overrides) > 0 {
		data, err := json.Marshal(snap.Overrides)
		if err != nil {
			return fmt.Errorf("marshal overrides: %w", err)
		}
		overridesJSON = sql.NullString{String: string(data), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO theme_prefs (id, preset_tag, custom_source, custom_name, accent_hex, overrides_json, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			preset_tag = excluded.preset_tag,
			custom_source = excluded.custom_source,
			custom_name = excluded.custom_name,
			accent_hex = excluded.accent_hex,
			overrides_json = excluded.overrides_json,
			updated_at = excluded.updated_at
	`,
		string(snap.PresetTag),
		nullString(snap.CustomSource),
		nullString(snap.CustomName),
		nullString(snap.AccentHex),
		overridesJSON,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save theme snapshot: %w", err)
	}
	return nil
}

// Load returns the saved snapshot, or ErrNoSnapshot.
func (s *Store) Load(ctx context.Context) (*Snapshot, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT preset_tag, custom_source, custom_name, accent_hex, overrides_json
		FROM theme_prefs WHERE id = 1
	`)

	var snap Snapshot
	var tag string
	var customSource, customName, accentHex, overridesJSON sql.NullString
	err := row.Scan(&tag, &customSource, &customName, &accentHex, &overridesJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("load theme snapshot: %w", err)
	}

	snap.PresetTag = theme.PresetTag(tag)
	snap.CustomSource = customSource.String
	snap.CustomName = customName.String
	snap.AccentHex = accentHex.String
	if overridesJSON.Valid {
		if err := json.Unmarshal([]byte(overridesJSON.String), &snap.Overrides); err != nil {
			s.logger.Warn().Err(err).Msg("discarding unreadable saved overrides")
		}
	}
	return &snap, nil
}

// Restore replays a snapshot onto the theme service: preset, then
// accent, then overrides, mirroring the startup configuration order.
func Restore(svc *theme.Service, snap *Snapshot) error {
	switch snap.PresetTag {
	case theme.PresetCustom:
		if err := svc.ApplyCustomPreset(snap.CustomSource, snap.CustomName); err != nil {
			return err
		}
	default:
		if err := svc.ApplyPreset(snap.PresetTag); err != nil {
			return err
		}
	}

	if snap.AccentHex != "" {
		accent, err := theme.ParseColor(snap.AccentHex)
		if err != nil {
			return err
		}
		if err := svc.SetAccentColor(accent); err != nil {
			return err
		}
	}

	for name, hex := range snap.Overrides {
		token, err := theme.ParseToken(name)
		if err != nil {
			return err
		}
		if err := svc.SetTokenHex(token, hex); err != nil {
			return err
		}
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
