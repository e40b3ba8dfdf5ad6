package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"agendagol-cli/api"
)

// The reservations cache mirrors GET /reservations/my so listing and stats
// work offline. The server stays canonical: every sync replaces the user's
// rows wholesale, no local row is ever authored here.

type ReservationFilter struct {
	Status   string // "confirmada", "cancelada", or empty for all
	Upcoming bool
	Past     bool
	Now      time.Time
}

type CacheStats struct {
	Total      int
	Active     int
	Cancelled  int
	TotalSpent float64
	LastSynced string
}

func OpenReservationsDB() (*sql.DB, error) {
	if _, err := ensureConfigDir(); err != nil {
		return nil, err
	}
	path, err := ReservationsPath()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := ensureReservationsSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func ensureReservationsSchema(db *sql.DB) error {
	createTable := `
CREATE TABLE IF NOT EXISTS reservations (
  id INTEGER PRIMARY KEY,
  field_id INTEGER,
  field_name TEXT,
  field_location TEXT,
  start_time TEXT,
  end_time TEXT,
  duration_hours INTEGER,
  total_price REAL,
  status TEXT,
  notes TEXT,
  created_at TEXT,
  cancelled_at TEXT,
  synced_at TEXT
);`

	if _, err := db.Exec(createTable); err != nil {
		return fmt.Errorf("create reservations table: %w", err)
	}
	if _, err := db.Exec("CREATE INDEX IF NOT EXISTS idx_reservations_start ON reservations(start_time);"); err != nil {
		return fmt.Errorf("create reservations index: %w", err)
	}
	return nil
}

// ReplaceReservations swaps the cache contents for the server's current list.
func ReplaceReservations(db *sql.DB, reservations []api.Reservation, syncedAt time.Time) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM reservations"); err != nil {
		return fmt.Errorf("clear reservations: %w", err)
	}

	stmt, err := tx.Prepare(`
INSERT INTO reservations
  (id, field_id, field_name, field_location, start_time, end_time, duration_hours,
   total_price, status, notes, created_at, cancelled_at, synced_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	synced := syncedAt.UTC().Format(time.RFC3339)
	for _, r := range reservations {
		if _, err := stmt.Exec(
			r.ID, r.FieldID, r.FieldName, r.FieldLocation, r.StartTime, r.EndTime,
			r.DurationHours, r.TotalPrice, r.Status, r.Notes, r.CreatedAt,
			r.CancelledAt, synced,
		); err != nil {
			return fmt.Errorf("insert reservation %d: %w", r.ID, err)
		}
	}
	return tx.Commit()
}

func ListReservations(db *sql.DB, filter ReservationFilter) ([]api.Reservation, error) {
	query := `
SELECT id, field_id, field_name, field_location, start_time, end_time,
       duration_hours, total_price, status, notes, created_at, cancelled_at
FROM reservations`
	args := []any{}
	where := ""

	if filter.Status != "" {
		where = " WHERE status = ?"
		args = append(args, filter.Status)
	}
	if filter.Upcoming || filter.Past {
		now := filter.Now
		if now.IsZero() {
			now = time.Now()
		}
		cutoff := now.Format("2006-01-02T15:04:05")
		if where == "" {
			where = " WHERE"
		} else {
			where += " AND"
		}
		if filter.Upcoming {
			where += " start_time >= ?"
		} else {
			where += " start_time < ?"
		}
		args = append(args, cutoff)
	}

	rows, err := db.Query(query+where+" ORDER BY start_time", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []api.Reservation
	for rows.Next() {
		var r api.Reservation
		var notes, cancelledAt sql.NullString
		if err := rows.Scan(
			&r.ID, &r.FieldID, &r.FieldName, &r.FieldLocation, &r.StartTime,
			&r.EndTime, &r.DurationHours, &r.TotalPrice, &r.Status, &notes,
			&r.CreatedAt, &cancelledAt,
		); err != nil {
			return nil, err
		}
		r.Notes = notes.String
		r.CancelledAt = cancelledAt.String
		reservations = append(reservations, r)
	}
	return reservations, rows.Err()
}

func ReservationCacheStats(db *sql.DB) (CacheStats, error) {
	var stats CacheStats
	row := db.QueryRow(`
SELECT COUNT(*),
       COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
       COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
       COALESCE(SUM(CASE WHEN status = ? THEN total_price ELSE 0 END), 0),
       COALESCE(MAX(synced_at), '')
FROM reservations`, api.StatusConfirmed, api.StatusCancelled, api.StatusConfirmed)
	if err := row.Scan(&stats.Total, &stats.Active, &stats.Cancelled, &stats.TotalSpent, &stats.LastSynced); err != nil {
		return CacheStats{}, err
	}
	return stats, nil
}
