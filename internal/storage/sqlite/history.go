package sqlite

import (
	"github.com/julianstephens/nourish/internal/constants"
	"github.com/julianstephens/nourish/internal/models"
)

func (s *Store) GetHistory() ([]models.HistoryEntry, error) {
	rows, err := s.db.Query("SELECT date, water, meals FROM history ORDER BY date DESC LIMIT ?", constants.HistoryLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.HistoryEntry
	for rows.Next() {
		var e models.HistoryEntry
		if err := rows.Scan(&e.Date, &e.Water, &e.Meals); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SaveHistory replaces the stored log with entries.
func (s *Store) SaveHistory(entries []models.HistoryEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM history"); err != nil {
		return err
	}
	stmt, err := tx.Prepare("INSERT OR REPLACE INTO history (date, water, meals) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.Date, e.Water, e.Meals); err != nil {
			return err
		}
	}
	return tx.Commit()
}
