package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/nourish/internal/models"
	"github.com/julianstephens/nourish/internal/storage"
)

func (s *Store) AddReminder(r models.Reminder) error {
	_, err := s.db.Exec(`
		INSERT INTO reminders (id, kind, meal, title, body, fire_at, sent_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		r.ID, string(r.Kind), sql.NullString{String: string(r.Meal), Valid: r.Meal != ""},
		r.Title, r.Body, r.FireAt, r.SentAt, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting reminder %s: %w", r.ID, err)
	}
	return nil
}

func (s *Store) GetReminders(includeSent bool) ([]models.Reminder, error) {
	query := "SELECT id, kind, meal, title, body, fire_at, sent_at, created_at FROM reminders"
	if !includeSent {
		query += " WHERE sent_at IS NULL"
	}
	query += " ORDER BY fire_at, id"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Reminder
	for rows.Next() {
		var (
			r      models.Reminder
			kind   string
			meal   sql.NullString
			sentAt sql.NullTime
		)
		if err := rows.Scan(&r.ID, &kind, &meal, &r.Title, &r.Body, &r.FireAt, &sentAt, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Kind = models.ReminderKind(kind)
		r.Meal = models.MealID(meal.String)
		if sentAt.Valid {
			t := sentAt.Time
			r.SentAt = &t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) MarkReminderSent(id string, at time.Time) error {
	res, err := s.db.Exec("UPDATE reminders SET sent_at = $1 WHERE id = $2", at, id)
	if err != nil {
		return err
	}
	return expectOne(res, "reminder "+id)
}

func (s *Store) DeleteReminder(id string) error {
	res, err := s.db.Exec("DELETE FROM reminders WHERE id = $1 AND sent_at IS NULL", id)
	if err != nil {
		return err
	}
	return expectOne(res, "pending reminder "+id)
}

func (s *Store) DeletePendingReminders() (int, error) {
	res, err := s.db.Exec("DELETE FROM reminders WHERE sent_at IS NULL")
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func expectOne(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, storage.ErrNotFound)
	}
	return nil
}
