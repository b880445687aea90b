package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/nourish/internal/models"
	"github.com/julianstephens/nourish/internal/storage"
)

// Timestamps are stored as UTC text so they sort lexically.
const timeLayout = "2006-01-02T15:04:05Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.Local(), nil
}

func (s *Store) AddReminder(r models.Reminder) error {
	var sentAt sql.NullString
	if r.SentAt != nil {
		sentAt = sql.NullString{String: formatTime(*r.SentAt), Valid: true}
	}
	_, err := s.db.Exec(`
		INSERT INTO reminders (id, kind, meal, title, body, fire_at, sent_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, string(r.Kind), string(r.Meal), r.Title, r.Body,
		formatTime(r.FireAt), sentAt, formatTime(r.CreatedAt),
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
			r                       models.Reminder
			kind                    string
			meal, sentAt            sql.NullString
			fireAtStr, createdAtStr string
		)
		if err := rows.Scan(&r.ID, &kind, &meal, &r.Title, &r.Body, &fireAtStr, &sentAt, &createdAtStr); err != nil {
			return nil, err
		}
		r.Kind = models.ReminderKind(kind)
		r.Meal = models.MealID(meal.String)

		if r.FireAt, err = parseTime(fireAtStr); err != nil {
			return nil, fmt.Errorf("reminder %s: bad fire_at: %w", r.ID, err)
		}
		if r.CreatedAt, err = parseTime(createdAtStr); err != nil {
			return nil, fmt.Errorf("reminder %s: bad created_at: %w", r.ID, err)
		}
		if sentAt.Valid {
			t, err := parseTime(sentAt.String)
			if err != nil {
				return nil, fmt.Errorf("reminder %s: bad sent_at: %w", r.ID, err)
			}
			r.SentAt = &t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) MarkReminderSent(id string, at time.Time) error {
	res, err := s.db.Exec("UPDATE reminders SET sent_at = ? WHERE id = ?", formatTime(at), id)
	if err != nil {
		return err
	}
	return expectOne(res, "reminder "+id)
}

func (s *Store) DeleteReminder(id string) error {
	res, err := s.db.Exec("DELETE FROM reminders WHERE id = ? AND sent_at IS NULL", id)
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
