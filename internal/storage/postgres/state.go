package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/julianstephens/nourish/internal/constants"
	"github.com/julianstephens/nourish/internal/models"
	"github.com/julianstephens/nourish/internal/storage"
)

func (s *Store) getKV(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = $1", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) putKV(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func (s *Store) putJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return s.putKV(key, string(raw))
}

func (s *Store) GetWakeUpTime() (*models.ClockTime, error) {
	raw, err := s.getKV(constants.KeyWakeUpTime)
	if err != nil {
		return nil, err
	}
	return storage.ParseWakeUpTime(raw), nil
}

func (s *Store) SaveWakeUpTime(wake models.ClockTime) error {
	return s.putKV(constants.KeyWakeUpTime, wake.String())
}

func (s *Store) GetSchedule() (models.Schedule, error) {
	raw, err := s.getKV(constants.KeySchedule)
	if err != nil {
		return nil, err
	}
	return storage.DecodeJSON[models.Schedule](constants.KeySchedule, []byte(raw), nil), nil
}

func (s *Store) SaveSchedule(schedule models.Schedule) error {
	return s.putJSON(constants.KeySchedule, schedule)
}

func (s *Store) GetEatenStatus() (models.EatenStatus, error) {
	raw, err := s.getKV(constants.KeyEatenStatus)
	if err != nil {
		return nil, err
	}
	status := storage.DecodeJSON(constants.KeyEatenStatus, []byte(raw), storage.EmptyEatenStatus())
	if status == nil {
		status = storage.EmptyEatenStatus()
	}
	return status, nil
}

func (s *Store) SaveEatenStatus(status models.EatenStatus) error {
	return s.putJSON(constants.KeyEatenStatus, status)
}

func (s *Store) GetWaterCount() (int, error) {
	raw, err := s.getKV(constants.KeyWaterCount)
	if err != nil {
		return 0, err
	}
	return storage.ParseWaterCount(raw), nil
}

func (s *Store) SaveWaterCount(n int) error {
	return s.putKV(constants.KeyWaterCount, strconv.Itoa(n))
}

func (s *Store) GetStreak() (models.Streak, error) {
	raw, err := s.getKV(constants.KeyStreak)
	if err != nil {
		return models.Streak{}, err
	}
	return storage.DecodeJSON(constants.KeyStreak, []byte(raw), models.Streak{}), nil
}

func (s *Store) SaveStreak(streak models.Streak) error {
	return s.putJSON(constants.KeyStreak, streak)
}
