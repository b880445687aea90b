package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/julianstephens/nourish/internal/constants"
	"github.com/julianstephens/nourish/internal/logger"
	"github.com/julianstephens/nourish/internal/models"
)

type document struct {
	Version   int                        `json:"version"`
	Settings  map[string]string          `json:"settings"`
	State     map[string]json.RawMessage `json:"state"`
	History   []models.HistoryEntry      `json:"history"`
	Reminders map[string]models.Reminder `json:"reminders"`
}

// JSONStore keeps everything in a single JSON document rewritten on every
// change. It is not safe for concurrent use.
type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func newDocument() *document {
	return &document{
		Version:   1,
		Settings:  models.SettingsToMap(models.DefaultSettings()),
		State:     map[string]json.RawMessage{},
		Reminders: map[string]models.Reminder{},
	}
}

func (s *JSONStore) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}
	s.doc = newDocument()
	return s.save()
}

func (s *JSONStore) Load() error {
	if s.doc != nil {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return ErrUninitialized
	}
	if err != nil {
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return s.recoverCorrupt(err)
	}
	if doc.Settings == nil {
		doc.Settings = map[string]string{}
	}
	if doc.State == nil {
		doc.State = map[string]json.RawMessage{}
	}
	if doc.Reminders == nil {
		doc.Reminders = map[string]models.Reminder{}
	}
	s.doc = doc
	return nil
}

// recoverCorrupt moves an unreadable document aside and starts fresh.
func (s *JSONStore) recoverCorrupt(cause error) error {
	aside := fmt.Sprintf("%s.corrupt-%s", s.path, time.Now().Format("20060102-150405"))
	if err := os.Rename(s.path, aside); err != nil {
		return fmt.Errorf("failed to move corrupt storage aside: %w", err)
	}
	logger.Warn("Storage file is corrupt, starting fresh", "path", s.path, "moved_to", aside, "error", cause)

	s.doc = newDocument()
	return s.save()
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.doc == nil {
		return models.Settings{}, ErrNotLoaded
	}
	settings, err := models.MapToSettings(s.doc.Settings)
	if err != nil {
		return models.Settings{}, err
	}
	models.ApplyDefaultSettings(&settings)
	return settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.doc == nil {
		return ErrNotLoaded
	}
	s.doc.Settings = models.SettingsToMap(settings)
	return s.save()
}

func (s *JSONStore) putState(key string, v any) error {
	if s.doc == nil {
		return ErrNotLoaded
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	s.doc.State[key] = raw
	return s.save()
}

func (s *JSONStore) state(key string) ([]byte, error) {
	if s.doc == nil {
		return nil, ErrNotLoaded
	}
	return s.doc.State[key], nil
}

func (s *JSONStore) GetWakeUpTime() (*models.ClockTime, error) {
	raw, err := s.state(constants.KeyWakeUpTime)
	if err != nil {
		return nil, err
	}
	return ParseWakeUpTime(DecodeJSON(constants.KeyWakeUpTime, raw, "")), nil
}

func (s *JSONStore) SaveWakeUpTime(wake models.ClockTime) error {
	return s.putState(constants.KeyWakeUpTime, wake.String())
}

func (s *JSONStore) GetSchedule() (models.Schedule, error) {
	raw, err := s.state(constants.KeySchedule)
	if err != nil {
		return nil, err
	}
	return DecodeJSON[models.Schedule](constants.KeySchedule, raw, nil), nil
}

func (s *JSONStore) SaveSchedule(schedule models.Schedule) error {
	return s.putState(constants.KeySchedule, schedule)
}

func (s *JSONStore) GetEatenStatus() (models.EatenStatus, error) {
	raw, err := s.state(constants.KeyEatenStatus)
	if err != nil {
		return nil, err
	}
	status := DecodeJSON(constants.KeyEatenStatus, raw, EmptyEatenStatus())
	if status == nil {
		status = EmptyEatenStatus()
	}
	return status, nil
}

func (s *JSONStore) SaveEatenStatus(status models.EatenStatus) error {
	return s.putState(constants.KeyEatenStatus, status)
}

func (s *JSONStore) GetWaterCount() (int, error) {
	raw, err := s.state(constants.KeyWaterCount)
	if err != nil {
		return 0, err
	}
	n := DecodeJSON(constants.KeyWaterCount, raw, 0)
	if n < 0 {
		logger.Warn("Ignoring malformed stored value", "key", constants.KeyWaterCount, "value", n)
		return 0, nil
	}
	return n, nil
}

func (s *JSONStore) SaveWaterCount(n int) error {
	return s.putState(constants.KeyWaterCount, n)
}

func (s *JSONStore) GetStreak() (models.Streak, error) {
	raw, err := s.state(constants.KeyStreak)
	if err != nil {
		return models.Streak{}, err
	}
	return DecodeJSON(constants.KeyStreak, raw, models.Streak{}), nil
}

func (s *JSONStore) SaveStreak(streak models.Streak) error {
	return s.putState(constants.KeyStreak, streak)
}

func (s *JSONStore) GetHistory() ([]models.HistoryEntry, error) {
	if s.doc == nil {
		return nil, ErrNotLoaded
	}
	out := append([]models.HistoryEntry(nil), s.doc.History...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if len(out) > constants.HistoryLimit {
		out = out[:constants.HistoryLimit]
	}
	return out, nil
}

func (s *JSONStore) SaveHistory(entries []models.HistoryEntry) error {
	if s.doc == nil {
		return ErrNotLoaded
	}
	s.doc.History = append([]models.HistoryEntry(nil), entries...)
	return s.save()
}

func (s *JSONStore) AddReminder(r models.Reminder) error {
	if s.doc == nil {
		return ErrNotLoaded
	}
	if _, exists := s.doc.Reminders[r.ID]; exists {
		return fmt.Errorf("reminder %s already exists", r.ID)
	}
	s.doc.Reminders[r.ID] = r
	return s.save()
}

func (s *JSONStore) GetReminders(includeSent bool) ([]models.Reminder, error) {
	if s.doc == nil {
		return nil, ErrNotLoaded
	}
	var out []models.Reminder
	for _, r := range s.doc.Reminders {
		if includeSent || r.Pending() {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FireAt.Equal(out[j].FireAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].FireAt.Before(out[j].FireAt)
	})
	return out, nil
}

func (s *JSONStore) MarkReminderSent(id string, at time.Time) error {
	if s.doc == nil {
		return ErrNotLoaded
	}
	r, ok := s.doc.Reminders[id]
	if !ok {
		return fmt.Errorf("reminder %s: %w", id, ErrNotFound)
	}
	r.SentAt = &at
	s.doc.Reminders[id] = r
	return s.save()
}

func (s *JSONStore) DeleteReminder(id string) error {
	if s.doc == nil {
		return ErrNotLoaded
	}
	r, ok := s.doc.Reminders[id]
	if !ok || !r.Pending() {
		return fmt.Errorf("pending reminder %s: %w", id, ErrNotFound)
	}
	delete(s.doc.Reminders, id)
	return s.save()
}

func (s *JSONStore) DeletePendingReminders() (int, error) {
	if s.doc == nil {
		return 0, ErrNotLoaded
	}
	n := 0
	for id, r := range s.doc.Reminders {
		if r.Pending() {
			delete(s.doc.Reminders, id)
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return n, s.save()
}
