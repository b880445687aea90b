package storage

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/julianstephens/nourish/internal/logger"
	"github.com/julianstephens/nourish/internal/models"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrNotLoaded     = errors.New("storage not loaded")
	ErrUninitialized = errors.New("storage not initialized, run 'nourish init' first")
)

// DecodeJSON unmarshals raw into a T. Empty or malformed input yields def;
// malformed input is logged.
func DecodeJSON[T any](key string, raw []byte, def T) T {
	if len(raw) == 0 {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Warn("Ignoring malformed stored value", "key", key, "error", err)
		return def
	}
	return v
}

// ParseWakeUpTime decodes a stored HH:MM value. Empty or invalid input yields nil.
func ParseWakeUpTime(raw string) *models.ClockTime {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	c, err := models.ParseClockTime(raw)
	if err != nil {
		logger.Warn("Ignoring malformed stored value", "key", "wake_up_time", "error", err)
		return nil
	}
	return &c
}

// ParseWaterCount decodes a stored counter. Empty, invalid or negative input yields 0.
func ParseWaterCount(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		logger.Warn("Ignoring malformed stored value", "key", "water_count", "value", raw)
		return 0
	}
	return n
}

// EmptyEatenStatus is the default eaten status: nothing eaten.
func EmptyEatenStatus() models.EatenStatus {
	return models.EatenStatus{}
}
