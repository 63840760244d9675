package config

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DefaultSlotCapacity is the seating ceiling per (date, time) slot. The dining
// room seats well above one 12-guest party, so a single table can never be
// rejected on an empty slot. Override with SLOT_CAPACITY.
const DefaultSlotCapacity = 30

// InitDB opens the database connection. MySQL in production, SQLite when
// DB_DRIVER=sqlite (local runs without a MySQL instance).
func InitDB() (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}

	if os.Getenv("DB_DRIVER") == "sqlite" {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "lexcellence.db"
		}
		return gorm.Open(sqlite.Open(path), cfg)
	}

	user := envOr("DB_USER", "root")
	pass := os.Getenv("DB_PASS")
	host := envOr("DB_HOST", "127.0.0.1")
	port := envOr("DB_PORT", "3306")
	name := envOr("DB_NAME", "lexcellence")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, name)
	return gorm.Open(mysql.Open(dsn), cfg)
}

// SlotCapacity reads the configured per-slot seating ceiling.
func SlotCapacity() int {
	if v := os.Getenv("SLOT_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return DefaultSlotCapacity
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
