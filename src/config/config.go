package config

import (
	"fmt"
	"os"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

const DATE_PARSE_FORMAT = "2006-01-02"

// TAX_RATE applies to every booking subtotal regardless of source.
const TAX_RATE = 0.13

// REFUND_WINDOW_DAYS is inclusive: cancelling exactly this many days
// before check-in is still refund-eligible.
const REFUND_WINDOW_DAYS = 5

// DRAFT_TTL_HOURS bounds how long an abandoned wizard draft survives in cache.
const DRAFT_TTL_HOURS = 48
