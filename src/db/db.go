package db

import (
	"log"

	"hbs/src/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

// GetDb opens the shared postgres pool on first use, from the DATABASE_*
// environment via config.GetDSN. Pool limits are sized for a single hostel
// property's traffic.
func GetDb() *gorm.DB {
	if db != nil {
		return db
	}
	conn, err := gorm.Open(postgres.Open(config.GetDSN()))
	if err != nil {
		log.Printf("Error connecting to database: %s\n", err.Error())
		panic(err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		log.Fatalf("Error establishing connection to database: %s\n", err.Error())
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	db = conn
	return conn
}

// NewDB swaps the shared handle; tests install a sqlmock-backed instance
// before any query runs.
func NewDB(newdb *gorm.DB) {
	db = newdb
}
