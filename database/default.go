package database

import (
	"fmt"
	"os"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var _db *gorm.DB
var mutex sync.Mutex

// Configured reports whether a database connection string is present. Run
// history is optional; without DATABASE_URL the pipeline still runs.
func Configured() bool {
	return os.Getenv("DATABASE_URL") != ""
}

func Setup() error {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}

	var err error
	_db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	return nil
}

func GetDB() *gorm.DB {
	mutex.Lock()
	return _db
}

func ReleaseDB() {
	mutex.Unlock()
}
