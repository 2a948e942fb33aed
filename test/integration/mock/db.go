// Package mock provides in-process stand-ins for external infrastructure
// used by the BDD integration tests.
package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mother-homes/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var sharedDb *Db

// Db wraps a shared in-memory SQLite database migrated to the application
// schema.
type Db struct {
	Conn *gorm.DB
}

// NewDb returns the process-wide test database, creating and migrating it on
// first use.
func NewDb() *Db {
	dbOnce.Do(func() {
		sharedDb = open()
	})
	return sharedDb
}

func open() *Db {
	// A single shared connection keeps the in-memory database alive for
	// the whole suite.
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	if err := conn.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.FlatModel{},
		&model.TenantModel{},
		&model.ExpenseModel{},
	); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return &Db{Conn: conn}
}

// Reset deletes all rows between scenarios, children before parents so
// foreign keys stay satisfied.
func (d *Db) Reset() error {
	for _, m := range []any{
		&model.ExpenseModel{},
		&model.TenantModel{},
		&model.FlatModel{},
		&model.RefreshTokenModel{},
		&model.UserModel{},
	} {
		if err := d.Conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}
