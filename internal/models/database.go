package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type EGContext string

const (
	DBContextURL EGContext = "eg-backend-url"
)

var pluralIES = regexp.MustCompile("ies$")

func config() *gorm.Config {
	return &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},

		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}
}

// Connect opens the SQLite database at dsn, migrates it and configures
// the connection pool.
//
// The returned handle is owned by the caller and must be closed with Close.
func Connect(dsn string) (*gorm.DB, error) {
	// Migration with foreign keys disabled since sqlite does not support
	// ALTER COLUMN, tables are copied to a temporary table, then the table
	// is dropped and recreated
	db, err := gorm.Open(sqlite.Open(dsn), config())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = Migrate(db)
	if err != nil {
		return nil, err
	}

	err = Close(db)
	if err != nil {
		return nil, err
	}

	// Now, reconnect with foreign keys enabled
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = registerCallbacks(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// ConnectPostgres opens a PostgreSQL database with the key=value dsn
// and migrates it.
func ConnectPostgres(dsn string) (*gorm.DB, error) {
	c := config()

	// Unique and foreign key violations are translated to gorm's errors
	// so that createUpdateCallback can handle them independent of the driver
	c.TranslateError = true

	db, err := gorm.Open(postgres.Open(dsn), c)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = Migrate(db)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	err = registerCallbacks(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Close closes the connection pool of the database.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	return sqlDB.Close()
}

func registerCallbacks(db *gorm.DB) error {
	// Query callbacks
	err := db.Callback().Query().After("*").Register("expense_guard:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("expense_guard:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("expense_guard:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("expense_guard:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("expense_guard:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("expense_guard:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	// Delete callbacks
	err = db.Callback().Delete().After("*").Register("expense_guard:after_delete_general", generalCallback)
	if err != nil {
		return err
	}

	// Raw statements, used for aggregations
	err = db.Callback().Row().After("*").Register("expense_guard:after_row_general", generalCallback)
	if err != nil {
		return err
	}

	return db.Callback().Raw().After("*").Register("expense_guard:after_raw_general", generalCallback)
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, resourceName(db.Statement.Table))
	}
}

// resourceName uses the table name as information about the type of resource
func resourceName(table string) string {
	name := strings.ReplaceAll(table, "_", " ")
	name = pluralIES.ReplaceAllString(name, "y")
	return strings.TrimRight(name, "s")
}

// NotFound returns the error for a resource that does not exist.
func NotFound(m interface{ Self() string }) error {
	return fmt.Errorf("%w %s matching your query", ErrResourceNotFound, strings.ToLower(m.Self()))
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// Category names need to be unique
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: categories.name") ||
		(errors.Is(db.Error, gorm.ErrDuplicatedKey) && db.Statement.Table == "categories") {
		db.Error = ErrCategoryNameNotUnique
		return
	}

	if strings.Contains(db.Error.Error(), "FOREIGN KEY constraint failed") || errors.Is(db.Error, gorm.ErrForeignKeyViolated) {
		db.Error = ErrReferenceNotFound
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		// A general error where we cannot provide more useful information to the end user
		// We log the error and provide a general error message so that server admins can debug
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}

// Migrate migrates all models to the schema defined in the code.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(Category{}, Expense{}, Budget{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
