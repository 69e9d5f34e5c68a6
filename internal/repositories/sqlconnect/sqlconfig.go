package sqlconnect

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

var DB *sql.DB

// Driver returns the configured database driver, defaulting to mysql.
func Driver() string {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "mysql"
	}
	return driver
}

func ConnectDb() error {
	if DB != nil {
		return nil
	}

	driver := Driver()

	var connectionString string
	switch driver {
	case "mysql":
		user := os.Getenv("DB_USER")
		password := os.Getenv("DB_PASSWORD")
		dbname := os.Getenv("DB_NAME")
		port := os.Getenv("DB_PORT")
		host := os.Getenv("DB_HOST")
		connectionString = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", user, password, host, port, dbname)
	case "sqlite":
		connectionString = os.Getenv("DB_PATH")
		if connectionString == "" {
			connectionString = "financify.db"
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	db, err := Open(driver, connectionString)
	if err != nil {
		return err
	}

	DB = db
	return nil
}

// Open connects to the database, applies driver settings and runs migrations.
func Open(driver, connectionString string) (*sql.DB, error) {
	db, err := sql.Open(driver, connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB connection: %w", err)
	}

	if driver == "sqlite" {
		// an in-memory sqlite database exists per connection
		if strings.Contains(connectionString, ":memory:") {
			db.SetMaxOpenConns(1)
		}
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	if err := Migrate(db, driver); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
