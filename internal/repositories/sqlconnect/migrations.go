package sqlconnect

import (
	"database/sql"
	"fmt"
)

// Migrate creates the schema. Statements are written once with %[1]s as the
// autoincrement primary key column, which is the only piece that differs
// between the two supported drivers.
func Migrate(db *sql.DB, driver string) error {
	idCol := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if driver == "mysql" {
		idCol = "INT PRIMARY KEY AUTO_INCREMENT"
	}

	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id %[1]s,
			username VARCHAR(64) UNIQUE NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS accounts (
			id %[1]s,
			user_id INT NOT NULL,
			name VARCHAR(255) NOT NULL,
			account_type VARCHAR(32) NOT NULL,
			balance DECIMAL(15,2) NOT NULL DEFAULT 0,
			currency VARCHAR(3) NOT NULL DEFAULT 'USD',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id %[1]s,
			user_id INT NOT NULL,
			account_id INT NOT NULL,
			amount DECIMAL(15,2) NOT NULL,
			description VARCHAR(255),
			category VARCHAR(64),
			transaction_type VARCHAR(32) NOT NULL,
			date DATETIME NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id),
			FOREIGN KEY (account_id) REFERENCES accounts(id)
		)`,
		`CREATE TABLE IF NOT EXISTS income (
			id %[1]s,
			user_id INT NOT NULL,
			amount DECIMAL(15,2) NOT NULL,
			income_type VARCHAR(32) NOT NULL,
			source VARCHAR(255) NOT NULL,
			date DATETIME NOT NULL,
			description TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id %[1]s,
			user_id INT NOT NULL,
			amount DECIMAL(15,2) NOT NULL,
			category VARCHAR(32) NOT NULL,
			description VARCHAR(255),
			date DATETIME NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)`,
		`CREATE TABLE IF NOT EXISTS loans (
			id %[1]s,
			user_id INT NOT NULL,
			loan_type VARCHAR(32) NOT NULL,
			lender VARCHAR(255) NOT NULL,
			original_amount DECIMAL(15,2) NOT NULL,
			current_balance DECIMAL(15,2) NOT NULL,
			interest_rate DECIMAL(8,4) NOT NULL,
			monthly_payment DECIMAL(15,2) NOT NULL,
			loan_term INT NOT NULL,
			start_date DATETIME NOT NULL,
			end_date DATETIME NOT NULL,
			status VARCHAR(32) NOT NULL DEFAULT 'active',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)`,
		`CREATE TABLE IF NOT EXISTS loan_payments (
			id %[1]s,
			loan_id INT NOT NULL,
			amount DECIMAL(15,2) NOT NULL,
			payment_date DATETIME NOT NULL,
			principal_amount DECIMAL(15,2) NOT NULL,
			interest_amount DECIMAL(15,2) NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (loan_id) REFERENCES loans(id)
		)`,
		`CREATE TABLE IF NOT EXISTS investments (
			id %[1]s,
			user_id INT NOT NULL,
			investment_type VARCHAR(32) NOT NULL,
			name VARCHAR(255) NOT NULL,
			symbol VARCHAR(32),
			quantity DECIMAL(20,8) NOT NULL,
			purchase_price DECIMAL(15,2) NOT NULL,
			current_price DECIMAL(15,2),
			purchase_date DATETIME NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)`,
		`CREATE TABLE IF NOT EXISTS credit_cards (
			id %[1]s,
			user_id INT NOT NULL,
			card_name VARCHAR(255) NOT NULL,
			card_type VARCHAR(32) NOT NULL,
			credit_limit DECIMAL(15,2) NOT NULL,
			current_balance DECIMAL(15,2) NOT NULL DEFAULT 0,
			available_credit DECIMAL(15,2),
			due_date DATETIME,
			interest_rate DECIMAL(8,4),
			annual_fee DECIMAL(15,2) NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)`,
		`CREATE TABLE IF NOT EXISTS budgets (
			id %[1]s,
			user_id INT NOT NULL,
			category VARCHAR(32) NOT NULL,
			amount DECIMAL(15,2) NOT NULL,
			period VARCHAR(16) NOT NULL DEFAULT 'monthly',
			start_date DATETIME NOT NULL,
			end_date DATETIME NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(fmt.Sprintf(m, idCol)); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}
