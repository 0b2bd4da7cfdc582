package postgres

import (
	"context"
	"fmt"
)

// schema crea las tablas si no existen. position conserva el orden de cada colección.
const schema = `
CREATE TABLE IF NOT EXISTS items (
	position       INT     NOT NULL,
	id             CHAR(5) PRIMARY KEY,
	name           TEXT    NOT NULL,
	quantity       INT     NOT NULL CHECK (quantity >= 0),
	price          NUMERIC NOT NULL CHECK (price >= 0),
	kind           TEXT    NOT NULL CHECK (kind IN ('small_hardware', 'appliance')),
	category       TEXT,
	brand          TEXT,
	appliance_type TEXT
);

CREATE TABLE IF NOT EXISTS users (
	position       INT  NOT NULL,
	id             INT  PRIMARY KEY,
	first_name     TEXT NOT NULL,
	last_name      TEXT NOT NULL,
	kind           TEXT NOT NULL CHECK (kind IN ('employee', 'customer')),
	ssn            INT,
	monthly_salary NUMERIC CHECK (monthly_salary >= 0),
	phone          TEXT,
	address        TEXT
);

CREATE TABLE IF NOT EXISTS sale_transactions (
	position      INT         NOT NULL,
	id            TEXT        PRIMARY KEY,
	item_id       CHAR(5)     NOT NULL,
	item_name     TEXT        NOT NULL,
	unit_price    NUMERIC     NOT NULL,
	quantity_sold INT         NOT NULL CHECK (quantity_sold > 0),
	customer_id   INT         NOT NULL,
	employee_id   INT         NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS store_meta (
	singleton    BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (singleton),
	next_user_id INT     NOT NULL
);`

// EnsureSchema crea las tablas de la tienda si no existen.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
