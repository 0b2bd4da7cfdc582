package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/hardware-store/internal/domain"
	"github.com/jhoicas/hardware-store/internal/domain/entity"
	"github.com/jhoicas/hardware-store/internal/domain/repository"
)

var (
	_ repository.DatabaseRepository = (*DatabaseRepo)(nil)
	_ repository.Quarantiner        = (*DatabaseRepo)(nil)
)

// DatabaseRepo implementación de DatabaseRepository sobre PostgreSQL.
// Save reemplaza el contenido de las tablas dentro de una sola transacción.
type DatabaseRepo struct {
	q      Querier
	runner *TxRunner
}

// NewDatabaseRepository construye el adaptador. q se usa para lecturas; runner para Save.
func NewDatabaseRepository(q Querier, runner *TxRunner) *DatabaseRepo {
	return &DatabaseRepo{q: q, runner: runner}
}

// ── Registros de tabla ────────────────────────────────────────────────────────

// itemRecord fila de items; las columnas de variante son NULL cuando no aplican.
type itemRecord struct {
	ID            string
	Name          string
	Quantity      int
	Price         decimal.Decimal
	Kind          string
	Category      *string
	Brand         *string
	ApplianceType *string
}

var itemColumns = []string{"position", "id", "name", "quantity", "price", "kind", "category", "brand", "appliance_type"}

func toItemRecord(it *entity.Item) itemRecord {
	rec := itemRecord{
		ID:       it.ID,
		Name:     it.Name,
		Quantity: it.Quantity,
		Price:    it.Price,
		Kind:     string(it.Kind),
	}
	switch it.Kind {
	case entity.ItemKindSmallHardware:
		if it.Hardware != nil {
			rec.Category = nullString(string(it.Hardware.Category))
		}
	case entity.ItemKindAppliance:
		if it.Appliance != nil {
			brand := it.Appliance.Brand
			rec.Brand = &brand
			rec.ApplianceType = nullString(string(it.Appliance.Type))
		}
	}
	return rec
}

func (rec itemRecord) toEntity() (*entity.Item, error) {
	it := &entity.Item{
		ID:       rec.ID,
		Name:     rec.Name,
		Quantity: rec.Quantity,
		Price:    rec.Price,
		Kind:     entity.ItemKind(rec.Kind),
	}
	switch it.Kind {
	case entity.ItemKindSmallHardware:
		it.Hardware = &entity.SmallHardwareDetails{Category: entity.Category(derefString(rec.Category))}
	case entity.ItemKindAppliance:
		it.Appliance = &entity.ApplianceDetails{
			Brand: derefString(rec.Brand),
			Type:  entity.ApplianceType(derefString(rec.ApplianceType)),
		}
	default:
		return nil, fmt.Errorf("artículo %s: tipo %q desconocido: %w", rec.ID, rec.Kind, domain.ErrInvalidInput)
	}
	return it, nil
}

// userRecord fila de users; las columnas de variante son NULL cuando no aplican.
type userRecord struct {
	ID            int
	FirstName     string
	LastName      string
	Kind          string
	SSN           *int
	MonthlySalary decimal.NullDecimal
	Phone         *string
	Address       *string
}

var userColumns = []string{"position", "id", "first_name", "last_name", "kind", "ssn", "monthly_salary", "phone", "address"}

func toUserRecord(u *entity.User) userRecord {
	rec := userRecord{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Kind:      string(u.Kind),
	}
	switch {
	case u.Kind == entity.UserKindEmployee && u.Employee != nil:
		ssn := u.Employee.SSN
		rec.SSN = &ssn
		rec.MonthlySalary = decimal.NewNullDecimal(u.Employee.MonthlySalary)
	case u.Kind == entity.UserKindCustomer && u.Customer != nil:
		phone, address := u.Customer.Phone, u.Customer.Address
		rec.Phone, rec.Address = &phone, &address
	}
	return rec
}

func (rec userRecord) toEntity() (*entity.User, error) {
	u := &entity.User{
		ID:        rec.ID,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Kind:      entity.UserKind(rec.Kind),
	}
	switch u.Kind {
	case entity.UserKindEmployee:
		if rec.SSN == nil || !rec.MonthlySalary.Valid {
			return nil, fmt.Errorf("empleado %d sin SSN o salario: %w", rec.ID, domain.ErrInvalidInput)
		}
		u.Employee = &entity.EmployeeDetails{SSN: *rec.SSN, MonthlySalary: rec.MonthlySalary.Decimal}
	case entity.UserKindCustomer:
		u.Customer = &entity.CustomerDetails{Phone: derefString(rec.Phone), Address: derefString(rec.Address)}
	default:
		return nil, fmt.Errorf("usuario %d: tipo %q desconocido: %w", rec.ID, rec.Kind, domain.ErrInvalidInput)
	}
	return u, nil
}

var transactionColumns = []string{"position", "id", "item_id", "item_name", "unit_price", "quantity_sold", "customer_id", "employee_id", "created_at"}

// ── Load ──────────────────────────────────────────────────────────────────────

// Load lee las tres colecciones en su orden original. Una base sin datos devuelve un snapshot vacío.
func (r *DatabaseRepo) Load(ctx context.Context) (*entity.Snapshot, error) {
	snap := &entity.Snapshot{NextUserID: 1}
	var err error
	if snap.Items, err = r.loadItems(ctx); err != nil {
		return nil, err
	}
	if snap.Users, err = r.loadUsers(ctx); err != nil {
		return nil, err
	}
	if snap.Transactions, err = r.loadTransactions(ctx); err != nil {
		return nil, err
	}
	err = r.q.QueryRow(ctx, `SELECT next_user_id FROM store_meta WHERE singleton`).Scan(&snap.NextUserID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get store meta: %w", err)
	}
	return snap, nil
}

func (r *DatabaseRepo) loadItems(ctx context.Context) ([]*entity.Item, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, quantity, price, kind, category, brand, appliance_type
		FROM items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var rec itemRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Quantity, &rec.Price, &rec.Kind,
			&rec.Category, &rec.Brand, &rec.ApplianceType); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it, err := rec.toEntity()
		if err != nil {
			return nil, err
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func (r *DatabaseRepo) loadUsers(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, first_name, last_name, kind, ssn, monthly_salary, phone, address
		FROM users ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var rec userRecord
		if err := rows.Scan(&rec.ID, &rec.FirstName, &rec.LastName, &rec.Kind,
			&rec.SSN, &rec.MonthlySalary, &rec.Phone, &rec.Address); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u, err := rec.toEntity()
		if err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *DatabaseRepo) loadTransactions(ctx context.Context) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, item_id, item_name, unit_price, quantity_sold, customer_id, employee_id, created_at
		FROM sale_transactions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.ItemID, &t.ItemName, &t.UnitPrice, &t.QuantitySold,
			&t.CustomerID, &t.EmployeeID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// ── Save ──────────────────────────────────────────────────────────────────────

// Save reemplaza el contenido guardado por snap (Commit si todo ok, Rollback si algo falla).
func (r *DatabaseRepo) Save(ctx context.Context, snap *entity.Snapshot) error {
	err := r.runner.Run(ctx, func(q Querier) error {
		if _, err := q.Exec(ctx, `TRUNCATE sale_transactions, users, items`); err != nil {
			return fmt.Errorf("truncate: %w", err)
		}
		if err := copyItems(ctx, q, snap.Items); err != nil {
			return err
		}
		if err := copyUsers(ctx, q, snap.Users); err != nil {
			return err
		}
		if err := copyTransactions(ctx, q, snap.Transactions); err != nil {
			return err
		}
		_, err := q.Exec(ctx, `
			INSERT INTO store_meta (singleton, next_user_id) VALUES (TRUE, $1)
			ON CONFLICT (singleton) DO UPDATE SET next_user_id = EXCLUDED.next_user_id`,
			snap.NextUserID,
		)
		if err != nil {
			return fmt.Errorf("upsert store meta: %w", err)
		}
		return nil
	})
	if err != nil && isUniqueViolation(err) {
		return fmt.Errorf("guardar base de datos: %w", domain.ErrDuplicate)
	}
	return err
}

// storeTables tablas que forman el snapshot, en orden de copia.
var storeTables = []string{"items", "users", "sale_transactions", "store_meta"}

// Quarantine copia cada tabla a <tabla>_invalid_<fecha> y vacía las originales, todo en una transacción.
func (r *DatabaseRepo) Quarantine(ctx context.Context) (string, error) {
	suffix := "_invalid_" + time.Now().UTC().Format("20060102150405")
	err := r.runner.Run(ctx, func(q Querier) error {
		for _, table := range storeTables {
			sql := fmt.Sprintf("CREATE TABLE %s AS TABLE %s",
				pgx.Identifier{table + suffix}.Sanitize(), pgx.Identifier{table}.Sanitize())
			if _, err := q.Exec(ctx, sql); err != nil {
				return fmt.Errorf("copiar %s: %w", table, err)
			}
		}
		if _, err := q.Exec(ctx, `TRUNCATE sale_transactions, users, items, store_meta`); err != nil {
			return fmt.Errorf("truncate: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("apartar base de datos: %w", err)
	}
	return "tablas *" + suffix, nil
}

func copyItems(ctx context.Context, q Querier, items []*entity.Item) error {
	_, err := q.CopyFrom(ctx, pgx.Identifier{"items"}, itemColumns,
		pgx.CopyFromSlice(len(items), func(i int) ([]any, error) {
			rec := toItemRecord(items[i])
			return []any{i, rec.ID, rec.Name, rec.Quantity, rec.Price, rec.Kind,
				rec.Category, rec.Brand, rec.ApplianceType}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy items: %w", err)
	}
	return nil
}

func copyUsers(ctx context.Context, q Querier, users []*entity.User) error {
	_, err := q.CopyFrom(ctx, pgx.Identifier{"users"}, userColumns,
		pgx.CopyFromSlice(len(users), func(i int) ([]any, error) {
			rec := toUserRecord(users[i])
			return []any{i, rec.ID, rec.FirstName, rec.LastName, rec.Kind,
				rec.SSN, rec.MonthlySalary, rec.Phone, rec.Address}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy users: %w", err)
	}
	return nil
}

func copyTransactions(ctx context.Context, q Querier, txs []*entity.Transaction) error {
	_, err := q.CopyFrom(ctx, pgx.Identifier{"sale_transactions"}, transactionColumns,
		pgx.CopyFromSlice(len(txs), func(i int) ([]any, error) {
			t := txs[i]
			return []any{i, t.ID, t.ItemID, t.ItemName, t.UnitPrice, t.QuantitySold,
				t.CustomerID, t.EmployeeID, t.CreatedAt.UTC().Truncate(time.Microsecond)}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy transactions: %w", err)
	}
	return nil
}
