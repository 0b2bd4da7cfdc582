package inventory

import (
	"fmt"

	"github.com/jhoicas/hardware-store/internal/domain"
	"github.com/jhoicas/hardware-store/internal/domain/entity"
	rules "github.com/jhoicas/hardware-store/internal/domain/inventory"
)

// ProgressTransaction registra una venta: descuenta quantitySold del artículo en itemIndex y agrega
// la transacción. Valida todo antes de modificar, así que ante cualquier error no hay efecto parcial.
// itemIndex debe seguir apuntando a itemID (ErrStaleIndex si el catálogo cambió desde la consulta).
func (s *Store) ProgressTransaction(itemID string, quantitySold, customerID, employeeID, itemIndex int) (*entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if itemIndex < 0 || itemIndex >= len(s.items) || s.items[itemIndex].ID != itemID {
		return nil, fmt.Errorf("artículo %s en posición %d: %w", itemID, itemIndex, domain.ErrStaleIndex)
	}
	item := s.items[itemIndex]
	if !rules.ValidQuantity(quantitySold) {
		return nil, fmt.Errorf("cantidad vendida %d: %w", quantitySold, domain.ErrInvalidInput)
	}
	if item.Quantity < quantitySold {
		return nil, fmt.Errorf("artículo %s tiene %d, se pidieron %d: %w", itemID, item.Quantity, quantitySold, domain.ErrInsufficientStock)
	}

	employee := s.userByID(employeeID)
	if employee == nil {
		return nil, fmt.Errorf("empleado %d: %w", employeeID, domain.ErrUserNotFound)
	}
	if !employee.IsEmployee() {
		return nil, fmt.Errorf("usuario %d no es empleado: %w", employeeID, domain.ErrRoleMismatch)
	}
	customer := s.userByID(customerID)
	if customer == nil {
		return nil, fmt.Errorf("cliente %d: %w", customerID, domain.ErrUserNotFound)
	}
	if customer.IsEmployee() {
		return nil, fmt.Errorf("usuario %d no es cliente: %w", customerID, domain.ErrRoleMismatch)
	}

	tx := &entity.Transaction{
		ID:           s.newID(),
		ItemID:       item.ID,
		ItemName:     item.Name,
		UnitPrice:    item.Price,
		QuantitySold: quantitySold,
		CustomerID:   customerID,
		EmployeeID:   employeeID,
		CreatedAt:    s.now(),
	}
	item.Quantity -= quantitySold
	s.transactions = append(s.transactions, tx)
	s.dirty = true

	s.log.Info().
		Str("transaction_id", tx.ID).
		Str("item_id", item.ID).
		Int("quantity_sold", quantitySold).
		Int("stock", item.Quantity).
		Int("customer_id", customerID).
		Int("employee_id", employeeID).
		Msg("venta registrada")

	out := *tx
	return &out, nil
}

// Transactions devuelve copias de las transacciones en orden de registro.
func (s *Store) Transactions() []*entity.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		tx := *t
		out = append(out, &tx)
	}
	return out
}

// GetAllTransactionsFormatted devuelve la tabla de transacciones en orden de registro.
func (s *Store) GetAllTransactionsFormatted() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return formatTransactions(s.transactions)
}
