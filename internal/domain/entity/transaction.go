package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction representa una venta completada. Es inmutable una vez registrada.
// ItemName y UnitPrice se copian al momento de la venta para que el registro
// conserve su sentido aunque el artículo se elimine después.
type Transaction struct {
	ID           string          `json:"id"`
	ItemID       string          `json:"item_id"`
	ItemName     string          `json:"item_name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	QuantitySold int             `json:"quantity_sold"`
	CustomerID   int             `json:"customer_id"`
	EmployeeID   int             `json:"employee_id"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Total devuelve UnitPrice * QuantitySold.
func (t *Transaction) Total() decimal.Decimal {
	return t.UnitPrice.Mul(decimal.NewFromInt(int64(t.QuantitySold)))
}

// TransactionDateLayout formato de fecha de las transacciones en tablas y reportes.
const TransactionDateLayout = "2006-01-02 15:04"

const transactionRowFormat = "| %-8s| %-21s| %-10s| %-12s| %-12s| %-12s| %-17s|\n"

// TransactionTableHeader encabezado de la tabla de transacciones (incluye separadores).
func TransactionTableHeader() string {
	return TransactionTableRule() +
		fmt.Sprintf(transactionRowFormat, "Item ID", "Item Name", "Quantity", "Customer ID", "Employee ID", "Total", "Date") +
		TransactionTableRule()
}

// TransactionTableRule separador horizontal de la tabla de transacciones.
func TransactionTableRule() string {
	return " " + strings.Repeat("-", 108) + "\n"
}

// FormattedText devuelve la fila de tabla de la transacción.
func (t *Transaction) FormattedText() string {
	return fmt.Sprintf(transactionRowFormat,
		t.ItemID, t.ItemName, strconv.Itoa(t.QuantitySold),
		strconv.Itoa(t.CustomerID), strconv.Itoa(t.EmployeeID),
		"$"+t.Total().StringFixed(2), t.CreatedAt.Format(TransactionDateLayout))
}
