package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// UserKind discrimina la variante de un usuario.
type UserKind string

// Variantes de User.
const (
	UserKindEmployee UserKind = "employee"
	UserKindCustomer UserKind = "customer"
)

// EmployeeDetails campos propios de un empleado.
type EmployeeDetails struct {
	SSN           int             `json:"ssn"` // 9 dígitos
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
}

// CustomerDetails campos propios de un cliente.
type CustomerDetails struct {
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// User representa una persona registrada en la tienda (empleado o cliente).
// ID lo asigna el Store y no cambia; Kind tampoco cambia después de creado.
type User struct {
	ID        int              `json:"id"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Kind      UserKind         `json:"kind"`
	Employee  *EmployeeDetails `json:"employee,omitempty"`
	Customer  *CustomerDetails `json:"customer,omitempty"`
}

// IsEmployee indica si el usuario es un empleado.
func (u *User) IsEmployee() bool { return u.Kind == UserKindEmployee }

// Clone devuelve una copia profunda.
func (u *User) Clone() *User {
	c := *u
	if u.Employee != nil {
		e := *u.Employee
		c.Employee = &e
	}
	if u.Customer != nil {
		cu := *u.Customer
		c.Customer = &cu
	}
	return &c
}

// Consistent verifica que el discriminador y los datos de la variante coincidan.
func (u *User) Consistent() bool {
	switch u.Kind {
	case UserKindEmployee:
		return u.Employee != nil && u.Customer == nil
	case UserKindCustomer:
		return u.Customer != nil && u.Employee == nil
	default:
		return false
	}
}

const userRowFormat = "| %-10s| %-9s| %-12s| %-12s| %-45s|\n"

// UserTableHeader encabezado de la tabla de usuarios (incluye separadores).
func UserTableHeader() string {
	return UserTableRule() +
		fmt.Sprintf(userRowFormat, "User Type", "User ID", "First Name", "Last Name", "Special") +
		UserTableRule()
}

// UserTableRule separador horizontal de la tabla de usuarios.
func UserTableRule() string {
	return " " + strings.Repeat("-", 97) + "\n"
}

// FormattedText devuelve la fila de tabla del usuario según su variante.
func (u *User) FormattedText() string {
	var kind, special string
	switch u.Kind {
	case UserKindEmployee:
		kind = "Employee"
		if u.Employee != nil {
			special = fmt.Sprintf("SSN: %9d, Salary: %s", u.Employee.SSN, u.Employee.MonthlySalary.StringFixed(2))
		}
	case UserKindCustomer:
		kind = "Customer"
		if u.Customer != nil {
			special = fmt.Sprintf("Phone: %s, Address: %s", u.Customer.Phone, u.Customer.Address)
		}
	default:
		kind = string(u.Kind)
	}
	return fmt.Sprintf(userRowFormat, kind, strconv.Itoa(u.ID), u.FirstName, u.LastName, special)
}
