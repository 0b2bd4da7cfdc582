package console

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/hardware-store/internal/domain/entity"
)

var userKindChoices = []string{"Employee", "Customer"}

// 5
func (a *App) listUsers(_ context.Context) error {
	a.out.Show(a.store.GetAllUsersFormatted())
	return nil
}

type employeeFields struct {
	first, last string
	ssn         int
	salary      decimal.Decimal
}

type customerFields struct {
	first, last, phone, address string
}

func (a *App) askNames(ctx context.Context) (first, last string, err error) {
	first, err = Ask(ctx, a.in, a.out, Field{Label: "Nombre:", Kind: FieldString}, parseNonEmpty)
	if err != nil {
		return "", "", err
	}
	last, err = Ask(ctx, a.in, a.out, Field{Label: "Apellido:", Kind: FieldString}, parseNonEmpty)
	if err != nil {
		return "", "", err
	}
	return first, last, nil
}

func (a *App) askEmployee(ctx context.Context) (employeeFields, error) {
	var f employeeFields
	var err error
	if f.first, f.last, err = a.askNames(ctx); err != nil {
		return f, err
	}
	if f.ssn, err = Ask(ctx, a.in, a.out, Field{Label: "Número de seguro social (9 dígitos):", Kind: FieldInteger}, parseSSN); err != nil {
		return f, err
	}
	f.salary, err = Ask(ctx, a.in, a.out, Field{Label: "Salario mensual (número no negativo):", Kind: FieldFloat}, parseNonNegativeDecimal)
	return f, err
}

func (a *App) askCustomer(ctx context.Context) (customerFields, error) {
	var f customerFields
	var err error
	if f.first, f.last, err = a.askNames(ctx); err != nil {
		return f, err
	}
	if f.phone, err = Ask(ctx, a.in, a.out, Field{Label: "Teléfono:", Kind: FieldString}, parseText); err != nil {
		return f, err
	}
	f.address, err = Ask(ctx, a.in, a.out, Field{Label: "Dirección:", Kind: FieldString}, parseText)
	return f, err
}

// addUser pide todos los campos antes de tocar el Store; cancelar no deja rastro.
func (a *App) addUser(ctx context.Context) error {
	kind, err := Ask(ctx, a.in, a.out, Field{Label: "Tipo de usuario:", Kind: FieldChoice, Choices: userKindChoices},
		choiceParser(len(userKindChoices)))
	if err != nil {
		return err
	}

	var id int
	if kind == 0 {
		f, err := a.askEmployee(ctx)
		if err != nil {
			return err
		}
		if id, err = a.store.AddEmployee(f.first, f.last, f.ssn, f.salary); err != nil {
			return err
		}
	} else {
		f, err := a.askCustomer(ctx)
		if err != nil {
			return err
		}
		if id, err = a.store.AddCustomer(f.first, f.last, f.phone, f.address); err != nil {
			return err
		}
	}
	a.out.Show(fmt.Sprintf("Usuario agregado con ID %d.", id))
	return nil
}

// editUser sobrescribe los campos según la variante guardada del usuario.
func (a *App) editUser(ctx context.Context) error {
	id, err := Ask(ctx, a.in, a.out, Field{Label: "ID del usuario:", Kind: FieldInteger}, parseUserID)
	if err != nil {
		return err
	}
	u, err := a.store.FindUser(id)
	if err != nil {
		return err
	}
	a.out.Show("Información actual del usuario:\n" + entity.UserTableHeader() + u.FormattedText() + entity.UserTableRule())

	if u.IsEmployee() {
		f, err := a.askEmployee(ctx)
		if err != nil {
			return err
		}
		err = a.store.EditEmployeeInformation(id, f.first, f.last, f.ssn, f.salary)
		if err != nil {
			return err
		}
	} else {
		f, err := a.askCustomer(ctx)
		if err != nil {
			return err
		}
		err = a.store.EditCustomerInformation(id, f.first, f.last, f.phone, f.address)
		if err != nil {
			return err
		}
	}
	a.out.Show("Usuario actualizado.")
	return nil
}
