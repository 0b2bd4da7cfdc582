package inventory

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/hardware-store/internal/domain"
	"github.com/jhoicas/hardware-store/internal/domain/entity"
	rules "github.com/jhoicas/hardware-store/internal/domain/inventory"
)

// FindUserIndex devuelve la posición del usuario con ese ID, o -1.
func (s *Store) FindUserIndex(id int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userIndex(id)
}

func (s *Store) userIndex(id int) int {
	return slices.IndexFunc(s.users, func(u *entity.User) bool { return u.ID == id })
}

func (s *Store) userByID(id int) *entity.User {
	if idx := s.userIndex(id); idx >= 0 {
		return s.users[idx]
	}
	return nil
}

// FindUser devuelve una copia del usuario con ese ID.
func (s *Store) FindUser(id int) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.userByID(id)
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u.Clone(), nil
}

// Users devuelve copias de los usuarios en orden de alta.
func (s *Store) Users() []*entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.Clone())
	}
	return out
}

// AddEmployee registra un empleado y devuelve el ID asignado.
func (s *Store) AddEmployee(firstName, lastName string, ssn int, salary decimal.Decimal) (int, error) {
	if err := validateEmployee(firstName, lastName, ssn, salary); err != nil {
		return 0, err
	}
	return s.addUser(&entity.User{
		FirstName: firstName,
		LastName:  lastName,
		Kind:      entity.UserKindEmployee,
		Employee:  &entity.EmployeeDetails{SSN: ssn, MonthlySalary: salary},
	}), nil
}

// AddCustomer registra un cliente y devuelve el ID asignado.
func (s *Store) AddCustomer(firstName, lastName, phone, address string) (int, error) {
	if err := validateNames(firstName, lastName); err != nil {
		return 0, err
	}
	return s.addUser(&entity.User{
		FirstName: firstName,
		LastName:  lastName,
		Kind:      entity.UserKindCustomer,
		Customer:  &entity.CustomerDetails{Phone: phone, Address: address},
	}), nil
}

func (s *Store) addUser(u *entity.User) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextUserID
	s.nextUserID++
	s.users = append(s.users, u)
	s.dirty = true
	s.log.Info().Int("user_id", u.ID).Str("kind", string(u.Kind)).Msg("usuario agregado")
	return u.ID
}

// EditEmployeeInformation sobrescribe los datos del empleado con ese ID.
// Devuelve ErrRoleMismatch si el ID corresponde a un cliente.
func (s *Store) EditEmployeeInformation(id int, firstName, lastName string, ssn int, salary decimal.Decimal) error {
	if err := validateEmployee(firstName, lastName, ssn, salary); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.userByID(id)
	if u == nil {
		return domain.ErrUserNotFound
	}
	if !u.IsEmployee() {
		return fmt.Errorf("usuario %d no es empleado: %w", id, domain.ErrRoleMismatch)
	}
	u.FirstName, u.LastName = firstName, lastName
	u.Employee.SSN, u.Employee.MonthlySalary = ssn, salary
	s.dirty = true
	s.log.Info().Int("user_id", id).Msg("empleado actualizado")
	return nil
}

// EditCustomerInformation sobrescribe los datos del cliente con ese ID.
// Devuelve ErrRoleMismatch si el ID corresponde a un empleado.
func (s *Store) EditCustomerInformation(id int, firstName, lastName, phone, address string) error {
	if err := validateNames(firstName, lastName); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.userByID(id)
	if u == nil {
		return domain.ErrUserNotFound
	}
	if u.IsEmployee() {
		return fmt.Errorf("usuario %d no es cliente: %w", id, domain.ErrRoleMismatch)
	}
	u.FirstName, u.LastName = firstName, lastName
	u.Customer.Phone, u.Customer.Address = phone, address
	s.dirty = true
	s.log.Info().Int("user_id", id).Msg("cliente actualizado")
	return nil
}

// GetAllUsersFormatted devuelve la tabla de usuarios en orden de alta.
func (s *Store) GetAllUsersFormatted() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return formatUsers(s.users)
}

func validateNames(firstName, lastName string) error {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return fmt.Errorf("nombre y apellido son obligatorios: %w", domain.ErrInvalidInput)
	}
	return nil
}

func validateEmployee(firstName, lastName string, ssn int, salary decimal.Decimal) error {
	if err := validateNames(firstName, lastName); err != nil {
		return err
	}
	if !rules.ValidSSN(ssn) {
		return fmt.Errorf("SSN %d fuera de rango: %w", ssn, domain.ErrInvalidInput)
	}
	if !rules.ValidAmount(salary) {
		return fmt.Errorf("salario %s: %w", salary, domain.ErrInvalidInput)
	}
	return nil
}
