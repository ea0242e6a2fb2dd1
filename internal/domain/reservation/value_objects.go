package reservation

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCustomerName = errors.New("customer name must not be empty")
	ErrInvalidEmail      = errors.New("invalid customer email")
)

// Customer carries the identity fields of the person booking. The fields are
// opaque to the booking engine; only presence and basic shape are checked.
type Customer struct {
	name  string
	email string
	phone string
}

func NewCustomer(name, email, phone string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, ErrEmptyCustomerName
	}
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return Customer{}, ErrInvalidEmail
	}
	return Customer{
		name:  name,
		email: email,
		phone: strings.TrimSpace(phone),
	}, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Email() string { return c.email }
func (c Customer) Phone() string { return c.phone }

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
