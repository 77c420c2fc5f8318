package clients

import (
	"regexp"
	"strings"

	"github.com/taxpractice/backend/internal/domain/shared"
)

// Client represents a tax-practice client. It is the owning side of
// income and business records, which reference it by ClientID.
type Client struct {
	shared.BaseEntity
	shared.AuditInfo
	shared.SoftDelete
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
}

// NewClient creates a new client with required fields
func NewClient(firstName, lastName string) (*Client, error) {
	if err := validateName(firstName, "first name"); err != nil {
		return nil, err
	}
	if err := validateName(lastName, "last name"); err != nil {
		return nil, err
	}

	return &Client{
		BaseEntity: shared.NewBaseEntity(),
		FirstName:  firstName,
		LastName:   lastName,
	}, nil
}

// FullName returns the client's display name
func (c *Client) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Rename updates the client's name fields
func (c *Client) Rename(firstName, lastName string) error {
	if err := validateName(firstName, "first name"); err != nil {
		return err
	}
	if err := validateName(lastName, "last name"); err != nil {
		return err
	}
	c.FirstName = firstName
	c.LastName = lastName
	c.Touch()
	return nil
}

// SetContact sets the client's contact information
func (c *Client) SetContact(email, phone, address string) error {
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
	}
	if address != "" && len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}

	c.Email = email
	c.Phone = phone
	c.Address = address
	c.Touch()
	return nil
}

func validateName(name, label string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Client "+label+" cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Client "+label+" cannot exceed 100 characters")
	}
	return nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
