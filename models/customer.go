package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Customer is a person who makes reservations at the restaurant.
type Customer struct {
	ID           uint          `gorm:"primaryKey"`
	FirstName    string        `gorm:"type:varchar(100);not null"`
	MiddleName   string        `gorm:"type:varchar(100)"`
	LastName     string        `gorm:"type:varchar(100);not null"`
	Phone        string        `gorm:"type:varchar(50)"`
	Notes        string        `gorm:"type:text"`
	Reservations []Reservation `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// sortColumns is the allow-list for SortCustomers. Anything outside it is
// rejected rather than interpolated into the query.
var sortColumns = map[string]string{
	"first_name": "first_name",
	"last_name":  "last_name",
}

// FullName joins first, middle (when present) and last name with single spaces.
func (c Customer) FullName() string {
	parts := []string{c.FirstName}
	if c.MiddleName != "" {
		parts = append(parts, c.MiddleName)
	}
	parts = append(parts, c.LastName)
	return strings.Join(parts, " ")
}

// AllCustomers returns every customer in store order.
func AllCustomers(db *gorm.DB) ([]Customer, error) {
	var customers []Customer
	if err := db.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// GetCustomer returns the customer with the given id.
func GetCustomer(db *gorm.DB, id uint) (*Customer, error) {
	var customer Customer
	if err := db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Kind: "customer", ID: id}
		}
		return nil, err
	}
	return &customer, nil
}

// SearchCustomers returns customers whose full name contains term,
// case-insensitively. An empty term behaves like AllCustomers.
func SearchCustomers(db *gorm.DB, term string) ([]Customer, error) {
	if term == "" {
		return AllCustomers(db)
	}
	var customers []Customer
	pattern := "%" + strings.ToLower(term) + "%"
	err := db.Where("LOWER("+fullNameExpr(db)+") LIKE ?", pattern).Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// fullNameExpr builds the first+last concatenation for the active dialect.
func fullNameExpr(db *gorm.DB) string {
	if db.Dialector.Name() == "mysql" {
		return "CONCAT(first_name, ' ', last_name)"
	}
	return "first_name || ' ' || last_name"
}

// SortCustomers returns all customers ordered by an allow-listed column.
func SortCustomers(db *gorm.DB, field string) ([]Customer, error) {
	column, ok := sortColumns[field]
	if !ok {
		return nil, &ValidationError{Message: "cannot sort customers by: " + field}
	}
	var customers []Customer
	if err := db.Order(column).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// TopCustomers returns the ten customers with the most reservations,
// busiest first. Customers without reservations never appear.
func TopCustomers(db *gorm.DB) ([]Customer, error) {
	var customers []Customer
	err := db.
		Select("customers.*").
		Joins("JOIN reservations ON reservations.customer_id = customers.id").
		Group("customers.id").
		Order("COUNT(reservations.id) DESC").
		Limit(10).
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// GetReservations returns this customer's reservations in store order.
func (c *Customer) GetReservations(db *gorm.DB) ([]Reservation, error) {
	return ReservationsForCustomer(db, c.ID)
}

// Save inserts the customer when it has no id yet, capturing the generated
// id, and otherwise updates the mutable fields of the existing row.
func (c *Customer) Save(db *gorm.DB) error {
	if c.ID == 0 {
		return db.Create(c).Error
	}
	return db.Model(c).
		Select("first_name", "middle_name", "last_name", "phone", "notes").
		Updates(*c).Error
}

// Delete removes the customer together with their reservations, so no
// reservation is left pointing at a missing customer. Deleting an unsaved
// customer is a no-op.
func (c *Customer) Delete(db *gorm.DB) error {
	if c.ID == 0 {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", c.ID).Delete(&Reservation{}).Error; err != nil {
			return err
		}
		return tx.Delete(c).Error
	})
}
