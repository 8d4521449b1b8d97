package entity

// Customer representa un cliente de la empresa.
type Customer struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TaxID      string `json:"tax_id"` // NIF/CIF
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
	Notes      string `json:"notes,omitempty"`
}
