package domain

// Transaction is the rental receipt returned to the customer.
// It is constructed once by the rental engine and never modified.
type Transaction struct {
	ID       string   `json:"id"`
	Customer Customer `json:"customer"`
	Car      Car      `json:"car"`
	DueDate  string   `json:"dueDate"`
	Amount   string   `json:"amount"`
}
