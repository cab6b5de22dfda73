package domain

import "time"

// TransactionKind is the direction of a market transaction.
type TransactionKind string

const (
	TransactionSell TransactionKind = "sell"
)

// Transaction is one append-only market trade record.
type Transaction struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	CropType      string          `json:"crop_type"`
	Quantity      int             `json:"quantity"`
	PricePerUnit  int             `json:"price_per_unit"`
	TotalEarnings int             `json:"total_earnings"`
	Kind          TransactionKind `json:"kind"`
	CreatedAt     time.Time       `json:"created_at"`
}
