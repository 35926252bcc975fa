package models

import (
	"time"
)

const (
	TxAdd    = "ADD"
	TxSpend  = "SPEND"
	TxRefund = "REFUND"
)

// Wallet keeps running totals alongside the transaction log. Invariant:
// Balance == sum(ADD) + sum(REFUND) - sum(SPEND) over Transactions, and a
// SPEND may never push Balance below zero.
type Wallet struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	UserID     uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	Balance    float64 `gorm:"not null;default:0" json:"balance"`
	TotalAdded float64 `gorm:"column:total_added;not null;default:0" json:"totalAdded"`
	TotalSpent float64 `gorm:"column:total_spent;not null;default:0" json:"totalSpent"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Transactions []WalletTransaction `gorm:"foreignKey:WalletID" json:"transactions"`
}

func (Wallet) TableName() string { return "wallets" }

// WalletTransaction rows are append-only: the ledger is never updated or
// deleted after creation.
type WalletTransaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	WalletID    uint      `gorm:"index;not null" json:"-"`
	Type        string    `gorm:"size:16;not null;index" json:"type"` // ADD, SPEND, REFUND
	Amount      float64   `gorm:"not null" json:"amount"`
	Description string    `gorm:"size:255" json:"description"`
	BookingID   *uint     `gorm:"column:booking_id" json:"bookingId,omitempty"`
	CreatedAt   time.Time `json:"timestamp"`
}

func (WalletTransaction) TableName() string { return "wallet_transactions" }
