package services

import (
	"errors"
	"fmt"
	"time"

	"siddhi-hotel-backend/models"

	"gorm.io/gorm"
)

// WalletService maintains per-user balances over an append-only transaction
// log. Every mutating operation runs in a transaction that writes the
// balance and the ledger row together, with the balance update guarded in
// the WHERE clause so a concurrent spend can never drive it negative.
type WalletService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewWalletService(db *gorm.DB) *WalletService {
	return &WalletService{
		DB:  db,
		Now: func() time.Time { return time.Now().UTC() },
	}
}

// ledgerOrder keeps preloaded transactions in append order everywhere.
func ledgerOrder(db *gorm.DB) *gorm.DB {
	return db.Order("wallet_transactions.id ASC")
}

// GetOrCreate lazily creates the user's wallet on first access. Idempotent;
// a racing create falls back to reading the row the other request inserted.
func (s *WalletService) GetOrCreate(userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := s.DB.Preload("Transactions", ledgerOrder).Where("user_id = ?", userID).First(&wallet).Error
	if err == nil {
		return &wallet, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}

	now := s.Now()
	wallet = models.Wallet{UserID: userID, Balance: 0, CreatedAt: now, UpdatedAt: now}
	if createErr := s.DB.Create(&wallet).Error; createErr != nil {
		if isDuplicateErr(createErr) {
			if err := s.DB.Preload("Transactions", ledgerOrder).Where("user_id = ?", userID).First(&wallet).Error; err == nil {
				return &wallet, nil
			}
		}
		return nil, fmt.Errorf("failed to create wallet: %w", createErr)
	}
	wallet.Transactions = []models.WalletTransaction{}
	return &wallet, nil
}

// Credit adds funds: appends an ADD row, Balance += amount,
// TotalAdded += amount.
func (s *WalletService) Credit(userID uint, amount float64, description string) (*models.Wallet, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	wallet, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if description == "" {
		description = "Money added via Payment"
	}

	now := s.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Wallet{}).
			Where("id = ?", wallet.ID).
			Updates(map[string]interface{}{
				"balance":     gorm.Expr("balance + ?", amount),
				"total_added": gorm.Expr("total_added + ?", amount),
				"updated_at":  now,
			}).Error; err != nil {
			return err
		}
		txn := models.WalletTransaction{
			WalletID:    wallet.ID,
			Type:        models.TxAdd,
			Amount:      amount,
			Description: description,
			CreatedAt:   now,
		}
		return tx.Create(&txn).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add money: %w", err)
	}
	return s.reload(wallet.ID)
}

// Debit spends funds against the wallet. Fails with InsufficientFundsError
// when the balance is short; a failed debit leaves the wallet untouched.
func (s *WalletService) Debit(userID uint, amount float64, description string, bookingID *uint) (*models.Wallet, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	wallet, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if description == "" {
		description = "Booking payment"
	}

	now := s.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// balance guard in the WHERE clause: zero rows affected means the
		// funds are short, and a concurrent spend cannot go below zero
		res := tx.Model(&models.Wallet{}).
			Where("id = ? AND balance >= ?", wallet.ID, amount).
			Updates(map[string]interface{}{
				"balance":     gorm.Expr("balance - ?", amount),
				"total_spent": gorm.Expr("total_spent + ?", amount),
				"updated_at":  now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var current models.Wallet
			if err := tx.First(&current, wallet.ID).Error; err != nil {
				return err
			}
			return &InsufficientFundsError{Current: current.Balance, Required: amount}
		}
		txn := models.WalletTransaction{
			WalletID:    wallet.ID,
			Type:        models.TxSpend,
			Amount:      amount,
			Description: description,
			BookingID:   bookingID,
			CreatedAt:   now,
		}
		return tx.Create(&txn).Error
	})
	if err != nil {
		var short *InsufficientFundsError
		if errors.As(err, &short) {
			return nil, short
		}
		return nil, fmt.Errorf("failed to process payment: %w", err)
	}
	return s.reload(wallet.ID)
}

// Refund returns funds after a failed or cancelled booking. TotalSpent is
// deliberately untouched so historical spend totals survive refunds.
func (s *WalletService) Refund(userID uint, amount float64, bookingID *uint, reason string) (*models.Wallet, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	wallet, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if reason == "" {
		reason = "Refund"
	}

	now := s.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Wallet{}).
			Where("id = ?", wallet.ID).
			Updates(map[string]interface{}{
				"balance":    gorm.Expr("balance + ?", amount),
				"updated_at": now,
			}).Error; err != nil {
			return err
		}
		txn := models.WalletTransaction{
			WalletID:    wallet.ID,
			Type:        models.TxRefund,
			Amount:      amount,
			Description: reason,
			BookingID:   bookingID,
			CreatedAt:   now,
		}
		return tx.Create(&txn).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to process refund: %w", err)
	}
	return s.reload(wallet.ID)
}

// Transactions returns the user's ledger, newest first.
func (s *WalletService) Transactions(userID uint) ([]models.WalletTransaction, error) {
	wallet, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	var txns []models.WalletTransaction
	err = s.DB.
		Where("wallet_id = ?", wallet.ID).
		Order("created_at DESC, id DESC").
		Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}
	return txns, nil
}

// reload fetches the wallet with its ledger in append order.
func (s *WalletService) reload(walletID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := s.DB.
		Preload("Transactions", ledgerOrder).
		First(&wallet, walletID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to reload wallet: %w", err)
	}
	return &wallet, nil
}
