package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SnapshotVersion is the format version of exported snapshots. It is
// checked on import, a snapshot with a different version is rejected
// before anything is written.
const SnapshotVersion = "1"

// Snapshot is a full copy of one user's ledger, suitable for backup
// and restore.
type Snapshot struct {
	Version      string        `json:"version" example:"1"`
	Transactions []Transaction `json:"transactions"`
	Budgets      []Budget      `json:"budgets"`
}

// Export collects all transactions and budgets of a user into a
// snapshot. Record order is deterministic so exports of the same
// ledger compare equal.
func Export(db *gorm.DB, userID uuid.UUID) (Snapshot, error) {
	snapshot := Snapshot{
		Version:      SnapshotVersion,
		Transactions: make([]Transaction, 0),
		Budgets:      make([]Budget, 0),
	}

	err := db.
		Where(&Transaction{UserID: userID}).
		Order("transactions.date ASC, transactions.id ASC").
		Find(&snapshot.Transactions).Error
	if err != nil {
		return Snapshot{}, err
	}

	budgets, err := BudgetsForUser(db, userID)
	if err != nil {
		return Snapshot{}, err
	}
	snapshot.Budgets = budgets

	return snapshot, nil
}

// Import replaces the user's ledger with the snapshot's contents.
//
// The whole restore runs in one database transaction. Every record goes
// through the model hooks again, so an invalid record rejects the whole
// snapshot and leaves the existing ledger untouched.
func Import(db *gorm.DB, userID uuid.UUID, snapshot Snapshot) error {
	if snapshot.Version != SnapshotVersion {
		return fmt.Errorf("%w: %q is not supported", ErrSnapshotVersion, snapshot.Version)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(&Transaction{UserID: userID}).Delete(&Transaction{}).Error
		if err != nil {
			return err
		}

		err = tx.Where(&Budget{UserID: userID}).Delete(&Budget{}).Error
		if err != nil {
			return err
		}

		for _, transaction := range snapshot.Transactions {
			// Snapshots can only restore into the importing
			// user's ledger
			transaction.UserID = userID

			err := tx.Create(&transaction).Error
			if err != nil {
				return err
			}
		}

		for _, budget := range snapshot.Budgets {
			budget.UserID = userID

			err := tx.Create(&budget).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
