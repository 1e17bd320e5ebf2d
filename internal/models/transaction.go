package models

import (
	"time"
)

// TransactionKind identifies what a ledger transaction records
type TransactionKind string

const (
	// TransactionKindAdminAdd is a grant issued by the administrator
	TransactionKindAdminAdd TransactionKind = "admin_add"

	// TransactionKindSystemGrant is money handed out by the request command
	TransactionKindSystemGrant TransactionKind = "system_grant"

	// TransactionKindBankDeposit moves cash into the bank
	TransactionKindBankDeposit TransactionKind = "bank_deposit"

	// TransactionKindBankWithdraw moves bank balance back to cash
	TransactionKindBankWithdraw TransactionKind = "bank_withdraw"

	// TransactionKindTransfer is a player-to-player transfer
	TransactionKindTransfer TransactionKind = "transfer"

	// TransactionKindAdminReset records an account reset by the administrator
	TransactionKindAdminReset TransactionKind = "admin_reset"
)

// Transaction is an immutable ledger entry
type Transaction struct {
	// ID is unique and derived from the creation time
	ID string `json:"id"`

	// Kind is the transaction type
	Kind TransactionKind `json:"kind"`

	// FromID is the sending party ("system" or "bank" for internal moves)
	FromID string `json:"fromId"`

	// ToID is the receiving party
	ToID string `json:"toId"`

	// Amount moved, never negative
	Amount int64 `json:"amount"`

	// Tax withheld, only nonzero for transfers
	Tax int64 `json:"tax"`

	// Note is a free-form description
	Note string `json:"note,omitempty"`

	// CreatedAt is when the transaction was recorded
	CreatedAt time.Time `json:"createdAt"`
}
