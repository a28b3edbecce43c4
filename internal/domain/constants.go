package domain

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// WithdrawalRequest.status values.
const (
	WithdrawalRequested  = "requested"
	WithdrawalApproved   = "approved"
	WithdrawalProcessing = "processing"
	WithdrawalCompleted  = "completed"
	WithdrawalRejected   = "rejected"
)

// WalletTransaction.type values.
const (
	TxCommissionCredit    = "commission_credit"
	TxWithdrawalRequested = "withdrawal_requested"
	TxWithdrawalCompleted = "withdrawal_completed"
	TxWithdrawalRejected  = "withdrawal_rejected"
	TxAdjustmentCredit    = "adjustment_credit"
	TxAdjustmentDebit     = "adjustment_debit"
)

const (
	PayoutMethodPaypal       = "paypal"
	PayoutMethodBankTransfer = "bank_transfer"
)

// AffiliateReferral.status values.
const (
	ReferralPending   = "pending"
	ReferralInstalled = "installed"
	ReferralConverted = "converted"
)

const (
	LeadSourceAffiliate = "affiliate"
	LeadStatusNew       = "New"
)

// CommissionRecord.status values.
const (
	CommissionPending  = "pending"
	CommissionPaid     = "paid"
	CommissionCanceled = "canceled"
)

const (
	OpportunityOpen = "open"
	OpportunityWon  = "won"
	OpportunityLost = "lost"
)

var withdrawalTransitions = map[string][]string{
	WithdrawalRequested:  {WithdrawalApproved, WithdrawalCompleted, WithdrawalRejected},
	WithdrawalApproved:   {WithdrawalProcessing, WithdrawalCompleted, WithdrawalRejected},
	WithdrawalProcessing: {WithdrawalCompleted},
}

// CanTransitionWithdrawal reports whether a withdrawal may move from one status to another.
// Completed and rejected are terminal.
func CanTransitionWithdrawal(from, to string) bool {
	for _, s := range withdrawalTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
