package accounting

import (
	"strings"

	"github.com/bukukita/bkk_backend/internal/core/domain"
)

// inventoryKeywords match account names that denote stock on hand.
// Includes the Indonesian bookkeeping terms the app's users write.
var inventoryKeywords = []string{"inventory", "persediaan", "stok", "barang", "bahan"}

// cogsKeywords match expense account names that denote cost of goods sold.
var cogsKeywords = []string{"cogs", "hpp", "harga pokok", "cost of", "biaya pokok"}

// IsInventoryAccount reports whether an account holds stock: an asset whose
// default category is VAR, or whose name matches an inventory keyword.
func IsInventoryAccount(acct domain.Account) bool {
	if acct.AccountType != domain.Asset {
		return false
	}
	if acct.DefaultCategory == domain.CategoryVar {
		return true
	}
	return matchesAny(acct.Name, inventoryKeywords)
}

// IsStockTransaction reports whether a transaction is a stock purchase: VAR
// category with an inventory account on the debit side. This drives the
// "STOCK" display label; it is not a stored category of its own.
func IsStockTransaction(txn domain.Transaction, debitAccount *domain.Account) bool {
	if txn.Category != domain.CategoryVar || debitAccount == nil {
		return false
	}
	posting, ok := txn.Posting.(domain.DoubleEntryPosting)
	if !ok || posting.DebitAccountID != debitAccount.AccountID {
		return false
	}
	return IsInventoryAccount(*debitAccount)
}

// FindCOGSAccount selects the account a stock transaction reclassifies to:
// among active expense sub-accounts, prefer one named like COGS/HPP, else the
// first active expense sub-account. Returns nil when no candidate exists; the
// caller surfaces "no expense account configured".
func FindCOGSAccount(accounts []domain.Account) *domain.Account {
	var fallback *domain.Account
	for i := range accounts {
		a := &accounts[i]
		if a.AccountType != domain.Expense || !a.IsActive || a.ParentAccountID == "" {
			continue
		}
		if matchesAny(a.Name, cogsKeywords) {
			return a
		}
		if fallback == nil {
			fallback = a
		}
	}
	return fallback
}

// StockToCOGSUpdate changes only the debit account of an existing stock
// transaction. Amount, date, credit account and category stay untouched; the
// display label is re-derived from the new debit account's properties.
type StockToCOGSUpdate struct {
	TransactionID  string
	DebitAccountID string
}

// BuildStockToCOGSUpdate produces the reclassification update for a stock
// transaction, moving its debit side to the given COGS account.
func BuildStockToCOGSUpdate(stockTxn domain.Transaction, cogsAccount domain.Account) StockToCOGSUpdate {
	return StockToCOGSUpdate{
		TransactionID:  stockTxn.TransactionID,
		DebitAccountID: cogsAccount.AccountID,
	}
}

func matchesAny(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
