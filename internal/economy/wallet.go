package economy

import (
	"math/big"
	"sync"
)

// Wallet holds the player's balance. Amounts are unbounded non-negative
// integers; every accessor returns a copy.
type Wallet struct {
	mu      sync.Mutex
	balance *big.Int
}

// NewWallet creates a wallet holding a copy of start (nil means zero)
func NewWallet(start *big.Int) *Wallet {
	w := &Wallet{balance: new(big.Int)}
	if start != nil && start.Sign() > 0 {
		w.balance.Set(start)
	}
	return w
}

// Balance returns the current balance
func (w *Wallet) Balance() *big.Int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return new(big.Int).Set(w.balance)
}

// Deposit adds amount and returns the new balance
func (w *Wallet) Deposit(amount *big.Int) *big.Int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.balance.Add(w.balance, amount)
	return new(big.Int).Set(w.balance)
}

// Withdraw subtracts amount if the balance covers it
func (w *Wallet) Withdraw(amount *big.Int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.balance.Cmp(amount) < 0 {
		return false
	}
	w.balance.Sub(w.balance, amount)
	return true
}
