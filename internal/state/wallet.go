// internal/state/wallet.go
package state

import "go-defense-sim/internal/event"

// Wallet — кошелёк игрока. Живёт вне ядра симуляции: ядро лишь спрашивает
// через app.FundsProvider, хватает ли средств, и шлёт события наград.
type Wallet struct {
	funds int
}

func NewWallet(initial int) *Wallet {
	return &Wallet{funds: initial}
}

func (w *Wallet) Funds() int {
	return w.funds
}

func (w *Wallet) CanAfford(amount int) bool {
	return w.funds >= amount
}

func (w *Wallet) Spend(amount int) bool {
	if !w.CanAfford(amount) {
		return false
	}
	w.funds -= amount
	return true
}

func (w *Wallet) Add(amount int) {
	w.funds += amount
}

// OnEvent пополняет кошелёк наградами за убийства и зачистку волн.
func (w *Wallet) OnEvent(e event.Event) {
	switch e.Type {
	case event.UnitKilled:
		if p, ok := e.Data.(event.UnitKilledPayload); ok {
			w.Add(p.Reward)
		}
	case event.WaveCompleted:
		if p, ok := e.Data.(event.WaveCompletedPayload); ok {
			w.Add(p.Reward)
		}
	}
}
