// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"
	pty "github.com/game33/luckybet/types"
)

// Exec_Start open a new game
func (l *LuckyBet) Exec_Start(payload *pty.LuckyBetStart, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(l, tx, index).GameStart(payload)
}

// Exec_Bet place a bet
func (l *LuckyBet) Exec_Bet(payload *pty.LuckyBetBet, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(l, tx, index).GameBet(payload)
}

// Exec_Deposit pre-fund the caller's balance
func (l *LuckyBet) Exec_Deposit(payload *pty.LuckyBetDeposit, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(l, tx, index).Deposit(payload)
}

// Exec_Draw close betting and request randomness
func (l *LuckyBet) Exec_Draw(payload *pty.LuckyBetDraw, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(l, tx, index).GameDraw(payload)
}

// Exec_Redraw re-issue a stuck randomness request
func (l *LuckyBet) Exec_Redraw(payload *pty.LuckyBetRedraw, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(l, tx, index).GameRedraw(payload)
}

// Exec_Fulfill oracle answer
func (l *LuckyBet) Exec_Fulfill(payload *pty.LuckyBetFulfill, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(l, tx, index).VrfFulfill(payload)
}

// Exec_Settle settle a drawn game
func (l *LuckyBet) Exec_Settle(payload *pty.LuckyBetSettle, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(l, tx, index).GameSettle(payload)
}

// Exec_WithdrawAward claim a game award
func (l *LuckyBet) Exec_WithdrawAward(payload *pty.LuckyBetWithdrawAward, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(l, tx, index).WithdrawAward(payload)
}

// Exec_WithdrawBalance pay out fund credit
func (l *LuckyBet) Exec_WithdrawBalance(payload *pty.LuckyBetWithdrawBalance, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(l, tx, index).WithdrawBalance(payload)
}

// Exec_SetBankerFee owner sets the game opening fee
func (l *LuckyBet) Exec_SetBankerFee(payload *pty.LuckyBetSetBankerFee, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(l, tx, index).SetBankerFee(payload)
}

// Exec_SetOwner hand over the owner role
func (l *LuckyBet) Exec_SetOwner(payload *pty.LuckyBetSetOwner, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(l, tx, index).SetOwner(payload)
}

// Exec_VrfConfig owner updates oracle parameters
func (l *LuckyBet) Exec_VrfConfig(payload *pty.LuckyBetVrfConfig, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(l, tx, index).SetVrfConfig(payload)
}
