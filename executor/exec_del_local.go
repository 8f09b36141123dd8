// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"
	pty "github.com/game33/luckybet/types"
)

// rollbackIndex undo updateIndex on block rollback. Logs are replayed in
// reverse so multi-transition receipts unwind correctly.
func (l *LuckyBet) rollbackIndex(receiptData *types.ReceiptData) (*types.LocalDBSet, error) {
	var set types.LocalDBSet
	for i := len(receiptData.Logs) - 1; i >= 0; i-- {
		item := receiptData.Logs[i]
		if item.Ty != pty.TyLogLuckyBetStatus {
			continue
		}
		var status pty.ReceiptLuckyBetStatus
		if err := types.Decode(item.Log, &status); err != nil {
			return nil, err
		}
		set.KV = append(set.KV, &types.KeyValue{
			Key: calcLuckyBetStatusKey(status.Status, status.Index), Value: nil})
		set.KV = append(set.KV, &types.KeyValue{
			Key: calcLuckyBetBankerStatusKey(status.Banker, status.Status, status.Index), Value: nil})
		if status.PrevStatus == pty.LuckyBetStatusInit {
			set.KV = append(set.KV, &types.KeyValue{
				Key: calcLuckyBetAllKey(status.Index), Value: nil})
			set.KV = append(set.KV, &types.KeyValue{
				Key: calcLuckyBetBankerAllKey(status.Banker, status.Index), Value: nil})
		} else {
			set.KV = append(set.KV, &types.KeyValue{
				Key: calcLuckyBetStatusKey(status.PrevStatus, status.PrevIndex), Value: record(status.GameId, status.PrevIndex)})
			set.KV = append(set.KV, &types.KeyValue{
				Key: calcLuckyBetBankerStatusKey(status.Banker, status.PrevStatus, status.PrevIndex), Value: record(status.GameId, status.PrevIndex)})
		}
	}
	return &set, nil
}

// ExecDelLocal_Start rollback
func (l *LuckyBet) ExecDelLocal_Start(payload *pty.LuckyBetStart, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return l.rollbackIndex(receiptData)
}

// ExecDelLocal_Draw rollback
func (l *LuckyBet) ExecDelLocal_Draw(payload *pty.LuckyBetDraw, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return l.rollbackIndex(receiptData)
}

// ExecDelLocal_Fulfill rollback
func (l *LuckyBet) ExecDelLocal_Fulfill(payload *pty.LuckyBetFulfill, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return l.rollbackIndex(receiptData)
}

// ExecDelLocal_Settle rollback
func (l *LuckyBet) ExecDelLocal_Settle(payload *pty.LuckyBetSettle, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return l.rollbackIndex(receiptData)
}
