// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"
	pty "github.com/game33/luckybet/types"
)

func record(gameID, index int64) []byte {
	return types.Encode(&pty.LuckyBetRecord{GameId: gameID, Index: index})
}

// updateIndex maintain the status and banker localdb indexes from the status
// receipt logs of one tx
func (l *LuckyBet) updateIndex(receiptData *types.ReceiptData) (*types.LocalDBSet, error) {
	var set types.LocalDBSet
	for _, item := range receiptData.Logs {
		if item.Ty != pty.TyLogLuckyBetStatus {
			continue
		}
		var status pty.ReceiptLuckyBetStatus
		if err := types.Decode(item.Log, &status); err != nil {
			return nil, err
		}
		if status.PrevStatus == pty.LuckyBetStatusInit {
			// creation: the stable all-games rows are written once
			set.KV = append(set.KV, &types.KeyValue{
				Key: calcLuckyBetAllKey(status.Index), Value: record(status.GameId, status.Index)})
			set.KV = append(set.KV, &types.KeyValue{
				Key: calcLuckyBetBankerAllKey(status.Banker, status.Index), Value: record(status.GameId, status.Index)})
		} else {
			set.KV = append(set.KV, &types.KeyValue{
				Key: calcLuckyBetStatusKey(status.PrevStatus, status.PrevIndex), Value: nil})
			set.KV = append(set.KV, &types.KeyValue{
				Key: calcLuckyBetBankerStatusKey(status.Banker, status.PrevStatus, status.PrevIndex), Value: nil})
		}
		set.KV = append(set.KV, &types.KeyValue{
			Key: calcLuckyBetStatusKey(status.Status, status.Index), Value: record(status.GameId, status.Index)})
		set.KV = append(set.KV, &types.KeyValue{
			Key: calcLuckyBetBankerStatusKey(status.Banker, status.Status, status.Index), Value: record(status.GameId, status.Index)})
	}
	return &set, nil
}

// ExecLocal_Start index the new game
func (l *LuckyBet) ExecLocal_Start(payload *pty.LuckyBetStart, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return l.updateIndex(receiptData)
}

// ExecLocal_Draw move the game between status indexes
func (l *LuckyBet) ExecLocal_Draw(payload *pty.LuckyBetDraw, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return l.updateIndex(receiptData)
}

// ExecLocal_Fulfill move the game between status indexes
func (l *LuckyBet) ExecLocal_Fulfill(payload *pty.LuckyBetFulfill, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return l.updateIndex(receiptData)
}

// ExecLocal_Settle move the game between status indexes
func (l *LuckyBet) ExecLocal_Settle(payload *pty.LuckyBetSettle, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return l.updateIndex(receiptData)
}
