// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"

	"github.com/33cn/chain33/types"
)

func init() {
	types.AllowUserExec = append(types.AllowUserExec, []byte(LuckyBetX))
	types.RegFork(LuckyBetX, InitFork)
	types.RegExec(LuckyBetX, InitExecutor)
}

// InitFork init fork
func InitFork(cfg *types.Chain33Config) {
	cfg.RegisterDappFork(LuckyBetX, "Enable", 0)
}

// InitExecutor init executor type
func InitExecutor(cfg *types.Chain33Config) {
	types.RegistorExecutor(LuckyBetX, NewType(cfg))
}

// LuckyBetType executor type of the luckybet dapp
type LuckyBetType struct {
	types.ExecTypeBase
}

// NewType create executor type
func NewType(cfg *types.Chain33Config) *LuckyBetType {
	c := &LuckyBetType{}
	c.SetChild(c)
	c.SetConfig(cfg)
	return c
}

// GetName get name
func (t *LuckyBetType) GetName() string {
	return LuckyBetX
}

// GetPayload get payload
func (t *LuckyBetType) GetPayload() types.Message {
	return &LuckyBetAction{}
}

// GetTypeMap get action type map
func (t *LuckyBetType) GetTypeMap() map[string]int32 {
	return map[string]int32{
		"Start":           LuckyBetActionStart,
		"Bet":             LuckyBetActionBet,
		"Deposit":         LuckyBetActionDeposit,
		"Draw":            LuckyBetActionDraw,
		"Redraw":          LuckyBetActionRedraw,
		"Fulfill":         LuckyBetActionFulfill,
		"Settle":          LuckyBetActionSettle,
		"WithdrawAward":   LuckyBetActionWithdrawAward,
		"WithdrawBalance": LuckyBetActionWithdrawBalance,
		"SetBankerFee":    LuckyBetActionSetBankerFee,
		"SetOwner":        LuckyBetActionSetOwner,
		"VrfConfig":       LuckyBetActionVrfConfig,
	}
}

// GetLogMap get receipt log map
func (t *LuckyBetType) GetLogMap() map[int64]*types.LogInfo {
	return map[int64]*types.LogInfo{
		TyLogLuckyBetStatus:    {Ty: reflect.TypeOf(ReceiptLuckyBetStatus{}), Name: "LogLuckyBetStatus"},
		TyLogLuckyBetNumber:    {Ty: reflect.TypeOf(ReceiptLuckyBetNumber{}), Name: "LogLuckyBetNumber"},
		TyLogLuckyBetNumberWon: {Ty: reflect.TypeOf(ReceiptLuckyBetNumberWon{}), Name: "LogLuckyBetNumberWon"},
		TyLogLuckyBetRequest:   {Ty: reflect.TypeOf(ReceiptLuckyBetRequest{}), Name: "LogLuckyBetRequest"},
	}
}
