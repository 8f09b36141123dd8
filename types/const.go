// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "github.com/33cn/chain33/types"

// LuckyBetX executor name
var LuckyBetX = "luckybet"

// luckybet action types
const (
	LuckyBetActionStart = iota + 1
	LuckyBetActionBet
	LuckyBetActionDeposit
	LuckyBetActionDraw
	LuckyBetActionRedraw
	LuckyBetActionFulfill
	LuckyBetActionSettle
	LuckyBetActionWithdrawAward
	LuckyBetActionWithdrawBalance
	LuckyBetActionSetBankerFee
	LuckyBetActionSetOwner
	LuckyBetActionVrfConfig
)

// luckybet receipt log types
const (
	TyLogLuckyBetStatus    = 871
	TyLogLuckyBetNumber    = 872
	TyLogLuckyBetNumberWon = 873
	TyLogLuckyBetRequest   = 874
)

// game status
const (
	LuckyBetStatusInit = int32(iota)
	LuckyBetStatusOpen
	LuckyBetStatusDrawing
	LuckyBetStatusSettling
	LuckyBetStatusClosed
)

// MaxLuckyBetAmount upper bound, in atomic units, for bet amounts and fees
const MaxLuckyBetAmount = types.MaxCoin * types.DefaultCoinPrecision

// MaxGameDuration longest allowed betting window of a single game
const MaxGameDuration = 7 * 24 * 3600

// MaxPlayerBound upper bound accepted for maxPlayerCount
const MaxPlayerBound = 1000

// MaxListCount list queries reject count outside (0, MaxListCount)
const MaxListCount = 1000

// query function names
const (
	FuncNameGetBasicGameInfo        = "GetBasicGameInfo"
	FuncNameGetGames                = "GetGames"
	FuncNameGetBankerGames          = "GetBankerGames"
	FuncNameGetPlayerBalance        = "GetPlayerBalance"
	FuncNameGetPlayerGameAward      = "GetPlayerGameAward"
	FuncNameGetPlayerNumberBetCount = "GetPlayerNumberBetCount"
	FuncNameGetNumberBetCount       = "GetNumberBetCount"
	FuncNameGetBankerFee            = "GetBankerFee"
	FuncNameGetOwner                = "GetOwner"
	FuncNameGetVrfConfig            = "GetVrfConfig"
)
