// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/chain33/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeMapMatchesActions(t *testing.T) {
	cfg := types.NewChain33Config(types.GetDefaultCfgstring())
	ty := NewType(cfg)
	tm := ty.GetTypeMap()
	assert.Len(t, tm, 12)
	assert.Equal(t, int32(LuckyBetActionStart), tm["Start"])
	assert.Equal(t, int32(LuckyBetActionFulfill), tm["Fulfill"])
	assert.Equal(t, int32(LuckyBetActionVrfConfig), tm["VrfConfig"])

	lm := ty.GetLogMap()
	require.Contains(t, lm, int64(TyLogLuckyBetStatus))
	require.Contains(t, lm, int64(TyLogLuckyBetRequest))
}

func TestActionRoundTrip(t *testing.T) {
	action := &LuckyBetAction{
		Ty: LuckyBetActionStart,
		Value: &LuckyBetAction_Start{Start: &LuckyBetStart{
			LuckyNumbers:   []int64{2, 5, 8},
			BetAmount:      5e8,
			BetFee:         1e8,
			MinPlayerCount: 2,
			MaxPlayerCount: 10,
			Duration:       3600,
			Value:          10e8,
		}},
	}
	data := types.Encode(action)
	var decoded LuckyBetAction
	require.NoError(t, types.Decode(data, &decoded))
	require.NotNil(t, decoded.GetStart())
	assert.Equal(t, []int64{2, 5, 8}, decoded.GetStart().LuckyNumbers)
	assert.Equal(t, int64(10e8), decoded.GetStart().Value)
	assert.Nil(t, decoded.GetBet())
}

func TestGameRoundTrip(t *testing.T) {
	game := &LuckyBetGame{
		GameId:          3,
		Status:          LuckyBetStatusOpen,
		Banker:          "banker",
		LuckyNumbers:    []int64{1, 2, 3},
		NumberBetCounts: []int64{0, 2, 1},
		Players: []*LuckyBetPlayer{
			{Addr: "a", NumberBets: []int64{0, 2, 0}, TotalBets: 2},
			{Addr: "b", NumberBets: []int64{0, 0, 1}, TotalBets: 1},
		},
		TotalBetCount: 3,
		PlayerCount:   2,
	}
	data := types.Encode(game)
	var decoded LuckyBetGame
	require.NoError(t, types.Decode(data, &decoded))
	assert.Equal(t, int64(3), decoded.GameId)
	require.Len(t, decoded.Players, 2)
	assert.Equal(t, "a", decoded.Players[0].Addr)
	assert.Equal(t, []int64{0, 2, 0}, decoded.Players[0].NumberBets)
}
