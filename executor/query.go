// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"

	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/types"
	pty "github.com/game33/luckybet/types"
)

// liveStatuses games that still hold player money
var liveStatuses = []int32{pty.LuckyBetStatusOpen, pty.LuckyBetStatusDrawing, pty.LuckyBetStatusSettling}

func (l *LuckyBet) listRecords(prefix []byte, primary []byte, count int32) ([]*pty.LuckyBetRecord, error) {
	values, err := l.GetLocalDB().List(prefix, primary, count, dbm.ListDESC)
	if err != nil {
		if err == types.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	var recs []*pty.LuckyBetRecord
	for _, value := range values {
		var rec pty.LuckyBetRecord
		if err := types.Decode(value, &rec); err != nil {
			return nil, err
		}
		recs = append(recs, &rec)
	}
	return recs, nil
}

func (l *LuckyBet) listGames(in *pty.ReqLuckyBetGameList) (types.Message, error) {
	if in == nil {
		return nil, types.ErrInvalidParam
	}
	if in.Count <= 0 || in.Count >= pty.MaxListCount {
		return nil, types.ErrInvalidParam
	}
	var recs []*pty.LuckyBetRecord
	if in.OnlyLive {
		for _, status := range liveStatuses {
			var prefix, primary []byte
			if in.Addr != "" {
				prefix = calcLuckyBetBankerStatusPrefix(in.Addr, status)
				if in.Index > 0 {
					primary = calcLuckyBetBankerStatusKey(in.Addr, status, in.Index)
				}
			} else {
				prefix = calcLuckyBetStatusPrefix(status)
				if in.Index > 0 {
					primary = calcLuckyBetStatusKey(status, in.Index)
				}
			}
			part, err := l.listRecords(prefix, primary, in.Count)
			if err != nil {
				return nil, err
			}
			recs = append(recs, part...)
		}
		sort.Slice(recs, func(i, j int) bool { return recs[i].Index > recs[j].Index })
		if int32(len(recs)) > in.Count {
			recs = recs[:in.Count]
		}
	} else {
		var prefix, primary []byte
		if in.Addr != "" {
			prefix = calcLuckyBetBankerAllPrefix(in.Addr)
			if in.Index > 0 {
				primary = calcLuckyBetBankerAllKey(in.Addr, in.Index)
			}
		} else {
			prefix = calcLuckyBetAllPrefix()
			if in.Index > 0 {
				primary = calcLuckyBetAllKey(in.Index)
			}
		}
		var err error
		recs, err = l.listRecords(prefix, primary, in.Count)
		if err != nil {
			return nil, err
		}
	}
	reply := &pty.ReplyLuckyBetGameList{}
	for _, rec := range recs {
		game, err := readGame(l.GetStateDB(), rec.GameId)
		if err != nil {
			return nil, err
		}
		reply.Games = append(reply.Games, game)
	}
	return reply, nil
}

// Query_GetBasicGameInfo unknown ids come back as a never-opened game
func (l *LuckyBet) Query_GetBasicGameInfo(in *pty.ReqLuckyBetGameInfo) (types.Message, error) {
	if in == nil {
		return nil, types.ErrInvalidParam
	}
	return readGame(l.GetStateDB(), in.GameId)
}

// Query_GetGames list games most recent first
func (l *LuckyBet) Query_GetGames(in *pty.ReqLuckyBetGameList) (types.Message, error) {
	return l.listGames(in)
}

// Query_GetBankerGames list the games a banker opened
func (l *LuckyBet) Query_GetBankerGames(in *pty.ReqLuckyBetGameList) (types.Message, error) {
	if in == nil || in.Addr == "" {
		return nil, types.ErrInvalidParam
	}
	return l.listGames(in)
}

// Query_GetPlayerBalance withdrawable fund credit of an address
func (l *LuckyBet) Query_GetPlayerBalance(in *pty.ReqLuckyBetAddr) (types.Message, error) {
	if in == nil || in.Addr == "" {
		return nil, types.ErrInvalidParam
	}
	fund, err := readFund(l.GetStateDB(), in.Addr)
	if err != nil {
		return nil, err
	}
	return &pty.ReplyLuckyBetBalance{Balance: fund.Balance}, nil
}

// Query_GetPlayerGameAward award a player can claim; zero before the game closes
func (l *LuckyBet) Query_GetPlayerGameAward(in *pty.ReqLuckyBetPlayerGame) (types.Message, error) {
	if in == nil || in.Addr == "" {
		return nil, types.ErrInvalidParam
	}
	game, err := readGame(l.GetStateDB(), in.GameId)
	if err != nil {
		return nil, err
	}
	player := findPlayer(game, in.Addr)
	reply := &pty.ReplyLuckyBetAward{Award: playerAward(game, player)}
	if player != nil {
		reply.Withdrawn = player.Withdrawn
	}
	return reply, nil
}

// Query_GetPlayerNumberBetCount bets a player placed on one index
func (l *LuckyBet) Query_GetPlayerNumberBetCount(in *pty.ReqLuckyBetNumber) (types.Message, error) {
	if in == nil || in.Addr == "" {
		return nil, types.ErrInvalidParam
	}
	game, err := readGame(l.GetStateDB(), in.GameId)
	if err != nil {
		return nil, err
	}
	if in.NumberIndex < 0 || in.NumberIndex >= int64(len(game.LuckyNumbers)) {
		return nil, pty.ErrInvalidIndex
	}
	player := findPlayer(game, in.Addr)
	if player == nil {
		return &pty.ReplyLuckyBetCount{}, nil
	}
	return &pty.ReplyLuckyBetCount{Count: player.NumberBets[in.NumberIndex]}, nil
}

// Query_GetNumberBetCount total bets on one index
func (l *LuckyBet) Query_GetNumberBetCount(in *pty.ReqLuckyBetNumber) (types.Message, error) {
	if in == nil {
		return nil, types.ErrInvalidParam
	}
	game, err := readGame(l.GetStateDB(), in.GameId)
	if err != nil {
		return nil, err
	}
	if in.NumberIndex < 0 || in.NumberIndex >= int64(len(game.LuckyNumbers)) {
		return nil, pty.ErrInvalidIndex
	}
	return &pty.ReplyLuckyBetCount{Count: game.NumberBetCounts[in.NumberIndex]}, nil
}

// Query_GetBankerFee fee currently charged for opening a game
func (l *LuckyBet) Query_GetBankerFee(in *types.ReqNil) (types.Message, error) {
	fee, err := readBankerFee(l.GetStateDB())
	if err != nil {
		return nil, err
	}
	return &pty.ReplyLuckyBetBalance{Balance: fee}, nil
}

// Query_GetOwner owner role and its accrued revenue
func (l *LuckyBet) Query_GetOwner(in *types.ReqNil) (types.Message, error) {
	return readOwnerSlot(l.GetStateDB())
}

// Query_GetVrfConfig stored oracle parameters
func (l *LuckyBet) Query_GetVrfConfig(in *types.ReqNil) (types.Message, error) {
	return readVrfConfig(l.GetStateDB())
}
