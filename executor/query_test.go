// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"
	pty "github.com/game33/luckybet/types"
)

// closeEmptyGame draw a game nobody joined, which settles it in refund mode
func (s *luckyBetTestSuite) closeEmptyGame(gameID int64) {
	s.blocktime += 100
	s.execOK(privBanker, drawAction(gameID))
	s.Require().Equal(pty.LuckyBetStatusClosed, s.game(gameID).Status)
}

func (s *luckyBetTestSuite) TestQueryGames() {
	game1 := s.openGame(2, 10, 100)
	s.closeEmptyGame(game1)
	game2 := s.openGame(2, 10, 100)

	// count outside (0, MaxListCount) is rejected
	_, err := s.exec.Query_GetGames(&pty.ReqLuckyBetGameList{Count: 0})
	s.Require().Equal(types.ErrInvalidParam, err)
	_, err = s.exec.Query_GetGames(&pty.ReqLuckyBetGameList{Count: pty.MaxListCount})
	s.Require().Equal(types.ErrInvalidParam, err)

	// most recent first
	msg, err := s.exec.Query_GetGames(&pty.ReqLuckyBetGameList{Count: 10})
	s.Require().NoError(err)
	games := msg.(*pty.ReplyLuckyBetGameList).Games
	s.Require().Len(games, 2)
	s.Require().Equal(game2, games[0].GameId)
	s.Require().Equal(game1, games[1].GameId)

	// a settled game drops out of the live listing
	msg, err = s.exec.Query_GetGames(&pty.ReqLuckyBetGameList{Count: 10, OnlyLive: true})
	s.Require().NoError(err)
	games = msg.(*pty.ReplyLuckyBetGameList).Games
	s.Require().Len(games, 1)
	s.Require().Equal(game2, games[0].GameId)

	// banker filter
	msg, err = s.exec.Query_GetBankerGames(&pty.ReqLuckyBetGameList{Addr: s.addrBanker, Count: 10})
	s.Require().NoError(err)
	s.Require().Len(msg.(*pty.ReplyLuckyBetGameList).Games, 2)
	msg, err = s.exec.Query_GetBankerGames(&pty.ReqLuckyBetGameList{Addr: s.addrA, Count: 10})
	s.Require().NoError(err)
	s.Require().Empty(msg.(*pty.ReplyLuckyBetGameList).Games)
	_, err = s.exec.Query_GetBankerGames(&pty.ReqLuckyBetGameList{Count: 10})
	s.Require().Equal(types.ErrInvalidParam, err)

	// pagination by the listing row index
	msg, err = s.exec.Query_GetGames(&pty.ReqLuckyBetGameList{Count: 1})
	s.Require().NoError(err)
	games = msg.(*pty.ReplyLuckyBetGameList).Games
	s.Require().Len(games, 1)
	s.Require().Equal(game2, games[0].GameId)
	msg, err = s.exec.Query_GetGames(&pty.ReqLuckyBetGameList{Count: 1, Index: games[0].Index})
	s.Require().NoError(err)
	games = msg.(*pty.ReplyLuckyBetGameList).Games
	s.Require().Len(games, 1)
	s.Require().Equal(game1, games[0].GameId)

	// the cursor stays valid after the listed game settles
	s.closeEmptyGame(game2)
	msg, err = s.exec.Query_GetGames(&pty.ReqLuckyBetGameList{Count: 1})
	s.Require().NoError(err)
	games = msg.(*pty.ReplyLuckyBetGameList).Games
	s.Require().Len(games, 1)
	s.Require().Equal(game2, games[0].GameId)
	msg, err = s.exec.Query_GetGames(&pty.ReqLuckyBetGameList{Count: 1, Index: games[0].Index})
	s.Require().NoError(err)
	games = msg.(*pty.ReplyLuckyBetGameList).Games
	s.Require().Len(games, 1)
	s.Require().Equal(game1, games[0].GameId)
}

func (s *luckyBetTestSuite) TestQueryGameInfo() {
	gameID := s.openGame(2, 10, 100)
	msg, err := s.exec.Query_GetBasicGameInfo(&pty.ReqLuckyBetGameInfo{GameId: gameID})
	s.Require().NoError(err)
	s.Require().Equal(pty.LuckyBetStatusOpen, msg.(*pty.LuckyBetGame).Status)

	// unknown ids come back as a never-opened game
	msg, err = s.exec.Query_GetBasicGameInfo(&pty.ReqLuckyBetGameInfo{GameId: 42})
	s.Require().NoError(err)
	game := msg.(*pty.LuckyBetGame)
	s.Require().Equal(pty.LuckyBetStatusInit, game.Status)
	s.Require().Equal(int64(42), game.GameId)
}

func (s *luckyBetTestSuite) TestQueryCountsAndAward() {
	gameID := s.openGame(2, 10, 100)
	s.execOK(privA, betAction(gameID, 1, betAmount+betFee))
	s.execOK(privA, betAction(gameID, 1, betAmount+betFee))
	s.execOK(privB, betAction(gameID, 0, betAmount+betFee))
	s.execOK(privB, betAction(gameID, 2, betAmount+betFee))

	msg, err := s.exec.Query_GetNumberBetCount(&pty.ReqLuckyBetNumber{GameId: gameID, NumberIndex: 1})
	s.Require().NoError(err)
	s.Require().Equal(int64(2), msg.(*pty.ReplyLuckyBetCount).Count)

	msg, err = s.exec.Query_GetPlayerNumberBetCount(&pty.ReqLuckyBetNumber{GameId: gameID, NumberIndex: 1, Addr: s.addrB})
	s.Require().NoError(err)
	s.Require().Zero(msg.(*pty.ReplyLuckyBetCount).Count)

	_, err = s.exec.Query_GetNumberBetCount(&pty.ReqLuckyBetNumber{GameId: gameID, NumberIndex: 5})
	s.Require().Equal(pty.ErrInvalidIndex, err)

	// no award before the game closes
	msg, err = s.exec.Query_GetPlayerGameAward(&pty.ReqLuckyBetPlayerGame{GameId: gameID, Addr: s.addrA})
	s.Require().NoError(err)
	s.Require().Zero(msg.(*pty.ReplyLuckyBetAward).Award)

	s.blocktime += 100
	receipt := s.execOK(privBanker, drawAction(gameID))
	s.execOK(privOracle, fulfillAction(s.requestID(receipt), 10)) // 10 mod 3 == 1
	s.execOK(privBanker, settleAction(gameID))

	winPerBet := betAmount * 4 / 2
	msg, err = s.exec.Query_GetPlayerGameAward(&pty.ReqLuckyBetPlayerGame{GameId: gameID, Addr: s.addrA})
	s.Require().NoError(err)
	award := msg.(*pty.ReplyLuckyBetAward)
	s.Require().Equal(2*winPerBet, award.Award)
	s.Require().False(award.Withdrawn)

	s.execOK(privA, withdrawAwardAction(gameID))
	msg, err = s.exec.Query_GetPlayerGameAward(&pty.ReqLuckyBetPlayerGame{GameId: gameID, Addr: s.addrA})
	s.Require().NoError(err)
	s.Require().True(msg.(*pty.ReplyLuckyBetAward).Withdrawn)
}

func (s *luckyBetTestSuite) TestQueryTreasuryAndConfig() {
	msg, err := s.exec.Query_GetBankerFee(&types.ReqNil{})
	s.Require().NoError(err)
	s.Require().Equal(int64(pty.MaxLuckyBetAmount), msg.(*pty.ReplyLuckyBetBalance).Balance)

	s.execOK(privOwner, setBankerFeeAction(startFee))
	msg, err = s.exec.Query_GetBankerFee(&types.ReqNil{})
	s.Require().NoError(err)
	s.Require().Equal(int64(startFee), msg.(*pty.ReplyLuckyBetBalance).Balance)

	s.execOK(privA, depositAction(3 * types.DefaultCoinPrecision))
	msg, err = s.exec.Query_GetPlayerBalance(&pty.ReqLuckyBetAddr{Addr: s.addrA})
	s.Require().NoError(err)
	s.Require().Equal(3*types.DefaultCoinPrecision, msg.(*pty.ReplyLuckyBetBalance).Balance)

	msg, err = s.exec.Query_GetOwner(&types.ReqNil{})
	s.Require().NoError(err)
	s.Require().Equal(s.addrOwner, msg.(*pty.LuckyBetOwnerSlot).Addr)

	s.execOK(privOwner, vrfConfigAction(&pty.LuckyBetVrfConfig{OracleAddr: s.addrOracle}))
	msg, err = s.exec.Query_GetVrfConfig(&types.ReqNil{})
	s.Require().NoError(err)
	s.Require().Equal(s.addrOracle, msg.(*pty.LuckyBetVrfConfig).OracleAddr)
}
