// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"
	"testing"

	"github.com/33cn/chain33/account"
	"github.com/33cn/chain33/client/mocks"
	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/common/address"
	"github.com/33cn/chain33/common/crypto"
	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	"github.com/33cn/chain33/util"
	pty "github.com/game33/luckybet/types"
	"github.com/stretchr/testify/suite"
)

var (
	privOwner  = getprivkey("CC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")
	privBanker = getprivkey("BC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")
	privOracle = getprivkey("EC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")
	privA      = getprivkey("1257d8692ef7fe13c68b65d6a52f03933db2fa5ce8faf210b5b8b80c721ced01")
	privB      = getprivkey("2257d8692ef7fe13c68b65d6a52f03933db2fa5ce8faf210b5b8b80c721ced01")
	privC      = getprivkey("3257d8692ef7fe13c68b65d6a52f03933db2fa5ce8faf210b5b8b80c721ced01")
)

func getprivkey(key string) crypto.PrivKey {
	cr, err := crypto.New(types.GetSignName("", types.SECP256K1))
	if err != nil {
		panic(err)
	}
	bkey, err := common.FromHex(key)
	if err != nil {
		panic(err)
	}
	priv, err := cr.PrivKeyFromBytes(bkey)
	if err != nil {
		panic(err)
	}
	return priv
}

func addrOf(priv crypto.PrivKey) string {
	return address.PubKeyToAddress(priv.PubKey().Bytes()).String()
}

type luckyBetTestSuite struct {
	suite.Suite
	cfg      *types.Chain33Config
	sdb      dbm.DB
	ldbDir   string
	ldb      dbm.DB
	kvdb     dbm.KVDB
	exec     *LuckyBet
	acc      *account.DB
	execAddr string

	addrOwner  string
	addrBanker string
	addrOracle string
	addrA      string
	addrB      string
	addrC      string

	height    int64
	blocktime int64
	nonce     int64
	txIndex   int
}

func TestLuckyBetSuite(t *testing.T) {
	suite.Run(t, new(luckyBetTestSuite))
}

func (s *luckyBetTestSuite) SetupSuite() {
	s.addrOwner = addrOf(privOwner)
	s.addrBanker = addrOf(privBanker)
	s.addrOracle = addrOf(privOracle)
	s.addrA = addrOf(privA)
	s.addrB = addrOf(privB)
	s.addrC = addrOf(privC)
	s.execAddr = dapp.ExecAddress(pty.LuckyBetX)

	s.cfg = types.NewChain33Config(types.GetDefaultCfgstring())
	Init(pty.LuckyBetX, s.cfg, []byte(fmt.Sprintf(`{"ownerAddr":"%s"}`, s.addrOwner)))
}

func (s *luckyBetTestSuite) SetupTest() {
	sdb, err := dbm.NewGoMemDB("luckybetTest", "", 128)
	s.Require().NoError(err)
	s.sdb = sdb
	s.ldbDir, s.ldb, s.kvdb = util.CreateTestDB()

	api := new(mocks.QueueProtocolAPI)
	api.On("GetConfig").Return(s.cfg)

	exec := &LuckyBet{}
	exec.SetChild(exec)
	exec.SetExecutorType(types.LoadExecutorType(driverName))
	exec.SetAPI(api)
	exec.SetStateDB(s.sdb)
	exec.SetLocalDB(s.kvdb)
	s.exec = exec

	s.height = 1
	s.blocktime = 1000000
	s.txIndex = 0

	s.acc = account.NewCoinsAccount(s.cfg)
	s.acc.SetDB(s.sdb)
	for _, addr := range []string{s.addrOwner, s.addrBanker, s.addrOracle, s.addrA, s.addrB, s.addrC} {
		s.acc.SaveExecAccount(s.execAddr, &types.Account{Addr: addr, Balance: 10000 * types.DefaultCoinPrecision})
	}
}

func (s *luckyBetTestSuite) TearDownTest() {
	util.CloseTestDB(s.ldbDir, s.ldb)
}

func (s *luckyBetTestSuite) signedTx(priv crypto.PrivKey, action *pty.LuckyBetAction) *types.Transaction {
	s.nonce++
	tx := &types.Transaction{
		Execer:  []byte(pty.LuckyBetX),
		Payload: types.Encode(action),
		Fee:     1e6,
		Nonce:   s.nonce,
		To:      s.execAddr,
	}
	tx.Sign(types.SECP256K1, priv)
	return tx
}

// execOK run a tx through Exec and ExecLocal, applying both kv sets
func (s *luckyBetTestSuite) execOK(priv crypto.PrivKey, action *pty.LuckyBetAction) *types.Receipt {
	tx := s.signedTx(priv, action)
	s.exec.SetEnv(s.height, s.blocktime, 1539918074)
	receipt, err := s.exec.Exec(tx, s.txIndex)
	s.Require().NoError(err)
	s.Require().NotNil(receipt)
	s.Require().Equal(int32(types.ExecOk), receipt.Ty)
	util.SaveKVList(s.sdb, receipt.KV)
	set, err := s.exec.ExecLocal(tx, &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}, s.txIndex)
	s.Require().NoError(err)
	if set != nil {
		util.SaveKVList(s.ldb, set.KV)
	}
	s.txIndex++
	return receipt
}

func (s *luckyBetTestSuite) execFail(priv crypto.PrivKey, action *pty.LuckyBetAction, expect error) {
	tx := s.signedTx(priv, action)
	s.exec.SetEnv(s.height, s.blocktime, 1539918074)
	receipt, err := s.exec.Exec(tx, s.txIndex)
	s.txIndex++
	s.Require().Nil(receipt)
	s.Require().Equal(expect, err)
}

func startAction(numbers []int64, betAmount, betFee, min, max, duration, value int64) *pty.LuckyBetAction {
	return &pty.LuckyBetAction{
		Ty: pty.LuckyBetActionStart,
		Value: &pty.LuckyBetAction_Start{Start: &pty.LuckyBetStart{
			LuckyNumbers:   numbers,
			BetAmount:      betAmount,
			BetFee:         betFee,
			MinPlayerCount: min,
			MaxPlayerCount: max,
			Duration:       duration,
			Value:          value,
		}},
	}
}

func betAction(gameID, index, value int64) *pty.LuckyBetAction {
	return &pty.LuckyBetAction{
		Ty:    pty.LuckyBetActionBet,
		Value: &pty.LuckyBetAction_Bet{Bet: &pty.LuckyBetBet{GameId: gameID, NumberIndex: index, Value: value}},
	}
}

func depositAction(value int64) *pty.LuckyBetAction {
	return &pty.LuckyBetAction{
		Ty:    pty.LuckyBetActionDeposit,
		Value: &pty.LuckyBetAction_Deposit{Deposit: &pty.LuckyBetDeposit{Value: value}},
	}
}

func drawAction(gameID int64) *pty.LuckyBetAction {
	return &pty.LuckyBetAction{
		Ty:    pty.LuckyBetActionDraw,
		Value: &pty.LuckyBetAction_Draw{Draw: &pty.LuckyBetDraw{GameId: gameID}},
	}
}

func redrawAction(gameID int64) *pty.LuckyBetAction {
	return &pty.LuckyBetAction{
		Ty:    pty.LuckyBetActionRedraw,
		Value: &pty.LuckyBetAction_Redraw{Redraw: &pty.LuckyBetRedraw{GameId: gameID}},
	}
}

func fulfillAction(requestID string, words ...int64) *pty.LuckyBetAction {
	return &pty.LuckyBetAction{
		Ty:    pty.LuckyBetActionFulfill,
		Value: &pty.LuckyBetAction_Fulfill{Fulfill: &pty.LuckyBetFulfill{RequestId: requestID, RandomWords: words}},
	}
}

func settleAction(gameID int64) *pty.LuckyBetAction {
	return &pty.LuckyBetAction{
		Ty:    pty.LuckyBetActionSettle,
		Value: &pty.LuckyBetAction_Settle{Settle: &pty.LuckyBetSettle{GameId: gameID}},
	}
}

func withdrawAwardAction(gameID int64) *pty.LuckyBetAction {
	return &pty.LuckyBetAction{
		Ty:    pty.LuckyBetActionWithdrawAward,
		Value: &pty.LuckyBetAction_WithdrawAward{WithdrawAward: &pty.LuckyBetWithdrawAward{GameId: gameID}},
	}
}

func withdrawBalanceAction() *pty.LuckyBetAction {
	return &pty.LuckyBetAction{
		Ty:    pty.LuckyBetActionWithdrawBalance,
		Value: &pty.LuckyBetAction_WithdrawBalance{WithdrawBalance: &pty.LuckyBetWithdrawBalance{}},
	}
}

func setBankerFeeAction(amount int64) *pty.LuckyBetAction {
	return &pty.LuckyBetAction{
		Ty:    pty.LuckyBetActionSetBankerFee,
		Value: &pty.LuckyBetAction_SetBankerFee{SetBankerFee: &pty.LuckyBetSetBankerFee{Amount: amount}},
	}
}

func setOwnerAction(newOwner string) *pty.LuckyBetAction {
	return &pty.LuckyBetAction{
		Ty:    pty.LuckyBetActionSetOwner,
		Value: &pty.LuckyBetAction_SetOwner{SetOwner: &pty.LuckyBetSetOwner{NewOwner: newOwner}},
	}
}

func vrfConfigAction(cfg *pty.LuckyBetVrfConfig) *pty.LuckyBetAction {
	return &pty.LuckyBetAction{
		Ty:    pty.LuckyBetActionVrfConfig,
		Value: &pty.LuckyBetAction_VrfConfig{VrfConfig: cfg},
	}
}

func (s *luckyBetTestSuite) game(gameID int64) *pty.LuckyBetGame {
	game, err := readGame(s.sdb, gameID)
	s.Require().NoError(err)
	return game
}

func (s *luckyBetTestSuite) execBalance(addr string) int64 {
	return s.acc.LoadExecAccount(addr, s.execAddr).Balance
}

func (s *luckyBetTestSuite) requestID(receipt *types.Receipt) string {
	for _, item := range receipt.Logs {
		if item.Ty == pty.TyLogLuckyBetRequest {
			var req pty.ReceiptLuckyBetRequest
			s.Require().NoError(types.Decode(item.Log, &req))
			return req.RequestId
		}
	}
	s.Require().FailNow("no request log")
	return ""
}

const (
	betAmount = 5 * types.DefaultCoinPrecision
	betFee    = 1 * types.DefaultCoinPrecision
	startFee  = 10 * types.DefaultCoinPrecision
)

// openGame sets the banker fee, configures the oracle and opens a standard
// three-number game
func (s *luckyBetTestSuite) openGame(min, max, duration int64) int64 {
	s.execOK(privOwner, setBankerFeeAction(startFee))
	s.execOK(privOwner, vrfConfigAction(&pty.LuckyBetVrfConfig{
		SubscriptionId:       7,
		KeyHash:              "0xabcdef",
		RequestConfirmations: 3,
		CallbackGasLimit:     200000,
		OracleAddr:           s.addrOracle,
	}))
	receipt := s.execOK(privBanker, startAction([]int64{2, 5, 8}, betAmount, betFee, min, max, duration, startFee))
	var status pty.ReceiptLuckyBetStatus
	for _, item := range receipt.Logs {
		if item.Ty == pty.TyLogLuckyBetStatus {
			s.Require().NoError(types.Decode(item.Log, &status))
		}
	}
	s.Require().Equal(pty.LuckyBetStatusOpen, status.Status)
	return status.GameId
}

func (s *luckyBetTestSuite) TestStartValidation() {
	// the default fee is prohibitive until the owner lowers it
	s.execFail(privBanker, startAction([]int64{1, 2}, betAmount, betFee, 1, 10, 100, startFee), pty.ErrIncorrectAmount)

	s.execOK(privOwner, setBankerFeeAction(startFee))
	s.execFail(privBanker, startAction(nil, betAmount, betFee, 1, 10, 100, startFee), types.ErrInvalidParam)
	s.execFail(privBanker, startAction([]int64{3, 3}, betAmount, betFee, 1, 10, 100, startFee), types.ErrInvalidParam)
	s.execFail(privBanker, startAction([]int64{1, 2}, 0, betFee, 1, 10, 100, startFee), types.ErrInvalidParam)
	s.execFail(privBanker, startAction([]int64{1, 2}, betAmount, betFee, 5, 3, 100, startFee), types.ErrInvalidParam)
	s.execFail(privBanker, startAction([]int64{1, 2}, betAmount, betFee, 1, 10, 30*24*3600, startFee), types.ErrInvalidParam)
	// payment must settle the fee exactly
	s.execFail(privBanker, startAction([]int64{1, 2}, betAmount, betFee, 1, 10, 100, startFee-1), pty.ErrIncorrectAmount)
	s.execFail(privBanker, startAction([]int64{1, 2}, betAmount, betFee, 1, 10, 100, startFee+1), pty.ErrIncorrectAmount)

	receipt := s.execOK(privBanker, startAction([]int64{1, 2}, betAmount, betFee, 1, 10, 100, startFee))
	s.Require().NotEmpty(receipt.KV)
	game := s.game(1)
	s.Require().Equal(pty.LuckyBetStatusOpen, game.Status)
	s.Require().Equal(s.addrBanker, game.Banker)
	s.Require().Equal(s.blocktime+100, game.EndTime)

	// the opening fee accrues to the owner slot
	slot, err := readOwnerSlot(s.sdb)
	s.Require().NoError(err)
	s.Require().Equal(s.addrOwner, slot.Addr)
	s.Require().Equal(int64(startFee), slot.Balance)

	// amounts are bounded in atomic units, not coin units
	s.execOK(privBanker, startAction([]int64{4, 5}, 20*types.DefaultCoinPrecision, betFee, 1, 10, 100, startFee))
	s.Require().Equal(20*types.DefaultCoinPrecision, s.game(2).BetAmount)
	s.execFail(privBanker, startAction([]int64{4, 5}, pty.MaxLuckyBetAmount+1, betFee, 1, 10, 100, startFee), types.ErrInvalidParam)
}

func (s *luckyBetTestSuite) TestBetValidation() {
	gameID := s.openGame(2, 10, 100)

	s.execFail(privA, betAction(gameID+7, 0, betAmount+betFee), pty.ErrIncorrectStatus)
	s.execFail(privA, betAction(gameID, 3, betAmount+betFee), pty.ErrInvalidIndex)
	s.execFail(privA, betAction(gameID, -1, betAmount+betFee), pty.ErrInvalidIndex)
	s.execFail(privA, betAction(gameID, 0, betAmount+betFee-1), pty.ErrIncorrectAmount)
	s.execFail(privA, betAction(gameID, 0, betAmount+betFee+1), pty.ErrIncorrectAmount)

	s.execOK(privA, betAction(gameID, 0, betAmount+betFee))
	game := s.game(gameID)
	s.Require().Equal(int64(1), game.TotalBetCount)
	s.Require().Equal(int64(1), game.PlayerCount)
	s.Require().Equal([]int64{1, 0, 0}, game.NumberBetCounts)

	// a deposit plus a partial value settles exactly
	s.execOK(privB, depositAction(4*types.DefaultCoinPrecision))
	s.execOK(privB, betAction(gameID, 1, betAmount+betFee-4*types.DefaultCoinPrecision))
	game = s.game(gameID)
	s.Require().Equal(int64(2), game.PlayerCount)
	fund, err := readFund(s.sdb, s.addrB)
	s.Require().NoError(err)
	s.Require().Zero(fund.Balance)

	// the bet fee accrues to the banker immediately
	bankerFund, err := readFund(s.sdb, s.addrBanker)
	s.Require().NoError(err)
	s.Require().Equal(2*betFee, bankerFund.Balance)

	// bets after the window close
	s.blocktime += 100
	s.execFail(privA, betAction(gameID, 0, betAmount+betFee), pty.ErrIncorrectTiming)
}

func (s *luckyBetTestSuite) TestPlayerLimit() {
	gameID := s.openGame(1, 2, 100)
	s.execOK(privA, betAction(gameID, 0, betAmount+betFee))
	s.execOK(privB, betAction(gameID, 1, betAmount+betFee))
	// an existing player may keep betting
	s.execOK(privA, betAction(gameID, 2, betAmount+betFee))
	// a third participant may not join
	s.execFail(privC, betAction(gameID, 2, betAmount+betFee), pty.ErrReachPlayerLimit)
}

func (s *luckyBetTestSuite) TestDrawAndSettle() {
	gameID := s.openGame(2, 10, 100)

	// counts [1,3,1], five bets of three players
	s.execOK(privA, betAction(gameID, 0, betAmount+betFee))
	s.execOK(privA, betAction(gameID, 1, betAmount+betFee))
	s.execOK(privA, betAction(gameID, 1, betAmount+betFee))
	s.execOK(privB, betAction(gameID, 1, betAmount+betFee))
	s.execOK(privC, betAction(gameID, 2, betAmount+betFee))

	s.execFail(privBanker, drawAction(gameID), pty.ErrIncorrectTiming)
	s.blocktime += 100
	s.execFail(privA, drawAction(gameID), pty.ErrNotAuthorized)

	receipt := s.execOK(privBanker, drawAction(gameID))
	requestID := s.requestID(receipt)
	s.Require().Equal(pty.LuckyBetStatusDrawing, s.game(gameID).Status)
	s.execFail(privA, betAction(gameID, 0, betAmount+betFee), pty.ErrIncorrectStatus)

	// only the configured oracle may answer, and only a known request
	s.execFail(privA, fulfillAction(requestID, 7), pty.ErrNotAuthorized)
	s.execFail(privOracle, fulfillAction("0xdeadbeef", 7), pty.ErrVrfRequestNotFound)
	s.execOK(privOracle, fulfillAction(requestID, 7))
	game := s.game(gameID)
	s.Require().Equal(pty.LuckyBetStatusSettling, game.Status)
	s.Require().Equal(int64(7), game.RandomWord)

	// the request is consumed exactly once
	s.execFail(privOracle, fulfillAction(requestID, 9), pty.ErrVrfRequestNotFound)

	s.execFail(privA, settleAction(gameID), pty.ErrNotAuthorized)
	s.execOK(privBanker, settleAction(gameID))
	game = s.game(gameID)
	s.Require().Equal(pty.LuckyBetStatusClosed, game.Status)
	s.Require().Equal(int64(1), game.WinningIndex) // 7 mod 3
	winPerBet := betAmount * 5 / 3
	s.Require().Equal(winPerBet, game.WinAmountPerBet)

	// C lost, A holds two winning bets, B one
	s.execFail(privC, withdrawAwardAction(gameID), pty.ErrIncorrectAmount)
	before := s.execBalance(s.addrA)
	s.execOK(privA, withdrawAwardAction(gameID))
	s.Require().Equal(before+2*winPerBet, s.execBalance(s.addrA))
	s.execFail(privA, withdrawAwardAction(gameID), pty.ErrAlreadyWithdrew)
	before = s.execBalance(s.addrB)
	s.execOK(privB, withdrawAwardAction(gameID))
	s.Require().Equal(before+winPerBet, s.execBalance(s.addrB))

	// the banker collects the accrued bet fees
	before = s.execBalance(s.addrBanker)
	s.execOK(privBanker, withdrawBalanceAction())
	s.Require().Equal(before+5*betFee, s.execBalance(s.addrBanker))

	// the owner collects the opening fee
	before = s.execBalance(s.addrOwner)
	s.execOK(privOwner, withdrawBalanceAction())
	s.Require().Equal(before+startFee, s.execBalance(s.addrOwner))

	// the pool retains only the rounding residue of the pot
	residue := 5*betAmount - winPerBet*3
	s.Require().Equal(residue, s.execBalance(s.execAddr))
}

func (s *luckyBetTestSuite) TestRefundDraw() {
	gameID := s.openGame(2, 10, 100)

	// index 2 stays uncovered
	s.execOK(privA, betAction(gameID, 0, betAmount+betFee))
	s.execOK(privA, betAction(gameID, 0, betAmount+betFee))
	s.execOK(privB, betAction(gameID, 1, betAmount+betFee))
	s.blocktime += 100

	receipt := s.execOK(privBanker, drawAction(gameID))
	var statuses []int32
	var won *pty.ReceiptLuckyBetNumberWon
	for _, item := range receipt.Logs {
		switch item.Ty {
		case pty.TyLogLuckyBetStatus:
			var st pty.ReceiptLuckyBetStatus
			s.Require().NoError(types.Decode(item.Log, &st))
			statuses = append(statuses, st.Status)
		case pty.TyLogLuckyBetNumberWon:
			won = &pty.ReceiptLuckyBetNumberWon{}
			s.Require().NoError(types.Decode(item.Log, won))
		}
	}
	s.Require().Equal([]int32{pty.LuckyBetStatusDrawing, pty.LuckyBetStatusSettling, pty.LuckyBetStatusClosed}, statuses)
	s.Require().NotNil(won)
	s.Require().Equal(int64(3), won.WinningIndex) // the sentinel
	s.Require().Zero(won.WinAmountPerBet)

	game := s.game(gameID)
	s.Require().Equal(pty.LuckyBetStatusClosed, game.Status)
	s.Require().Equal(int64(len(game.LuckyNumbers)), game.WinningIndex)

	// every bet refunds at face value; fees are not returned
	before := s.execBalance(s.addrA)
	s.execOK(privA, withdrawAwardAction(gameID))
	s.Require().Equal(before+2*betAmount, s.execBalance(s.addrA))
	before = s.execBalance(s.addrB)
	s.execOK(privB, withdrawAwardAction(gameID))
	s.Require().Equal(before+betAmount, s.execBalance(s.addrB))
}

func (s *luckyBetTestSuite) TestRefundDrawRollback() {
	gameID := s.openGame(2, 10, 100)
	s.execOK(privA, betAction(gameID, 0, betAmount+betFee))
	s.execOK(privA, betAction(gameID, 0, betAmount+betFee))
	s.execOK(privB, betAction(gameID, 1, betAmount+betFee))
	s.blocktime += 100

	tx := s.signedTx(privBanker, drawAction(gameID))
	s.exec.SetEnv(s.height, s.blocktime, 1539918074)
	receipt, err := s.exec.Exec(tx, s.txIndex)
	s.Require().NoError(err)
	util.SaveKVList(s.sdb, receipt.KV)
	receiptData := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	set, err := s.exec.ExecLocal(tx, receiptData, s.txIndex)
	s.Require().NoError(err)
	util.SaveKVList(s.ldb, set.KV)

	closed, err := s.exec.listRecords(calcLuckyBetStatusPrefix(pty.LuckyBetStatusClosed), nil, 10)
	s.Require().NoError(err)
	s.Require().Len(closed, 1)
	open, err := s.exec.listRecords(calcLuckyBetStatusPrefix(pty.LuckyBetStatusOpen), nil, 10)
	s.Require().NoError(err)
	s.Require().Empty(open)

	// unwind the three-transition cascade of the refund draw
	set, err = s.exec.ExecDelLocal(tx, receiptData, s.txIndex)
	s.Require().NoError(err)
	util.SaveKVList(s.ldb, set.KV)

	closed, err = s.exec.listRecords(calcLuckyBetStatusPrefix(pty.LuckyBetStatusClosed), nil, 10)
	s.Require().NoError(err)
	s.Require().Empty(closed)
	open, err = s.exec.listRecords(calcLuckyBetStatusPrefix(pty.LuckyBetStatusOpen), nil, 10)
	s.Require().NoError(err)
	s.Require().Len(open, 1)
	s.Require().Equal(gameID, open[0].GameId)

	// creation rows are untouched by a draw rollback
	all, err := s.exec.listRecords(calcLuckyBetAllPrefix(), nil, 10)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Require().Equal(gameID, all[0].GameId)
}

func (s *luckyBetTestSuite) TestRefundDrawTooFewPlayers() {
	gameID := s.openGame(3, 10, 100)
	// every index covered but only two distinct players
	s.execOK(privA, betAction(gameID, 0, betAmount+betFee))
	s.execOK(privA, betAction(gameID, 1, betAmount+betFee))
	s.execOK(privB, betAction(gameID, 2, betAmount+betFee))
	s.blocktime += 100
	s.execOK(privBanker, drawAction(gameID))
	s.Require().Equal(pty.LuckyBetStatusClosed, s.game(gameID).Status)
}

func (s *luckyBetTestSuite) TestRedraw() {
	gameID := s.openGame(2, 10, 100)
	s.execOK(privA, betAction(gameID, 0, betAmount+betFee))
	s.execOK(privA, betAction(gameID, 1, betAmount+betFee))
	s.execOK(privB, betAction(gameID, 1, betAmount+betFee))
	s.execOK(privB, betAction(gameID, 2, betAmount+betFee))
	s.blocktime += 100
	receipt := s.execOK(privBanker, drawAction(gameID))
	staleID := s.requestID(receipt)

	s.execFail(privBanker, redrawAction(gameID), pty.ErrNotAuthorized)
	receipt = s.execOK(privOwner, redrawAction(gameID))
	freshID := s.requestID(receipt)
	s.Require().NotEqual(staleID, freshID)
	s.Require().Equal(pty.LuckyBetStatusDrawing, s.game(gameID).Status)

	// the stale request no longer resolves
	s.execFail(privOracle, fulfillAction(staleID, 7), pty.ErrVrfRequestNotFound)
	s.execOK(privOracle, fulfillAction(freshID, 8))
	s.Require().Equal(pty.LuckyBetStatusSettling, s.game(gameID).Status)

	// redraw only recovers games stuck in Drawing
	s.execFail(privOwner, redrawAction(gameID), pty.ErrIncorrectStatus)
}

func (s *luckyBetTestSuite) TestOwnerHandover() {
	s.execFail(privA, setBankerFeeAction(startFee), pty.ErrNotAuthorized)
	s.execOK(privOwner, setBankerFeeAction(startFee))
	s.execOK(privBanker, startAction([]int64{1, 2}, betAmount, betFee, 1, 10, 100, startFee))

	s.execFail(privA, setOwnerAction(s.addrA), pty.ErrNotAuthorized)
	s.execOK(privOwner, setOwnerAction(s.addrA))
	// the old owner lost the role and the accrued balance
	s.execFail(privOwner, setBankerFeeAction(startFee), pty.ErrNotAuthorized)
	s.execFail(privOwner, withdrawBalanceAction(), pty.ErrIncorrectAmount)

	slot, err := readOwnerSlot(s.sdb)
	s.Require().NoError(err)
	s.Require().Equal(s.addrA, slot.Addr)
	s.Require().Equal(int64(startFee), slot.Balance)

	before := s.execBalance(s.addrA)
	s.execOK(privA, withdrawBalanceAction())
	s.Require().Equal(before+startFee, s.execBalance(s.addrA))
}

func (s *luckyBetTestSuite) TestDepositWithdrawBalance() {
	s.execFail(privA, depositAction(0), types.ErrInvalidParam)
	s.execOK(privA, depositAction(5*types.DefaultCoinPrecision))
	fund, err := readFund(s.sdb, s.addrA)
	s.Require().NoError(err)
	s.Require().Equal(5*types.DefaultCoinPrecision, fund.Balance)

	before := s.execBalance(s.addrA)
	s.execOK(privA, withdrawBalanceAction())
	s.Require().Equal(before+5*types.DefaultCoinPrecision, s.execBalance(s.addrA))
	s.execFail(privA, withdrawBalanceAction(), pty.ErrIncorrectAmount)
}

func (s *luckyBetTestSuite) TestVrfConfigMerge() {
	s.execFail(privA, vrfConfigAction(&pty.LuckyBetVrfConfig{SubscriptionId: 1}), pty.ErrNotAuthorized)
	s.execOK(privOwner, vrfConfigAction(&pty.LuckyBetVrfConfig{
		SubscriptionId: 7, KeyHash: "0xabc", RequestConfirmations: 3,
		CallbackGasLimit: 100000, OracleAddr: s.addrOracle,
	}))
	// zero fields leave stored values unchanged
	s.execOK(privOwner, vrfConfigAction(&pty.LuckyBetVrfConfig{SubscriptionId: 9}))
	cfg, err := readVrfConfig(s.sdb)
	s.Require().NoError(err)
	s.Require().Equal(int64(9), cfg.SubscriptionId)
	s.Require().Equal("0xabc", cfg.KeyHash)
	s.Require().Equal(int32(3), cfg.RequestConfirmations)
	s.Require().Equal(s.addrOracle, cfg.OracleAddr)
}
