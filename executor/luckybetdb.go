// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/account"
	"github.com/33cn/chain33/client"
	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/common/address"
	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	pty "github.com/game33/luckybet/types"
)

// Action wraps the per-transaction execution context
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	api          client.QueueProtocolAPI
	index        int
}

// NewAction create action from the current tx
func NewAction(l *LuckyBet, tx *types.Transaction, index int) *Action {
	hash := tx.Hash()
	fromaddr := tx.From()
	return &Action{
		coinsAccount: l.GetCoinsAccount(),
		db:           l.GetStateDB(),
		txhash:       hash,
		fromaddr:     fromaddr,
		blocktime:    l.GetBlockTime(),
		height:       l.GetHeight(),
		execaddr:     dapp.ExecAddress(string(tx.Execer)),
		api:          l.GetAPI(),
		index:        index,
	}
}

// GetIndex height*MaxTxsPerBlock+index. Assigned to a game once at creation;
// every localdb row and the list pagination cursor key off this stable value.
func (action *Action) GetIndex() int64 {
	return action.height*types.MaxTxsPerBlock + int64(action.index)
}

func readGame(db dbm.KV, gameID int64) (*pty.LuckyBetGame, error) {
	data, err := db.Get(calcLuckyBetGameKey(gameID))
	if err != nil {
		if err == types.ErrNotFound {
			// unknown ids behave as a game that was never opened
			return &pty.LuckyBetGame{GameId: gameID, Status: pty.LuckyBetStatusInit}, nil
		}
		llog.Error("readGame", "gameId", gameID, "err", err)
		return nil, err
	}
	var game pty.LuckyBetGame
	if err := types.Decode(data, &game); err != nil {
		llog.Error("readGame decode", "gameId", gameID, "err", err)
		return nil, err
	}
	return &game, nil
}

func readFund(db dbm.KV, addr string) (*pty.LuckyBetFund, error) {
	data, err := db.Get(calcLuckyBetFundKey(addr))
	if err != nil {
		if err == types.ErrNotFound {
			return &pty.LuckyBetFund{Addr: addr}, nil
		}
		return nil, err
	}
	var fund pty.LuckyBetFund
	if err := types.Decode(data, &fund); err != nil {
		return nil, err
	}
	return &fund, nil
}

func readOwnerSlot(db dbm.KV) (*pty.LuckyBetOwnerSlot, error) {
	data, err := db.Get(calcLuckyBetOwnerKey())
	if err != nil {
		if err == types.ErrNotFound {
			return &pty.LuckyBetOwnerSlot{Addr: subcfg.OwnerAddr}, nil
		}
		return nil, err
	}
	var slot pty.LuckyBetOwnerSlot
	if err := types.Decode(data, &slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

// readBankerFee defaults to a prohibitive fee until the owner lowers it
func readBankerFee(db dbm.KV) (int64, error) {
	data, err := db.Get(calcLuckyBetFeeKey())
	if err != nil {
		if err == types.ErrNotFound {
			if subcfg.DefaultBankerFee > 0 {
				return subcfg.DefaultBankerFee, nil
			}
			return pty.MaxLuckyBetAmount, nil
		}
		return 0, err
	}
	var fee types.Int64
	if err := types.Decode(data, &fee); err != nil {
		return 0, err
	}
	return fee.Data, nil
}

func readVrfConfig(db dbm.KV) (*pty.LuckyBetVrfConfig, error) {
	data, err := db.Get(calcLuckyBetVrfKey())
	if err != nil {
		if err == types.ErrNotFound {
			return &pty.LuckyBetVrfConfig{}, nil
		}
		return nil, err
	}
	var cfg pty.LuckyBetVrfConfig
	if err := types.Decode(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readRequest(db dbm.KV, requestID string) (*pty.LuckyBetRequest, error) {
	data, err := db.Get(calcLuckyBetRequestKey(requestID))
	if err != nil {
		if err == types.ErrNotFound {
			return nil, pty.ErrVrfRequestNotFound
		}
		return nil, err
	}
	var req pty.LuckyBetRequest
	if err := types.Decode(data, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func readGameCount(db dbm.KV) (int64, error) {
	data, err := db.Get(calcLuckyBetCountKey())
	if err != nil {
		if err == types.ErrNotFound {
			return 0, nil
		}
		return 0, err
	}
	var count types.Int64
	if err := types.Decode(data, &count); err != nil {
		return 0, err
	}
	return count.Data, nil
}

func findPlayer(game *pty.LuckyBetGame, addr string) *pty.LuckyBetPlayer {
	for _, p := range game.Players {
		if p.Addr == addr {
			return p
		}
	}
	return nil
}

func gameKV(game *pty.LuckyBetGame) *types.KeyValue {
	return &types.KeyValue{Key: calcLuckyBetGameKey(game.GameId), Value: types.Encode(game)}
}

func fundKV(fund *pty.LuckyBetFund) *types.KeyValue {
	return &types.KeyValue{Key: calcLuckyBetFundKey(fund.Addr), Value: types.Encode(fund)}
}

func ownerKV(slot *pty.LuckyBetOwnerSlot) *types.KeyValue {
	return &types.KeyValue{Key: calcLuckyBetOwnerKey(), Value: types.Encode(slot)}
}

func (action *Action) getStatusReceiptLog(game *pty.LuckyBetGame) *types.ReceiptLog {
	r := &pty.ReceiptLuckyBetStatus{
		GameId:     game.GameId,
		PrevStatus: game.PrevStatus,
		Status:     game.Status,
		Banker:     game.Banker,
		Index:      game.Index,
		PrevIndex:  game.PrevIndex,
	}
	return &types.ReceiptLog{Ty: pty.TyLogLuckyBetStatus, Log: types.Encode(r)}
}

func (action *Action) changeStatus(game *pty.LuckyBetGame, status int32) {
	game.PrevStatus = game.Status
	game.Status = status
	// the index never moves; status rows are re-keyed by status only
	game.PrevIndex = game.Index
}

// settlePayment reconciles the required amount against the caller's fund
// balance plus the value attached to the tx. The match must be exact; the
// attached value is moved into the pool and the fund record is consumed.
func (action *Action) settlePayment(required, value int64) (*types.Receipt, error) {
	if value < 0 || required < 0 {
		return nil, types.ErrInvalidParam
	}
	fund, err := readFund(action.db, action.fromaddr)
	if err != nil {
		return nil, err
	}
	if fund.Balance+value != required {
		llog.Debug("settlePayment mismatch", "addr", action.fromaddr,
			"fund", fund.Balance, "value", value, "required", required)
		return nil, pty.ErrIncorrectAmount
	}
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	if value > 0 {
		receipt, err := action.coinsAccount.ExecTransfer(action.fromaddr, action.execaddr, action.execaddr, value)
		if err != nil {
			llog.Error("settlePayment transfer", "addr", action.fromaddr, "value", value, "err", err)
			return nil, err
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
	}
	if fund.Balance != 0 {
		fund.Balance = 0
		fkv := fundKV(fund)
		// later reads within this tx must observe the spend
		if err := action.db.Set(fkv.Key, fkv.Value); err != nil {
			return nil, err
		}
		kv = append(kv, fkv)
	}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// creditFund raises an address's withdrawable balance; the backing value
// already sits in the pool account.
func (action *Action) creditFund(addr string, amount int64) (*types.KeyValue, error) {
	fund, err := readFund(action.db, addr)
	if err != nil {
		return nil, err
	}
	fund.Balance += amount
	kv := fundKV(fund)
	// later reads within this tx must observe the credit
	if err := action.db.Set(kv.Key, kv.Value); err != nil {
		return nil, err
	}
	return kv, nil
}

func (action *Action) checkOwner() (*pty.LuckyBetOwnerSlot, error) {
	slot, err := readOwnerSlot(action.db)
	if err != nil {
		return nil, err
	}
	if slot.Addr == "" || action.fromaddr != slot.Addr {
		return nil, pty.ErrNotAuthorized
	}
	return slot, nil
}

// GameStart open a new round; the banker fee is settled exactly and credited
// to the owner slot.
func (action *Action) GameStart(start *pty.LuckyBetStart) (*types.Receipt, error) {
	if len(start.LuckyNumbers) == 0 {
		return nil, types.ErrInvalidParam
	}
	seen := make(map[int64]bool, len(start.LuckyNumbers))
	for _, n := range start.LuckyNumbers {
		if seen[n] {
			return nil, types.ErrInvalidParam
		}
		seen[n] = true
	}
	if start.BetAmount <= 0 || start.BetAmount > pty.MaxLuckyBetAmount {
		return nil, types.ErrInvalidParam
	}
	if start.BetFee <= 0 || start.BetFee > pty.MaxLuckyBetAmount {
		return nil, types.ErrInvalidParam
	}
	if start.MinPlayerCount <= 0 || start.MinPlayerCount > start.MaxPlayerCount {
		return nil, types.ErrInvalidParam
	}
	if start.MaxPlayerCount > pty.MaxPlayerBound {
		return nil, types.ErrInvalidParam
	}
	if start.Duration <= 0 || start.Duration > pty.MaxGameDuration {
		return nil, types.ErrInvalidParam
	}

	fee, err := readBankerFee(action.db)
	if err != nil {
		return nil, err
	}
	receipt, err := action.settlePayment(fee, start.Value)
	if err != nil {
		return nil, err
	}
	logs := receipt.Logs
	kv := receipt.KV

	slot, err := readOwnerSlot(action.db)
	if err != nil {
		return nil, err
	}
	slot.Balance += fee
	kv = append(kv, ownerKV(slot))

	count, err := readGameCount(action.db)
	if err != nil {
		return nil, err
	}
	count++
	kv = append(kv, &types.KeyValue{Key: calcLuckyBetCountKey(), Value: types.Encode(&types.Int64{Data: count})})

	game := &pty.LuckyBetGame{
		GameId:          count,
		Status:          pty.LuckyBetStatusOpen,
		PrevStatus:      pty.LuckyBetStatusInit,
		Banker:          action.fromaddr,
		LuckyNumbers:    start.LuckyNumbers,
		BetAmount:       start.BetAmount,
		BetFee:          start.BetFee,
		MinPlayerCount:  start.MinPlayerCount,
		MaxPlayerCount:  start.MaxPlayerCount,
		StartTime:       action.blocktime,
		EndTime:         action.blocktime + start.Duration,
		NumberBetCounts: make([]int64, len(start.LuckyNumbers)),
		Index:           action.GetIndex(),
	}
	kv = append(kv, gameKV(game))
	logs = append(logs, action.getStatusReceiptLog(game))

	llog.Debug("GameStart", "gameId", game.GameId, "banker", game.Banker, "endTime", game.EndTime)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// GameBet place one bet on a lucky number index
func (action *Action) GameBet(bet *pty.LuckyBetBet) (*types.Receipt, error) {
	game, err := readGame(action.db, bet.GameId)
	if err != nil {
		return nil, err
	}
	if game.Status != pty.LuckyBetStatusOpen {
		return nil, pty.ErrIncorrectStatus
	}
	if action.blocktime >= game.EndTime {
		return nil, pty.ErrIncorrectTiming
	}
	if bet.NumberIndex < 0 || bet.NumberIndex >= int64(len(game.LuckyNumbers)) {
		return nil, pty.ErrInvalidIndex
	}
	player := findPlayer(game, action.fromaddr)
	if player == nil && game.PlayerCount >= game.MaxPlayerCount {
		return nil, pty.ErrReachPlayerLimit
	}

	receipt, err := action.settlePayment(game.BetAmount+game.BetFee, bet.Value)
	if err != nil {
		return nil, err
	}
	logs := receipt.Logs
	kv := receipt.KV

	// the bet fee belongs to the banker as soon as the bet lands
	feeKV, err := action.creditFund(game.Banker, game.BetFee)
	if err != nil {
		return nil, err
	}
	kv = append(kv, feeKV)

	if player == nil {
		player = &pty.LuckyBetPlayer{
			Addr:       action.fromaddr,
			NumberBets: make([]int64, len(game.LuckyNumbers)),
		}
		game.Players = append(game.Players, player)
		game.PlayerCount++
	}
	player.NumberBets[bet.NumberIndex]++
	player.TotalBets++
	game.NumberBetCounts[bet.NumberIndex]++
	game.TotalBetCount++
	kv = append(kv, gameKV(game))

	numLog := &pty.ReceiptLuckyBetNumber{
		GameId:      game.GameId,
		Addr:        action.fromaddr,
		NumberIndex: bet.NumberIndex,
		BetCount:    game.NumberBetCounts[bet.NumberIndex],
	}
	logs = append(logs, &types.ReceiptLog{Ty: pty.TyLogLuckyBetNumber, Log: types.Encode(numLog)})

	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// Deposit pre-fund the caller's balance for later exact settlements
func (action *Action) Deposit(dep *pty.LuckyBetDeposit) (*types.Receipt, error) {
	if dep.Value <= 0 {
		return nil, types.ErrInvalidParam
	}
	receipt, err := action.coinsAccount.ExecTransfer(action.fromaddr, action.execaddr, action.execaddr, dep.Value)
	if err != nil {
		llog.Error("Deposit transfer", "addr", action.fromaddr, "value", dep.Value, "err", err)
		return nil, err
	}
	logs := receipt.Logs
	kv := receipt.KV
	fundKV, err := action.creditFund(action.fromaddr, dep.Value)
	if err != nil {
		return nil, err
	}
	kv = append(kv, fundKV)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// GameDraw close betting. When every number is covered and enough players
// joined, a randomness request is issued; otherwise the game settles at once
// in refund mode.
func (action *Action) GameDraw(draw *pty.LuckyBetDraw) (*types.Receipt, error) {
	game, err := readGame(action.db, draw.GameId)
	if err != nil {
		return nil, err
	}
	if game.Status != pty.LuckyBetStatusOpen {
		return nil, pty.ErrIncorrectStatus
	}
	if action.fromaddr != game.Banker {
		return nil, pty.ErrNotAuthorized
	}
	if action.blocktime < game.EndTime {
		return nil, pty.ErrIncorrectTiming
	}

	uncovered := false
	for _, c := range game.NumberBetCounts {
		if c == 0 {
			uncovered = true
			break
		}
	}
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	if game.PlayerCount < game.MinPlayerCount || uncovered {
		// refund settle: the sentinel winning index refunds every bet
		game.WinningIndex = int64(len(game.LuckyNumbers))
		game.WinAmountPerBet = 0
		action.changeStatus(game, pty.LuckyBetStatusDrawing)
		logs = append(logs, action.getStatusReceiptLog(game))
		action.changeStatus(game, pty.LuckyBetStatusSettling)
		logs = append(logs, action.getStatusReceiptLog(game))
		action.changeStatus(game, pty.LuckyBetStatusClosed)
		logs = append(logs, action.getStatusReceiptLog(game))
		won := &pty.ReceiptLuckyBetNumberWon{
			GameId:          game.GameId,
			WinningIndex:    game.WinningIndex,
			WinAmountPerBet: game.WinAmountPerBet,
		}
		logs = append(logs, &types.ReceiptLog{Ty: pty.TyLogLuckyBetNumberWon, Log: types.Encode(won)})
		kv = append(kv, gameKV(game))
		llog.Info("GameDraw refund settle", "gameId", game.GameId,
			"players", game.PlayerCount, "min", game.MinPlayerCount, "uncovered", uncovered)
		return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
	}

	vrf, err := readVrfConfig(action.db)
	if err != nil {
		return nil, err
	}
	requestID := common.ToHex(action.txhash)
	req := &pty.LuckyBetRequest{RequestId: requestID, GameId: game.GameId, Height: action.height}
	kv = append(kv, &types.KeyValue{Key: calcLuckyBetRequestKey(requestID), Value: types.Encode(req)})
	game.VrfRequestId = requestID
	action.changeStatus(game, pty.LuckyBetStatusDrawing)
	kv = append(kv, gameKV(game))
	logs = append(logs, action.getStatusReceiptLog(game))
	reqLog := &pty.ReceiptLuckyBetRequest{
		GameId:               game.GameId,
		RequestId:            requestID,
		SubscriptionId:       vrf.SubscriptionId,
		KeyHash:              vrf.KeyHash,
		RequestConfirmations: vrf.RequestConfirmations,
		CallbackGasLimit:     vrf.CallbackGasLimit,
	}
	logs = append(logs, &types.ReceiptLog{Ty: pty.TyLogLuckyBetRequest, Log: types.Encode(reqLog)})
	llog.Debug("GameDraw request", "gameId", game.GameId, "requestId", requestID)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// GameRedraw abandon a stuck randomness request and issue a fresh one
func (action *Action) GameRedraw(redraw *pty.LuckyBetRedraw) (*types.Receipt, error) {
	if _, err := action.checkOwner(); err != nil {
		return nil, err
	}
	game, err := readGame(action.db, redraw.GameId)
	if err != nil {
		return nil, err
	}
	if game.Status != pty.LuckyBetStatusDrawing {
		return nil, pty.ErrIncorrectStatus
	}
	var kv []*types.KeyValue
	if game.VrfRequestId != "" {
		// late fulfillments of the dropped request will no longer resolve
		kv = append(kv, &types.KeyValue{Key: calcLuckyBetRequestKey(game.VrfRequestId), Value: nil})
	}
	vrf, err := readVrfConfig(action.db)
	if err != nil {
		return nil, err
	}
	requestID := common.ToHex(action.txhash)
	req := &pty.LuckyBetRequest{RequestId: requestID, GameId: game.GameId, Height: action.height}
	kv = append(kv, &types.KeyValue{Key: calcLuckyBetRequestKey(requestID), Value: types.Encode(req)})
	game.VrfRequestId = requestID
	kv = append(kv, gameKV(game))
	reqLog := &pty.ReceiptLuckyBetRequest{
		GameId:               game.GameId,
		RequestId:            requestID,
		SubscriptionId:       vrf.SubscriptionId,
		KeyHash:              vrf.KeyHash,
		RequestConfirmations: vrf.RequestConfirmations,
		CallbackGasLimit:     vrf.CallbackGasLimit,
	}
	logs := []*types.ReceiptLog{{Ty: pty.TyLogLuckyBetRequest, Log: types.Encode(reqLog)}}
	llog.Info("GameRedraw", "gameId", game.GameId, "requestId", requestID)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// VrfFulfill oracle answer to a pending randomness request
func (action *Action) VrfFulfill(fulfill *pty.LuckyBetFulfill) (*types.Receipt, error) {
	vrf, err := readVrfConfig(action.db)
	if err != nil {
		return nil, err
	}
	if vrf.OracleAddr == "" || action.fromaddr != vrf.OracleAddr {
		return nil, pty.ErrNotAuthorized
	}
	if len(fulfill.RandomWords) == 0 {
		return nil, types.ErrInvalidParam
	}
	req, err := readRequest(action.db, fulfill.RequestId)
	if err != nil {
		return nil, err
	}
	game, err := readGame(action.db, req.GameId)
	if err != nil {
		return nil, err
	}
	if game.Status != pty.LuckyBetStatusDrawing {
		return nil, pty.ErrIncorrectStatus
	}
	game.RandomWord = fulfill.RandomWords[0]
	game.VrfRequestId = ""
	action.changeStatus(game, pty.LuckyBetStatusSettling)

	var kv []*types.KeyValue
	// the request is consumed exactly once
	kv = append(kv, &types.KeyValue{Key: calcLuckyBetRequestKey(fulfill.RequestId), Value: nil})
	kv = append(kv, gameKV(game))
	logs := []*types.ReceiptLog{action.getStatusReceiptLog(game)}
	llog.Debug("VrfFulfill", "gameId", game.GameId, "requestId", fulfill.RequestId)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// GameSettle derive the winning index from the stored random word
func (action *Action) GameSettle(settle *pty.LuckyBetSettle) (*types.Receipt, error) {
	game, err := readGame(action.db, settle.GameId)
	if err != nil {
		return nil, err
	}
	if game.Status != pty.LuckyBetStatusSettling {
		return nil, pty.ErrIncorrectStatus
	}
	if action.fromaddr != game.Banker {
		return nil, pty.ErrNotAuthorized
	}
	n := int64(len(game.LuckyNumbers))
	// straight modulo; uniform because the oracle word is uniform
	wi := game.RandomWord % n
	if wi < 0 {
		wi += n
	}
	game.WinningIndex = wi
	// the draw only priced a request when every index was covered
	game.WinAmountPerBet = game.BetAmount * game.TotalBetCount / game.NumberBetCounts[wi]
	action.changeStatus(game, pty.LuckyBetStatusClosed)

	kv := []*types.KeyValue{gameKV(game)}
	logs := []*types.ReceiptLog{action.getStatusReceiptLog(game)}
	won := &pty.ReceiptLuckyBetNumberWon{
		GameId:          game.GameId,
		WinningIndex:    game.WinningIndex,
		WinAmountPerBet: game.WinAmountPerBet,
	}
	logs = append(logs, &types.ReceiptLog{Ty: pty.TyLogLuckyBetNumberWon, Log: types.Encode(won)})
	llog.Info("GameSettle", "gameId", game.GameId, "winningIndex", wi, "winAmountPerBet", game.WinAmountPerBet)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// playerAward award the player can claim for a closed game
func playerAward(game *pty.LuckyBetGame, player *pty.LuckyBetPlayer) int64 {
	if game.Status != pty.LuckyBetStatusClosed || player == nil {
		return 0
	}
	if game.WinningIndex == int64(len(game.LuckyNumbers)) {
		// refund mode pays every bet back
		return game.BetAmount * player.TotalBets
	}
	return game.WinAmountPerBet * player.NumberBets[game.WinningIndex]
}

// WithdrawAward claim the caller's award of a closed game
func (action *Action) WithdrawAward(w *pty.LuckyBetWithdrawAward) (*types.Receipt, error) {
	game, err := readGame(action.db, w.GameId)
	if err != nil {
		return nil, err
	}
	if game.Status != pty.LuckyBetStatusClosed {
		return nil, pty.ErrIncorrectStatus
	}
	player := findPlayer(game, action.fromaddr)
	if player == nil {
		return nil, pty.ErrIncorrectAmount
	}
	if player.Withdrawn {
		return nil, pty.ErrAlreadyWithdrew
	}
	amount := playerAward(game, player)
	if amount <= 0 {
		return nil, pty.ErrIncorrectAmount
	}
	receipt, err := action.coinsAccount.ExecTransfer(action.execaddr, action.fromaddr, action.execaddr, amount)
	if err != nil {
		llog.Error("WithdrawAward transfer", "addr", action.fromaddr, "amount", amount, "err", err)
		return nil, err
	}
	logs := receipt.Logs
	kv := receipt.KV
	player.Withdrawn = true
	kv = append(kv, gameKV(game))
	llog.Debug("WithdrawAward", "gameId", game.GameId, "addr", action.fromaddr, "amount", amount)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// WithdrawBalance pay out the caller's fund credit, plus the owner slot when
// the caller holds the owner role.
func (action *Action) WithdrawBalance(w *pty.LuckyBetWithdrawBalance) (*types.Receipt, error) {
	fund, err := readFund(action.db, action.fromaddr)
	if err != nil {
		return nil, err
	}
	var kv []*types.KeyValue
	total := fund.Balance
	if fund.Balance > 0 {
		fund.Balance = 0
		kv = append(kv, fundKV(fund))
	}
	slot, err := readOwnerSlot(action.db)
	if err != nil {
		return nil, err
	}
	if slot.Addr == action.fromaddr && slot.Balance > 0 {
		total += slot.Balance
		slot.Balance = 0
		kv = append(kv, ownerKV(slot))
	}
	if total <= 0 {
		return nil, pty.ErrIncorrectAmount
	}
	receipt, err := action.coinsAccount.ExecTransfer(action.execaddr, action.fromaddr, action.execaddr, total)
	if err != nil {
		llog.Error("WithdrawBalance transfer", "addr", action.fromaddr, "amount", total, "err", err)
		return nil, err
	}
	logs := receipt.Logs
	kv = append(kv, receipt.KV...)
	llog.Debug("WithdrawBalance", "addr", action.fromaddr, "amount", total)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// SetBankerFee owner sets the fee charged for opening a game
func (action *Action) SetBankerFee(set *pty.LuckyBetSetBankerFee) (*types.Receipt, error) {
	if _, err := action.checkOwner(); err != nil {
		return nil, err
	}
	if set.Amount <= 0 || set.Amount > pty.MaxLuckyBetAmount {
		return nil, types.ErrInvalidParam
	}
	kv := []*types.KeyValue{{Key: calcLuckyBetFeeKey(), Value: types.Encode(&types.Int64{Data: set.Amount})}}
	llog.Info("SetBankerFee", "amount", set.Amount)
	return &types.Receipt{Ty: types.ExecOk, KV: kv}, nil
}

// SetOwner hand the owner role over; the accrued balance moves with it
func (action *Action) SetOwner(set *pty.LuckyBetSetOwner) (*types.Receipt, error) {
	slot, err := action.checkOwner()
	if err != nil {
		return nil, err
	}
	if set.NewOwner == "" {
		return nil, types.ErrInvalidParam
	}
	if err := address.CheckAddress(set.NewOwner); err != nil {
		return nil, types.ErrInvalidAddress
	}
	slot.Addr = set.NewOwner
	kv := []*types.KeyValue{ownerKV(slot)}
	llog.Info("SetOwner", "newOwner", set.NewOwner)
	return &types.Receipt{Ty: types.ExecOk, KV: kv}, nil
}

// SetVrfConfig owner updates oracle parameters; zero fields stay unchanged
func (action *Action) SetVrfConfig(set *pty.LuckyBetVrfConfig) (*types.Receipt, error) {
	if _, err := action.checkOwner(); err != nil {
		return nil, err
	}
	cfg, err := readVrfConfig(action.db)
	if err != nil {
		return nil, err
	}
	if set.SubscriptionId != 0 {
		cfg.SubscriptionId = set.SubscriptionId
	}
	if set.KeyHash != "" {
		cfg.KeyHash = set.KeyHash
	}
	if set.RequestConfirmations != 0 {
		cfg.RequestConfirmations = set.RequestConfirmations
	}
	if set.CallbackGasLimit != 0 {
		cfg.CallbackGasLimit = set.CallbackGasLimit
	}
	if set.OracleAddr != "" {
		if err := address.CheckAddress(set.OracleAddr); err != nil {
			return nil, types.ErrInvalidAddress
		}
		cfg.OracleAddr = set.OracleAddr
	}
	kv := []*types.KeyValue{{Key: calcLuckyBetVrfKey(), Value: types.Encode(cfg)}}
	llog.Info("SetVrfConfig", "oracleAddr", cfg.OracleAddr)
	return &types.Receipt{Ty: types.ExecOk, KV: kv}, nil
}
