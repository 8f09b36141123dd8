// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands luckybet client commands
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/33cn/chain33/rpc/jsonclient"
	rpctypes "github.com/33cn/chain33/rpc/types"
	"github.com/33cn/chain33/types"
	pty "github.com/game33/luckybet/types"
	"github.com/spf13/cobra"
)

// LuckyBetCmd luckybet command
func LuckyBetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "luckybet",
		Short: "Number betting lottery management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		startCmd(),
		betCmd(),
		depositCmd(),
		drawCmd(),
		redrawCmd(),
		settleCmd(),
		withdrawAwardCmd(),
		withdrawBalanceCmd(),
		setBankerFeeCmd(),
		setOwnerCmd(),
		vrfConfigCmd(),
		gameInfoCmd(),
		gamesCmd(),
		balanceCmd(),
		awardCmd(),
		numberCountCmd(),
		bankerFeeCmd(),
		ownerCmd(),
	)
	return cmd
}

func createTx(cmd *cobra.Command, actionName string, payload interface{}) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	data, err := json.Marshal(payload)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	pm := &rpctypes.CreateTxIn{
		Execer:     paraName + pty.LuckyBetX,
		ActionName: actionName,
		Payload:    data,
	}
	var res string
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.CreateTransaction", pm, &res)
	ctx.RunWithoutMarshal()
}

func sendQuery(cmd *cobra.Command, funcName string, req types.Message, reply types.Message) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	query := rpctypes.Query4Jrpc{
		Execer:   paraName + pty.LuckyBetX,
		FuncName: funcName,
		Payload:  types.MustPBToJSON(req),
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Query", query, reply)
	ctx.Run()
}

func parseNumbers(s string) ([]int64, error) {
	var numbers []int64
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

func startCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Open a new game",
		Run:   startGame,
	}
	cmd.Flags().StringP("numbers", "n", "", "comma separated lucky numbers")
	cmd.MarkFlagRequired("numbers")
	cmd.Flags().Float64P("betAmount", "b", 0, "amount of one bet")
	cmd.MarkFlagRequired("betAmount")
	cmd.Flags().Float64P("betFee", "f", 0, "fee of one bet")
	cmd.MarkFlagRequired("betFee")
	cmd.Flags().Int64P("minPlayer", "m", 1, "minimum distinct players")
	cmd.Flags().Int64P("maxPlayer", "x", 100, "maximum distinct players")
	cmd.Flags().Int64P("duration", "d", 3600, "betting window in seconds")
	cmd.Flags().Float64P("value", "v", 0, "attached payment, must settle the banker fee exactly")
	return cmd
}

func startGame(cmd *cobra.Command, args []string) {
	numbersStr, _ := cmd.Flags().GetString("numbers")
	betAmount, _ := cmd.Flags().GetFloat64("betAmount")
	betFee, _ := cmd.Flags().GetFloat64("betFee")
	minPlayer, _ := cmd.Flags().GetInt64("minPlayer")
	maxPlayer, _ := cmd.Flags().GetInt64("maxPlayer")
	duration, _ := cmd.Flags().GetInt64("duration")
	value, _ := cmd.Flags().GetFloat64("value")
	numbers, err := parseNumbers(numbersStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	payload := &pty.LuckyBetStart{
		LuckyNumbers:   numbers,
		BetAmount:      int64(betAmount * float64(types.DefaultCoinPrecision)),
		BetFee:         int64(betFee * float64(types.DefaultCoinPrecision)),
		MinPlayerCount: minPlayer,
		MaxPlayerCount: maxPlayer,
		Duration:       duration,
		Value:          int64(value * float64(types.DefaultCoinPrecision)),
	}
	createTx(cmd, "Start", payload)
}

func betCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bet",
		Short: "Bet on a lucky number index",
		Run:   betGame,
	}
	cmd.Flags().Int64P("gameId", "g", 0, "game id")
	cmd.MarkFlagRequired("gameId")
	cmd.Flags().Int64P("index", "i", 0, "lucky number index")
	cmd.MarkFlagRequired("index")
	cmd.Flags().Float64P("value", "v", 0, "attached payment, must settle betAmount+betFee exactly")
	return cmd
}

func betGame(cmd *cobra.Command, args []string) {
	gameID, _ := cmd.Flags().GetInt64("gameId")
	index, _ := cmd.Flags().GetInt64("index")
	value, _ := cmd.Flags().GetFloat64("value")
	payload := &pty.LuckyBetBet{
		GameId:      gameID,
		NumberIndex: index,
		Value:       int64(value * float64(types.DefaultCoinPrecision)),
	}
	createTx(cmd, "Bet", payload)
}

func depositCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Pre-fund the withdrawable balance",
		Run:   depositValue,
	}
	cmd.Flags().Float64P("value", "v", 0, "amount to deposit")
	cmd.MarkFlagRequired("value")
	return cmd
}

func depositValue(cmd *cobra.Command, args []string) {
	value, _ := cmd.Flags().GetFloat64("value")
	payload := &pty.LuckyBetDeposit{Value: int64(value * float64(types.DefaultCoinPrecision))}
	createTx(cmd, "Deposit", payload)
}

func drawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Close betting and request randomness (banker)",
		Run: func(cmd *cobra.Command, args []string) {
			gameID, _ := cmd.Flags().GetInt64("gameId")
			createTx(cmd, "Draw", &pty.LuckyBetDraw{GameId: gameID})
		},
	}
	cmd.Flags().Int64P("gameId", "g", 0, "game id")
	cmd.MarkFlagRequired("gameId")
	return cmd
}

func redrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redraw",
		Short: "Re-issue a stuck randomness request (owner)",
		Run: func(cmd *cobra.Command, args []string) {
			gameID, _ := cmd.Flags().GetInt64("gameId")
			createTx(cmd, "Redraw", &pty.LuckyBetRedraw{GameId: gameID})
		},
	}
	cmd.Flags().Int64P("gameId", "g", 0, "game id")
	cmd.MarkFlagRequired("gameId")
	return cmd
}

func settleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Settle a drawn game (banker)",
		Run: func(cmd *cobra.Command, args []string) {
			gameID, _ := cmd.Flags().GetInt64("gameId")
			createTx(cmd, "Settle", &pty.LuckyBetSettle{GameId: gameID})
		},
	}
	cmd.Flags().Int64P("gameId", "g", 0, "game id")
	cmd.MarkFlagRequired("gameId")
	return cmd
}

func withdrawAwardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw_award",
		Short: "Claim the award of a closed game",
		Run: func(cmd *cobra.Command, args []string) {
			gameID, _ := cmd.Flags().GetInt64("gameId")
			createTx(cmd, "WithdrawAward", &pty.LuckyBetWithdrawAward{GameId: gameID})
		},
	}
	cmd.Flags().Int64P("gameId", "g", 0, "game id")
	cmd.MarkFlagRequired("gameId")
	return cmd
}

func withdrawBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw_balance",
		Short: "Pay out the withdrawable balance",
		Run: func(cmd *cobra.Command, args []string) {
			createTx(cmd, "WithdrawBalance", &pty.LuckyBetWithdrawBalance{})
		},
	}
}

func setBankerFeeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_banker_fee",
		Short: "Set the game opening fee (owner)",
		Run: func(cmd *cobra.Command, args []string) {
			amount, _ := cmd.Flags().GetFloat64("amount")
			createTx(cmd, "SetBankerFee", &pty.LuckyBetSetBankerFee{Amount: int64(amount * float64(types.DefaultCoinPrecision))})
		},
	}
	cmd.Flags().Float64P("amount", "a", 0, "fee amount")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func setOwnerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_owner",
		Short: "Hand over the owner role (owner)",
		Run: func(cmd *cobra.Command, args []string) {
			newOwner, _ := cmd.Flags().GetString("addr")
			createTx(cmd, "SetOwner", &pty.LuckyBetSetOwner{NewOwner: newOwner})
		},
	}
	cmd.Flags().StringP("addr", "a", "", "new owner address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func vrfConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vrf_config",
		Short: "Update oracle parameters, zero fields stay unchanged (owner)",
		Run:   vrfConfig,
	}
	cmd.Flags().Int64P("subId", "s", 0, "subscription id")
	cmd.Flags().StringP("keyHash", "k", "", "key hash")
	cmd.Flags().Int32P("confirmations", "c", 0, "request confirmations")
	cmd.Flags().Int64P("gasLimit", "l", 0, "callback gas limit")
	cmd.Flags().StringP("oracle", "o", "", "oracle address")
	return cmd
}

func vrfConfig(cmd *cobra.Command, args []string) {
	subID, _ := cmd.Flags().GetInt64("subId")
	keyHash, _ := cmd.Flags().GetString("keyHash")
	confirmations, _ := cmd.Flags().GetInt32("confirmations")
	gasLimit, _ := cmd.Flags().GetInt64("gasLimit")
	oracle, _ := cmd.Flags().GetString("oracle")
	payload := &pty.LuckyBetVrfConfig{
		SubscriptionId:       subID,
		KeyHash:              keyHash,
		RequestConfirmations: confirmations,
		CallbackGasLimit:     gasLimit,
		OracleAddr:           oracle,
	}
	createTx(cmd, "VrfConfig", payload)
}

func gameInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game_info",
		Short: "Query one game",
		Run: func(cmd *cobra.Command, args []string) {
			gameID, _ := cmd.Flags().GetInt64("gameId")
			var res pty.LuckyBetGame
			sendQuery(cmd, pty.FuncNameGetBasicGameInfo, &pty.ReqLuckyBetGameInfo{GameId: gameID}, &res)
		},
	}
	cmd.Flags().Int64P("gameId", "g", 0, "game id")
	cmd.MarkFlagRequired("gameId")
	return cmd
}

func gamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "List games most recent first",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			onlyLive, _ := cmd.Flags().GetBool("live")
			count, _ := cmd.Flags().GetInt32("count")
			index, _ := cmd.Flags().GetInt64("index")
			req := &pty.ReqLuckyBetGameList{Addr: addr, OnlyLive: onlyLive, Count: count, Index: index}
			var res pty.ReplyLuckyBetGameList
			sendQuery(cmd, pty.FuncNameGetGames, req, &res)
		},
	}
	cmd.Flags().StringP("addr", "a", "", "restrict to this banker's games")
	cmd.Flags().BoolP("live", "l", false, "unsettled games only")
	cmd.Flags().Int32P("count", "c", 10, "page size")
	cmd.Flags().Int64P("index", "i", 0, "pagination cursor")
	return cmd
}

func balanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Query the withdrawable balance of an address",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			var res pty.ReplyLuckyBetBalance
			sendQuery(cmd, pty.FuncNameGetPlayerBalance, &pty.ReqLuckyBetAddr{Addr: addr}, &res)
		},
	}
	cmd.Flags().StringP("addr", "a", "", "address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func awardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "award",
		Short: "Query the award a player can claim",
		Run: func(cmd *cobra.Command, args []string) {
			gameID, _ := cmd.Flags().GetInt64("gameId")
			addr, _ := cmd.Flags().GetString("addr")
			var res pty.ReplyLuckyBetAward
			sendQuery(cmd, pty.FuncNameGetPlayerGameAward, &pty.ReqLuckyBetPlayerGame{GameId: gameID, Addr: addr}, &res)
		},
	}
	cmd.Flags().Int64P("gameId", "g", 0, "game id")
	cmd.MarkFlagRequired("gameId")
	cmd.Flags().StringP("addr", "a", "", "player address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func numberCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "number_count",
		Short: "Query bet counts of a lucky number index",
		Run: func(cmd *cobra.Command, args []string) {
			gameID, _ := cmd.Flags().GetInt64("gameId")
			index, _ := cmd.Flags().GetInt64("index")
			addr, _ := cmd.Flags().GetString("addr")
			req := &pty.ReqLuckyBetNumber{GameId: gameID, NumberIndex: index, Addr: addr}
			var res pty.ReplyLuckyBetCount
			if addr != "" {
				sendQuery(cmd, pty.FuncNameGetPlayerNumberBetCount, req, &res)
				return
			}
			sendQuery(cmd, pty.FuncNameGetNumberBetCount, req, &res)
		},
	}
	cmd.Flags().Int64P("gameId", "g", 0, "game id")
	cmd.MarkFlagRequired("gameId")
	cmd.Flags().Int64P("index", "i", 0, "lucky number index")
	cmd.MarkFlagRequired("index")
	cmd.Flags().StringP("addr", "a", "", "restrict to this player")
	return cmd
}

func bankerFeeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "banker_fee",
		Short: "Query the game opening fee",
		Run: func(cmd *cobra.Command, args []string) {
			var res pty.ReplyLuckyBetBalance
			sendQuery(cmd, pty.FuncNameGetBankerFee, &types.ReqNil{}, &res)
		},
	}
}

func ownerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "owner",
		Short: "Query the owner role and its accrued revenue",
		Run: func(cmd *cobra.Command, args []string) {
			var res pty.LuckyBetOwnerSlot
			sendQuery(cmd, pty.FuncNameGetOwner, &types.ReqNil{}, &res)
		},
	}
}
