// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/33cn/chain33/types"
	pty "github.com/game33/luckybet/types"
)

func (c *channelClient) query(funcName string, param types.Message) (types.Message, error) {
	return c.Query(pty.LuckyBetX, funcName, param)
}

// GetBasicGameInfo query one game
func (c *Jrpc) GetBasicGameInfo(param *pty.ReqLuckyBetGameInfo, result *interface{}) error {
	if param == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.query(pty.FuncNameGetBasicGameInfo, param)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

// GetGames list games most recent first
func (c *Jrpc) GetGames(param *pty.ReqLuckyBetGameList, result *interface{}) error {
	if param == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.query(pty.FuncNameGetGames, param)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

// GetBankerGames list the games a banker opened
func (c *Jrpc) GetBankerGames(param *pty.ReqLuckyBetGameList, result *interface{}) error {
	if param == nil || param.Addr == "" {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.query(pty.FuncNameGetBankerGames, param)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

// GetPlayerBalance withdrawable fund credit of an address
func (c *Jrpc) GetPlayerBalance(param *pty.ReqLuckyBetAddr, result *interface{}) error {
	if param == nil || param.Addr == "" {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.query(pty.FuncNameGetPlayerBalance, param)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

// GetPlayerGameAward award a player can claim for one game
func (c *Jrpc) GetPlayerGameAward(param *pty.ReqLuckyBetPlayerGame, result *interface{}) error {
	if param == nil || param.Addr == "" {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.query(pty.FuncNameGetPlayerGameAward, param)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

// GetPlayerNumberBetCount bets a player placed on one index
func (c *Jrpc) GetPlayerNumberBetCount(param *pty.ReqLuckyBetNumber, result *interface{}) error {
	if param == nil || param.Addr == "" {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.query(pty.FuncNameGetPlayerNumberBetCount, param)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

// GetNumberBetCount total bets on one index
func (c *Jrpc) GetNumberBetCount(param *pty.ReqLuckyBetNumber, result *interface{}) error {
	if param == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.query(pty.FuncNameGetNumberBetCount, param)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

// GetBankerFee fee currently charged for opening a game
func (c *Jrpc) GetBankerFee(param *types.ReqNil, result *interface{}) error {
	reply, err := c.cli.query(pty.FuncNameGetBankerFee, &types.ReqNil{})
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

// GetOwner owner role and its accrued revenue
func (c *Jrpc) GetOwner(param *types.ReqNil, result *interface{}) error {
	reply, err := c.cli.query(pty.FuncNameGetOwner, &types.ReqNil{})
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

// GetVrfConfig stored oracle parameters
func (c *Jrpc) GetVrfConfig(param *types.ReqNil, result *interface{}) error {
	reply, err := c.cli.query(pty.FuncNameGetVrfConfig, &types.ReqNil{})
	if err != nil {
		return err
	}
	*result = reply
	return nil
}
