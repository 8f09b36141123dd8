// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	log "github.com/33cn/chain33/common/log/log15"
	drivers "github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	pty "github.com/game33/luckybet/types"
)

var llog = log.New("module", "execs.luckybet")

var driverName = pty.LuckyBetX

type subConfig struct {
	OwnerAddr        string `json:"ownerAddr"`
	DefaultBankerFee int64  `json:"defaultBankerFee"`
}

var subcfg subConfig

// Init register the luckybet driver
func Init(name string, cfg *types.Chain33Config, sub []byte) {
	driverName = name
	if sub != nil {
		types.MustDecode(sub, &subcfg)
	}
	drivers.Register(cfg, driverName, newLuckyBet, cfg.GetDappFork(driverName, "Enable"))
	InitExecType()
}

// InitExecType init exec func map
func InitExecType() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&LuckyBet{}))
}

// GetName get driver name
func GetName() string {
	return newLuckyBet().GetName()
}

// LuckyBet the number betting lottery executor
type LuckyBet struct {
	drivers.DriverBase
}

func newLuckyBet() drivers.Driver {
	l := &LuckyBet{}
	l.SetChild(l)
	l.SetExecutorType(types.LoadExecutorType(driverName))
	return l
}

// GetDriverName get driver name
func (l *LuckyBet) GetDriverName() string {
	return pty.LuckyBetX
}
