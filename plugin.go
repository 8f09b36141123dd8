// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package luckybet

import (
	"github.com/33cn/chain33/pluginmgr"
	"github.com/game33/luckybet/commands"
	"github.com/game33/luckybet/executor"
	"github.com/game33/luckybet/rpc"
	pty "github.com/game33/luckybet/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     pty.LuckyBetX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.LuckyBetCmd,
		RPC:      rpc.Init,
	})
}
