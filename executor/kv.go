// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import "fmt"

// statedb keys
func calcLuckyBetGameKey(gameID int64) []byte {
	return []byte(fmt.Sprintf("mavl-luckybet-game-%018d", gameID))
}

func calcLuckyBetCountKey() []byte {
	return []byte("mavl-luckybet-count")
}

func calcLuckyBetFundKey(addr string) []byte {
	return []byte(fmt.Sprintf("mavl-luckybet-fund-%s", addr))
}

func calcLuckyBetOwnerKey() []byte {
	return []byte("mavl-luckybet-owner")
}

func calcLuckyBetFeeKey() []byte {
	return []byte("mavl-luckybet-bankerfee")
}

func calcLuckyBetVrfKey() []byte {
	return []byte("mavl-luckybet-vrf")
}

func calcLuckyBetRequestKey(requestID string) []byte {
	return []byte(fmt.Sprintf("mavl-luckybet-request-%s", requestID))
}

// localdb index keys, paged by the game index (height*MaxTxsPerBlock+txIndex)
func calcLuckyBetAllKey(index int64) []byte {
	return []byte(fmt.Sprintf("LODB-luckybet-game:%018d", index))
}

func calcLuckyBetAllPrefix() []byte {
	return []byte("LODB-luckybet-game:")
}

func calcLuckyBetStatusKey(status int32, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-luckybet-status:%d:%018d", status, index))
}

func calcLuckyBetStatusPrefix(status int32) []byte {
	return []byte(fmt.Sprintf("LODB-luckybet-status:%d:", status))
}

func calcLuckyBetBankerAllKey(addr string, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-luckybet-bankergame:%s:%018d", addr, index))
}

func calcLuckyBetBankerAllPrefix(addr string) []byte {
	return []byte(fmt.Sprintf("LODB-luckybet-bankergame:%s:", addr))
}

func calcLuckyBetBankerStatusKey(addr string, status int32, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-luckybet-banker:%s:%d:%018d", addr, status, index))
}

func calcLuckyBetBankerStatusPrefix(addr string, status int32) []byte {
	return []byte(fmt.Sprintf("LODB-luckybet-banker:%s:%d:", addr, status))
}
