// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/common/crypto"
	"github.com/33cn/chain33/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "oracle.toml")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
grpcAddr = "localhost:8802"
privKey = "CC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "localhost:8802", cfg.GrpcAddr)
	assert.Equal(t, "luckybet", cfg.ExecName)
	assert.Equal(t, int64(2), cfg.PollSeconds)
	assert.Equal(t, int64(1e6), cfg.TxFee)
}

func TestLoadConfigMissingKey(t *testing.T) {
	path := writeConfig(t, `grpcAddr = "localhost:8802"`)
	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(os.TempDir(), "does-not-exist.toml"))
	require.Error(t, err)
}

func testResponder(t *testing.T) *Responder {
	c, err := crypto.New(types.GetSignName("", types.SECP256K1))
	require.NoError(t, err)
	keyBytes, err := common.FromHex("CC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")
	require.NoError(t, err)
	priv, err := c.PrivKeyFromBytes(keyBytes)
	require.NoError(t, err)
	return &Responder{priv: priv}
}

func TestRandomWordDeterministic(t *testing.T) {
	r := testResponder(t)
	reqID := "0x8040aa8c8e2bd4a67c7b224dcf927360b479515b165686c4b7b3a27a77fbf057"
	w1, err := r.randomWord(reqID)
	require.NoError(t, err)
	w2, err := r.randomWord(reqID)
	require.NoError(t, err)
	assert.Equal(t, w1, w2)
	assert.True(t, w1 >= 0)

	other, err := r.randomWord("0x1140aa8c8e2bd4a67c7b224dcf927360b479515b165686c4b7b3a27a77fbf057")
	require.NoError(t, err)
	assert.NotEqual(t, w1, other)
}
