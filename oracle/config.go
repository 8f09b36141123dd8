// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config daemon settings, loaded from a TOML file
type Config struct {
	// grpc endpoint of the chain node
	GrpcAddr string `toml:"grpcAddr"`
	// executor to watch, the para prefix included when relevant
	ExecName string `toml:"execName"`
	// hex encoded secp256k1 key of the configured oracle address
	PrivKey string `toml:"privKey"`
	// poll interval in seconds
	PollSeconds int64 `toml:"pollSeconds"`
	// first height to scan on a fresh start
	StartHeight int64 `toml:"startHeight"`
	// fee of the fulfill tx
	TxFee int64 `toml:"txFee"`
}

// LoadConfig read and validate the daemon config
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	if cfg.GrpcAddr == "" {
		return nil, errors.New("grpcAddr not set")
	}
	if cfg.PrivKey == "" {
		return nil, errors.New("privKey not set")
	}
	if cfg.ExecName == "" {
		cfg.ExecName = "luckybet"
	}
	if cfg.PollSeconds <= 0 {
		cfg.PollSeconds = 2
	}
	if cfg.TxFee <= 0 {
		cfg.TxFee = 1e6
	}
	return &cfg, nil
}
