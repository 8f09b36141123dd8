// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oracle answers the randomness requests the luckybet executor
// emits. It follows the chain over grpc, watches request receipt logs and
// submits Fulfill transactions from the configured oracle address.
package oracle

import (
	"bytes"
	"context"
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/common/address"
	"github.com/33cn/chain33/common/crypto"
	log "github.com/33cn/chain33/common/log/log15"
	"github.com/33cn/chain33/types"
	pty "github.com/game33/luckybet/types"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
)

var olog = log.New("module", "luckybet.oracle")

const scanBatch = 100

// Responder watches request logs and answers them
type Responder struct {
	cfg    *Config
	conn   *grpc.ClientConn
	client types.Chain33Client
	priv   crypto.PrivKey
	height int64
}

// New connect to the node and load the signing key
func New(cfg *Config) (*Responder, error) {
	conn, err := grpc.Dial(cfg.GrpcAddr, grpc.WithInsecure())
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", cfg.GrpcAddr)
	}
	c, err := crypto.New(types.GetSignName("", types.SECP256K1))
	if err != nil {
		return nil, errors.Wrap(err, "load crypto")
	}
	keyBytes, err := common.FromHex(cfg.PrivKey)
	if err != nil {
		return nil, errors.Wrap(err, "decode privKey")
	}
	priv, err := c.PrivKeyFromBytes(keyBytes)
	if err != nil {
		return nil, errors.Wrap(err, "parse privKey")
	}
	return &Responder{
		cfg:    cfg,
		conn:   conn,
		client: types.NewChain33Client(conn),
		priv:   priv,
		height: cfg.StartHeight,
	}, nil
}

// Close release the grpc connection
func (r *Responder) Close() {
	if r.conn != nil {
		r.conn.Close()
	}
}

// Run poll until the context is done
func (r *Responder) Run(ctx context.Context) error {
	olog.Info("oracle started", "grpc", r.cfg.GrpcAddr, "exec", r.cfg.ExecName, "from", r.height)
	ticker := time.NewTicker(time.Duration(r.cfg.PollSeconds) * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.scanOnce(ctx); err != nil {
				olog.Error("scan", "err", err)
			}
		}
	}
}

func (r *Responder) scanOnce(ctx context.Context) error {
	header, err := r.client.GetLastHeader(ctx, &types.ReqNil{})
	if err != nil {
		return errors.Wrap(err, "last header")
	}
	for r.height <= header.Height {
		end := r.height + scanBatch - 1
		if end > header.Height {
			end = header.Height
		}
		reply, err := r.client.GetBlocks(ctx, &types.ReqBlocks{
			Start:    r.height,
			End:      end,
			IsDetail: true,
			Pid:      []string{""},
		})
		if err != nil {
			return errors.Wrapf(err, "blocks [%d,%d]", r.height, end)
		}
		var details types.BlockDetails
		if err := types.Decode(reply.Msg, &details); err != nil {
			return errors.Wrap(err, "decode blocks")
		}
		for _, detail := range details.Items {
			r.handleBlock(ctx, detail)
		}
		r.height = end + 1
	}
	return nil
}

func (r *Responder) handleBlock(ctx context.Context, detail *types.BlockDetail) {
	execer := []byte(r.cfg.ExecName)
	for i, tx := range detail.Block.Txs {
		if !bytes.HasSuffix(tx.Execer, execer) {
			continue
		}
		if i >= len(detail.Receipts) || detail.Receipts[i].Ty != types.ExecOk {
			continue
		}
		for _, item := range detail.Receipts[i].Logs {
			if item.Ty != pty.TyLogLuckyBetRequest {
				continue
			}
			var req pty.ReceiptLuckyBetRequest
			if err := types.Decode(item.Log, &req); err != nil {
				olog.Error("decode request log", "height", detail.Block.Height, "err", err)
				continue
			}
			if err := r.fulfill(ctx, &req); err != nil {
				olog.Error("fulfill", "gameId", req.GameId, "requestId", req.RequestId, "err", err)
				continue
			}
			olog.Info("fulfilled", "gameId", req.GameId, "requestId", req.RequestId)
		}
	}
}

// randomWord derive a deterministic word from the signing key and the
// request id, so re-scans answer a request identically
func (r *Responder) randomWord(requestID string) (int64, error) {
	msg, err := common.FromHex(requestID)
	if err != nil {
		return 0, errors.Wrap(err, "decode requestId")
	}
	sig := r.priv.Sign(common.Sha256(msg))
	hash := common.Sha256(sig.Bytes())
	return int64(binary.BigEndian.Uint64(hash[:8]) >> 1), nil
}

func (r *Responder) fulfill(ctx context.Context, req *pty.ReceiptLuckyBetRequest) error {
	word, err := r.randomWord(req.RequestId)
	if err != nil {
		return err
	}
	action := &pty.LuckyBetAction{
		Ty: pty.LuckyBetActionFulfill,
		Value: &pty.LuckyBetAction_Fulfill{Fulfill: &pty.LuckyBetFulfill{
			RequestId:   req.RequestId,
			RandomWords: []int64{word},
		}},
	}
	tx := &types.Transaction{
		Execer:  []byte(r.cfg.ExecName),
		Payload: types.Encode(action),
		Fee:     r.cfg.TxFee,
		Nonce:   rand.Int63(),
		To:      address.ExecAddress(r.cfg.ExecName),
	}
	tx.Sign(types.SECP256K1, r.priv)
	reply, err := r.client.SendTransaction(ctx, tx)
	if err != nil {
		return errors.Wrap(err, "send tx")
	}
	if !reply.IsOk {
		return errors.Errorf("tx rejected: %s", string(reply.GetMsg()))
	}
	return nil
}
