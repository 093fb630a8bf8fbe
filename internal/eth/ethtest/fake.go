// Package ethtest serves pair storage from memory over an in-process
// JSON-RPC server, so code using ethclient can be tested without a node.
package ethtest

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
)

// FakeEth implements eth_blockNumber and eth_getStorageAt. Populate it
// before dialing; it is not safe to mutate while a client is using it.
type FakeEth struct {
	BlockNumberValue uint64
	// Storage[address][slot] = 32-byte word
	Storage map[common.Address]map[common.Hash][]byte
}

func New(block uint64) *FakeEth {
	return &FakeEth{
		BlockNumberValue: block,
		Storage:          make(map[common.Address]map[common.Hash][]byte),
	}
}

func (f *FakeEth) BlockNumber(ctx context.Context) (hexutil.Uint64, error) {
	return hexutil.Uint64(f.BlockNumberValue), nil
}

func (f *FakeEth) GetStorageAt(ctx context.Context, addr common.Address, position common.Hash, _ gethrpc.BlockNumberOrHash) (hexutil.Bytes, error) {
	if m, ok := f.Storage[addr]; ok {
		if v, ok2 := m[position]; ok2 {
			return hexutil.Bytes(v), nil
		}
	}
	// unset slots read as zero
	return hexutil.Bytes(make([]byte, 32)), nil
}

// SetSlot stores a raw word.
func (f *FakeEth) SetSlot(addr common.Address, slot uint64, word []byte) {
	m, ok := f.Storage[addr]
	if !ok {
		m = make(map[common.Hash][]byte)
		f.Storage[addr] = m
	}
	m[common.BigToHash(new(big.Int).SetUint64(slot))] = word
}

// SetPair lays out token0, token1 and the reserves of a pair at pool.
func (f *FakeEth) SetPair(pool, token0, token1 common.Address, reserve0, reserve1 *big.Int) {
	f.SetSlot(pool, 6, AddressWord(token0))
	f.SetSlot(pool, 7, AddressWord(token1))
	f.SetSlot(pool, 8, PackReserves(reserve0, reserve1, 0))
}

// SetLiquidity stores totalSupply and kLast of a pair.
func (f *FakeEth) SetLiquidity(pool common.Address, totalSupply, kLast *big.Int) {
	f.SetSlot(pool, 0, U256(totalSupply))
	f.SetSlot(pool, 11, U256(kLast))
}

// Dial registers f under the "eth" namespace and returns a client bound to it.
func Dial(t testing.TB, f *FakeEth) *ethclient.Client {
	t.Helper()
	srv := gethrpc.NewServer()
	if err := srv.RegisterName("eth", f); err != nil {
		t.Fatalf("register rpc service: %v", err)
	}
	c := ethclient.NewClient(gethrpc.DialInProc(srv))
	t.Cleanup(func() {
		c.Close()
		srv.Stop()
	})
	return c
}

// U256 left-pads v to a 32-byte word.
func U256(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) > 32 {
		panic("value does not fit in 32 bytes")
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

// PackReserves builds the reserve word: reserve0 in the low 112 bits, then
// reserve1, then the timestamp.
func PackReserves(r0, r1 *big.Int, ts uint32) []byte {
	v := new(big.Int).SetUint64(uint64(ts))
	v.Lsh(v, 112)
	v.Or(v, r1)
	v.Lsh(v, 112)
	v.Or(v, r0)
	return U256(v)
}

// AddressWord right-aligns an address in a 32-byte word.
func AddressWord(addr common.Address) []byte {
	out := make([]byte, 32)
	copy(out[12:], addr.Bytes())
	return out
}
