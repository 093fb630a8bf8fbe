package eth

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// ErrPairNotDeployed is returned when no pair contract lives at an address.
var ErrPairNotDeployed = errors.New("pair not deployed")

// Storage slots of a V2 pair. The ERC20 part comes first:
//
//	0 totalSupply, 1 balanceOf, 2 allowance, 3 DOMAIN_SEPARATOR, 4 nonces
//
// followed by the pair itself:
//
//	5 factory, 6 token0, 7 token1,
//	8 reserve0 (uint112) | reserve1 (uint112) | blockTimestampLast (uint32),
//	9 price0CumulativeLast, 10 price1CumulativeLast, 11 kLast
const (
	slotTotalSupply = 0
	slotToken0      = 6
	slotToken1      = 7
	slotReserves    = 8
	slotKLast       = 11
)

// StorageClient is the subset of ethclient.Client the reader needs.
type StorageClient interface {
	BlockNumber(ctx context.Context) (uint64, error)
	StorageAt(ctx context.Context, account common.Address, key common.Hash, blockNumber *big.Int) ([]byte, error)
}

// PairState is a pair's storage at one block.
type PairState struct {
	Address            common.Address
	Block              *big.Int
	Token0             common.Address
	Token1             common.Address
	Reserve0           *big.Int
	Reserve1           *big.Int
	BlockTimestampLast uint32
}

// LiquidityState is the LP supply side of a pair at one block.
type LiquidityState struct {
	TotalSupply *big.Int
	KLast       *big.Int
}

// PairReader reads pair state with eth_getStorageAt.
type PairReader struct {
	client StorageClient
}

func NewPairReader(client StorageClient) *PairReader {
	return &PairReader{client: client}
}

// LatestBlock returns the current head so several reads see one state.
func (r *PairReader) LatestBlock(ctx context.Context) (*big.Int, error) {
	bn, err := r.client.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("block number: %w", err)
	}
	return new(big.Int).SetUint64(bn), nil
}

func (r *PairReader) readSlot(ctx context.Context, pool common.Address, block *big.Int, slot uint64) ([]byte, error) {
	key := common.BigToHash(new(big.Int).SetUint64(slot))
	b, err := r.client.StorageAt(ctx, pool, key, block)
	if err != nil {
		return nil, fmt.Errorf("storageAt slot %d (pool %s, block %s): %w", slot, pool.Hex(), block, err)
	}
	return b, nil
}

// ReadPair loads token0, token1 and the packed reserves of pool. An address
// with an empty token0 slot is reported as ErrPairNotDeployed.
func (r *PairReader) ReadPair(ctx context.Context, pool common.Address, block *big.Int) (PairState, error) {
	b0, err := r.readSlot(ctx, pool, block, slotToken0)
	if err != nil {
		return PairState{}, err
	}
	token0 := common.BytesToAddress(b0)
	if token0 == (common.Address{}) {
		return PairState{}, fmt.Errorf("%w: %s", ErrPairNotDeployed, pool.Hex())
	}

	b1, err := r.readSlot(ctx, pool, block, slotToken1)
	if err != nil {
		return PairState{}, err
	}

	br, err := r.readSlot(ctx, pool, block, slotReserves)
	if err != nil {
		return PairState{}, err
	}
	reserve0, reserve1, ts := parseReserves(br)

	return PairState{
		Address:            pool,
		Block:              block,
		Token0:             token0,
		Token1:             common.BytesToAddress(b1),
		Reserve0:           reserve0,
		Reserve1:           reserve1,
		BlockTimestampLast: ts,
	}, nil
}

// ReadPairs reads every pool concurrently at the same block. Pools that are
// not deployed are skipped; any other failure aborts the batch.
func (r *PairReader) ReadPairs(ctx context.Context, pools []common.Address, block *big.Int) ([]PairState, error) {
	states := make([]PairState, 0, len(pools))
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)

	for _, pool := range pools {
		wg.Add(1)
		go func(pool common.Address) {
			defer wg.Done()
			st, err := r.ReadPair(ctx, pool, block)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case errors.Is(err, ErrPairNotDeployed):
			case err != nil:
				if firstErr == nil {
					firstErr = err
				}
			default:
				states = append(states, st)
			}
		}(pool)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return states, nil
}

// ReadLiquidity loads totalSupply and kLast of pool.
func (r *PairReader) ReadLiquidity(ctx context.Context, pool common.Address, block *big.Int) (LiquidityState, error) {
	ts, err := r.readSlot(ctx, pool, block, slotTotalSupply)
	if err != nil {
		return LiquidityState{}, err
	}
	k, err := r.readSlot(ctx, pool, block, slotKLast)
	if err != nil {
		return LiquidityState{}, err
	}
	return LiquidityState{
		TotalSupply: new(big.Int).SetBytes(ts),
		KLast:       new(big.Int).SetBytes(k),
	}, nil
}

// parseReserves unpacks the reserves word. The layout, from the low bits up, is
//
//	[ 112 bits reserve0 | 112 bits reserve1 | 32 bits timestamp ]
//
// read as a big-endian 256-bit integer.
func parseReserves(b []byte) (reserve0, reserve1 *big.Int, timestamp uint32) {
	v := new(big.Int).SetBytes(b)
	one := big.NewInt(1)
	mask112 := new(big.Int).Sub(new(big.Int).Lsh(one, 112), one)

	reserve0 = new(big.Int).And(v, mask112)
	tmp := new(big.Int).Rsh(v, 112)
	reserve1 = new(big.Int).And(tmp, mask112)
	timestamp = uint32(new(big.Int).Rsh(v, 224).Uint64())
	return
}
