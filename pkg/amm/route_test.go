package amm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devxmone/brownfi-hackathon/pkg/sdkcore"
)

func TestNewRoute(t *testing.T) {
	t0, t1, t2, t3 := testToken(0), testToken(1), testToken(2), testToken(3)
	p01 := newPair(t, raw(t, t0, 1000), raw(t, t1, 1000))
	p12 := newPair(t, raw(t, t1, 1200), raw(t, t2, 1000))
	p23 := newPair(t, raw(t, t2, 1000), raw(t, t3, 1000))

	r, err := NewRoute([]Pair{p01, p12}, t0.Currency(), t2.Currency())
	require.NoError(t, err)
	require.Len(t, r.Path(), 3)
	require.Equal(t, "T0 > T1 > T2", r.String())
	require.Equal(t, 2, r.Hops())
	require.Equal(t, uint64(testChain), r.ChainID())

	// output first, then input: the walk goes T2 > T1 > T0
	r, err = NewRoute([]Pair{p12, p01}, t2.Currency(), t0.Currency())
	require.NoError(t, err)
	require.Equal(t, "T2 > T1 > T0", r.String())

	_, err = NewRoute(nil, t0.Currency(), t1.Currency())
	require.ErrorIs(t, err, ErrEmptyRoute)
	require.Zero(t, Route{}.ChainID())

	_, err = NewRoute([]Pair{p01}, t2.Currency(), t1.Currency())
	require.ErrorIs(t, err, ErrCurrencyNotInRoute)

	_, err = NewRoute([]Pair{p01}, t0.Currency(), t2.Currency())
	require.ErrorIs(t, err, ErrCurrencyNotInRoute)

	_, err = NewRoute([]Pair{p01, p23}, t0.Currency(), t3.Currency())
	require.ErrorIs(t, err, ErrDisconnectedRoute)

	_, err = NewRoute([]Pair{p01, p01}, t0.Currency(), t0.Currency())
	require.ErrorIs(t, err, ErrDisconnectedRoute)

	// both pairs contain T0 and T1 but the walk ends on T0
	_, err = NewRoute([]Pair{p01, p12}, t1.Currency(), t2.Currency())
	require.ErrorIs(t, err, ErrDisconnectedRoute)
}

func TestRouteNative(t *testing.T) {
	t0 := testToken(0)
	p := newPair(t, raw(t, weth, 1000), raw(t, t0, 2000))

	r, err := NewRoute([]Pair{p}, ether.Currency(), t0.Currency())
	require.NoError(t, err)
	require.True(t, r.Input().IsNative())
	require.True(t, r.Path()[0].Equal(weth))

	mid, err := r.MidPrice()
	require.NoError(t, err)
	require.True(t, mid.Base().IsNative())
	require.Equal(t, "2", mid.ToSignificant(6))

	other := sdkcore.NewNative(1, 18, "ETH", "Ether")
	_, err = NewRoute([]Pair{p}, other.Currency(), t0.Currency())
	require.ErrorIs(t, err, sdkcore.ErrNoWrappedToken)
}

func TestRouteMidPrice(t *testing.T) {
	t0, t1, t2 := testToken(0), testToken(1), testToken(2)
	p02 := newPair(t, raw(t, t0, 1000), raw(t, t2, 1100))
	p12 := newPair(t, raw(t, t1, 1200), raw(t, t2, 1000))

	r, err := NewRoute([]Pair{p02, p12}, t0.Currency(), t1.Currency())
	require.NoError(t, err)

	mid, err := r.MidPrice()
	require.NoError(t, err)
	require.True(t, mid.Base().Equal(t0.Currency()))
	require.True(t, mid.QuoteCurrency().Equal(t1.Currency()))
	// 1.1 T2 per T0, then 1.2 T1 per T2
	require.Equal(t, "1.32", mid.ToSignificant(6))

	inv, err := NewRoute([]Pair{p12, p02}, t1.Currency(), t0.Currency())
	require.NoError(t, err)
	invMid, err := inv.MidPrice()
	require.NoError(t, err)
	require.Equal(t, "0.757576", invMid.ToSignificant(6))
}
