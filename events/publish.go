package events

import (
	"context"

	lifecycle "github.com/boz/go-lifecycle"
	sdkclient "github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"golang.org/x/sync/errgroup"

	abci "github.com/cometbft/cometbft/abci/types"
	cmclient "github.com/cometbft/cometbft/rpc/client"
	ctypes "github.com/cometbft/cometbft/rpc/core/types"
	cmtypes "github.com/cometbft/cometbft/types"

	"github.com/passmint-network/node/pubsub"
	ptypes "github.com/passmint-network/node/x/passmint/types"
)

type events struct {
	ctx    context.Context
	group  *errgroup.Group
	ebus   cmclient.EventsClient
	client sdkclient.CometRPC
	bus    pubsub.Bus
	lc     lifecycle.Lifecycle
}

// Service tails blocks from a node and publishes decoded referral mint
// events to a message bus.
type Service interface {
	// Shutdown gracefully stops the service. Once called, the service
	// unsubscribes from the node and completes any pending publishes.
	Shutdown()
}

// NewEvents subscribes to new block headers on the given node and starts
// publishing mint records found in their transaction results. The name is
// used as a prefix for the node-side subscription identifier.
func NewEvents(pctx context.Context, node sdkclient.CometRPC, name string, bus pubsub.Bus) (Service, error) {
	group, ctx := errgroup.WithContext(pctx)

	ev := &events{
		ctx:    ctx,
		group:  group,
		ebus:   node.(cmclient.EventsClient),
		client: node,
		lc:     lifecycle.New(),
		bus:    bus,
	}

	const (
		queuesz = 1000
	)

	var blkHeaderName = name + "-blk-hdr"

	blkch, err := ev.ebus.Subscribe(ctx, blkHeaderName, blkHeaderQuery().String(), queuesz)
	if err != nil {
		return nil, err
	}

	startch := make(chan struct{}, 1)

	group.Go(func() error {
		ev.lc.WatchContext(ctx)

		return ev.lc.Error()
	})

	group.Go(func() error {
		return ev.run(blkHeaderName, blkch, startch)
	})

	select {
	case <-pctx.Done():
		return nil, pctx.Err()
	case <-startch:
		return ev, nil
	}
}

func (e *events) Shutdown() {
	_, stopped := <-e.lc.Done()
	if stopped {
		return
	}

	e.lc.Shutdown(nil)

	_ = e.group.Wait()
}

func (e *events) run(subs string, ch <-chan ctypes.ResultEvent, startch chan<- struct{}) error {
	defer func() {
		_ = e.ebus.UnsubscribeAll(e.ctx, subs)

		e.lc.ShutdownCompleted()
	}()

	startch <- struct{}{}

loop:
	for {
		select {
		case err := <-e.lc.ShutdownRequest():
			e.lc.ShutdownInitiated(err)
			break loop
		case ev := <-ch:
			// nolint: gocritic
			switch evt := ev.Data.(type) {
			case cmtypes.EventDataNewBlockHeader:
				e.processBlock(evt.Header.Height)
			}
		}
	}

	return e.ctx.Err()
}

func (e *events) processBlock(height int64) {
	blkResults, err := e.client.BlockResults(e.ctx, &height)
	if err != nil {
		return
	}

	for _, tx := range blkResults.TxsResults {
		if tx == nil {
			continue
		}

		for _, ev := range tx.Events {
			if mev, ok := processEvent(ev); ok {
				if err := e.bus.Publish(mev); err != nil {
					return
				}
			}
		}
	}
}

// processEvent decodes a typed mint event from its ABCI representation.
// Events of any other type are discarded.
func processEvent(bev abci.Event) (interface{}, bool) {
	pev, err := sdk.ParseTypedEvent(bev)
	if err != nil {
		return nil, false
	}

	switch ev := pev.(type) {
	case *ptypes.EventReferralMint:
		return *ev, true
	default:
		return nil, false
	}
}
