package cmd

import (
	"context"
	"encoding/json"
	"os"

	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	sdkmath "cosmossdk.io/math"

	"github.com/passmint-network/node/cmd/common"
	"github.com/passmint-network/node/denom"
	"github.com/passmint-network/node/events"
	"github.com/passmint-network/node/pubsub"
	types "github.com/passmint-network/node/x/passmint/types"
)

const flagMinNative = "min-native"

// EventCmd prints out referral mint records in real time
func EventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Prints out passmint referral mint records in real time",
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.RunForever(func(ctx context.Context) error {
				return getEvents(ctx, cmd, args)
			})
		},
	}

	cmd.Flags().String(flags.FlagNode, "tcp://localhost:26657", "The node address")
	_ = viper.BindPFlag(flags.FlagNode, cmd.Flags().Lookup(flags.FlagNode))

	cmd.Flags().String(flagMinNative, "", "Only print native-currency records paid at least this amount, e.g. 1.5PASS")
	_ = viper.BindPFlag(flagMinNative, cmd.Flags().Lookup(flagMinNative))

	return cmd
}

func getEvents(ctx context.Context, _ *cobra.Command, _ []string) error {
	minNative := sdkmath.ZeroInt()
	if val := viper.GetString(flagMinNative); val != "" {
		base, err := denom.ToBase(val)
		if err != nil {
			return err
		}
		minNative = sdkmath.NewIntFromUint64(base)
	}

	node, err := rpchttp.New(viper.GetString(flags.FlagNode), "/websocket")
	if err != nil {
		return err
	}

	if err = node.Start(); err != nil {
		return err
	}
	defer func() {
		_ = node.Stop()
	}()

	bus := pubsub.NewBus()
	defer bus.Close()

	subscriber, err := bus.Subscribe()
	if err != nil {
		return err
	}

	group, ctx := errgroup.WithContext(ctx)

	svc, err := events.NewEvents(ctx, node, "passmint-cli", bus)
	if err != nil {
		return err
	}
	defer svc.Shutdown()

	group.Go(func() error {
		enc := json.NewEncoder(os.Stdout)

		for {
			select {
			case <-subscriber.Done():
				return nil
			case ev := <-subscriber.Events():
				if mev, ok := ev.(types.EventReferralMint); ok {
					if mev.CurrencyLabel != types.CurrencyLabelUSD && mev.AmountPaid.LT(minNative) {
						continue
					}
				}

				if err := enc.Encode(ev); err != nil {
					return err
				}
			}
		}
	})

	return group.Wait()
}
