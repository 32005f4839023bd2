package events

import (
	"fmt"

	cmpubsub "github.com/cometbft/cometbft/libs/pubsub"
	cmquery "github.com/cometbft/cometbft/libs/pubsub/query"
	cmtypes "github.com/cometbft/cometbft/types"
)

func blkHeaderQuery() cmpubsub.Query {
	return cmquery.MustCompile(
		fmt.Sprintf("%s='%s'", cmtypes.EventTypeKey, cmtypes.EventNewBlockHeader))
}
