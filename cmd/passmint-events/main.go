package main

import (
	"github.com/passmint-network/node/cmd/common"
	ecmd "github.com/passmint-network/node/events/cmd"
)

func main() {
	_ = common.HandleError(ecmd.EventCmd().Execute())
}
