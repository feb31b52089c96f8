package chainweight

import (
	"fmt"

	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/planarerr"
)

// errNoAvailableOutward reports a node reached mid-chain with no
// available (weight > 0) outward edge short of the graph's maximum.
// Regularity plus balancing guarantee this never happens; reaching it
// signals a bug in the caller's input or an earlier step's invariant.
func errNoAvailableOutward(node geom.Point) error {
	return planarerr.NewDomainFailure("chainweight.ExtractChains", fmt.Sprintf("node %s has no available outward edge before the maximum", node))
}
