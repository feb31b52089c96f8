package locate

import (
	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/planarerr"
	"github.com/vkatalov/planargears/tree"
)

// Direction is one step taken while descending a chains search tree.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirPrev
	DirNext
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirPrev:
		return "prev"
	case DirNext:
		return "next"
	default:
		return "unknown"
	}
}

// Bracket names the pair of chains that bracket a query point, or that
// coincide with it when the point lies exactly on a chain. Either side
// is nil when the point falls outside the leftmost or rightmost chain.
type Bracket struct {
	Left, Right Chain
}

// Query descends t from the root, evaluating Turn against point at
// each visited node, and returns the sequence of directions taken
// together with the bracketing chain pair (spec.md §4.F).
func Query(t *tree.Tree, point geom.Point) ([]Direction, Bracket, error) {
	inorder := t.TraverseInorder()
	if len(inorder) == 0 {
		return nil, Bracket{}, planarerr.NewValidationFailure("locate.Query", "empty chains search tree")
	}
	leftmost, rightmost := inorder[0], inorder[len(inorder)-1]

	var path []Direction
	node := t.Root
	for !node.IsLeaf() {
		chain := node.Data.(Chain)
		turn, err := Turn(chain, point)
		if err != nil {
			return nil, Bracket{}, err
		}
		switch turn {
		case geom.Straight:
			return path, Bracket{Left: chain, Right: chain}, nil
		case geom.Left:
			if node == leftmost {
				return path, Bracket{Left: nil, Right: chain}, nil
			}
			if node.Left == nil {
				path = append(path, DirPrev)
				return path, Bracket{Left: node.Prev.Data.(Chain), Right: chain}, nil
			}
			path = append(path, DirLeft)
			node = node.Left
		default:
			if node == rightmost {
				return path, Bracket{Left: chain, Right: nil}, nil
			}
			if node.Right == nil {
				path = append(path, DirNext)
				return path, Bracket{Left: chain, Right: node.Next.Data.(Chain)}, nil
			}
			path = append(path, DirRight)
			node = node.Right
		}
	}

	chain := node.Data.(Chain)
	turn, err := Turn(chain, point)
	if err != nil {
		return nil, Bracket{}, err
	}
	switch turn {
	case geom.Left:
		if node == leftmost {
			return path, Bracket{Left: nil, Right: chain}, nil
		}
		path = append(path, DirPrev)
		return path, Bracket{Left: node.Prev.Data.(Chain), Right: chain}, nil
	case geom.Right:
		if node == rightmost {
			return path, Bracket{Left: chain, Right: nil}, nil
		}
		path = append(path, DirNext)
		return path, Bracket{Left: chain, Right: node.Next.Data.(Chain)}, nil
	default:
		return path, Bracket{Left: chain, Right: chain}, nil
	}
}
