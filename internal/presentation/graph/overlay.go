package graph

import (
	"strconv"

	"github.com/aretw0/lingo/pkg/domain"
)

// Overlay contains traversal data to highlight on the graph.
type Overlay struct {
	Path domain.Path
}

// PathOverlay highlights the states and edges of a matched path.
func PathOverlay(p domain.Path) *Overlay {
	return &Overlay{Path: p.Clone()}
}

func (o *Overlay) visited() map[int]bool {
	set := make(map[int]bool)
	if o == nil {
		return set
	}
	for _, s := range o.Path {
		set[s] = true
	}
	return set
}

func (o *Overlay) current() int {
	if o == nil || len(o.Path) == 0 {
		return -1
	}
	return o.Path[len(o.Path)-1]
}

// steps returns the consecutive (from, to) pairs walked by the path.
func (o *Overlay) steps() map[[2]int]bool {
	set := make(map[[2]int]bool)
	if o == nil {
		return set
	}
	for i := 1; i < len(o.Path); i++ {
		set[[2]int{o.Path[i-1], o.Path[i]}] = true
	}
	return set
}

func stateID(i int) string {
	return "q" + strconv.Itoa(i)
}
