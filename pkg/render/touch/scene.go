package touch

import (
	"github.com/chazu/whorl/pkg/selection"
)

// Tile is one flat selectable target on the active ring.
type Tile struct {
	Name      string `json:"name"`
	Label     string `json:"label"` // translated display name
	FillStart string `json:"fillStart"`
	FillEnd   string `json:"fillEnd"`
	Pending   bool   `json:"pending"` // tertiary pick awaiting confirm
}

// Scene is the touch renderer's view model: the active ring as a tile
// grid plus the controls around it.
type Scene struct {
	Ring       string         `json:"ring"`
	Columns    int            `json:"columns"`
	Tiles      []Tile         `json:"tiles"`
	Path       selection.Path `json:"path"`
	CanBack    bool           `json:"canBack"`
	CanConfirm bool           `json:"canConfirm"`
	DiameterPx float64        `json:"diameterPx"`
	State      string         `json:"state"`
	Intro      bool           `json:"intro"`
}

// Scene computes the current view model.
func (r *Renderer) Scene() any {
	path := r.machine.Path()
	siblings := r.opts.Taxonomy.SiblingsAt(r.viewport.ActiveRing, path.Core, path.Primary)

	tiles := make([]Tile, len(siblings))
	for i, n := range siblings {
		start, end := n.Fill()
		tiles[i] = Tile{
			Name:      n.Name,
			Label:     r.opts.Locale.Name(n.Name),
			FillStart: start.Hex(),
			FillEnd:   end.Hex(),
			Pending:   n.Name == r.pending,
		}
	}

	return Scene{
		Ring:       r.viewport.ActiveRing.String(),
		Columns:    columnsFor(len(tiles)),
		Tiles:      tiles,
		Path:       path,
		CanBack:    r.machine.State() != selection.Empty || r.pending != "",
		CanConfirm: r.pending != "",
		DiameterPx: r.viewport.DiameterPx,
		State:      r.machine.State().String(),
		Intro:      r.opts.ShowIntro && r.machine.State() == selection.Empty,
	}
}

// columnsFor picks the grid width: two columns keeps tiles thumb-sized for
// short lists, three stops long lists from scrolling forever.
func columnsFor(n int) int {
	if n > 4 {
		return 3
	}
	return 2
}
