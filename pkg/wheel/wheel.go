package wheel

import (
	"github.com/chazu/whorl/pkg/selection"
	"github.com/chazu/whorl/pkg/taxonomy"
)

// Policy selects which rings a render pass emits.
type Policy int

const (
	// PolicyAlwaysVisible emits all three rings at once, with segments
	// outside the current selection path flagged Dimmed. Used by the
	// pointer renderer.
	PolicyAlwaysVisible Policy = iota
	// PolicyProgressive emits only the active ring for the current
	// drill-down depth. Used by the touch renderer.
	PolicyProgressive
)

// span is an angular interval with Start < End.
type span struct {
	start, end float64
}

// subdivide splits parent evenly among n children in declared order. The
// last slot's end is pinned to the parent's end so the ring tiles the
// parent span exactly despite float division. For RTL layouts child i takes
// slot n-1-i, mirroring reading order.
func subdivide(parent span, n int, dir Direction) []span {
	if n <= 0 {
		return nil
	}
	width := (parent.end - parent.start) / float64(n)
	slots := make([]span, n)
	for k := 0; k < n; k++ {
		s := span{
			start: parent.start + float64(k)*width,
			end:   parent.start + float64(k+1)*width,
		}
		if k == n-1 {
			s.end = parent.end
		}
		slots[k] = s
	}
	if dir == DirectionRTL {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			slots[i], slots[j] = slots[j], slots[i]
		}
	}
	return slots
}

// Compute derives the drawable segments for one render pass. It is a pure
// function of (tree, sel, layout, policy): no caching, no side effects.
// Nodes with no children simply emit no child segments; the path is
// terminal there and no division by zero can occur.
func Compute(tree *taxonomy.Tree, sel selection.Path, layout Layout, policy Policy) []Segment {
	if tree == nil || tree.CoreCount() == 0 {
		return nil
	}

	full := span{start: angleBias, end: angleBias + fullCircle}
	cores := tree.Roots()
	coreSlots := subdivide(full, len(cores), layout.Direction)

	var segs []Segment
	for i := range cores {
		core := &cores[i]
		coreSpan := coreSlots[i]

		if policy == PolicyAlwaysVisible || sel.Core == "" {
			segs = append(segs, build(layout, 0, core, core.Name, "", coreSpan, dimCore(sel, core.Name)))
		}

		if policy == PolicyAlwaysVisible {
			segs = append(segs, alwaysChildren(layout, sel, core, coreSpan)...)
			continue
		}

		// Progressive: only the active ring of the chosen branch.
		if sel.Core != core.Name {
			continue
		}
		primarySlots := subdivide(coreSpan, len(core.Children), layout.Direction)
		for j := range core.Children {
			primary := &core.Children[j]
			if sel.Primary == "" {
				segs = append(segs, build(layout, 1, primary, core.Name, "", primarySlots[j], false))
				continue
			}
			if sel.Primary != primary.Name {
				continue
			}
			tertiarySlots := subdivide(primarySlots[j], len(primary.Children), layout.Direction)
			for k := range primary.Children {
				leaf := &primary.Children[k]
				segs = append(segs, build(layout, 2, leaf, core.Name, primary.Name, tertiarySlots[k], false))
			}
		}
	}
	return segs
}

// alwaysChildren emits the primary and tertiary segments of one core for
// the always-visible policy.
func alwaysChildren(layout Layout, sel selection.Path, core *taxonomy.Node, coreSpan span) []Segment {
	var segs []Segment
	primarySlots := subdivide(coreSpan, len(core.Children), layout.Direction)
	for j := range core.Children {
		primary := &core.Children[j]
		segs = append(segs, build(layout, 1, primary, core.Name, "", primarySlots[j], dimPrimary(sel, core.Name, primary.Name)))

		tertiarySlots := subdivide(primarySlots[j], len(primary.Children), layout.Direction)
		for k := range primary.Children {
			leaf := &primary.Children[k]
			segs = append(segs, build(layout, 2, leaf, core.Name, primary.Name, tertiarySlots[k], dimTertiary(sel, core.Name, primary.Name, leaf.Name)))
		}
	}
	return segs
}

// Dimming rules for the always-visible policy: a segment renders at full
// strength only while it could still be part of the final path. Deeper
// rings start dimmed until their parent is chosen.

func dimCore(sel selection.Path, name string) bool {
	return sel.Core != "" && sel.Core != name
}

func dimPrimary(sel selection.Path, core, name string) bool {
	if sel.Core != core {
		return true
	}
	return sel.Primary != "" && sel.Primary != name
}

func dimTertiary(sel selection.Path, core, primary, name string) bool {
	if sel.Core != core || sel.Primary != primary {
		return true
	}
	return sel.Tertiary != "" && sel.Tertiary != name
}

// build assembles one Segment from a node and its angular slot.
func build(layout Layout, ring int, node *taxonomy.Node, core, primary string, sp span, dimmed bool) Segment {
	inner, outer := layout.band(ring)
	fillStart, fillEnd := node.Fill()
	if dimmed {
		fillStart = fillStart.Dimmed()
		fillEnd = fillEnd.Dimmed()
	}

	seg := Segment{
		Ring:        taxonomy.Level(ring),
		Core:        core,
		Primary:     primary,
		Name:        node.Name,
		StartAngle:  sp.start,
		EndAngle:    sp.end,
		InnerRadius: inner,
		OuterRadius: outer,
		FillStart:   fillStart.Hex(),
		FillEnd:     fillEnd.Hex(),
		Dimmed:      dimmed,
	}
	seg.Path = AnnularSector(layout.CenterX, layout.CenterY, inner, outer, sp.start, sp.end).SVGPath()
	seg.LabelX, seg.LabelY, seg.LabelRotation = labelFor(layout, inner, outer, seg.MidAngle())
	return seg
}
