package libdiff

import "github.com/xmldiffs/xmldiffs/ir"

// children aligns the two sibling lists of a matched element pair.
//
// Siblings are partitioned by identity-key and aligned positionally
// within each partition (old[0]<->new[0], old[1]<->new[1], ...): repeated
// same-tag siblings match in left-to-right occurrence order, never by
// content similarity.  Surplus nodes become Removed/Added, matched
// element pairs recurse, matched text pairs compare by string equality.
// A matched element whose subtree is unchanged but whose rank among the
// matched siblings shifted is reported as Moved.  A sole Removed/Added
// surplus pair differing only in the element's own name collapses into
// one Renamed entry.
//
// Emission follows new-tree document order; Removed entries surface at
// the point their old position maps to under the alignment.
func (d *differ) children(from, to *ir.Node, path ir.Path) {
	oldPart := partitionIndexes(from.Children)
	newPart := partitionIndexes(to.Children)

	oldByKey := make(map[ir.Key][]int)
	for i, c := range from.Children {
		k := c.Key()
		oldByKey[k] = append(oldByKey[k], i)
	}

	// partner mapping: new child j matches oldByKey[key][newPart[j]]
	// when that occurrence exists
	partnerOf := make([]int, len(to.Children))
	oldMatched := make([]bool, len(from.Children))
	for j, c := range to.Children {
		k := c.Key()
		if p := newPart[j]; p < len(oldByKey[k]) {
			partnerOf[j] = oldByKey[k][p]
			oldMatched[partnerOf[j]] = true
		} else {
			partnerOf[j] = -1
		}
	}

	// ranks among matched siblings, and removal anchors: a removed old
	// child surfaces after the matched pairs that precede it in old
	// order have been processed
	oldRank := make([]int, len(from.Children))
	var removed []removedChild
	rank := 0
	for i := range from.Children {
		if oldMatched[i] {
			oldRank[i] = rank
			rank++
		} else {
			removed = append(removed, removedChild{index: i, anchor: rank})
		}
	}

	renameOld, renameNew := d.renameCandidate(from, to, removed, partnerOf)

	ri := 0
	matchedSeen := 0
	flush := func() {
		for ri < len(removed) && removed[ri].anchor == matchedSeen {
			oi := removed[ri].index
			ri++
			if oi == renameOld {
				continue
			}
			oc := from.Children[oi]
			d.emit(Entry{Kind: Removed, Path: path.Child(childStep(oc, oldPart[oi]))})
		}
	}

	newRank := 0
	for j, nc := range to.Children {
		flush()
		p := path.Child(childStep(nc, newPart[j]))
		oi := partnerOf[j]
		if oi < 0 {
			if j == renameNew {
				oldName := from.Children[renameOld].Name.String()
				newName := nc.Name.String()
				d.emit(Entry{Kind: Renamed, Path: p, Old: &oldName, New: &newName})
			} else {
				d.emit(Entry{Kind: Added, Path: p})
			}
			continue
		}
		oc := from.Children[oi]
		switch nc.Type {
		case ir.TextType:
			if oc.Text != nc.Text {
				ov, nv := oc.Text, nc.Text
				d.emit(Entry{Kind: TextChanged, Path: p, Old: &ov, New: &nv})
			} else if oldRank[oi] != newRank {
				d.emit(Entry{Kind: Moved, Path: p, OldIndex: oi, NewIndex: j})
			}
		case ir.ElementType:
			checkElement(nc)
			if oc.Hash() == nc.Hash() && ir.Equal(oc, nc) {
				// content unchanged; only a rank shift across partition
				// boundaries is left to report
				if oldRank[oi] != newRank {
					d.emit(Entry{Kind: Moved, Path: p, OldIndex: oi, NewIndex: j})
				}
			} else {
				d.element(oc, nc, p)
			}
		default:
			panic("libdiff: contract violation: non-canonical node kind " + nc.Type.String())
		}
		matchedSeen++
		newRank++
	}
	flush()
}

type removedChild struct {
	index  int
	anchor int
}

// partitionIndexes assigns each child its occurrence index within the
// siblings sharing its identity-key.
func partitionIndexes(children []*ir.Node) []int {
	seen := make(map[ir.Key]int, len(children))
	res := make([]int, len(children))
	for i, c := range children {
		k := c.Key()
		res[i] = seen[k]
		seen[k]++
	}
	return res
}

func childStep(n *ir.Node, part int) ir.Step {
	return ir.Step{Name: n.Name, Text: n.Type != ir.ElementType, Index: part}
}

// renameCandidate detects the one unambiguous rename shape: exactly one
// surplus removed element and one surplus added element under the same
// parent, equal in everything but their own name.
func (d *differ) renameCandidate(from, to *ir.Node, removed []removedChild, partnerOf []int) (int, int) {
	if len(removed) != 1 {
		return -1, -1
	}
	surplusNew := -1
	for j, oi := range partnerOf {
		if oi >= 0 {
			continue
		}
		if surplusNew >= 0 {
			return -1, -1
		}
		surplusNew = j
	}
	if surplusNew < 0 {
		return -1, -1
	}
	oc := from.Children[removed[0].index]
	nc := to.Children[surplusNew]
	if oc.Type != ir.ElementType || nc.Type != ir.ElementType || oc.Name == nc.Name {
		return -1, -1
	}
	probe := oc.Clone()
	probe.Name = nc.Name
	if !ir.Equal(probe, nc) {
		return -1, -1
	}
	return removed[0].index, surplusNew
}
