package session

type progressNode struct {
	kind     NodeKind
	id       string
	parent   int
	children []int
	status   *Status
}

// progressTree indexes a loaded Tree as an arena. Parents always precede their children,
// so index order is a valid top-down walk. Nodes point at the Status fields of the Tree,
// and mutations are visible on the Tree itself.
type progressTree struct {
	nodes   []progressNode
	initial []Status
	sets    map[string]int
}

const rootIndex = 0

func newProgressTree(tree *Tree) *progressTree {
	pt := &progressTree{sets: make(map[string]int)}
	root := pt.add("", tree.ID, -1, &tree.Status)

	for i := range tree.Days {
		day := &tree.Days[i]
		dayIdx := pt.add(NodeDay, day.ID, root, &day.Status)
		for j := range day.Exercises {
			exercise := &day.Exercises[j]
			exerciseIdx := pt.add(NodeExercise, exercise.ID, dayIdx, &exercise.Status)
			for k := range exercise.Sets {
				set := &exercise.Sets[k]
				pt.sets[set.ID] = pt.add(NodeSet, set.ID, exerciseIdx, &set.Status)
			}
		}
	}
	return pt
}

func (pt *progressTree) add(kind NodeKind, id string, parent int, status *Status) int {
	idx := len(pt.nodes)
	pt.nodes = append(pt.nodes, progressNode{kind: kind, id: id, parent: parent, status: status})
	pt.initial = append(pt.initial, *status)
	if parent >= 0 {
		pt.nodes[parent].children = append(pt.nodes[parent].children, idx)
	}
	return idx
}

func (pt *progressTree) setIndex(setID string) (int, bool) {
	idx, ok := pt.sets[setID]
	return idx, ok
}

func (pt *progressTree) status(idx int) Status {
	return *pt.nodes[idx].status
}

// apply sets the status of one node and rolls the change up through its ancestors.
func (pt *progressTree) apply(idx int, status Status) {
	*pt.nodes[idx].status = status
	pt.propagate(idx)
}

// propagate walks up from idx: a parent whose children are all done becomes COMPLETED,
// a COMPLETED parent with an unfinished child goes back to IN_PROGRESS. The walk stops at the
// first parent that does not change and never touches the root.
func (pt *progressTree) propagate(idx int) {
	for parent := pt.nodes[idx].parent; parent > rootIndex; parent = pt.nodes[parent].parent {
		if !pt.refresh(parent) {
			return
		}
	}
}

func (pt *progressTree) refresh(idx int) bool {
	node := &pt.nodes[idx]
	done := pt.childrenDone(idx)
	switch {
	case done && *node.status != StatusCompleted:
		*node.status = StatusCompleted
	case !done && *node.status == StatusCompleted:
		*node.status = StatusInProgress
	default:
		return false
	}
	return true
}

func (pt *progressTree) childrenDone(idx int) bool {
	for _, child := range pt.nodes[idx].children {
		if !pt.status(child).Done() {
			return false
		}
	}
	return true
}

// settle re-evaluates every day and exercise bottom-up, which also completes nodes without children.
func (pt *progressTree) settle() {
	for idx := len(pt.nodes) - 1; idx > rootIndex; idx-- {
		if pt.nodes[idx].kind == NodeSet {
			continue
		}
		pt.refresh(idx)
	}
}

func (pt *progressTree) pendingSets() []int {
	var pending []int
	for idx, node := range pt.nodes {
		if node.kind == NodeSet && *node.status == StatusPending {
			pending = append(pending, idx)
		}
	}
	return pending
}

// changes lists every non-root node whose status differs from the loaded one, in tree order.
func (pt *progressTree) changes() []StatusChange {
	var result []StatusChange
	for idx := rootIndex + 1; idx < len(pt.nodes); idx++ {
		node := pt.nodes[idx]
		if *node.status == pt.initial[idx] {
			continue
		}
		result = append(result, StatusChange{Kind: node.kind, ID: node.id, Status: *node.status})
	}
	return result
}
