package scene

// Graph is the root of the headless scene graph. The bulk loader attaches
// every placed instance here; the registry and the event handlers read and
// mutate the attached subtrees.
type Graph struct {
	root *Object
}

// NewGraph creates an empty scene graph.
//
// Returns:
//   - *Graph: the new graph
func NewGraph() *Graph {
	return &Graph{root: NewObject("Scene")}
}

// Add attaches obj as a top-level instance.
//
// Parameters:
//   - obj: the instance root to attach
func (g *Graph) Add(obj *Object) {
	g.root.AddChild(obj)
}

// Remove detaches obj from the graph.
//
// Parameters:
//   - obj: the instance root to detach
//
// Returns:
//   - bool: true if obj was attached
func (g *Graph) Remove(obj *Object) bool {
	return g.root.RemoveChild(obj)
}

// Objects returns the top-level instances currently attached.
//
// Returns:
//   - []*Object: the direct children of the graph root
func (g *Graph) Objects() []*Object {
	out := make([]*Object, len(g.root.Children))
	copy(out, g.root.Children)
	return out
}

// ObjectByName returns the first node anywhere in the graph with the given
// name, or nil. Instance roots are found first since the search is
// depth-first from the root.
//
// Parameters:
//   - name: the node name to search for
//
// Returns:
//   - *Object: the matching node or nil
func (g *Graph) ObjectByName(name string) *Object {
	for _, c := range g.root.Children {
		if c.Name == name {
			return c
		}
	}
	for _, c := range g.root.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Selectable returns the top-level instances that participate in picking.
//
// Returns:
//   - []*Object: selectable instance roots
func (g *Graph) Selectable() []*Object {
	var out []*Object
	for _, c := range g.root.Children {
		if c.Selectable {
			out = append(out, c)
		}
	}
	return out
}
