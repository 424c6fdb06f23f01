package scene

import (
	"github.com/google/uuid"
)

// Object is a single node in the headless scene graph: a named transform with
// optional mesh/material identity and child nodes. The graph mirrors what the
// rendering layer displays; every mutation the replay core produces is a
// mutation of Objects (visibility, transform, animated pose).
type Object struct {
	// ID uniquely identifies this node. Animation records are keyed by the
	// top-level instance's ID.
	ID uuid.UUID

	// Name is the node identifier. Instance roots carry the instance name
	// ("Blue Turret Top Tier 1", "Player 4"); descendants carry the mesh and
	// group names authored into the source asset.
	Name string

	// Position is the node's local translation.
	Position [3]float32

	// Rotation is the node's local Euler rotation in radians.
	Rotation [3]float32

	// Quaternion is the node's local orientation as written by animation
	// sampling. Instance placement uses Rotation; animated bones use this.
	Quaternion [4]float32

	// Scale is the node's local scale.
	Scale [3]float32

	// Visible controls whether this node (and implicitly its subtree) renders.
	Visible bool

	// Selectable marks nodes that participate in picking. Only instance roots
	// are selectable; descendant meshes are not.
	Selectable bool

	// IsMesh reports whether this node carries renderable geometry.
	IsMesh bool

	// MaterialName is the name of the primary material for mesh nodes,
	// empty otherwise.
	MaterialName string

	// Children are the node's direct descendants.
	Children []*Object

	parent *Object
}

// NewObject creates a visible node with a fresh ID, unit scale, and the
// given name.
//
// Parameters:
//   - name: the node identifier
//
// Returns:
//   - *Object: the new node
func NewObject(name string) *Object {
	return &Object{
		ID:         uuid.New(),
		Name:       name,
		Quaternion: [4]float32{0, 0, 0, 1},
		Scale:      [3]float32{1, 1, 1},
		Visible:    true,
	}
}

// Parent returns the node's parent, or nil for roots.
//
// Returns:
//   - *Object: the parent node or nil
func (o *Object) Parent() *Object {
	return o.parent
}

// AddChild attaches child to this node. A child already attached elsewhere is
// detached from its previous parent first.
//
// Parameters:
//   - child: the node to attach
func (o *Object) AddChild(child *Object) {
	if child == nil || child == o {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = o
	o.Children = append(o.Children, child)
}

// RemoveChild detaches child from this node.
//
// Parameters:
//   - child: the node to detach
//
// Returns:
//   - bool: true if the child was attached to this node
func (o *Object) RemoveChild(child *Object) bool {
	for i, c := range o.Children {
		if c == child {
			o.Children = append(o.Children[:i], o.Children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Traverse visits this node and every descendant depth-first.
//
// Parameters:
//   - visit: called once per node
func (o *Object) Traverse(visit func(*Object)) {
	visit(o)
	for _, c := range o.Children {
		c.Traverse(visit)
	}
}

// Find returns the first node in this subtree (including the receiver) with
// the given name, or nil.
//
// Parameters:
//   - name: the node name to search for
//
// Returns:
//   - *Object: the matching node or nil
func (o *Object) Find(name string) *Object {
	var found *Object
	o.Traverse(func(n *Object) {
		if found == nil && n.Name == name {
			found = n
		}
	})
	return found
}

// SetVisibleRecursive sets visibility on this node and every descendant.
// State application toggles individual sub-parts; force-hiding an ephemeral
// entity must override all of them at once.
//
// Parameters:
//   - visible: the visibility to apply to the whole subtree
func (o *Object) SetVisibleRecursive(visible bool) {
	o.Traverse(func(n *Object) {
		n.Visible = visible
	})
}

// Clone deep-copies this subtree. Every clone gets a fresh ID so per-instance
// animation records never collide; names, transforms, and mesh/material
// identity are preserved so state matching and clip retargeting keep working
// on the copy.
//
// Returns:
//   - *Object: an independent copy of the subtree
func (o *Object) Clone() *Object {
	out := &Object{
		ID:           uuid.New(),
		Name:         o.Name,
		Position:     o.Position,
		Rotation:     o.Rotation,
		Quaternion:   o.Quaternion,
		Scale:        o.Scale,
		Visible:      o.Visible,
		Selectable:   o.Selectable,
		IsMesh:       o.IsMesh,
		MaterialName: o.MaterialName,
	}
	for _, c := range o.Children {
		out.AddChild(c.Clone())
	}
	return out
}

// Release detaches every descendant so the subtree's resources can be
// reclaimed. Called when an instance is removed from the registry.
func (o *Object) Release() {
	for _, c := range o.Children {
		c.Release()
		c.parent = nil
	}
	o.Children = nil
}
