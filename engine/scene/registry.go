package scene

import (
	"sync"

	"github.com/rs/zerolog"
)

// ModelInstance is the registry's bookkeeping record for one named object in
// the scene. It tracks the object's type classification, the state it was
// loaded in, the state it currently shows, and its visibility.
type ModelInstance struct {
	// Object is the scene object this record describes.
	Object *Object

	// ModelType is the classified type of the instance (e.g. "Blue Turret").
	ModelType string

	// InstanceName is the unique name the instance is registered under.
	InstanceName string

	// OriginalState is the state the instance was first registered in.
	OriginalState string

	// CurrentState is the state most recently applied to the instance.
	CurrentState string

	// IsVisible mirrors the object's top-level visibility flag.
	IsVisible bool
}

// TypeResolver classifies an instance name into a model type when the
// registry adopts an object it has not seen before.
type TypeResolver func(instanceName string) string

// Registry tracks the model instances of a scene graph by instance name.
// Lookups that miss the registry fall back to the graph and lazily adopt any
// object found there, so objects added straight to the graph stay reachable.
// Thread-safe for concurrent access.
type Registry interface {
	// Add registers an instance record. Registering a name twice replaces the
	// previous record.
	//
	// Parameters:
	//   - instance: the record to register, keyed by its InstanceName
	Add(instance *ModelInstance)

	// Remove detaches the named instance's object from the graph, releases its
	// resources and drops the record.
	//
	// Parameters:
	//   - instanceName: the name of the instance to remove
	//
	// Returns:
	//   - bool: true if the instance existed and was removed
	Remove(instanceName string) bool

	// Get returns the record for an instance name. When the name is not
	// registered but an object with that name exists in the graph, the object
	// is adopted into the registry with default state and its actual
	// visibility.
	//
	// Parameters:
	//   - instanceName: the name to look up
	//
	// Returns:
	//   - *ModelInstance: the record, or nil if no object carries the name
	Get(instanceName string) *ModelInstance

	// AllOfType returns every registered instance whose ModelType matches.
	//
	// Parameters:
	//   - modelType: the model type to filter by
	//
	// Returns:
	//   - []*ModelInstance: the matching records
	AllOfType(modelType string) []*ModelInstance

	// All returns every registered instance.
	//
	// Returns:
	//   - []*ModelInstance: all records in the registry
	All() []*ModelInstance

	// SetVisibility sets the named instance's top-level visibility, adopting
	// the object from the graph if needed.
	//
	// Parameters:
	//   - instanceName: the name of the instance
	//   - visible: the visibility to apply
	//
	// Returns:
	//   - bool: true if the instance was found
	SetVisibility(instanceName string, visible bool) bool

	// SetCurrentState records the state most recently applied to the instance.
	//
	// Parameters:
	//   - instanceName: the name of the instance
	//   - state: the state name to record
	SetCurrentState(instanceName, state string)
}

type registry struct {
	mu      sync.RWMutex
	graph   *Graph
	models  map[string]*ModelInstance
	resolve TypeResolver
	log     zerolog.Logger
}

var _ Registry = &registry{}

// NewRegistry creates a Registry backed by the given scene graph.
//
// Parameters:
//   - graph: the graph that lookups fall back to
//   - opts: optional RegistryBuilderOption configuration
//
// Returns:
//   - Registry: the new registry
func NewRegistry(graph *Graph, opts ...RegistryBuilderOption) Registry {
	r := &registry{
		graph:   graph,
		models:  make(map[string]*ModelInstance),
		resolve: func(name string) string { return name },
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *registry) Add(instance *ModelInstance) {
	if instance == nil || instance.InstanceName == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.models[instance.InstanceName]; exists {
		r.log.Debug().Str("instance", instance.InstanceName).Msg("re-registering model instance")
	}
	r.models[instance.InstanceName] = instance
}

func (r *registry) Remove(instanceName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	instance, ok := r.models[instanceName]
	if !ok {
		r.log.Warn().Str("instance", instanceName).Msg("model not found")
		return false
	}
	if instance.Object != nil {
		r.graph.Remove(instance.Object)
		instance.Object.Release()
	}
	delete(r.models, instanceName)
	r.log.Debug().Str("instance", instanceName).Msg("removed model instance")
	return true
}

func (r *registry) Get(instanceName string) *ModelInstance {
	r.mu.RLock()
	instance, ok := r.models[instanceName]
	r.mu.RUnlock()
	if ok {
		return instance
	}
	return r.adopt(instanceName)
}

// adopt pulls an unregistered object out of the graph and registers it with
// default state and its observed visibility.
func (r *registry) adopt(instanceName string) *ModelInstance {
	obj := r.graph.ObjectByName(instanceName)
	if obj == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if instance, ok := r.models[instanceName]; ok {
		return instance
	}
	instance := &ModelInstance{
		Object:        obj,
		ModelType:     r.resolve(instanceName),
		InstanceName:  instanceName,
		OriginalState: "default",
		CurrentState:  "default",
		IsVisible:     obj.Visible,
	}
	r.models[instanceName] = instance
	r.log.Debug().Str("instance", instanceName).Str("type", instance.ModelType).Msg("registered model from scene")
	return instance
}

func (r *registry) AllOfType(modelType string) []*ModelInstance {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*ModelInstance
	for _, instance := range r.models {
		if instance.ModelType == modelType {
			out = append(out, instance)
		}
	}
	return out
}

func (r *registry) All() []*ModelInstance {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*ModelInstance, 0, len(r.models))
	for _, instance := range r.models {
		out = append(out, instance)
	}
	return out
}

func (r *registry) SetVisibility(instanceName string, visible bool) bool {
	instance := r.Get(instanceName)
	if instance == nil {
		r.log.Warn().Str("instance", instanceName).Msg("model not found")
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if instance.Object != nil {
		instance.Object.Visible = visible
	}
	instance.IsVisible = visible
	return true
}

func (r *registry) SetCurrentState(instanceName, state string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if instance, ok := r.models[instanceName]; ok {
		instance.CurrentState = state
	}
}
