package loader

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/K0rnli/rift-rewind/common"
	"github.com/K0rnli/rift-rewind/engine/animator"
	"github.com/K0rnli/rift-rewind/engine/catalog"
	"github.com/K0rnli/rift-rewind/engine/scene"
	"github.com/K0rnli/rift-rewind/engine/state"
	"github.com/K0rnli/rift-rewind/engine/timeline"
)

// SceneLoader populates a scene with the map, every structure and monster
// the catalog declares, and one champion per match participant. Asset fetch
// and parse run concurrently on a worker pool; scene mutation stays on the
// calling goroutine so graph and registry writes never race.
type SceneLoader interface {
	// LoadAll loads the whole scene for a match: map, catalog configs, and
	// the match's champions. After every instance is placed, default states
	// are re-applied and ephemeral models re-hidden, so partial state applied
	// during loading cannot leak into the initial scene.
	//
	// Parameters:
	//   - ctx: cancellation context for asset fetches
	//   - doc: the match document supplying participants, nil to skip champions
	//
	// Returns:
	//   - error: the first load failure, wrapped with its asset path
	LoadAll(ctx context.Context, doc *timeline.CombinedMatchData) error

	// LoadOne loads and places a single catalog config on demand.
	//
	// Parameters:
	//   - ctx: cancellation context for the asset fetch
	//   - cfg: the config to instantiate
	//
	// Returns:
	//   - error: a wrapped error if the asset cannot be loaded
	LoadOne(ctx context.Context, cfg catalog.ModelConfig) error
}

type sceneLoader struct {
	source   AssetSource
	graph    *scene.Graph
	registry scene.Registry
	anims    animator.Registry
	applier  state.Applier
	geometry *catalog.MapGeometry
	pool     worker.DynamicWorkerPool
	log      zerolog.Logger

	mu     sync.Mutex
	assets map[string]*Asset
}

var _ SceneLoader = &sceneLoader{}

// NewSceneLoader creates a SceneLoader.
//
// Parameters:
//   - source: the asset source to fetch models from
//   - graph: the scene graph instances are added to
//   - registry: the model registry instances are recorded in
//   - anims: the animation registry instances are registered with
//   - applier: the state applier for initial states
//   - geometry: the map's spatial constants
//   - opts: optional SceneLoaderBuilderOption configuration
//
// Returns:
//   - SceneLoader: the new loader
func NewSceneLoader(source AssetSource, graph *scene.Graph, registry scene.Registry, anims animator.Registry, applier state.Applier, geometry *catalog.MapGeometry, opts ...SceneLoaderBuilderOption) SceneLoader {
	l := &sceneLoader{
		source:   source,
		graph:    graph,
		registry: registry,
		anims:    anims,
		applier:  applier,
		geometry: geometry,
		pool:     worker.NewDynamicWorkerPool(runtime.NumCPU(), 256, 1*time.Second),
		log:      zerolog.Nop(),
		assets:   make(map[string]*Asset),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// loadJob pairs one asset fetch with the placements it feeds.
type loadJob struct {
	assetPath string
	isMap     bool
	instances []catalog.InstancePlacement
	scale     [3]float32

	asset *Asset
	err   error
}

func (l *sceneLoader) LoadAll(ctx context.Context, doc *timeline.CombinedMatchData) error {
	jobs := l.buildJobs(doc)

	// Phase 1: parallel fetch and parse. A WaitGroup provides the barrier;
	// the pool's own Wait blocks until workers idle-exit, which is unsuitable
	// for a one-shot load.
	var wg sync.WaitGroup
	for i := range jobs {
		wg.Add(1)
		job := jobs[i]
		l.pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				job.asset, job.err = l.loadAsset(ctx, job.assetPath)
				return nil, nil
			},
		})
	}
	wg.Wait()

	// Phase 2: sequential placement, in job order, so instance registration
	// is deterministic.
	var firstErr error
	for _, job := range jobs {
		if job.err != nil {
			l.log.Error().Err(job.err).Str("asset", job.assetPath).Msg("model load failed")
			if firstErr == nil {
				firstErr = eris.Wrapf(job.err, "failed to load %q", job.assetPath)
			}
			continue
		}
		if job.isMap {
			l.placeMap(job.asset)
			continue
		}
		for _, placement := range job.instances {
			l.place(job.asset, placement, job.scale)
		}
	}

	// Phase 3: re-apply defaults and re-hide ephemerals across the finished
	// scene, mirroring per-instance work that may have run against a partial
	// load.
	for _, instance := range l.registry.All() {
		l.applier.Apply(instance.Object, instance.InstanceName, catalog.StateDefault)
	}
	hiddenCount := 0
	for _, name := range catalog.EphemeralInstances() {
		if l.registry.SetVisibility(name, false) {
			hiddenCount++
		}
	}
	l.log.Info().
		Int("models", len(l.registry.All())).
		Int("hidden", hiddenCount).
		Msg("scene loaded")

	return firstErr
}

func (l *sceneLoader) LoadOne(ctx context.Context, cfg catalog.ModelConfig) error {
	asset, err := l.loadAsset(ctx, cfg.Asset)
	if err != nil {
		return eris.Wrapf(err, "failed to load %q", cfg.Asset)
	}
	for _, placement := range placementsOf(cfg) {
		l.place(asset, placement, cfg.Scale)
	}
	return nil
}

// buildJobs expands the catalog configs, the map, and the match's champions
// into one job per asset.
func (l *sceneLoader) buildJobs(doc *timeline.CombinedMatchData) []*loadJob {
	var jobs []*loadJob
	for _, cfg := range catalog.Configs() {
		jobs = append(jobs, &loadJob{
			assetPath: cfg.Asset,
			instances: placementsOf(cfg),
			scale:     cfg.Scale,
		})
	}
	if doc != nil {
		for _, participant := range doc.MatchData.Participants {
			jobs = append(jobs, &loadJob{
				assetPath: catalog.ChampionAsset(participant.ChampionName),
				instances: []catalog.InstancePlacement{{
					Name:     catalog.PlayerInstanceName(participant.ParticipantID),
					Rotation: [3]float32{0, 180, 0},
				}},
				scale: [3]float32{1, 1, 1},
			})
		}
	}
	jobs = append(jobs, &loadJob{assetPath: catalog.MapAsset, isMap: true})
	return jobs
}

// loadAsset fetches, parses, and imports an asset, caching by path so
// repeated placements of the same model parse once.
func (l *sceneLoader) loadAsset(ctx context.Context, assetPath string) (*Asset, error) {
	l.mu.Lock()
	if asset, ok := l.assets[assetPath]; ok {
		l.mu.Unlock()
		return asset, nil
	}
	l.mu.Unlock()

	data, err := l.source.Fetch(ctx, assetPath)
	if err != nil {
		return nil, err
	}
	parser := newGLTFParser(func(uri string) ([]byte, error) {
		return l.source.Fetch(ctx, siblingPath(assetPath, uri))
	})
	if err := parser.ParseBytes(data); err != nil {
		return nil, err
	}
	asset, err := newGLTFImporter(parser).Import()
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.assets[assetPath] = asset
	l.mu.Unlock()
	l.log.Debug().Str("asset", assetPath).Int("clips", len(asset.Clips)).Msg("asset imported")
	return asset, nil
}

// place clones the asset into the scene as one named instance, registers its
// animation record, applies its default state, and hides it if it is
// ephemeral.
func (l *sceneLoader) place(asset *Asset, placement catalog.InstancePlacement, scale [3]float32) {
	clone := asset.Root.Clone()
	clone.Name = placement.Name
	clone.Selectable = true
	clone.Position = placement.Position
	clone.Rotation = [3]float32{
		common.DegToRad(placement.Rotation[0]),
		common.DegToRad(placement.Rotation[1]),
		common.DegToRad(placement.Rotation[2]),
	}
	if scale != ([3]float32{}) {
		clone.Scale = scale
	}
	clone.Traverse(func(child *scene.Object) {
		if child != clone && child.IsMesh {
			child.Selectable = false
		}
	})

	l.graph.Add(clone)
	l.anims.Register(clone, placement.Name, asset.Clips)
	l.applier.Apply(clone, placement.Name, catalog.StateDefault)

	hidden := catalog.IsMonster(placement.Name) || catalog.IsPlayer(placement.Name)
	if hidden {
		clone.SetVisibleRecursive(false)
	}

	l.registry.Add(&scene.ModelInstance{
		Object:        clone,
		ModelType:     catalog.ModelTypeOf(placement.Name),
		InstanceName:  placement.Name,
		OriginalState: catalog.StateDefault,
		CurrentState:  catalog.StateDefault,
		IsVisible:     !hidden,
	})
	l.log.Debug().Str("instance", placement.Name).Msg("placed model")
}

// placeMap adds the map model at the recenter offset so game coordinates
// land on the terrain.
func (l *sceneLoader) placeMap(asset *Asset) {
	m := asset.Root.Clone()
	m.Name = catalog.MapInstanceName
	m.Selectable = true
	m.Position = l.geometry.RecenterOffset
	m.Traverse(func(child *scene.Object) {
		if child != m && child.IsMesh {
			child.Selectable = false
		}
	})
	l.graph.Add(m)
	l.anims.Register(m, catalog.MapInstanceName, asset.Clips)
	l.registry.Add(&scene.ModelInstance{
		Object:        m,
		ModelType:     catalog.MapInstanceName,
		InstanceName:  catalog.MapInstanceName,
		OriginalState: catalog.StateDefault,
		CurrentState:  catalog.StateDefault,
		IsVisible:     true,
	})
}

// placementsOf normalizes a config into explicit placements: either its
// instance list or a single placement under the config's own name.
func placementsOf(cfg catalog.ModelConfig) []catalog.InstancePlacement {
	if len(cfg.Instances) > 0 {
		return cfg.Instances
	}
	return []catalog.InstancePlacement{{
		Name:     cfg.Name,
		Position: cfg.Position,
		Rotation: cfg.Rotation,
	}}
}
