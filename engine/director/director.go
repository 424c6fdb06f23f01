package director

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/K0rnli/rift-rewind/engine/camera"
	"github.com/K0rnli/rift-rewind/engine/catalog"
	"github.com/K0rnli/rift-rewind/engine/scene"
	"github.com/K0rnli/rift-rewind/engine/state"
	"github.com/K0rnli/rift-rewind/engine/timeline"
)

// Director translates match timeline events into scene mutations: building
// destruction, monster deaths, champion kill tableaus, and camera focus.
// Scrubbing is idempotent: ReplayTo rebuilds building states from scratch on
// every event, so replaying a prefix twice lands on the same scene.
type Director interface {
	// SetMatch installs the match document the director replays, building its
	// timeline index.
	//
	// Parameters:
	//   - doc: the decoded match document, or nil to clear
	SetMatch(doc *timeline.CombinedMatchData)

	// Match returns the installed match document, or nil.
	Match() *timeline.CombinedMatchData

	// Timeline returns the installed match's timeline index, or nil.
	Timeline() *timeline.Index

	// ReplayTo processes every timeline event at or before ts, in order.
	//
	// Parameters:
	//   - ts: the inclusive cutoff timestamp in milliseconds
	ReplayTo(ts int64)

	// Handle applies a single timeline entry to the scene.
	//
	// Parameters:
	//   - entry: the event to apply
	Handle(entry timeline.Entry)

	// ResetAll drives every registered instance back to its original state.
	ResetAll()

	// HideModels hides the named instances.
	//
	// Parameters:
	//   - instanceNames: the instances to hide
	HideModels(instanceNames []string)

	// ShowModels shows the named instances.
	//
	// Parameters:
	//   - instanceNames: the instances to show
	ShowModels(instanceNames []string)

	// UpdateModelState applies a named state to an instance.
	//
	// Parameters:
	//   - instanceName: the instance to mutate
	//   - stateName: the state to apply
	//
	// Returns:
	//   - bool: whether the instance was found
	UpdateModelState(instanceName, stateName string) bool

	// UpdateModelPosition moves an instance to map coordinates (x, y),
	// deriving the elevation from the map geometry.
	//
	// Parameters:
	//   - instanceName: the instance to move
	//   - x: the map x coordinate
	//   - y: the map y coordinate (depth axis)
	UpdateModelPosition(instanceName string, x, y float32)
}

type director struct {
	mu sync.Mutex

	registry scene.Registry
	applier  state.Applier
	geometry *catalog.MapGeometry
	camera   camera.Camera
	log      zerolog.Logger

	doc   *timeline.CombinedMatchData
	index *timeline.Index
}

var _ Director = &director{}

// NewDirector creates a Director over the given scene registry.
//
// Parameters:
//   - registry: the model registry to mutate
//   - applier: the state applier driving visual states
//   - geometry: the map's spatial constants
//   - opts: optional DirectorBuilderOption configuration
//
// Returns:
//   - Director: the new director
func NewDirector(registry scene.Registry, applier state.Applier, geometry *catalog.MapGeometry, opts ...DirectorBuilderOption) Director {
	d := &director{
		registry: registry,
		applier:  applier,
		geometry: geometry,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *director) SetMatch(doc *timeline.CombinedMatchData) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.doc = doc
	if doc == nil {
		d.index = nil
		return
	}
	d.index = timeline.Build(doc)
	d.log.Info().
		Str("match", doc.Metadata.MatchID).
		Int("events", d.index.Len()).
		Msg("match installed")
}

func (d *director) Match() *timeline.CombinedMatchData {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.doc
}

func (d *director) Timeline() *timeline.Index {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.index
}

func (d *director) ReplayTo(ts int64) {
	d.mu.Lock()
	index := d.index
	d.mu.Unlock()
	if index == nil {
		return
	}
	for _, entry := range index.EventsUpTo(ts) {
		d.Handle(entry)
	}
}

func (d *director) Handle(entry timeline.Entry) {
	switch entry.Category {
	case timeline.CategoryKill:
		d.handleKill(entry.Kill)
	case timeline.CategoryGame:
		d.handleGame(entry.Game)
	case timeline.CategorySkill, timeline.CategoryLevel, timeline.CategoryItem, timeline.CategoryFeat:
		// These streams carry no scene mutations.
	default:
		d.log.Warn().Str("category", string(entry.Category)).Msg("unknown event category")
	}
}

// handleKill resets buildings against the event's timestamp, clears every
// ephemeral model, then applies the kill's own mutation. Rebuilding from the
// timestamp on each event is what makes scrubbing idempotent.
func (d *director) handleKill(event *timeline.KillEvent) {
	if event == nil {
		return
	}
	d.setBuildingStates(event.Timestamp)
	d.HideModels(catalog.EphemeralInstances())

	switch event.Type {
	case timeline.KillBuilding:
		d.handleBuildingKill(event)
		switch event.BuildingType {
		case timeline.BuildingTower:
			if name := d.turretName(event); name != "" {
				d.focusOn(name)
				d.placeKillerAt(name, event.KillerID)
			}
		case timeline.BuildingInhibitor:
			d.focusOn(d.inhibitorName(event.TeamID, event.LaneType))
		}
	case timeline.KillEliteMonster:
		d.handleMonsterKill(event)
	case timeline.KillChampion:
		d.handleChampionKill(event)
	case timeline.KillChampionSpecial:
		// Special kills annotate champion kills and move no models.
	default:
		d.log.Warn().Str("type", event.Type).Msg("unhandled kill event type")
	}
}

func (d *director) handleBuildingKill(event *timeline.KillEvent) {
	switch event.BuildingType {
	case timeline.BuildingTower:
		if name := d.turretName(event); name != "" {
			d.UpdateModelState(name, catalog.StateDestroyed)
		}
	case timeline.BuildingInhibitor:
		if name := d.inhibitorName(event.TeamID, event.LaneType); name != "" {
			d.UpdateModelState(name, catalog.StateDestroyed)
		}
	}
}

func (d *director) handleMonsterKill(event *timeline.KillEvent) {
	modelType := monsterModelType(event.MonsterType, event.MonsterSubType)
	if modelType == "" {
		return
	}
	instances := d.registry.AllOfType(modelType)
	d.log.Debug().Str("type", modelType).Int("instances", len(instances)).Msg("monster kill")
	for _, instance := range instances {
		d.focusOn(instance.InstanceName)
		d.placeKillerAt(instance.InstanceName, event.KillerID)
		d.UpdateModelState(instance.InstanceName, catalog.StateDeath)
	}
}

// handleChampionKill poses the victim dead and the killer standing over them,
// mirrored across x and split apart along y so both stay visible.
func (d *director) handleChampionKill(event *timeline.KillEvent) {
	victim := catalog.PlayerInstanceName(event.VictimID)
	killer := catalog.PlayerInstanceName(event.KillerID)
	d.UpdateModelState(victim, catalog.StateDeath)
	if event.Position != nil {
		d.UpdateModelPosition(victim, -event.Position.X, event.Position.Y-100)
		d.UpdateModelState(killer, catalog.StateDefault)
		d.UpdateModelPosition(killer, -event.Position.X, event.Position.Y+100)
	}
	d.focusOn(killer)
}

func (d *director) handleGame(event *timeline.GameEvent) {
	if event == nil {
		return
	}
	d.setBuildingStates(event.Timestamp)
	d.HideModels(catalog.MonsterInstances())
	if event.Type != timeline.GameEventGameEnd {
		return
	}
	losingNexus := "Blue Nexus"
	if event.WinningTeam == 100 {
		losingNexus = "Red Nexus"
	}
	d.UpdateModelState(losingNexus, catalog.StateDestroyed)
	d.focusOn(losingNexus)
	d.log.Info().Int("winningTeam", event.WinningTeam).Msg("game ended")
}

// setBuildingStates rebuilds every structure from scratch: all structures
// back to default, then every building kill at or before ts re-applied.
func (d *director) setBuildingStates(ts int64) {
	for _, instance := range d.registry.All() {
		if catalog.IsStructure(instance.ModelType) {
			d.UpdateModelState(instance.InstanceName, catalog.StateDefault)
		}
	}
	d.mu.Lock()
	doc := d.doc
	d.mu.Unlock()
	if doc == nil {
		return
	}
	for i := range doc.KillEvents {
		event := &doc.KillEvents[i]
		if event.Timestamp > ts || event.Type != timeline.KillBuilding {
			continue
		}
		if event.BuildingType == timeline.BuildingTower {
			d.handleBuildingKill(event)
		}
	}
	for i := range doc.KillEvents {
		event := &doc.KillEvents[i]
		if event.Timestamp > ts || event.Type != timeline.KillBuilding {
			continue
		}
		if event.BuildingType == timeline.BuildingInhibitor {
			d.handleBuildingKill(event)
		}
	}
}

func (d *director) ResetAll() {
	for _, instance := range d.registry.All() {
		d.UpdateModelState(instance.InstanceName, instance.OriginalState)
	}
}

func (d *director) HideModels(instanceNames []string) {
	for _, name := range instanceNames {
		d.registry.SetVisibility(name, false)
	}
}

func (d *director) ShowModels(instanceNames []string) {
	for _, name := range instanceNames {
		d.registry.SetVisibility(name, true)
	}
}

func (d *director) UpdateModelState(instanceName, stateName string) bool {
	instance := d.registry.Get(instanceName)
	if instance == nil {
		d.log.Warn().Str("instance", instanceName).Msg("model not found")
		return false
	}
	d.applier.Apply(instance.Object, instanceName, stateName)
	d.registry.SetCurrentState(instanceName, stateName)
	return true
}

func (d *director) UpdateModelPosition(instanceName string, x, y float32) {
	instance := d.registry.Get(instanceName)
	if instance == nil || instance.Object == nil {
		return
	}
	instance.Object.Position = [3]float32{x, d.geometry.HeightAt(x, y), y}
}

// placeKillerAt moves the killer's avatar to the landmark's offset position
// and stands it back up.
func (d *director) placeKillerAt(landmarkName string, killerID int) {
	offset, ok := d.geometry.AvatarOffset(landmarkName)
	if !ok {
		d.log.Warn().Str("landmark", landmarkName).Msg("no avatar offset for landmark")
		return
	}
	player := catalog.PlayerInstanceName(killerID)
	d.UpdateModelPosition(player, offset[0], offset[1])
	d.UpdateModelState(player, catalog.StateDefault)
}

// focusOn points the camera at an instance, if a camera is wired.
func (d *director) focusOn(instanceName string) {
	if d.camera == nil || instanceName == "" {
		return
	}
	instance := d.registry.Get(instanceName)
	if instance == nil || instance.Object == nil {
		return
	}
	d.camera.Focus(instance.Object.Position, d.geometry.CameraFocusOffset)
}

// turretName resolves a tower kill to a turret instance name. Nexus turrets
// disambiguate by which side of the base diagonal the kill happened on.
func (d *director) turretName(event *timeline.KillEvent) string {
	teamPrefix := teamPrefix(event.TeamID)
	lanePrefix := lanePrefix(event.LaneType)

	switch event.TowerType {
	case timeline.TowerNexus:
		if event.Position == nil {
			return ""
		}
		side := d.geometry.NexusSide(event.Position.X, event.Position.Y)
		if side == "" {
			return ""
		}
		return teamPrefix + " Turret " + side + " Nexus"
	case timeline.TowerBase:
		return teamPrefix + " Turret " + lanePrefix + " Tier 3"
	case timeline.TowerInner:
		return teamPrefix + " Turret " + lanePrefix + " Tier 2"
	case timeline.TowerOuter:
		return teamPrefix + " Turret " + lanePrefix + " Tier 1"
	}
	return ""
}

func (d *director) inhibitorName(teamID int, laneType string) string {
	return teamPrefix(teamID) + " Inhibitor " + lanePrefix(laneType)
}

func teamPrefix(teamID int) string {
	if teamID == 100 {
		return "Blue"
	}
	return "Red"
}

func lanePrefix(laneType string) string {
	switch laneType {
	case timeline.LaneTop:
		return "Top"
	case timeline.LaneMid:
		return "Mid"
	case timeline.LaneBot:
		return "Bot"
	}
	return ""
}

// monsterModelType maps an elite monster kill's type fields to a registry
// model type.
func monsterModelType(monsterType, monsterSubType string) string {
	switch monsterType {
	case timeline.MonsterBaron:
		return "Baron"
	case timeline.MonsterRiftHerald:
		return "Rift Herald"
	case timeline.MonsterHorde:
		return "Void Grub"
	case timeline.MonsterDragon:
		switch monsterSubType {
		case timeline.DragonAir:
			return "Dragon Air"
		case timeline.DragonEarth:
			return "Dragon Earth"
		case timeline.DragonFire:
			return "Dragon Fire"
		case timeline.DragonWater:
			return "Dragon Water"
		case timeline.DragonChemtech:
			return "Dragon Chemtech"
		case timeline.DragonHextech:
			return "Dragon Hextech"
		case timeline.DragonElder:
			return "Dragon Elder"
		}
	}
	return ""
}
