package catalog

// MapGeometry carries the spatial constants of a map: world recentering,
// terrain height rules, camera anchors, and the per-landmark avatar offsets
// used to reposition champions after objective takedowns.
type MapGeometry struct {
	// RecenterOffset is added to the map model's centered position so that
	// game-coordinate placements land on the terrain.
	RecenterOffset [3]float32

	// CameraHome is the initial camera position.
	CameraHome [3]float32

	// CameraHomeTarget is the initial camera look-at point.
	CameraHomeTarget [3]float32

	// CameraFocusOffset is added to a focused object's position to derive the
	// camera position when focusing on it.
	CameraFocusOffset [3]float32

	// AvatarOffsets maps instance names to the ground position a champion
	// avatar is moved to when it takes the landmark down.
	AvatarOffsets map[string][2]float32
}

// HeightAt returns the terrain height for ground placement at map
// coordinates (x, y). The map floor sits at two elevations; the top-side
// jungle and the bot-side river bank are raised.
//
// Parameters:
//   - x: map x coordinate
//   - y: map y coordinate (depth axis)
//
// Returns:
//   - float32: the elevation to place an avatar at
func (g *MapGeometry) HeightAt(x, y float32) float32 {
	if (x > -4996.09 && y < 4756.26) || (x < -9731.42 && y > 10050.02) {
		return 99
	}
	return 46
}

// NexusSide classifies which nexus turret a kill position refers to. The two
// nexus turrets sit on either side of the base diagonal, so comparing the
// coordinates picks the side.
//
// Parameters:
//   - x: kill x coordinate
//   - y: kill y coordinate
//
// Returns:
//   - string: "Bot" when x > y, "Top" when x < y, "" when equal
func (g *MapGeometry) NexusSide(x, y float32) string {
	if x > y {
		return "Bot"
	}
	if x < y {
		return "Top"
	}
	return ""
}

// AvatarOffset looks up the avatar landing position for a landmark instance.
//
// Parameters:
//   - instanceName: the landmark's instance name
//
// Returns:
//   - [2]float32: the (x, y) ground position
//   - bool: whether the landmark has an offset entry
func (g *MapGeometry) AvatarOffset(instanceName string) ([2]float32, bool) {
	off, ok := g.AvatarOffsets[instanceName]
	return off, ok
}

// SummonersRift returns the geometry for the Summoner's Rift map.
func SummonersRift() *MapGeometry {
	return &MapGeometry{
		RecenterOffset:    [3]float32{-8658.84, -5200, 15975.61},
		CameraHome:        [3]float32{-6997.76, 15664.39, 5385.27},
		CameraHomeTarget:  [3]float32{-6997.76, 0, 5386.84},
		CameraFocusOffset: [3]float32{0, 1347, -1000},
		AvatarOffsets: map[string][2]float32{
			"Dragon Air":      {-10015.49, 4700.37},
			"Dragon Earth":    {-10015.49, 4700.37},
			"Dragon Fire":     {-10015.49, 4700.37},
			"Dragon Water":    {-10015.49, 4700.37},
			"Dragon Chemtech": {-10015.49, 4700.37},
			"Dragon Hextech":  {-10015.49, 4700.37},
			"Dragon Elder":    {-10015.49, 4700.37},
			"Void Grub 1":     {-4873.74, 10247.17},
			"Void Grub 2":     {-4873.74, 10247.17},
			"Void Grub 3":     {-4873.74, 10247.17},
			"Baron":           {-4639.3, 9867.24},
			"Rift Herald":     {-4639.3, 9867.24},
			"Atakhan":         {0, 0},

			"Blue Turret Bot Nexus":  {-2049.19, 2095.83},
			"Blue Turret Top Nexus":  {-2553.43, 1637.13},
			"Blue Turret Top Tier 3": {-1481.22, 4121.45},
			"Blue Turret Top Tier 2": {-1014.46, 6498.47},
			"Blue Turret Top Tier 1": {-1457.75, 10267.71},
			"Blue Turret Mid Tier 3": {-4016.27, 3640.8},
			"Blue Turret Mid Tier 2": {-4655.58, 4945.88},
			"Blue Turret Mid Tier 1": {-6226.83, 6096.09},
			"Blue Turret Bot Tier 3": {-4667.33, 938.87},
			"Blue Turret Bot Tier 2": {-7383.85, 1037.52},
			"Blue Turret Bot Tier 1": {-10791.97, 1226.2},
			"Red Turret Top Nexus":   {-12082.37, 12959.04},
			"Red Turret Bot Nexus":   {-13304.75, 12336.01},
			"Red Turret Top Tier 3":  {-9916.36, 13552.19},
			"Red Turret Top Tier 2":  {-7329.19, 13486.02},
			"Red Turret Top Tier 1":  {-3868.95, 13574.46},
			"Red Turret Mid Tier 3":  {-10699.42, 10999.1},
			"Red Turret Mid Tier 2":  {-10003.18, 9544.36},
			"Red Turret Mid Tier 1":  {-8338.11, 8458.25},
			"Red Turret Bot Tier 3":  {-13245.83, 10228.38},
			"Red Turret Bot Tier 2":  {-13707.06, 7993.07},
			"Red Turret Bot Tier 1":  {-13266.31, 4258.9},

			"Blue Inhibitor Top": {-1573.25, 3492.29},
			"Blue Inhibitor Mid": {-3509.63, 2829.52},
			"Blue Inhibitor Bot": {-3840.02, 998.93},
			"Red Inhibitor Top":  {-10808.82, 13259.93},
			"Red Inhibitor Mid":  {-12023.69, 11479.06},
			"Red Inhibitor Bot":  {-13039.19, 10804.18},

			"Blue Nexus": {-1111.32, 1161.03},
			"Red Nexus":  {-13641.05, 12784.18},
		},
	}
}
