package timeline

// Position is a map coordinate attached to an event.
type Position struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Game event types.
const (
	GameEventPauseEnd = "PAUSE_END"
	GameEventGameEnd  = "GAME_END"
)

// Kill event types.
const (
	KillChampion        = "CHAMPION_KILL"
	KillChampionSpecial = "CHAMPION_SPECIAL_KILL"
	KillEliteMonster    = "ELITE_MONSTER_KILL"
	KillBuilding        = "BUILDING_KILL"
)

// Building types carried by BUILDING_KILL events.
const (
	BuildingTower     = "TOWER_BUILDING"
	BuildingInhibitor = "INHIBITOR_BUILDING"
)

// Tower types carried by tower kills.
const (
	TowerOuter = "OUTER_TURRET"
	TowerInner = "INNER_TURRET"
	TowerBase  = "BASE_TURRET"
	TowerNexus = "NEXUS_TURRET"
)

// Lane types carried by building kills.
const (
	LaneTop = "TOP_LANE"
	LaneMid = "MID_LANE"
	LaneBot = "BOT_LANE"
)

// Monster types carried by ELITE_MONSTER_KILL events.
const (
	MonsterBaron      = "BARON_NASHOR"
	MonsterRiftHerald = "RIFTHERALD"
	MonsterHorde      = "HORDE"
	MonsterDragon     = "DRAGON"
)

// Dragon subtypes.
const (
	DragonAir      = "AIR_DRAGON"
	DragonEarth    = "EARTH_DRAGON"
	DragonFire     = "FIRE_DRAGON"
	DragonWater    = "WATER_DRAGON"
	DragonChemtech = "CHEMTECH_DRAGON"
	DragonHextech  = "HEXTECH_DRAGON"
	DragonElder    = "ELDER_DRAGON"
)

// GameEvent is a match-level event such as a pause ending or the game
// concluding.
type GameEvent struct {
	Type          string `json:"type"`
	Timestamp     int64  `json:"timestamp"`
	RealTimestamp int64  `json:"realTimestamp,omitempty"`
	GameID        int64  `json:"gameId,omitempty"`
	WinningTeam   int    `json:"winningTeam,omitempty"`
}

// SkillEvent records a champion leveling a skill slot.
type SkillEvent struct {
	Type          string `json:"type"`
	Timestamp     int64  `json:"timestamp"`
	ParticipantID int    `json:"participantId"`
	SkillSlot     int    `json:"skillSlot"`
	LevelUpType   string `json:"levelUpType"`
}

// DamageRecord itemizes one source of damage around a champion kill.
type DamageRecord struct {
	Basic          bool   `json:"basic"`
	MagicDamage    int    `json:"magicDamage"`
	Name           string `json:"name"`
	ParticipantID  int    `json:"participantId"`
	PhysicalDamage int    `json:"physicalDamage"`
	SpellName      string `json:"spellName"`
	SpellSlot      int    `json:"spellSlot"`
	TrueDamage     int    `json:"trueDamage"`
	DamageType     string `json:"type"`
}

// KillEvent is any takedown: champion, special kill, elite monster, or
// building. Type discriminates which of the optional fields are meaningful.
type KillEvent struct {
	Type      string    `json:"type"`
	Timestamp int64     `json:"timestamp"`
	KillerID  int       `json:"killerId"`
	Position  *Position `json:"position,omitempty"`

	// Champion kills.
	VictimID             int            `json:"victimId,omitempty"`
	Bounty               int            `json:"bounty,omitempty"`
	KillStreakLength     int            `json:"killStreakLength,omitempty"`
	ShutdownBounty       int            `json:"shutdownBounty,omitempty"`
	VictimDamageDealt    []DamageRecord `json:"victimDamageDealt,omitempty"`
	VictimDamageReceived []DamageRecord `json:"victimDamageReceived,omitempty"`

	// Special kills.
	KillType        string `json:"killType,omitempty"`
	MultiKillLength int    `json:"multiKillLength,omitempty"`

	// Elite monster kills.
	KillerTeamID   int    `json:"killerTeamId,omitempty"`
	MonsterType    string `json:"monsterType,omitempty"`
	MonsterSubType string `json:"monsterSubType,omitempty"`

	// Building kills.
	TeamID       int    `json:"teamId,omitempty"`
	BuildingType string `json:"buildingType,omitempty"`
	TowerType    string `json:"towerType,omitempty"`
	LaneType     string `json:"laneType,omitempty"`

	AssistingParticipantIDs []int `json:"assistingParticipantIds,omitempty"`
}

// LevelEvent records a champion reaching a new level.
type LevelEvent struct {
	Type          string `json:"type"`
	Timestamp     int64  `json:"timestamp"`
	ParticipantID int    `json:"participantId"`
	Level         int    `json:"level"`
}

// ItemEvent is any inventory change. Type discriminates purchases, sells,
// destructions, and undos.
type ItemEvent struct {
	Type          string `json:"type"`
	Timestamp     int64  `json:"timestamp"`
	ParticipantID int    `json:"participantId"`
	ItemID        int    `json:"itemId,omitempty"`

	// ITEM_UNDO only.
	BeforeID int `json:"beforeId,omitempty"`
	AfterID  int `json:"afterId,omitempty"`
	GoldGain int `json:"goldGain,omitempty"`
}

// FeatUpdateEvent records a team feat progressing.
type FeatUpdateEvent struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	TeamID    int    `json:"teamId"`
	FeatType  int    `json:"featType"`
	FeatValue int    `json:"featValue"`
}
