package timeline

import (
	"strconv"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// MatchMetadata identifies the match a document describes.
type MatchMetadata struct {
	DataVersion  string `json:"dataVersion"`
	MatchID      string `json:"matchId"`
	Participants string `json:"participants"`
}

// Participant binds a participant ID to a player identity.
type Participant struct {
	ParticipantID int    `json:"participantId"`
	PUUID         string `json:"puuid"`
}

// ParticipantFrame is one participant's snapshot within a frame: position,
// gold, experience, and level.
type ParticipantFrame struct {
	ParticipantID       int      `json:"participantId"`
	Position            Position `json:"position"`
	CurrentGold         int      `json:"currentGold"`
	TotalGold           int      `json:"totalGold"`
	GoldPerSecond       int      `json:"goldPerSecond"`
	Level               int      `json:"level"`
	XP                  int      `json:"xp"`
	MinionsKilled       int      `json:"minionsKilled"`
	JungleMinionsKilled int      `json:"jungleMinionsKilled"`
	TimeEnemyControlled int      `json:"timeEnemySpentControlled"`
}

// FrameSnapshot is one timeline frame: a timestamp plus the per-participant
// frames keyed by participant ID.
type FrameSnapshot struct {
	Timestamp int64
	Frames    map[int]ParticipantFrame
}

// UnmarshalJSON decodes the frame's mixed-key object, where "timestamp" sits
// alongside numeric participant ID keys.
func (s *FrameSnapshot) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Frames = make(map[int]ParticipantFrame, len(raw))
	for key, value := range raw {
		if key == "timestamp" {
			if err := json.Unmarshal(value, &s.Timestamp); err != nil {
				return err
			}
			continue
		}
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		var frame ParticipantFrame
		if err := json.Unmarshal(value, &frame); err != nil {
			return err
		}
		s.Frames[id] = frame
	}
	return nil
}

// MatchParticipant is the end-of-game stat line for one player, reduced to
// the fields the viewer consumes.
type MatchParticipant struct {
	ParticipantID  int    `json:"participantId"`
	PUUID          string `json:"puuid"`
	ChampionID     int    `json:"championId"`
	ChampionName   string `json:"championName"`
	ChampLevel     int    `json:"champLevel"`
	TeamID         int    `json:"teamId"`
	TeamPosition   string `json:"teamPosition"`
	RiotIDGameName string `json:"riotIdGameName"`
	RiotIDTagline  string `json:"riotIdTagline"`
	SummonerName   string `json:"summonerName"`
	Kills          int    `json:"kills"`
	Deaths         int    `json:"deaths"`
	Assists        int    `json:"assists"`
	GoldEarned     int    `json:"goldEarned"`
	VisionScore    int    `json:"visionScore"`
	Win            bool   `json:"win"`
}

// TeamObjective is one objective category's tally for a team.
type TeamObjective struct {
	First bool `json:"first"`
	Kills int  `json:"kills"`
}

// Team is one side's end-of-game summary.
type Team struct {
	TeamID     int                      `json:"teamId"`
	Win        bool                     `json:"win"`
	Bans       []int                    `json:"bans"`
	Objectives map[string]TeamObjective `json:"objectives"`
}

// MatchData is the end-of-game summary block.
type MatchData struct {
	EndOfGameResult    string             `json:"endOfGameResult"`
	GameCreation       int64              `json:"gameCreation"`
	GameDuration       int64              `json:"gameDuration"`
	GameEndTimestamp   int64              `json:"gameEndTimestamp"`
	GameID             int64              `json:"gameId"`
	GameMode           string             `json:"gameMode"`
	GameName           string             `json:"gameName"`
	GameStartTimestamp int64              `json:"gameStartTimestamp"`
	GameType           string             `json:"gameType"`
	GameVersion        string             `json:"gameVersion"`
	MapID              int                `json:"mapId"`
	PlatformID         string             `json:"platformId"`
	QueueID            int                `json:"queueId"`
	Participants       []MatchParticipant `json:"participants"`
	Teams              []Team             `json:"teams"`
}

// CombinedMatchData is a full replay document: match identity, the event
// streams the timeline is built from, periodic participant frames, and the
// end-of-game summary.
type CombinedMatchData struct {
	Metadata          MatchMetadata     `json:"metadata"`
	GameEvents        []GameEvent       `json:"game_events"`
	SkillEvents       []SkillEvent      `json:"skill_events"`
	KillEvents        []KillEvent       `json:"kill_events"`
	LevelEvents       []LevelEvent      `json:"level_events"`
	ItemEvents        []ItemEvent       `json:"item_events"`
	FeatEvents        []FeatUpdateEvent `json:"feat_events"`
	ParticipantFrames []FrameSnapshot   `json:"participant_frames"`
	Participants      []Participant     `json:"participants"`
	MatchData         MatchData         `json:"match_data"`
}

// ChampionFor returns the champion name for a participant ID, empty when the
// document does not list the participant.
//
// Parameters:
//   - participantID: the 1-based participant ID
//
// Returns:
//   - string: the champion name, or ""
func (d *CombinedMatchData) ChampionFor(participantID int) string {
	for i := range d.MatchData.Participants {
		if d.MatchData.Participants[i].ParticipantID == participantID {
			return d.MatchData.Participants[i].ChampionName
		}
	}
	return ""
}

// ParseMatch decodes a combined replay document.
//
// Parameters:
//   - data: the raw JSON document
//
// Returns:
//   - *CombinedMatchData: the decoded document
//   - error: a wrapped decode error when the document is malformed
func ParseMatch(data []byte) (*CombinedMatchData, error) {
	var doc CombinedMatchData
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrap(err, "failed to decode match document")
	}
	return &doc, nil
}
