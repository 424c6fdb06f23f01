package timeline

import (
	"sort"
)

// Category labels which event stream a timeline entry came from.
type Category string

// Timeline categories, in the order entries are collected. Entries sharing a
// timestamp keep this order because the sort is stable.
const (
	CategoryGame  Category = "game"
	CategoryKill  Category = "kill"
	CategorySkill Category = "skill"
	CategoryLevel Category = "level"
	CategoryItem  Category = "item"
	CategoryFeat  Category = "feat"
)

// Entry is one timeline event with its category tag. Exactly one of the
// typed pointers is set, matching Category.
type Entry struct {
	Timestamp int64
	Category  Category

	Game  *GameEvent
	Kill  *KillEvent
	Skill *SkillEvent
	Level *LevelEvent
	Item  *ItemEvent
	Feat  *FeatUpdateEvent
}

// Index is a match document's events merged into one timestamp-ordered
// timeline. Building the index once lets scrubbing replay any prefix without
// re-sorting.
type Index struct {
	entries []Entry
}

// Build merges the document's event streams into a sorted Index. Collection
// order is game, kill, skill, level, item, feat; the stable sort preserves
// that order among entries with equal timestamps.
//
// Parameters:
//   - doc: the decoded match document
//
// Returns:
//   - *Index: the ordered timeline
func Build(doc *CombinedMatchData) *Index {
	total := len(doc.GameEvents) + len(doc.KillEvents) + len(doc.SkillEvents) +
		len(doc.LevelEvents) + len(doc.ItemEvents) + len(doc.FeatEvents)
	entries := make([]Entry, 0, total)

	for i := range doc.GameEvents {
		ev := &doc.GameEvents[i]
		entries = append(entries, Entry{Timestamp: ev.Timestamp, Category: CategoryGame, Game: ev})
	}
	for i := range doc.KillEvents {
		ev := &doc.KillEvents[i]
		entries = append(entries, Entry{Timestamp: ev.Timestamp, Category: CategoryKill, Kill: ev})
	}
	for i := range doc.SkillEvents {
		ev := &doc.SkillEvents[i]
		entries = append(entries, Entry{Timestamp: ev.Timestamp, Category: CategorySkill, Skill: ev})
	}
	for i := range doc.LevelEvents {
		ev := &doc.LevelEvents[i]
		entries = append(entries, Entry{Timestamp: ev.Timestamp, Category: CategoryLevel, Level: ev})
	}
	for i := range doc.ItemEvents {
		ev := &doc.ItemEvents[i]
		entries = append(entries, Entry{Timestamp: ev.Timestamp, Category: CategoryItem, Item: ev})
	}
	for i := range doc.FeatEvents {
		ev := &doc.FeatEvents[i]
		entries = append(entries, Entry{Timestamp: ev.Timestamp, Category: CategoryFeat, Feat: ev})
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Timestamp < entries[b].Timestamp
	})
	return &Index{entries: entries}
}

// EventsUpTo returns the entries with timestamps at or before ts. The
// returned slice shares the index's backing array and must not be mutated.
//
// Parameters:
//   - ts: the inclusive cutoff timestamp in milliseconds
//
// Returns:
//   - []Entry: the ordered prefix of the timeline
func (ix *Index) EventsUpTo(ts int64) []Entry {
	n := sort.Search(len(ix.entries), func(i int) bool {
		return ix.entries[i].Timestamp > ts
	})
	return ix.entries[:n]
}

// All returns every entry in timestamp order.
func (ix *Index) All() []Entry {
	return ix.entries
}

// Len returns the number of entries.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// EndTimestamp returns the last entry's timestamp, 0 for an empty timeline.
func (ix *Index) EndTimestamp() int64 {
	if len(ix.entries) == 0 {
		return 0
	}
	return ix.entries[len(ix.entries)-1].Timestamp
}
