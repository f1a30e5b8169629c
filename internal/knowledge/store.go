package knowledge

import (
	"context"
	"slices"
	"sort"

	"jarvis-assistant/internal/model"
)

// RecordSuccess learns that actions satisfied command. Recording the same
// command again replaces its actions but keeps its original position.
func (s *Store) RecordSuccess(command string, in model.Intent, actions []string) model.Pattern {
	key := NormalizeCommand(command)
	now := s.now()
	acts := slices.Clone(actions)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.appendHistory(model.HistoryEntry{Command: key, Actions: acts, Timestamp: now})

	p := model.Pattern{
		SourceCommand: key,
		Intent:        in,
		Actions:       acts,
		Timestamp:     now,
		Success:       true,
	}

	if old, ok := s.patterns[key]; ok {
		p.Seq = old.Seq
		if oldKey := old.Intent.Key(); oldKey != in.Key() {
			s.removeFromGroup(oldKey, key)
			s.groups[in.Key()] = append(s.groups[in.Key()], key)
		}
	} else {
		s.seq++
		p.Seq = s.seq
		s.groups[in.Key()] = append(s.groups[in.Key()], key)
	}

	s.patterns[key] = p
	return p
}

// LookupExact finds a pattern learned for exactly this command.
func (s *Store) LookupExact(command string) (model.Pattern, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.patterns[NormalizeCommand(command)]
	return p, ok
}

// LookupSimilar returns every stored pattern scoring above
// SimilarityThreshold, best first. Equal scores keep insertion order.
func (s *Store) LookupSimilar(in model.Intent) []Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []Match
	for _, p := range s.patterns {
		sim := Similarity(in, p.Intent)
		if sim > SimilarityThreshold {
			matches = append(matches, Match{Pattern: p, Similarity: sim})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		return matches[i].Pattern.Seq < matches[j].Pattern.Seq
	})
	return matches
}

// Stats reports pattern, history and group counts.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		PatternCount: len(s.patterns),
		HistoryCount: len(s.history),
		GroupCount:   len(s.groups),
	}
}

// Snapshot copies the store state. Patterns are ordered by insertion and
// groups by key.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Patterns: make([]model.Pattern, 0, len(s.patterns)),
		Groups:   make([]Group, 0, len(s.groups)),
		History:  slices.Clone(s.history),
	}

	for _, p := range s.patterns {
		snap.Patterns = append(snap.Patterns, p)
	}
	sort.Slice(snap.Patterns, func(i, j int) bool { return snap.Patterns[i].Seq < snap.Patterns[j].Seq })

	keys := make([]string, 0, len(s.groups))
	for k := range s.groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		g := Group{Key: k, Patterns: make([]model.Pattern, 0, len(s.groups[k]))}
		for _, cmd := range s.groups[k] {
			g.Patterns = append(g.Patterns, s.patterns[cmd])
		}
		snap.Groups = append(snap.Groups, g)
	}

	return snap
}

// Restore replaces the store state with snap. Group entries that do not
// correspond to a pattern under the same intent key are dropped, and
// patterns missing from their group are re-indexed.
func (s *Store) Restore(ctx context.Context, snap Snapshot) RestoreReport {
	patterns := make(map[string]model.Pattern, len(snap.Patterns))
	var seq uint64
	for _, p := range snap.Patterns {
		key := NormalizeCommand(p.SourceCommand)
		p.SourceCommand = key
		if p.Seq == 0 {
			seq++
			p.Seq = seq
		}
		seq = max(seq, p.Seq)
		patterns[key] = p
	}

	var report RestoreReport
	report.Patterns = len(patterns)

	groups := make(map[string][]string, len(snap.Groups))
	placed := make(map[string]bool, len(patterns))
	for _, g := range snap.Groups {
		for _, gp := range g.Patterns {
			key := NormalizeCommand(gp.SourceCommand)
			p, ok := patterns[key]
			if !ok || placed[key] || p.Intent.Key() != g.Key {
				report.Dropped++
				continue
			}
			groups[g.Key] = append(groups[g.Key], key)
			placed[key] = true
		}
	}

	missing := make([]model.Pattern, 0)
	for key, p := range patterns {
		if !placed[key] {
			missing = append(missing, p)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i].Seq < missing[j].Seq })
	for _, p := range missing {
		groups[p.Intent.Key()] = append(groups[p.Intent.Key()], p.SourceCommand)
		report.Reindexed++
	}

	history := slices.Clone(snap.History)
	if s.maxHistory > 0 && len(history) > s.maxHistory {
		history = history[len(history)-s.maxHistory:]
	}

	s.mu.Lock()
	s.patterns = patterns
	s.groups = groups
	s.history = history
	s.seq = seq
	s.mu.Unlock()

	// Snapshots without groups (SQLite) are indexed here as a matter of course.
	if report.Dropped > 0 || (report.Reindexed > 0 && len(snap.Groups) > 0) {
		s.l.Warnf(ctx, "knowledge.Store.Restore: repaired snapshot: dropped=%d reindexed=%d", report.Dropped, report.Reindexed)
	}
	s.l.Infof(ctx, "knowledge.Store.Restore: %d patterns, %d groups, %d history", report.Patterns, len(groups), len(history))
	return report
}

func (s *Store) appendHistory(e model.HistoryEntry) {
	s.history = append(s.history, e)
	if s.maxHistory > 0 && len(s.history) > s.maxHistory {
		over := len(s.history) - s.maxHistory
		s.history = slices.Delete(s.history, 0, over)
	}
}

func (s *Store) removeFromGroup(groupKey, command string) {
	cmds := s.groups[groupKey]
	if i := slices.Index(cmds, command); i >= 0 {
		cmds = slices.Delete(cmds, i, i+1)
	}
	if len(cmds) == 0 {
		delete(s.groups, groupKey)
		return
	}
	s.groups[groupKey] = cmds
}
