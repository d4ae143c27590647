// Package dashboard holds the per-session view state for the protein
// explorer: which gene is open, which mutation is selected, which
// structure regions are highlighted and which detail tab is active.
// It mirrors the interaction rules the browser UI expects, so handlers
// and tests share one source of truth for them.
package dashboard

import (
	"sync"

	"github.com/protein-lab/server/internal/data/protein"
)

// Detail tabs below the structure view.
const (
	TabMutations  = "mutations"
	TabHotspots   = "hotspots"
	TabAnomalies  = "anomalies"
	TabConfidence = "confidence"
)

// MutationSelection identifies a mutation row picked in the table.
type MutationSelection struct {
	Position int    `json:"position"`
	MutAA    string `json:"mutAA"`
}

// Snapshot is a copy of the current state, safe to hand out.
type Snapshot struct {
	Protein           string             `json:"protein"`
	ActiveTab         string             `json:"activeTab"`
	SelectedMutation  *MutationSelection `json:"selectedMutation,omitempty"`
	HighlightedRegion *protein.Region    `json:"highlightedRegion,omitempty"`
	Answer            string             `json:"answer,omitempty"`
}

// State tracks one explorer session. All methods are safe for
// concurrent use.
type State struct {
	mu sync.Mutex

	store protein.Store

	selected  string
	activeTab string
	mutation  *MutationSelection
	region    *protein.Region

	askSeq uint64
	answer string
}

// NewState starts a session on the first gene the store knows about.
func NewState(store protein.Store) *State {
	s := &State{store: store, activeTab: TabMutations}
	if syms := store.Symbols(); len(syms) > 0 {
		s.selected = syms[0]
	}
	return s
}

// SelectProtein switches the session to another gene. Symbols the
// store does not carry are ignored without error, so stale links and
// stub autocomplete entries cannot wedge the session. Switching clears
// the mutation selection and any highlighted region.
func (s *State) SelectProtein(symbol string) {
	if _, ok := s.store.Record(symbol); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if symbol == s.selected {
		return
	}
	s.selected = symbol
	s.mutation = nil
	s.region = nil
}

// SelectMutation marks a mutation row and brings the mutations tab to
// the front so the selection is visible.
func (s *State) SelectMutation(sel MutationSelection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutation = &sel
	s.activeTab = TabMutations
}

// ClearMutation drops the current mutation selection.
func (s *State) ClearMutation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutation = nil
}

// HighlightRegion replaces the highlighted structure region. Only one
// region is highlighted at a time.
func (s *State) HighlightRegion(r protein.Region) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.region = &r
}

// ClearHighlight removes the highlighted region.
func (s *State) ClearHighlight() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.region = nil
}

// SetTab switches the active detail tab. Unknown tab names are
// ignored.
func (s *State) SetTab(tab string) {
	switch tab {
	case TabMutations, TabHotspots, TabAnomalies, TabConfidence:
	default:
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeTab = tab
}

// BeginAsk registers a new AI question and returns its sequence
// number. Earlier in-flight questions are superseded: their answers
// will be dropped by ResolveAsk.
func (s *State) BeginAsk() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.askSeq++
	s.answer = ""
	return s.askSeq
}

// ResolveAsk stores an answer if seq still identifies the latest
// question. It reports whether the answer was kept.
func (s *State) ResolveAsk(seq uint64, answer string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.askSeq {
		return false
	}
	s.answer = answer
	return true
}

// View returns a copy of the current state.
func (s *State) View() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Protein:   s.selected,
		ActiveTab: s.activeTab,
		Answer:    s.answer,
	}
	if s.mutation != nil {
		m := *s.mutation
		snap.SelectedMutation = &m
	}
	if s.region != nil {
		r := *s.region
		snap.HighlightedRegion = &r
	}
	return snap
}
