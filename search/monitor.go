package search

import "github.com/poiesic/searchdb/index"

// Monitor provides hooks to observe a ranked search. Implement it to
// trace candidate gathering and scoring during development or debugging.
type Monitor interface {
	Start(queryTerms []string)
	AfterCandidateGathering(candidates []index.DocID)
	Finish(results []Result)
}

// noopMonitor is a no-op implementation of Monitor.
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ []string)                       {}
func (n *noopMonitor) AfterCandidateGathering(_ []index.DocID) {}
func (n *noopMonitor) Finish(_ []Result)                      {}

// SearchWithMonitor behaves like Search and reports each stage to
// monitor. A nil monitor is replaced with a no-op.
func (r *Ranker) SearchWithMonitor(queryTerms []string, topK int, monitor Monitor) []Result {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(queryTerms)

	candidates := make(map[index.DocID]struct{})
	for _, term := range queryTerms {
		for _, id := range r.ix.PostingList(term) {
			candidates[id] = struct{}{}
		}
	}
	ids := make([]index.DocID, 0, len(candidates))
	for id := range candidates {
		ids = append(ids, id)
	}
	monitor.AfterCandidateGathering(ids)

	results := r.Search(queryTerms, topK)
	monitor.Finish(results)
	return results
}
