package curve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/lehigh-university-libraries/lcscores/internal/resultfile"
)

// ErrUnknownCorpusOrLabel reports a RankTable lookup miss.
var ErrUnknownCorpusOrLabel = errors.New("unknown corpus or label")

// RankTable maps corpus -> label -> rank. Every corpus also carries a Full entry.
type RankTable map[string]map[string]int

// Lookup returns the rank of label within corpus.
func (t RankTable) Lookup(corpus, label string) (int, error) {
	labels, ok := t[corpus]
	if !ok {
		return 0, fmt.Errorf("%w: corpus %q", ErrUnknownCorpusOrLabel, corpus)
	}
	rank, ok := labels[label]
	if !ok {
		return 0, fmt.Errorf("%w: label %q in corpus %q", ErrUnknownCorpusOrLabel, label, corpus)
	}
	return rank, nil
}

// Corpora returns the corpus names in sorted order.
func (t RankTable) Corpora() []string {
	corpora := make([]string, 0, len(t))
	for corpus := range t {
		corpora = append(corpora, corpus)
	}
	sort.Strings(corpora)
	return corpora
}

// BuildIndex scans the regular files in dir and ranks the size labels
// observed for each corpus.
func BuildIndex(ctx context.Context, dir string) (RankTable, error) {
	names, err := resultfile.List(dir)
	if err != nil {
		return nil, err
	}

	observed := make(map[string]map[string]struct{})
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		parsed, err := resultfile.ParseName(name)
		if err != nil {
			return nil, err
		}

		labels, ok := observed[parsed.Corpus]
		if !ok {
			labels = make(map[string]struct{})
			observed[parsed.Corpus] = labels
		}
		if parsed.Label != Full {
			labels[parsed.Label] = struct{}{}
		}
	}

	table := make(RankTable, len(observed))
	for corpus, labels := range observed {
		ranks, err := rankLabels(labels)
		if err != nil {
			return nil, fmt.Errorf("corpus %q: %w", corpus, err)
		}
		table[corpus] = ranks
		slog.Debug("Indexed corpus", "corpus", corpus, "labels", len(labels), "full", ranks[Full])
	}

	return table, nil
}

// rankLabels resolves each label and places Full one past the highest rank.
// With no labels Full lands on 1.
func rankLabels(labels map[string]struct{}) (map[string]int, error) {
	ranks := make(map[string]int, len(labels)+1)
	maxRank := 0
	for label := range labels {
		rank, err := Rank(label)
		if err != nil {
			return nil, err
		}
		ranks[label] = rank
		if rank > maxRank {
			maxRank = rank
		}
	}
	ranks[Full] = maxRank + 1
	return ranks, nil
}
