package drain

import (
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/logtt/logtt/internal/logline"
)

// cluster is one mined template, stored in an LRU-bounded cache keyed
// by integer id so long-running jobs over files with unbounded
// template cardinality don't grow memory without limit; evicted
// clusters simply stop being candidates for future matches and start
// fresh the next time their shape recurs.
type cluster struct {
	id       int
	template []string
	count    int
}

type clusterStore struct {
	cache *lru.Cache[int, *cluster]
	next  int
}

func newClusterStore(maxClusters int) *clusterStore {
	c, _ := lru.New[int, *cluster](maxClusters)
	return &clusterStore{cache: c}
}

func (s *clusterStore) create(template []string) *cluster {
	s.next++
	c := &cluster{id: s.next, template: append([]string(nil), template...), count: 1}
	s.cache.Add(c.id, c)
	return c
}

func (s *clusterStore) get(id int) (*cluster, bool) {
	return s.cache.Get(id)
}

func (s *clusterStore) touch(id int) {
	s.cache.Get(id)
}

// snapshot returns every live cluster, sorted by id, as miner.Cluster
// values.
func (s *clusterStore) snapshot() []snapshotCluster {
	out := make([]snapshotCluster, 0, s.cache.Len())
	for _, id := range s.cache.Keys() {
		c, ok := s.cache.Peek(id)
		if !ok {
			continue
		}
		out = append(out, snapshotCluster{ID: c.id, Template: logline.Content(c.template), Count: c.count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type snapshotCluster struct {
	ID       int
	Template logline.Content
	Count    int
}
