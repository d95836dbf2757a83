package service

import "github.com/fansel/domburg-sub000/internal/domain"

// linkGraph is the adjacency set rebuilt from the persisted linked-event
// edges for one detection pass.
type linkGraph struct {
	adj map[string][]string
}

func newLinkGraph(edges []domain.LinkedEventPair) *linkGraph {
	g := &linkGraph{adj: make(map[string][]string, len(edges)*2)}
	for _, e := range edges {
		g.adj[e.EventID1] = append(g.adj[e.EventID1], e.EventID2)
		g.adj[e.EventID2] = append(g.adj[e.EventID2], e.EventID1)
	}
	return g
}

// Connected reports whether every id in the set is reachable from the first
// one. Traversal runs over the full known edge set, not just edges among the
// candidates, so A-B plus B-C connects {A, C} even without an A-C edge.
func (g *linkGraph) Connected(ids []string) bool {
	if len(ids) <= 1 {
		return true
	}

	visited := map[string]bool{ids[0]: true}
	queue := []string{ids[0]}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range g.adj[cur] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	for _, id := range ids {
		if !visited[id] {
			return false
		}
	}
	return true
}

// unionFind clusters entities connected by pairwise overlaps.
type unionFind struct {
	parent map[string]string
}

func newUnionFind() *unionFind {
	return &unionFind{parent: make(map[string]string)}
}

func (u *unionFind) add(id string) {
	if _, ok := u.parent[id]; !ok {
		u.parent[id] = id
	}
}

func (u *unionFind) find(id string) string {
	for u.parent[id] != id {
		u.parent[id] = u.parent[u.parent[id]]
		id = u.parent[id]
	}
	return id
}

func (u *unionFind) union(a, b string) {
	u.add(a)
	u.add(b)
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[rb] = ra
	}
}

// groups returns every cluster of size >= 2. Member ordering is up to the
// caller.
func (u *unionFind) groups() map[string][]string {
	res := make(map[string][]string)
	for id := range u.parent {
		root := u.find(id)
		res[root] = append(res[root], id)
	}
	for root, members := range res {
		if len(members) < 2 {
			delete(res, root)
		}
	}
	return res
}
