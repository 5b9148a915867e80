package dijkstra

import "github.com/cockroachdb/errors"

// PathTo rebuilds the vertex sequence source → … → dest from a predecessor
// map returned with WithReturnPath. ErrUnreachable when dest has no route.
func PathTo(prev map[int64]int64, source, dest int64) ([]int64, error) {
	path := []int64{dest}
	for cur := dest; cur != source; {
		p, ok := prev[cur]
		if !ok || len(path) > len(prev)+1 {
			return nil, errors.Wrapf(ErrUnreachable, "%d -> %d", source, dest)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
