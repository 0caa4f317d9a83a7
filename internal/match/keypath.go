package match

import "github.com/ritamzico/cyquery/internal/graph"

// resolveKeypath traverses keys into doc, returning graph.Null as soon
// as a segment is missing or steps into a non-mapping value.
func resolveKeypath(doc graph.Document, keys []string) graph.Value {
	cur := graph.Value{Kind: graph.DocumentVal, Doc: doc}
	for _, k := range keys {
		if cur.Kind != graph.DocumentVal {
			return graph.Null
		}
		v, ok := cur.Doc[k]
		if !ok {
			return graph.Null
		}
		cur = v
	}
	return cur
}
