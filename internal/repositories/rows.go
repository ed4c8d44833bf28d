package repositories

import (
	"sort"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/lksmueller/fankurve/internal/graph"
	"github.com/lksmueller/fankurve/internal/models"
)

// enrichedReturn is the shared RETURN shape of every post query that
// carries engagement data. Likers are collected DISTINCT in the store and
// deduplicated once more here, since multi-edge traversals can fan rows
// out. The comment collection carries the edge's createdAt so two separate
// comments with identical author and content stay apart under DISTINCT;
// only the liker set is deduplicated. Comment rows without a resolvable
// author are dropped.
const enrichedReturn = `
	RETURN
		elementId(p) AS id,
		author.email AS author,
		p.content AS content,
		p.createdAt AS createdAt,
		p.clubTag AS clubTag,
		collect(DISTINCT liker.email) AS likedBy,
		collect(DISTINCT {author: commenter.email, content: c.content, createdAt: c.createdAt}) AS comments`

// enrichedBranches are the optional engagement joins shared by those
// queries; they bind liker, commenter and c for enrichedReturn.
const enrichedBranches = `
	OPTIONAL MATCH (p)<-[:LIKED]-(liker:User)
	OPTIONAL MATCH (p)<-[c:COMMENTED]-(commenter:User)`

func enrichedFromRecord(rec *neo4j.Record) models.EnrichedPost {
	likedBy := dedupStrings(graph.StringsValue(rec, "likedBy"))
	raw := graph.MapsValue(rec, "comments")
	type commentRow struct {
		entry     models.CommentEntry
		createdAt int64
	}
	rows := make([]commentRow, 0, len(raw))
	for _, m := range raw {
		author, _ := m["author"].(string)
		if author == "" {
			continue
		}
		content, _ := m["content"].(string)
		createdAt, _ := m["createdAt"].(int64)
		rows = append(rows, commentRow{
			entry:     models.CommentEntry{Author: author, Content: content},
			createdAt: createdAt,
		})
	}
	// collect order is unspecified; present comments chronologically and
	// drop the edge timestamp afterwards
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].createdAt < rows[j].createdAt })
	comments := make([]models.CommentEntry, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, row.entry)
	}
	return models.EnrichedPost{
		ID:        graph.StringValue(rec, "id"),
		Author:    graph.StringValue(rec, "author"),
		Content:   graph.StringValue(rec, "content"),
		CreatedAt: graph.IntValue(rec, "createdAt"),
		ClubTag:   graph.StringValue(rec, "clubTag"),
		LikeCount: len(likedBy),
		LikedBy:   likedBy,
		Comments:  comments,
	}
}

func recordMap(rec *neo4j.Record, key string) (map[string]any, bool) {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}

func dedupStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
