package domain

import "sort"

// MergeRank combines externally-sourced articles with their stored scores
// and returns a deterministically ordered list. Articles without a score row
// default to zero signals; score rows whose article no longer appears in the
// source are dropped. Ordering: selection count descending, then AI score
// descending, then publication time descending. The sort is stable.
func MergeRank(articles []Article, scores []ArticleScore) []RankedArticle {
	byID := make(map[string]ArticleScore, len(scores))
	for _, s := range scores {
		byID[s.ArticleID] = s
	}

	ranked := make([]RankedArticle, 0, len(articles))
	for _, a := range articles {
		s := byID[a.ID]
		ranked = append(ranked, RankedArticle{
			Article:        a,
			SelectionCount: s.SelectionCount,
			AIPoweredScore: s.AIPoweredScore,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].SelectionCount != ranked[j].SelectionCount {
			return ranked[i].SelectionCount > ranked[j].SelectionCount
		}
		if ranked[i].AIPoweredScore != ranked[j].AIPoweredScore {
			return ranked[i].AIPoweredScore > ranked[j].AIPoweredScore
		}
		return ranked[i].Datetime.After(ranked[j].Datetime)
	})

	return ranked
}
