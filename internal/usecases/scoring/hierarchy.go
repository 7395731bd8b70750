package scoring

import (
	"sort"

	"github.com/vfg2006/nexscore-api/internal/domain"
)

// GroupByRegion monta a árvore região -> mercados. As regiões saem em ordem
// alfabética; os mercados mantêm a ordem em que aparecem em entries.
func GroupByRegion(entries []domain.ScoreEntry) []domain.RegionNode {
	byRegion := make(map[string][]domain.ScoreEntry)
	for _, entry := range entries {
		byRegion[entry.Region] = append(byRegion[entry.Region], entry)
	}

	regions := make([]string, 0, len(byRegion))
	for region := range byRegion {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	nodes := make([]domain.RegionNode, 0, len(regions))
	for _, region := range regions {
		nodes = append(nodes, domain.RegionNode{
			Label:    region,
			Children: byRegion[region],
		})
	}

	return nodes
}
