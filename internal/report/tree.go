package report

import (
	"fmt"

	"github.com/xlab/treeprint"

	"instfusion/internal/fusion"
)

// Tree renders subjects with their followers nested beneath, e.g.
//
//	pairs
//	└── add: 5
//	    └── sub: 5
func Tree(t *fusion.Table, opts Options) string {
	root := treeprint.New()
	root.SetValue("pairs")

	followers := make(map[*fusion.Entry][]Item)
	for _, it := range Pairs(t, Options{Sort: opts.Sort, MinCount: opts.MinCount, Keep: opts.Keep}) {
		followers[it.Subject] = append(followers[it.Subject], it)
	}
	for _, it := range Totals(t, opts) {
		branch := root.AddBranch(fmt.Sprintf("%s: %d", it.Subject.Label(), it.Count))
		for _, p := range followers[it.Subject] {
			branch.AddNode(fmt.Sprintf("%s: %d", p.Follower.Label(), p.Count))
		}
	}
	return root.String()
}
