// Package engage computes the YouTube engagement-rate metric used for
// cross-platform interaction comparisons:
//
//	Engagement Rate (%) = ((Likes + Comments) / Views) × 100
//
// Zero or missing view counts yield 0.0 rather than a division error.
package engage

import (
	"fmt"

	"github.com/cagridemirci1MIS/codemix/internal/dataset"
	"github.com/cagridemirci1MIS/codemix/internal/model"
)

// Required column names in an engagement dataset.
const (
	ColLikes    = "likes"
	ColComments = "comments"
	ColViews    = "views"
)

// Result is the engagement rate for one video row.
type Result struct {
	Index    int     `json:"index"`
	Likes    float64 `json:"likes"`
	Comments float64 `json:"comments"`
	Views    float64 `json:"views"`
	Rate     float64 `json:"engagement_rate"`
	Status   string  `json:"status"`
}

// Rate computes the engagement rate for a single video.
func Rate(likes, comments, views float64) float64 {
	if views <= 0 {
		return 0.0
	}
	return (likes + comments) / views * 100.0
}

// OnTable applies Rate across a loaded dataset. Missing likes, comments,
// or views columns fail hard. Rows with unparseable numerics degrade to a
// 0.0 rate with Status "skipped" and the run continues.
func OnTable(t *dataset.Table) ([]Result, error) {
	for _, col := range []string{ColLikes, ColComments, ColViews} {
		if !t.HasColumn(col) {
			return nil, fmt.Errorf("engage: dataset must contain 'likes', 'comments', and 'views' columns: missing %q", col)
		}
	}

	likes, _ := t.Column(ColLikes)
	comments, _ := t.Column(ColComments)
	views, _ := t.Column(ColViews)

	results := make([]Result, len(t.Rows))
	for i := range t.Rows {
		res := Result{Index: i, Status: model.StatusOK}

		l, errL := dataset.ParseNumber(likes[i])
		c, errC := dataset.ParseNumber(comments[i])
		v, errV := dataset.ParseNumber(views[i])
		if errL != nil || errC != nil || errV != nil {
			res.Status = model.StatusSkipped
			results[i] = res
			continue
		}

		res.Likes, res.Comments, res.Views = l, c, v
		res.Rate = Rate(l, c, v)
		results[i] = res
	}
	return results, nil
}
