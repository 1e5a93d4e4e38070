// Package renderer produces operator-facing output from a diagnostic
// snapshot and its recommendations.
//
// # Overview
//
// Two renderings are provided: a plain-text report summarizing the
// observed statistics, the recommendations, and the ordered warnings;
// and a connector properties fragment mapping recommendation fields to
// their external configuration keys. Both are driven by embedded
// text/template files, and templates perform no numeric derivation.
//
// # Usage
//
//	r, err := renderer.New()
//	if err != nil {
//		return err
//	}
//	report, err := r.Report(snap, recs)
package renderer
