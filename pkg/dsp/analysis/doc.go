// Package analysis provides buffer inspection tools for splice-safe editing.
//
// Zero crossings:
//   - ZeroCrossings lists every index where the sign of the signal changes
//     between consecutive samples, optionally filtered by slope
//   - NearestZeroCrossing picks the crossing closest to a query index
//
// An exact zero sample is reported once, at its own index, rather than as a
// pair of crossings on either side of it. Ties between two equally close
// crossings resolve to the smaller index.
//
// Example usage:
//
//	// Cut a sweep at the rising zero crossing closest to its end
//	cut, err := analysis.NearestZeroCrossing(sweep, len(sweep)-1, analysis.SlopeAscending)
//	if err != nil {
//	    return err
//	}
//	head := sweep[:cut+1]
package analysis
