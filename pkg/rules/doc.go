// Package rules provides priority dispatching rules for schedule
// construction.
//
// # Overview
//
// When a machine becomes available, the imminent operations waiting in
// the queue are prioritised by a dispatching rule, and the operation with
// the highest priority (the smallest key) is dispatched next.
//
// # Catalogue
//
//	Tag   Key                               Type
//	----------------------------------------------
//	SPT   duration                          static
//	LPT   -duration                         static
//	SPS   |ops(job)|                        static
//	LPS   -|ops(job)|                       static
//	STPT  total job work                    static
//	LTPT  -total job work                   static
//	ECT   job predecessor end               dynamic
//	LCT   -job predecessor end              dynamic
//	SWT   wait behind machine tail          dynamic
//	LWT   -wait behind machine tail         dynamic
//	LTWR  work remaining in job             dynamic
//	MTWR  -work remaining in job            dynamic
//	EST   estimated start if dispatched     dynamic
//	LST   -estimated start                  dynamic
//	HH    (EST, -(LTWR - 1.5*duration))     composite
//	IHH   (EST, -LTWR/duration)             composite
//
// # Custom Rules
//
// A Rule is just a function; solvers accept user closures alongside the
// catalogue:
//
//	own := func(id schedule.StepID, s *schedule.Solution) rules.Key {
//	    return rules.Key{Primary: s.EstimatedStart(id)}
//	}
package rules
