// Package pathargs rewrites converter command lines so that path arguments
// given on the host resolve inside the converter container.
//
// The package provides four pieces that build on each other:
//
// 1. Classification (classify.go)
//    - IsFlagName decides whether a token names a flag or carries a value
//    - FlagSpec and the PathFlags table describe every path-bearing flag
//
// 2. Scanning (scan.go)
//    - Occurrences yields every index of a flag spelling, left to right
//
// 3. Remapping (remap.go)
//    - ResolvePath makes a host path absolute without requiring it to exist
//    - Remapper maps one host path to a fresh directory under the data root
//
// 4. Planning (plan.go)
//    - Planner injects the default output, creates output parents on the
//      host and remaps every path value into a Plan
//
// Basic usage:
//
//	planner := pathargs.NewPlanner("/data", "output/result")
//	plan, err := planner.Build([]string{"-i", "course.imscc", "-f", "links.xml"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// plan.Args:        [-i /data/<id2>/course.imscc -f /data/<id3>/links.xml -o /data/<id1>/result]
//	// plan.BindSpecs(): [<cwd>/output:/data/<id1> <cwd>:/data/<id2> <cwd>:/data/<id3>]
//
// A path flag without a value, or followed by another flag, is treated as
// unset. It is never reported as an error.
package pathargs
