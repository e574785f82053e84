// gsregress package picks the input files of a PostScript/PDF regression run.
//
// Key Features:
//   - Extension Classifier: CheckExtension accepts names ending, in any letter case, with ".ps", ".pdf", ".eps" or ".ai".
//   - Suggestions: SuggestExtension points at names that look like a misspelled accepted extension.
//   - Collector: lists the accepted files under one or more directories, concurrently.
//   - Manifest: a concurrency-safe set of collected files that can be saved and reloaded.
//
// Usage Example:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//
//	    "github.com/n0h4rt/gsregress"
//	)
//
//	func main() {
//	    fmt.Println(gsregress.CheckExtension("tiger.EPS")) // true
//
//	    collector := gsregress.NewCollector(nil, gsregress.WithRecursive(), gsregress.WithSkipHidden())
//	    manifest, err := collector.CollectAll(context.Background(), "examples", "tests")
//	    if err != nil {
//	        fmt.Println(err)
//	    }
//
//	    for _, file := range manifest.Files() {
//	        fmt.Println(file.Path, file.Extension.Kind())
//	    }
//	}
//
// The classifier only looks at names; file contents are never read.
package gsregress
