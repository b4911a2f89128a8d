// Package toolbox builds the aggregate toolbox manifest. It loads the
// top-level toolbox configuration, scans a repository tree for component
// declarations, normalizes each into an image or pipeline record, and merges
// the records into a single manifest written as toolbox.json. The scan is a
// one-shot, single-process batch operation with no state beyond the in-memory
// aggregate.
package toolbox
