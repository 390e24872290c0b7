package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// fileEntry is one file discovered by collectFiles, carrying the size
// needed for --sort before any leaf is constructed from it.
type fileEntry struct {
	path string
	id   string
	size int64
}

// collectFiles gathers the explicit --input path (if any) and every file
// under --directory (optionally recursive, per --directory-r), skipping
// names matching the --exclude glob.
func collectFiles(input, directory string, recursive bool, exclude string) ([]fileEntry, error) {
	var out []fileEntry

	if input != "" {
		info, err := os.Stat(input)
		if err != nil {
			return nil, err
		}
		out = append(out, fileEntry{path: input, id: filepath.Base(input), size: info.Size()})
	}

	if directory == "" {
		return out, nil
	}

	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !recursive && path != directory {
				return filepath.SkipDir
			}
			return nil
		}

		if exclude != "" {
			if matched, matchErr := filepath.Match(exclude, d.Name()); matchErr != nil {
				return matchErr
			} else if matched {
				return nil
			}
		}

		rel, err := filepath.Rel(directory, path)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		out = append(out, fileEntry{path: path, id: rel, size: info.Size()})
		return nil
	}

	if err := filepath.WalkDir(directory, walkFn); err != nil {
		return nil, fmt.Errorf("walking %s: %w", directory, err)
	}

	return out, nil
}

// sortFiles orders files per --sort; an unknown or empty mode leaves
// discovery order (directory walk order) untouched.
func sortFiles(files []fileEntry, mode string) {
	switch mode {
	case "size-ascending":
		sort.SliceStable(files, func(i, j int) bool { return files[i].size < files[j].size })
	case "size-descending":
		sort.SliceStable(files, func(i, j int) bool { return files[i].size > files[j].size })
	case "alphabetical":
		sort.SliceStable(files, func(i, j int) bool { return files[i].id < files[j].id })
	case "alphabetical-reversed":
		sort.SliceStable(files, func(i, j int) bool { return files[i].id > files[j].id })
	}
}
