package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/esfmt/internal/fixture"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <fixture-or-dir>",
		Short: "Run the fixture harness against a file or directory of fixtures",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := collectFixtures(args[0])
			if err != nil {
				return err
			}

			failures := 0
			for _, path := range paths {
				raw, err := readSource(path)
				if err != nil {
					return err
				}
				f, err := fixture.Parse(path, raw)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", path, err)
					failures++
					continue
				}

				res := fixture.Check(f, version)
				switch {
				case res.Skipped:
					fmt.Fprintf(cmd.OutOrStdout(), "SKIP %s (%s)\n", path, res.Reason)
				case res.OK():
					fmt.Fprintf(cmd.OutOrStdout(), "PASS %s\n", path)
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s\n", path)
					for _, e := range res.Errors {
						fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", e)
					}
					failures++
				}
			}

			if failures > 0 {
				return fmt.Errorf("%d fixture(s) failed", failures)
			}
			return nil
		},
	}
}

// collectFixtures returns path itself if it's a file, or every *.js file
// under it if it's a directory.
func collectFixtures(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var out []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".js") {
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}
