/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"strconv"

	"github.com/gnames/taxodb/internal/iocorpus"
	"github.com/gnames/taxodb/internal/ioformat"
	"github.com/gnames/taxodb/internal/iostore"
	"github.com/gnames/taxodb/pkg/config"
	"github.com/gnames/taxodb/pkg/taxonomy"
	"github.com/spf13/cobra"
)

// outputFormat is the value of the --format flag.
var outputFormat = "text"

// globalFlagOptions converts persistent flags that were set by a user
// to config options.
func globalFlagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("jobs") {
		if jobs, err := flags.GetInt("jobs"); err == nil && jobs > 0 {
			res = append(res, config.OptJobsNumber(jobs))
		}
	}
	if quiet, _ := flags.GetBool("quiet"); quiet {
		res = append(res, config.OptWithProgress(false))
	}
	return res
}

// newStore creates a store that gets its corpus from the configured
// location.
func newStore() taxonomy.Store {
	return iostore.New(cfg, iocorpus.New(cfg))
}

// output writes v to the command output in the format from the
// --format flag.
func output(cmd *cobra.Command, v any) error {
	f, err := ioformat.NewFormat(outputFormat)
	if err != nil {
		return err
	}
	return ioformat.Write(cmd.OutOrStdout(), f, v)
}

// parseID converts a command argument to a taxon ID.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, BadIDError(s)
	}
	return id, nil
}
