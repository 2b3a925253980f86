// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ostafen/sniff/internal/logger"
	"github.com/ostafen/sniff/pkg/format"
	fmtutil "github.com/ostafen/sniff/pkg/util/format"
	"github.com/spf13/cobra"
)

func DefineDetectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "detect <file>...",
		Short:        "Detect the format of one or more files from their content",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         RunDetect,
	}

	cmd.Flags().String("log-level", "INFO", "minimum log level (DEBUG traces rule evaluation)")
	return cmd
}

func RunDetect(cmd *cobra.Command, args []string) error {
	logLevel, _ := cmd.Flags().GetString("log-level")
	log := logger.New(os.Stderr, logger.ParseLevel(logLevel))

	d := format.NewDetector(log, nil)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tSIZE\tFORMAT")

	for _, path := range args {
		ft, err := d.DetectFile(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", path, fileSize(path), ft)
	}
	return w.Flush()
}

func fileSize(path string) string {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return "-"
	}
	return fmtutil.FormatBytes(fi.Size())
}
