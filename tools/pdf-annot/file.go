// seehuhn.de/go/pdfannot - construct annotation objects for PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/pdfannot/annotation"
	"seehuhn.de/go/pdfannot/annotation/annotfile"
)

func (a *app) fileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "file <annotations.toml>...",
		Short: "Construct the annotations described in TOML files",
		Long: `Read annotation descriptions from one or more TOML files and print the
corresponding annotation dictionaries.  Use "-" to read from standard input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opt := &annotfile.Options{
				DefaultIcon: a.v.GetString(cfgIcon),
			}
			var all []annotation.Annotation
			for _, fname := range args {
				annots, err := a.readFile(cmd, fname, opt)
				if err != nil {
					return err
				}
				all = append(all, annots...)
			}
			return a.write(cmd.OutOrStdout(), all)
		},
	}
}

func (a *app) readFile(cmd *cobra.Command, fname string, opt *annotfile.Options) ([]annotation.Annotation, error) {
	var r io.Reader
	if fname == "-" {
		r = cmd.InOrStdin()
	} else {
		fd, err := os.Open(fname)
		if err != nil {
			return nil, err
		}
		defer fd.Close()
		r = fd
	}

	annots, err := annotfile.Decode(r, opt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	a.log.Printf("read %d annotations from %s", len(annots), fname)
	return annots, nil
}
