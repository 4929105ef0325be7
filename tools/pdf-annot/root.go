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
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds the state shared by all subcommands.
type app struct {
	v   *viper.Viper
	log *log.Logger

	configFile string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	a := &app{
		v:   viper.New(),
		log: log.New(io.Discard, "pdf-annot: ", 0),
	}

	root := &cobra.Command{
		Use:   "pdf-annot",
		Short: "Construct PDF annotation dictionaries",
		Long: `pdf-annot constructs annotation dictionaries for PDF text notes and
highlights, and prints them in PDF syntax.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.verbose {
				a.log.SetOutput(cmd.ErrOrStderr())
			}
			return a.loadConfig()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "read settings from `file`")
	pf.String(cfgFormat, defaultFormat, "output format: compact, pretty or auto")
	pf.Bool(cfgUniqueNames, false, "assign a random /NM entry to annotations without one")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "print progress information to stderr")
	for _, key := range []string{cfgFormat, cfgUniqueNames} {
		cobra.CheckErr(a.v.BindPFlag(key, pf.Lookup(key)))
	}

	root.AddCommand(
		a.textCmd(),
		a.highlightCmd(),
		a.fileCmd(),
		versionCmd(),
	)
	return root
}
