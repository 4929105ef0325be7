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

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"seehuhn.de/go/pdfannot/annotation"
	"seehuhn.de/go/pdfannot/optional"
)

// commonFlags are the flags shared by all annotation types.
type commonFlags struct {
	rect     []float64
	contents string
	nm       string
	flags    []string
}

func (c *commonFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64SliceVar(&c.rect, "rect", nil, "annotation rectangle `llx,lly,urx,ury`")
	f.StringVar(&c.contents, "contents", "", "text to display for the annotation")
	f.StringVar(&c.nm, "nm", "", "annotation name, unique on the page")
	f.StringSliceVar(&c.flags, "flag", nil, "annotation flag `name`, e.g. print (repeatable)")
	cobra.CheckErr(cmd.MarkFlagRequired("rect"))
}

func (c *commonFlags) getRect() (annotation.Rect, error) {
	if len(c.rect) != 4 {
		return annotation.Rect{}, fmt.Errorf("--rect: expected 4 numbers, got %d", len(c.rect))
	}
	return annotation.Rect{LLx: c.rect[0], LLy: c.rect[1], URx: c.rect[2], URy: c.rect[3]}, nil
}

// apply sets the optional fields which were given on the command line.
func (c *commonFlags) apply(flags *pflag.FlagSet, a annotation.Annotation) (annotation.Annotation, error) {
	if flags.Changed("contents") {
		a = a.WithContents(c.contents)
	}
	if flags.Changed("nm") {
		a = a.WithUniqueName(c.nm)
	}
	if flags.Changed("flag") {
		f, err := annotation.ParseFlags(c.flags)
		if err != nil {
			return a, fmt.Errorf("--flag: %w", err)
		}
		a = a.WithFlags(f)
	}
	return a, nil
}

func (a *app) textCmd() *cobra.Command {
	var (
		common commonFlags
		open   bool
		icon   string
		state  string
	)
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Construct a text annotation",
		Example: `  pdf-annot text --rect 0,0,24,24 --contents "check this"
  pdf-annot text --rect 0,0,24,24 --open --icon Comment --state review:accepted`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rect, err := common.getRect()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			text := annotation.Text{}
			if flags.Changed("open") {
				text.Open = optional.NewBool(open)
			}
			if flags.Changed("icon") {
				text.Icon = optional.NewString(icon)
			} else if def := a.v.GetString(cfgIcon); def != "" {
				text.Icon = optional.NewString(def)
			}
			if flags.Changed("state") {
				text.State, err = annotation.ParseStateModel(state)
				if err != nil {
					return fmt.Errorf("--state: %w", err)
				}
			}

			annot, err := common.apply(flags, annotation.New(rect, text))
			if err != nil {
				return err
			}
			return a.write(cmd.OutOrStdout(), []annotation.Annotation{annot})
		},
	}
	common.register(cmd)
	f := cmd.Flags()
	f.BoolVar(&open, "open", false, "show the pop-up window initially")
	f.StringVar(&icon, "icon", "", "icon `name`, e.g. Comment, Key, Note, Help")
	f.StringVar(&state, "state", "", "state as `model:state`, e.g. marked:marked or review:accepted")
	return cmd
}

func (a *app) highlightCmd() *cobra.Command {
	var (
		common commonFlags
		quad   []float64
	)
	cmd := &cobra.Command{
		Use:     "highlight",
		Short:   "Construct a highlight annotation",
		Example: `  pdf-annot highlight --rect 72,700,144,712 --quad 72,700,144,700,144,712,72,712`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rect, err := common.getRect()
			if err != nil {
				return err
			}
			if len(quad) != 8 {
				return fmt.Errorf("--quad: expected 8 numbers, got %d", len(quad))
			}
			var q annotation.QuadPoints
			copy(q[:], quad)

			annot, err := common.apply(cmd.Flags(), annotation.NewHighlight(rect, q))
			if err != nil {
				return err
			}
			return a.write(cmd.OutOrStdout(), []annotation.Annotation{annot})
		},
	}
	common.register(cmd)
	cmd.Flags().Float64SliceVar(&quad, "quad", nil, "corners `x1,y1,...,x4,y4` of the highlighted region")
	cobra.CheckErr(cmd.MarkFlagRequired("quad"))
	return cmd
}
