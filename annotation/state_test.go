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

package annotation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfannot/pdf"
)

func TestStateModelEncode(t *testing.T) {
	cases := []struct {
		in    StateModel
		model string
		state string
	}{
		{MarkedModel{State: MarkedStateMarked}, "Marked", "Marked"},
		{MarkedModel{State: MarkedStateUnmarked}, "Marked", "Unmarked"},
		{MarkedModel{}, "Marked", "Unmarked"},
		{ReviewModel{State: ReviewStateAccepted}, "Review", "Accepted"},
		{ReviewModel{State: ReviewStateRejected}, "Review", "Rejected"},
		{ReviewModel{State: ReviewStateCancelled}, "Review", "Cancelled"},
		{ReviewModel{State: ReviewStateCompleted}, "Review", "Completed"},
		{ReviewModel{State: ReviewStateNone}, "Review", "None"},
		{ReviewModel{}, "Review", "None"},
	}
	for _, test := range cases {
		dict := test.in.Encode()

		if diff := cmp.Diff([]pdf.Name{"StateModel", "State"}, dict.Keys()); diff != "" {
			t.Errorf("%v: keys (-want +got):\n%s", test.in, diff)
			continue
		}
		model, _ := dict.Get("StateModel").(pdf.String)
		state, _ := dict.Get("State").(pdf.String)
		if model.AsTextString() != test.model {
			t.Errorf("%v: expected model %q, got %q", test.in, test.model, model)
		}
		if state.AsTextString() != test.state {
			t.Errorf("%v: expected state %q, got %q", test.in, test.state, state)
		}
	}
}

func TestStateModelRendering(t *testing.T) {
	got := pdf.Format(ReviewModel{State: ReviewStateAccepted}.Encode())
	want := "<</StateModel (Review) /State (Accepted)>>"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestUnmappedStatePanics(t *testing.T) {
	for _, m := range []StateModel{
		MarkedModel{State: MarkedState(17)},
		ReviewModel{State: ReviewState(-1)},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%v: expected panic", m)
				}
			}()
			m.Encode()
		}()
	}
}

func TestStateString(t *testing.T) {
	if s := MarkedStateMarked.String(); s != "Marked" {
		t.Errorf("wrong name %q", s)
	}
	if s := ReviewStateCancelled.String(); s != "Cancelled" {
		t.Errorf("wrong name %q", s)
	}
	if s := ReviewState(42).String(); s != "ReviewState(42)" {
		t.Errorf("wrong name %q", s)
	}
}

func TestParseStateModel(t *testing.T) {
	cases := []struct {
		in   string
		want StateModel
	}{
		{"marked", MarkedModel{State: MarkedStateUnmarked}},
		{"marked:marked", MarkedModel{State: MarkedStateMarked}},
		{"Marked:Unmarked", MarkedModel{State: MarkedStateUnmarked}},
		{"review", ReviewModel{State: ReviewStateNone}},
		{"review:accepted", ReviewModel{State: ReviewStateAccepted}},
		{"REVIEW:Rejected", ReviewModel{State: ReviewStateRejected}},
		{"review:cancelled", ReviewModel{State: ReviewStateCancelled}},
		{"review:completed", ReviewModel{State: ReviewStateCompleted}},
		{"review:none", ReviewModel{State: ReviewStateNone}},
	}
	for _, test := range cases {
		got, err := ParseStateModel(test.in)
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", test.in, diff)
		}
	}
}

func TestParseStateModelErrors(t *testing.T) {
	for _, in := range []string{"", ":accepted", "approval", "review:marked", "marked:accepted", "review:"} {
		if _, err := ParseStateModel(in); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}
