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
	"errors"
	"fmt"
	"strings"

	"seehuhn.de/go/pdfannot/pdf"
)

// MarkedState is a state in the "Marked" state model.
// The zero value is [MarkedStateUnmarked].
type MarkedState int

// Values following the "Marked" state model.
const (
	MarkedStateUnmarked MarkedState = iota
	MarkedStateMarked
)

func (s MarkedState) String() string {
	switch s {
	case MarkedStateUnmarked:
		return "Unmarked"
	case MarkedStateMarked:
		return "Marked"
	default:
		return fmt.Sprintf("MarkedState(%d)", int(s))
	}
}

// ReviewState is a state in the "Review" state model.
// The zero value is [ReviewStateNone].
type ReviewState int

// Values following the "Review" state model.
const (
	ReviewStateNone ReviewState = iota
	ReviewStateAccepted
	ReviewStateRejected
	ReviewStateCancelled
	ReviewStateCompleted
)

func (s ReviewState) String() string {
	switch s {
	case ReviewStateNone:
		return "None"
	case ReviewStateAccepted:
		return "Accepted"
	case ReviewStateRejected:
		return "Rejected"
	case ReviewStateCancelled:
		return "Cancelled"
	case ReviewStateCompleted:
		return "Completed"
	default:
		return fmt.Sprintf("ReviewState(%d)", int(s))
	}
}

// StateModel is the state of a text annotation, within one of the two
// state models defined for PDF.  The two implementations are [MarkedModel]
// and [ReviewModel].
type StateModel interface {
	// Encode returns a dictionary with the /StateModel and /State entries,
	// in this order.
	Encode() *pdf.Dict

	isStateModel()
}

var (
	_ StateModel = MarkedModel{}
	_ StateModel = ReviewModel{}
)

// MarkedModel is a state in the "Marked" state model.
type MarkedModel struct {
	State MarkedState
}

func (MarkedModel) isStateModel() {}

// Encode implements the [StateModel] interface.
// Encode panics if m.State is not one of the defined MarkedState values.
func (m MarkedModel) Encode() *pdf.Dict {
	var state string
	switch m.State {
	case MarkedStateUnmarked:
		state = "Unmarked"
	case MarkedStateMarked:
		state = "Marked"
	default:
		panic(fmt.Sprintf("annotation: unmapped marked state %d", int(m.State)))
	}
	return encodeState("Marked", state)
}

// ReviewModel is a state in the "Review" state model.
type ReviewModel struct {
	State ReviewState
}

func (ReviewModel) isStateModel() {}

// Encode implements the [StateModel] interface.
// Encode panics if m.State is not one of the defined ReviewState values.
func (m ReviewModel) Encode() *pdf.Dict {
	var state string
	switch m.State {
	case ReviewStateNone:
		state = "None"
	case ReviewStateAccepted:
		state = "Accepted"
	case ReviewStateRejected:
		state = "Rejected"
	case ReviewStateCancelled:
		state = "Cancelled"
	case ReviewStateCompleted:
		state = "Completed"
	default:
		panic(fmt.Sprintf("annotation: unmapped review state %d", int(m.State)))
	}
	return encodeState("Review", state)
}

func encodeState(model, state string) *pdf.Dict {
	dict := pdf.NewDict()
	dict.Set("StateModel", pdf.TextString(model))
	dict.Set("State", pdf.TextString(state))
	return dict
}

// ParseMarkedState converts a state name like "Marked" to a MarkedState.
// Names are compared case-insensitively.
func ParseMarkedState(s string) (MarkedState, error) {
	for _, st := range []MarkedState{MarkedStateUnmarked, MarkedStateMarked} {
		if strings.EqualFold(s, st.String()) {
			return st, nil
		}
	}
	return 0, fmt.Errorf("unknown marked state %q", s)
}

// ParseReviewState converts a state name like "Accepted" to a ReviewState.
// Names are compared case-insensitively.
func ParseReviewState(s string) (ReviewState, error) {
	all := []ReviewState{
		ReviewStateNone,
		ReviewStateAccepted,
		ReviewStateRejected,
		ReviewStateCancelled,
		ReviewStateCompleted,
	}
	for _, st := range all {
		if strings.EqualFold(s, st.String()) {
			return st, nil
		}
	}
	return 0, fmt.Errorf("unknown review state %q", s)
}

// ParseStateModel converts a string of the form "model:state", for example
// "review:accepted", to a StateModel.  If the state is omitted, the default
// state of the model is used.
func ParseStateModel(s string) (StateModel, error) {
	model, state, hasState := strings.Cut(s, ":")
	switch strings.ToLower(model) {
	case "marked":
		if !hasState {
			return MarkedModel{}, nil
		}
		st, err := ParseMarkedState(state)
		if err != nil {
			return nil, err
		}
		return MarkedModel{State: st}, nil
	case "review":
		if !hasState {
			return ReviewModel{}, nil
		}
		st, err := ParseReviewState(state)
		if err != nil {
			return nil, err
		}
		return ReviewModel{State: st}, nil
	case "":
		return nil, errMissingModel
	default:
		return nil, fmt.Errorf("unknown state model %q", model)
	}
}

var errMissingModel = errors.New("missing state model")
