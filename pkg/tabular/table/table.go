// Package table encodes table constraints: a group of integer variables is
// forced to jointly take one of an enumerated set of admissible value
// tuples. The encoding supports an enabling literal, which the engine's
// native conditional activation does not offer for tuple membership: the
// constraint is decomposed into per-tuple and per-value indicator booleans
// linked by primitive constraints the engine does support.
package table

import (
	"errors"
	"fmt"

	"github.com/constraint-framework/tabular/pkg/tabular"
)

var (
	// ErrNilModel is returned when no model is provided.
	ErrNilModel = errors.New("model must not be nil")
	// ErrNoVariables is returned when the variable group is empty.
	ErrNoVariables = errors.New("variable group must not be empty")
	// ErrNoTuples is returned when the tuple set is empty.
	ErrNoTuples = errors.New("tuple set must not be empty")
)

// TupleLengthError is returned when a tuple's length differs from the
// variable group's.
type TupleLengthError struct {
	Index int
	Len   int
	Want  int
}

func (e *TupleLengthError) Error() string {
	return fmt.Sprintf("tuple %d has length %d, want %d", e.Index, e.Len, e.Want)
}

// NegativeValueError is returned when a tuple contains a negative value.
// The encoding only works for nonnegative integers.
type NegativeValueError struct {
	Tuple    int
	Position int
	Value    int
}

func (e *NegativeValueError) Error() string {
	return fmt.Sprintf("tuple %d has negative value %d at position %d", e.Tuple, e.Value, e.Position)
}

// ForeignVariableError is returned when a variable does not belong to the
// model being encoded into.
type ForeignVariableError struct {
	Name string
}

func (e *ForeignVariableError) Error() string {
	return fmt.Sprintf("variable %q does not belong to the model", e.Name)
}

// AddAllowedAssignmentsIf adds an optional table constraint to m: whenever
// option is true, variables must jointly equal one of tuples,
// position by position. When option is false this constraint imposes no
// restriction on variables.
//
// The decomposition introduces one boolean per tuple and one boolean per
// variable-value pair over the range 0..maxValue, where maxValue is the
// largest value appearing in tuples. The linking implications are
// deliberately one-directional: when option is false the indicator
// booleans are decoupled from variables and carry no meaning, so no other
// part of a composed model should read them in that case.
//
// All inputs are validated before the model is touched; a rejected call
// leaves m unchanged.
func AddAllowedAssignmentsIf(m *tabular.Model, variables []tabular.IntVar, tuples [][]int, option tabular.BoolVar) error {
	if m == nil {
		return ErrNilModel
	}
	if len(variables) == 0 {
		return ErrNoVariables
	}
	if len(tuples) == 0 {
		return ErrNoTuples
	}
	for k, t := range tuples {
		if len(t) != len(variables) {
			return &TupleLengthError{Index: k, Len: len(t), Want: len(variables)}
		}
		for i, value := range t {
			if value < 0 {
				return &NegativeValueError{Tuple: k, Position: i, Value: value}
			}
		}
	}
	for _, v := range variables {
		if v.Model() != m {
			return &ForeignVariableError{Name: v.Name()}
		}
	}
	if option.Model() != m {
		return &ForeignVariableError{Name: option.Name()}
	}

	// auxiliary names are scoped to this call by the number of booleans
	// already declared on the model
	prefix := fmt.Sprintf("tbl%d", m.NumBoolVars())

	// one boolean per tuple indicates whether the values of that tuple
	// are the ones assigned to the variables
	b := make([]tabular.BoolVar, len(tuples))
	for k := range tuples {
		b[k] = m.NewBoolVar(fmt.Sprintf("%s_b[%d]", prefix, k))
	}

	// values that appear at each position across all tuples
	possible := make([]map[int]struct{}, len(variables))
	for i := range possible {
		possible[i] = map[int]struct{}{}
	}
	maxValue := 0
	for _, t := range tuples {
		for i, value := range t {
			possible[i][value] = struct{}{}
			if value > maxValue {
				maxValue = value
			}
		}
	}

	// isAssigned[i][j] indicates whether variable i is assigned value j
	isAssigned := make([][]tabular.BoolVar, len(variables))
	for i := range variables {
		isAssigned[i] = make([]tabular.BoolVar, maxValue+1)
		for j := 0; j <= maxValue; j++ {
			isAssigned[i][j] = m.NewBoolVar(fmt.Sprintf("%s_is_assigned[%d][%d]", prefix, i, j))
		}
	}

	// some assignments are impossible since the value is found at that
	// position in no tuple
	for i := range variables {
		for j := 0; j <= maxValue; j++ {
			if _, ok := possible[i][j]; !ok {
				m.AddBoolAnd(isAssigned[i][j].Not()).OnlyEnforceIf(option)
			}
		}
	}

	// one value must be assigned to each variable
	for i := range variables {
		m.AddExactlyOne(isAssigned[i]...).OnlyEnforceIf(option)
	}

	// link isAssigned and variables; this direction holds regardless of
	// option, the reverse implication is intentionally absent
	for i := range variables {
		for j := 0; j <= maxValue; j++ {
			m.AddEquality(variables[i], j).OnlyEnforceIf(isAssigned[i][j])
		}
	}

	// a tuple indicator may only hold when every position's indicator
	// agrees with the tuple
	for k, t := range tuples {
		literals := make([]tabular.BoolVar, len(t))
		for j, value := range t {
			literals[j] = isAssigned[j][value]
		}
		m.AddBoolAnd(literals...).OnlyEnforceIf(b[k])
	}

	// only one tuple may be assigned to the variables
	m.AddExactlyOne(b...).OnlyEnforceIf(option)

	return nil
}
