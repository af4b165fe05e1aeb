package builder

import (
	"strconv"

	"github.com/brennanmoore/vcdload/pkgs/model"
	"github.com/brennanmoore/vcdload/pkgs/vcderrors"
)

type timeScaleStage int

const (
	timeScaleStageValue timeScaleStage = iota
	timeScaleStageUnit
	timeScaleStageDone
)

// TimeScale builds a model.TimeScale from the two words a $timescale
// command carries: a positive decimal integer and a unit keyword.
type TimeScale struct {
	value int
	unit  model.TimeUnit
	stage timeScaleStage
}

// NewTimeScale returns an empty TimeScale builder.
func NewTimeScale() *TimeScale {
	return &TimeScale{}
}

// Append feeds the next word to the builder.
func (b *TimeScale) Append(word string, line int) error {
	switch b.stage {
	case timeScaleStageValue:
		n, err := strconv.Atoi(word)
		if err != nil || n <= 0 {
			return vcderrors.NewInvalidTimeValueError(line, word)
		}
		b.value = n
	case timeScaleStageUnit:
		u, ok := model.TimeUnitFromString(word)
		if !ok {
			return vcderrors.NewInvalidTimeScaleError(line, word)
		}
		b.unit = u
	default:
		return vcderrors.NewTooManyParametersError(line, "$timescale")
	}
	b.stage++
	return nil
}

// Done reports whether both value and unit have been consumed.
func (b *TimeScale) Done() bool {
	return b.stage >= timeScaleStageDone
}

// Build returns the TimeScale assembled from the words consumed so far.
// It does not check Done: a word that never arrived keeps its zero value.
func (b *TimeScale) Build() model.TimeScale {
	return model.TimeScale{Value: b.value, Unit: b.unit}
}
