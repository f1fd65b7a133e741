package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestProgressImmediate(t *testing.T) {
	var got []int
	err := Progress(context.Background(), 0, 10, func(p int) { got = append(got, p) })
	assert.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, got)
}

func TestProgressUnevenStepEndsAtHundred(t *testing.T) {
	var got []int
	err := Progress(context.Background(), 0, 30, func(p int) { got = append(got, p) })
	assert.NoError(t, err)
	assert.Equal(t, []int{30, 60, 90, 100}, got)
}

func TestProgressTicks(t *testing.T) {
	defer goleak.VerifyNone(t)

	var got []int
	err := Progress(context.Background(), time.Millisecond, 25, func(p int) { got = append(got, p) })
	assert.NoError(t, err)
	assert.Equal(t, []int{25, 50, 75, 100}, got)
}

func TestProgressCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	var got []int
	err := Progress(ctx, 5*time.Millisecond, 10, func(p int) {
		got = append(got, p)
		if p == 30 {
			cancel()
		}
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []int{10, 20, 30}, got)
}
