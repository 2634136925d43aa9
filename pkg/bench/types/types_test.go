package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Validate(t *testing.T) {
	valid := Params{StartValue: 0.5, IncrementValue: 0.1, EndValue: 0.7, SampleValue: 100}

	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr bool
	}{
		{"valid", func(p *Params) {}, false},
		{"single point sweep", func(p *Params) { p.EndValue = p.StartValue }, false},
		{"zero increment", func(p *Params) { p.IncrementValue = 0 }, true},
		{"negative increment", func(p *Params) { p.IncrementValue = -0.1 }, true},
		{"zero start", func(p *Params) { p.StartValue = 0 }, true},
		{"zero end", func(p *Params) { p.EndValue = 0 }, true},
		{"start after end", func(p *Params) { p.StartValue = 1.0 }, true},
		{"zero samples", func(p *Params) { p.SampleValue = 0 }, true},
		{"negative samples", func(p *Params) { p.SampleValue = -5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidParams)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParams_Iterations(t *testing.T) {
	p := Params{StartValue: 0.5, IncrementValue: 0.1, EndValue: 0.7, SampleValue: 100}
	assert.Equal(t, 2, p.Iterations())

	p = Params{StartValue: 0.5, IncrementValue: 0.3, EndValue: 0.7, SampleValue: 100}
	assert.Equal(t, 1, p.Iterations())
}

func TestQuantize(t *testing.T) {
	assert.Equal(t, 0.5, Quantize(0.5))
	assert.Equal(t, 0.5007, Quantize(0.50074))
	assert.Equal(t, 0.5008, Quantize(0.50075))

	// Accumulated cursor error must quantize back to the intended point.
	cur := 0.1
	for i := 0; i < 2; i++ {
		cur += 0.1
	}
	assert.Equal(t, 0.3, Quantize(cur))
}

func TestSetterUnits(t *testing.T) {
	assert.Equal(t, 5000, SetterUnits(0.5))
	assert.Equal(t, 10000, SetterUnits(1.0))
	assert.Equal(t, 5007, SetterUnits(0.50071))

	// 0.1+0.1+0.1 accumulates to 0.30000000000000004; units must not drift.
	assert.Equal(t, 3000, SetterUnits(0.1+0.1+0.1))
}

func TestSample_Degenerate(t *testing.T) {
	assert.True(t, Sample{}.Degenerate())
	assert.True(t, Sample{AvgMs: 1.2}.Degenerate())
	assert.True(t, Sample{StdevMs: 0.3}.Degenerate())
	assert.False(t, Sample{AvgMs: 1.2, StdevMs: 0.3}.Degenerate())
}
