package gait

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MasterYip/OCS2"
)

func TestModeFromFlags(t *testing.T) {
	type eg struct {
		contact [NumLegs]bool
		exp     ocs2.Mode
	}

	examples := []eg{
		{[NumLegs]bool{false, false, false, false}, ModeFly},
		{[NumLegs]bool{true, true, true, true}, ModeStance},
		{[NumLegs]bool{true, false, false, true}, ModeLFRH},
		{[NumLegs]bool{false, true, true, false}, ModeRFLH},
		{[NumLegs]bool{true, false, true, false}, ModeLFLH},
		{[NumLegs]bool{false, true, false, true}, ModeRFRH},
		{[NumLegs]bool{false, false, false, true}, ModeRH},
	}

	for i, x := range examples {
		assert.Equal(t, x.exp, ModeFromFlags(x.contact), "example %d encode", i+1)
		assert.Equal(t, x.contact, ContactFlags(x.exp), "example %d decode", i+1)
	}
}

func TestContactFlagsRoundTrip(t *testing.T) {
	for m := ocs2.Mode(0); m <= ModeStance; m++ {
		assert.Equal(t, m, ModeFromFlags(ContactFlags(m)))
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("LF_RH")
	assert.NoError(t, err)
	assert.Equal(t, ModeLFRH, m)

	m, err = ParseMode("STANCE")
	assert.NoError(t, err)
	assert.Equal(t, ModeStance, m)

	m, err = ParseMode("6")
	assert.NoError(t, err)
	assert.Equal(t, ModeRFLH, m)

	_, err = ParseMode("GALLOP")
	assert.Error(t, err)

	_, err = ParseMode("-1")
	assert.Error(t, err)
}
