package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTimerDerivationMatchesScenarioS6 mirrors spec.md §8 scenario S6.
func TestTimerDerivationMatchesScenarioS6(t *testing.T) {
	vm, _, _, clock := newTestInterpreter(t)
	vm.v[0] = 60
	load(vm, 0xF0, 0x15)
	clock.Set(0.0)
	vm.ExecuteNextInstruction()

	clock.Set(0.5)
	assert.Equal(t, byte(30), vm.DelayTimer())

	clock.Set(1.0)
	assert.Equal(t, byte(0), vm.DelayTimer())

	clock.Set(1000)
	assert.Equal(t, byte(0), vm.DelayTimer())
}

func TestSoundTimerDerivesTheSameWay(t *testing.T) {
	vm, _, _, clock := newTestInterpreter(t)
	vm.v[2] = 30
	load(vm, 0xF2, 0x18)
	clock.Set(10.0)
	vm.ExecuteNextInstruction()

	clock.Set(10.25)
	assert.Equal(t, byte(15), vm.SoundTimer())
}
