// Package chip8 implements a cycle-faithful CHIP-8 interpreter: registers,
// memory, call stack, decode-execute loop, and 60 Hz timer derivation. It
// depends only on the ScreenSink, InputSource, and TimeSource interfaces —
// windowing, audio, and ROM loading are the host's concern.
package chip8

import "time"

const (
	// DefaultMemorySize is the interpreter's memory size when the caller
	// does not specify one.
	DefaultMemorySize = 4096

	// ProgramStart is the address most CHIP-8 ROMs are loaded at and the
	// Interpreter's initial program counter.
	ProgramStart uint16 = 0x200
)

// timerTimestamp stores the (set_time, set_value) pair a delay/sound timer
// is derived from, per spec.md §3: "the current timer value is derived",
// not ticked.
type timerTimestamp struct {
	setTime  float64
	setValue byte
}

// current returns the timer's value at now, clamped to 0.
func (t timerTimestamp) current(now float64) byte {
	elapsed := now - t.setTime
	if elapsed <= 0 {
		return t.setValue
	}
	decrements := uint64(elapsed * 60.0)
	if decrements >= uint64(t.setValue) {
		return 0
	}
	return t.setValue - byte(decrements)
}

// Interpreter is the CHIP-8 CPU. It holds non-owning references to its
// three collaborators; the host must keep them alive and free of
// concurrent access for the duration of each ExecuteNextInstruction call.
type Interpreter struct {
	v      [16]byte
	i      uint16
	pc     uint16
	memory []byte
	stack  []uint16

	delayTS timerTimestamp
	soundTS timerTimestamp

	halted bool

	screen ScreenSink
	input  InputSource
	clock  TimeSource

	rng *rng
}

// NewInterpreter constructs an Interpreter over the given collaborators.
// memorySize <= 0 selects DefaultMemorySize. Memory is zeroed, the 80-byte
// font table is installed at 0x000, PC starts at ProgramStart, and all
// registers and the halted flag start zero/false.
func NewInterpreter(screen ScreenSink, input InputSource, clock TimeSource, memorySize int) *Interpreter {
	if memorySize <= 0 {
		memorySize = DefaultMemorySize
	}
	vm := &Interpreter{
		memory: make([]byte, memorySize),
		pc:     ProgramStart,
		screen: screen,
		input:  input,
		clock:  clock,
		rng:    newRNG(time.Now().UnixNano()),
	}
	copy(vm.memory[0:len(fontSet)], fontSet[:])
	return vm
}

// LoadProgram copies program into memory starting at ProgramStart. It is a
// convenience for callers that already have ROM bytes in hand; reading
// those bytes from a file is the host's responsibility per spec.md §1.
func (vm *Interpreter) LoadProgram(program []byte) {
	copy(vm.memory[ProgramStart:], program)
}

// Read returns the byte at addr. Out-of-range addr panics: bounds at the
// public API are the host's contract to honor, not a recoverable error.
func (vm *Interpreter) Read(addr uint16) byte {
	return vm.memory[addr]
}

// Write stores value at addr. Out-of-range addr panics.
func (vm *Interpreter) Write(addr uint16, value byte) {
	vm.memory[addr] = value
}

// Registers returns a snapshot of V0-VF.
func (vm *Interpreter) Registers() [16]byte {
	return vm.v
}

// I returns the current value of the address register.
func (vm *Interpreter) I() uint16 {
	return vm.i
}

// PC returns the address of the next instruction to execute.
func (vm *Interpreter) PC() uint16 {
	return vm.pc
}

// Memory returns a read-only view of the full memory array. Mutating it is
// undefined; use Write.
func (vm *Interpreter) Memory() []byte {
	return vm.memory
}

// Halted reports whether the interpreter has entered its terminal state.
// Once true, ExecuteNextInstruction is a no-op; the only way out is to
// construct a fresh Interpreter.
func (vm *Interpreter) Halted() bool {
	return vm.halted
}

// DelayTimer derives the current delay timer value from the clock.
func (vm *Interpreter) DelayTimer() byte {
	return vm.delayTS.current(vm.clock.ElapsedSeconds())
}

// SoundTimer derives the current sound timer value from the clock. The
// sound timer is exposed as a counter only; audio synthesis is out of
// scope per spec.md §1.
func (vm *Interpreter) SoundTimer() byte {
	return vm.soundTS.current(vm.clock.ElapsedSeconds())
}
