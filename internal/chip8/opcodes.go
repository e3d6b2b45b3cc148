package chip8

// ExecuteNextInstruction fetches, decodes, and executes one instruction,
// then returns. It is synchronous and never blocks, even for FX0A: the
// callback model means the interpreter advances PC immediately and the
// host resumes execution; when the host later detects a keypress it
// invokes the callback via InputSource.AwaitKeypress. If Halted is already
// true, this call is a no-op. On decode failure the interpreter sets
// Halted and leaves every other observable field untouched.
func (vm *Interpreter) ExecuteNextInstruction() {
	if vm.halted {
		return
	}
	if int(vm.pc) >= len(vm.memory)-1 {
		vm.halted = true
		return
	}

	opcode := uint16(vm.memory[vm.pc])<<8 | uint16(vm.memory[vm.pc+1])
	x := byte((opcode >> 8) & 0xF)
	y := byte((opcode >> 4) & 0xF)
	n := byte(opcode & 0xF)
	nn := byte(opcode & 0xFF)
	nnn := opcode & 0xFFF

	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0:
			vm._0x00E0()
		case 0x00EE:
			vm._0x00EE()
		default:
			vm.halted = true
		}
	case 0x1000:
		vm._0x1NNN(nnn)
	case 0x2000:
		vm._0x2NNN(nnn)
	case 0x3000:
		vm._0x3XNN(x, nn)
	case 0x4000:
		vm._0x4XNN(x, nn)
	case 0x5000:
		if n != 0 {
			vm.halted = true
			return
		}
		vm._0x5XY0(x, y)
	case 0x6000:
		vm._0x6XNN(x, nn)
	case 0x7000:
		vm._0x7XNN(x, nn)
	case 0x8000:
		switch n {
		case 0x0:
			vm._0x8XY0(x, y)
		case 0x1:
			vm._0x8XY1(x, y)
		case 0x2:
			vm._0x8XY2(x, y)
		case 0x3:
			vm._0x8XY3(x, y)
		case 0x4:
			vm._0x8XY4(x, y)
		case 0x5:
			vm._0x8XY5(x, y)
		case 0x6:
			vm._0x8XY6(x, y)
		case 0x7:
			vm._0x8XY7(x, y)
		case 0xE:
			vm._0x8XYE(x, y)
		default:
			vm.halted = true
		}
	case 0x9000:
		if n != 0 {
			vm.halted = true
			return
		}
		vm._0x9XY0(x, y)
	case 0xA000:
		vm._0xANNN(nnn)
	case 0xB000:
		vm._0xBNNN(nnn)
	case 0xC000:
		vm._0xCXNN(x, nn)
	case 0xD000:
		vm._0xDXYN(x, y, n)
	case 0xE000:
		switch nn {
		case 0x9E:
			vm._0xEX9E(x)
		case 0xA1:
			vm._0xEXA1(x)
		default:
			vm.halted = true
		}
	case 0xF000:
		switch nn {
		case 0x07:
			vm._0xFX07(x)
		case 0x0A:
			vm._0xFX0A(x)
		case 0x15:
			vm._0xFX15(x)
		case 0x18:
			vm._0xFX18(x)
		case 0x1E:
			vm._0xFX1E(x)
		case 0x29:
			vm._0xFX29(x)
		case 0x33:
			vm._0xFX33(x)
		case 0x55:
			vm._0xFX55(x)
		case 0x65:
			vm._0xFX65(x)
		default:
			vm.halted = true
		}
	default:
		vm.halted = true
	}
}

func (vm *Interpreter) advance() {
	vm.pc += 2
}

func (vm *Interpreter) skip() {
	vm.pc += 4
}

// 00E0: clear the screen.
func (vm *Interpreter) _0x00E0() {
	vm.screen.Clear()
	vm.advance()
}

// 00EE: return from a subroutine. An empty stack halts.
func (vm *Interpreter) _0x00EE() {
	if len(vm.stack) == 0 {
		vm.halted = true
		return
	}
	top := len(vm.stack) - 1
	vm.pc = vm.stack[top]
	vm.stack = vm.stack[:top]
}

// 1NNN: jump to address NNN.
func (vm *Interpreter) _0x1NNN(nnn uint16) {
	vm.pc = nnn
}

// 2NNN: call subroutine at NNN, pushing the return address.
func (vm *Interpreter) _0x2NNN(nnn uint16) {
	vm.stack = append(vm.stack, vm.pc+2)
	vm.pc = nnn
}

// 3XNN: skip the next instruction if V[X] == NN.
func (vm *Interpreter) _0x3XNN(x byte, nn byte) {
	if vm.v[x] == nn {
		vm.skip()
		return
	}
	vm.advance()
}

// 4XNN: skip the next instruction if V[X] != NN.
func (vm *Interpreter) _0x4XNN(x byte, nn byte) {
	if vm.v[x] != nn {
		vm.skip()
		return
	}
	vm.advance()
}

// 5XY0: skip the next instruction if V[X] == V[Y].
func (vm *Interpreter) _0x5XY0(x, y byte) {
	if vm.v[x] == vm.v[y] {
		vm.skip()
		return
	}
	vm.advance()
}

// 6XNN: V[X] = NN.
func (vm *Interpreter) _0x6XNN(x byte, nn byte) {
	vm.v[x] = nn
	vm.advance()
}

// 7XNN: V[X] = V[X] + NN, wrapping mod 256. VF is unchanged.
func (vm *Interpreter) _0x7XNN(x byte, nn byte) {
	vm.v[x] += nn
	vm.advance()
}

// 8XY0: V[X] = V[Y].
func (vm *Interpreter) _0x8XY0(x, y byte) {
	vm.v[x] = vm.v[y]
	vm.advance()
}

// 8XY1: V[X] |= V[Y].
func (vm *Interpreter) _0x8XY1(x, y byte) {
	vm.v[x] |= vm.v[y]
	vm.advance()
}

// 8XY2: V[X] &= V[Y].
func (vm *Interpreter) _0x8XY2(x, y byte) {
	vm.v[x] &= vm.v[y]
	vm.advance()
}

// 8XY3: V[X] ^= V[Y].
func (vm *Interpreter) _0x8XY3(x, y byte) {
	vm.v[x] ^= vm.v[y]
	vm.advance()
}

// 8XY4: V[X] += V[Y]; VF = carry-out of the unsigned 8-bit addition. The
// result is written before the flag, per spec.md §3.
func (vm *Interpreter) _0x8XY4(x, y byte) {
	sum := uint16(vm.v[x]) + uint16(vm.v[y])
	vm.v[x] = byte(sum)
	if sum > 0xFF {
		vm.v[0xF] = 1
	} else {
		vm.v[0xF] = 0
	}
	vm.advance()
}

// 8XY5: V[X] -= V[Y], wrapping mod 256; VF = 1 when no borrow occurred.
func (vm *Interpreter) _0x8XY5(x, y byte) {
	borrow := vm.v[y] > vm.v[x]
	vm.v[x] = vm.v[x] - vm.v[y]
	if borrow {
		vm.v[0xF] = 0
	} else {
		vm.v[0xF] = 1
	}
	vm.advance()
}

// 8XY6: V[X] = V[Y] >> 1; VF = the bit shifted out of V[Y]. This core
// follows the copy-from-VY dialect per spec.md §9's open-question ruling.
func (vm *Interpreter) _0x8XY6(x, y byte) {
	shiftedOut := vm.v[y] & 0x1
	vm.v[x] = vm.v[y] >> 1
	vm.v[0xF] = shiftedOut
	vm.advance()
}

// 8XY7: V[X] = V[Y] - V[X], wrapping mod 256; VF = 1 when no borrow occurred.
func (vm *Interpreter) _0x8XY7(x, y byte) {
	borrow := vm.v[x] > vm.v[y]
	vm.v[x] = vm.v[y] - vm.v[x]
	if borrow {
		vm.v[0xF] = 0
	} else {
		vm.v[0xF] = 1
	}
	vm.advance()
}

// 8XYE: V[X] = V[Y] << 1, wrapping mod 256; VF = the bit shifted out of V[Y].
func (vm *Interpreter) _0x8XYE(x, y byte) {
	shiftedOut := (vm.v[y] >> 7) & 0x1
	vm.v[x] = vm.v[y] << 1
	vm.v[0xF] = shiftedOut
	vm.advance()
}

// 9XY0: skip the next instruction if V[X] != V[Y].
func (vm *Interpreter) _0x9XY0(x, y byte) {
	if vm.v[x] != vm.v[y] {
		vm.skip()
		return
	}
	vm.advance()
}

// ANNN: I = NNN.
func (vm *Interpreter) _0xANNN(nnn uint16) {
	vm.i = nnn
	vm.advance()
}

// BNNN: PC = NNN + V[0].
func (vm *Interpreter) _0xBNNN(nnn uint16) {
	vm.pc = nnn + uint16(vm.v[0])
}

// CXNN: V[X] = random() & NN.
func (vm *Interpreter) _0xCXNN(x byte, nn byte) {
	vm.v[x] = vm.rng.byte() & nn
	vm.advance()
}

// DXYN: XOR-blit an N-row sprite at (V[X] mod W, V[Y] mod H) from memory
// starting at I. Per spec.md §4.D, only the sprite's origin wraps; pixels
// that fall beyond the screen after that are clipped (not drawn), the
// reference behavior the corpus's tests pin. VF is set once, after all
// rows, if any previously-set pixel became unset anywhere in the sprite.
func (vm *Interpreter) _0xDXYN(x, y byte, n byte) {
	width, height := vm.screen.Width(), vm.screen.Height()
	originX := int(vm.v[x]) % width
	originY := int(vm.v[y]) % height

	collision := false
	for row := byte(0); row < n; row++ {
		py := originY + int(row)
		if py >= height {
			continue
		}
		spriteRow := vm.memory[vm.i+uint16(row)]
		for col := byte(0); col < 8; col++ {
			if spriteRow&(0x80>>col) == 0 {
				continue
			}
			px := originX + int(col)
			if px >= width {
				continue
			}
			prev := vm.screen.GetPixel(byte(px), byte(py))
			vm.screen.SetPixel(byte(px), byte(py), !prev)
			if prev {
				collision = true
			}
		}
	}
	if collision {
		vm.v[0xF] = 1
	} else {
		vm.v[0xF] = 0
	}
	vm.advance()
}

// EX9E: skip the next instruction if the key named by V[X] is pressed.
func (vm *Interpreter) _0xEX9E(x byte) {
	if vm.input.IsKeyPressed(vm.v[x]) {
		vm.skip()
		return
	}
	vm.advance()
}

// EXA1: skip the next instruction if the key named by V[X] is not pressed.
func (vm *Interpreter) _0xEXA1(x byte) {
	if !vm.input.IsKeyPressed(vm.v[x]) {
		vm.skip()
		return
	}
	vm.advance()
}

// FX07: V[X] = delay timer.
func (vm *Interpreter) _0xFX07(x byte) {
	vm.v[x] = vm.DelayTimer()
	vm.advance()
}

// FX0A: arm a one-shot await-keypress callback that stores the key into
// V[X]; PC advances immediately, the interpreter does not block or re-decode.
func (vm *Interpreter) _0xFX0A(x byte) {
	vm.input.AwaitKeypress(func(key byte) {
		vm.v[x] = key
	})
	vm.advance()
}

// FX15: set the delay timer to V[X] at the current clock time.
func (vm *Interpreter) _0xFX15(x byte) {
	vm.delayTS = timerTimestamp{setTime: vm.clock.ElapsedSeconds(), setValue: vm.v[x]}
	vm.advance()
}

// FX18: set the sound timer to V[X] at the current clock time.
func (vm *Interpreter) _0xFX18(x byte) {
	vm.soundTS = timerTimestamp{setTime: vm.clock.ElapsedSeconds(), setValue: vm.v[x]}
	vm.advance()
}

// FX1E: I += V[X], wrapping mod 2^16.
func (vm *Interpreter) _0xFX1E(x byte) {
	vm.i += uint16(vm.v[x])
	vm.advance()
}

// FX29: I = 5 * V[X], the address of V[X]'s font glyph.
func (vm *Interpreter) _0xFX29(x byte) {
	vm.i = 5 * uint16(vm.v[x])
	vm.advance()
}

// FX33: store the binary-coded decimal digits of V[X] at I, I+1, I+2.
func (vm *Interpreter) _0xFX33(x byte) {
	value := vm.v[x]
	vm.memory[vm.i] = value / 100
	vm.memory[vm.i+1] = (value / 10) % 10
	vm.memory[vm.i+2] = value % 10
	vm.advance()
}

// FX55: store V[0..=X] to memory starting at I; I += X+1 afterward.
func (vm *Interpreter) _0xFX55(x byte) {
	for i := byte(0); i <= x; i++ {
		vm.memory[vm.i+uint16(i)] = vm.v[i]
	}
	vm.i += uint16(x) + 1
	vm.advance()
}

// FX65: load V[0..=X] from memory starting at I; I += X+1 afterward.
func (vm *Interpreter) _0xFX65(x byte) {
	for i := byte(0); i <= x; i++ {
		vm.v[i] = vm.memory[vm.i+uint16(i)]
	}
	vm.i += uint16(x) + 1
	vm.advance()
}
