package decoder

// RegisterName resolves a 3-bit register selector and the width flag to
// the register mnemonic. All 16 combinations are defined.
func RegisterName(reg, w byte) string {
	assert(reg < 8 && w < 2, "register selector %03b/w=%d out of range", reg, w)

	switch (reg << 1) | w {
	case 0b0000:
		return "al"
	case 0b0001:
		return "ax"
	case 0b0010:
		return "cl"
	case 0b0011:
		return "cx"
	case 0b0100:
		return "dl"
	case 0b0101:
		return "dx"
	case 0b0110:
		return "bl"
	case 0b0111:
		return "bx"
	case 0b1000:
		return "ah"
	case 0b1001:
		return "sp"
	case 0b1010:
		return "ch"
	case 0b1011:
		return "bp"
	case 0b1100:
		return "dh"
	case 0b1101:
		return "si"
	case 0b1110:
		return "bh"
	case 0b1111:
		return "di"
	}

	unreachable("register %03b w=%d", reg, w)
	return ""
}

// EffectiveAddress returns the base expression for a memory operand.
// mod=11 is register mode and mod=00,rm=110 is the direct address; callers
// must handle both before asking.
func EffectiveAddress(mod, rm byte) string {
	switch (mod << 3) | rm {
	case 0b00000, 0b01000, 0b10000:
		return "bx + si"
	case 0b00001, 0b01001, 0b10001:
		return "bx + di"
	case 0b00010, 0b01010, 0b10010:
		return "bp + si"
	case 0b00011, 0b01011, 0b10011:
		return "bp + di"
	case 0b00100, 0b01100, 0b10100:
		return "si"
	case 0b00101, 0b01101, 0b10101:
		return "di"
	case 0b01110, 0b10110:
		return "bp"
	case 0b00111, 0b01111, 0b10111:
		return "bx"
	case 0b00110:
		unreachable("direct address has no base expression")
	}

	unreachable("effective address mod=%02b rm=%03b", mod, rm)
	return ""
}

func isDirectAddress(mod, rm byte) bool {
	return mod == modMemory && rm == 0b110
}
