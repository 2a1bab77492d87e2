package decoder

const (
	modMemory       byte = 0b00
	modMemoryDisp8  byte = 0b01
	modMemoryDisp16 byte = 0b10
	modRegister     byte = 0b11
)

type OperandKind int

const (
	OperandRegister OperandKind = iota
	OperandMemory
	OperandImmediate
)

// Operand is one side of a decoded instruction. Which fields are
// meaningful depends on Kind.
type Operand struct {
	Kind OperandKind

	Register string

	// memory
	Base    string
	Disp    uint16
	HasDisp bool // a displacement field was present in the encoding
	Direct  bool // direct address, Disp is the address

	Imm uint16
}

func registerOperand(reg, w byte) Operand {
	return Operand{Kind: OperandRegister, Register: RegisterName(reg, w)}
}

func immediateOperand(r *Reader, w byte) (Operand, error) {
	data, err := r.readUint16W(w == 1)
	if err != nil {
		return Operand{}, err
	}
	return Operand{Kind: OperandImmediate, Imm: data}, nil
}

// modRM holds the fields of the addressing byte.
type modRM struct {
	mod byte
	reg byte
	rm  byte
}

func readModRM(r *Reader) (modRM, error) {
	b, err := r.read()
	if err != nil {
		return modRM{}, err
	}

	return modRM{
		mod: field(b, 6, 2),
		reg: field(b, 3, 3),
		rm:  field(b, 0, 3),
	}, nil
}

// rmOperand decodes the operand selected by mod and rm, reading any
// displacement bytes that the addressing mode carries.
func rmOperand(r *Reader, m modRM, w byte) (Operand, error) {
	if m.mod == modRegister {
		return registerOperand(m.rm, w), nil
	}

	if isDirectAddress(m.mod, m.rm) {
		disp, err := r.readUint16()
		if err != nil {
			return Operand{}, err
		}
		return Operand{Kind: OperandMemory, Disp: disp, HasDisp: true, Direct: true}, nil
	}

	op := Operand{Kind: OperandMemory, Base: EffectiveAddress(m.mod, m.rm)}

	switch m.mod {
	case modMemory:
		return op, nil
	case modMemoryDisp8:
		b, err := r.read()
		if err != nil {
			return Operand{}, err
		}
		op.Disp = uint16(b)
	case modMemoryDisp16:
		disp, err := r.readUint16()
		if err != nil {
			return Operand{}, err
		}
		op.Disp = disp
	default:
		unreachable("mod %02b", m.mod)
	}

	op.HasDisp = true
	return op, nil
}

// 100010dw mod reg r/m [disp-lo] [disp-hi]
func parseRegMemToFromReg(r *Reader, inst *Instruction) error {
	inst.Form = FormRegMemToFromReg
	inst.D = field(inst.Opcode, 1, 1)
	inst.W = field(inst.Opcode, 0, 1)

	m, err := readModRM(r)
	if err != nil {
		return err
	}
	inst.setModRM(m)

	rm, err := rmOperand(r, m, inst.W)
	if err != nil {
		return err
	}
	reg := registerOperand(m.reg, inst.W)

	if inst.D == 1 {
		inst.Dst, inst.Src = reg, rm
	} else {
		inst.Dst, inst.Src = rm, reg
	}

	return nil
}

// 110001xw mod 000 r/m [disp-lo] [disp-hi] data [data if w=1]
func parseImmToRegMem(r *Reader, inst *Instruction) error {
	inst.Form = FormImmToRegMem
	inst.W = field(inst.Opcode, 0, 1)

	m, err := readModRM(r)
	if err != nil {
		return err
	}
	inst.setModRM(m)

	if inst.Dst, err = rmOperand(r, m, inst.W); err != nil {
		return err
	}
	if inst.Src, err = immediateOperand(r, inst.W); err != nil {
		return err
	}

	return nil
}

// 1011wreg data [data if w=1]
func parseImmToReg(r *Reader, inst *Instruction) error {
	inst.Form = FormImmToReg
	inst.W = field(inst.Opcode, 3, 1)
	inst.Reg = field(inst.Opcode, 0, 3)

	inst.Dst = registerOperand(inst.Reg, inst.W)

	var err error
	if inst.Src, err = immediateOperand(r, inst.W); err != nil {
		return err
	}

	return nil
}
