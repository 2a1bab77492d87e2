// Package decoder turns 8086 machine code for the MOV family into
// nasm-style assembly text.
package decoder

import (
	"bytes"
	"fmt"
	"io"
)

type Form int

const (
	FormInvalid Form = iota
	FormRegMemToFromReg
	FormImmToRegMem
	FormImmToReg
)

func (f Form) String() string {
	switch f {
	case FormRegMemToFromReg:
		return "register/memory to/from register"
	case FormImmToRegMem:
		return "immediate to register/memory"
	case FormImmToReg:
		return "immediate to register"
	}
	return "invalid"
}

// Instruction is a single decoded instruction. Dst and Src are kept in the
// order they are rendered.
type Instruction struct {
	Op   string
	Form Form

	Opcode byte
	D      byte
	W      byte
	Mod    byte
	Reg    byte
	RM     byte

	Dst Operand
	Src Operand

	Offset int
	Size   int
}

func (inst *Instruction) setModRM(m modRM) {
	inst.Mod = m.mod
	inst.Reg = m.reg
	inst.RM = m.rm
}

type Decoder struct {
	trace io.Writer
}

func New(opts ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Next decodes the instruction starting at the cursor.
//
// An exhausted stream at an instruction boundary is reported as the bare
// ErrEndOfStream. Running out of bytes inside an instruction returns a
// wrapped ErrEndOfStream. A byte that starts no supported instruction is
// consumed and (nil, nil) is returned.
func (d *Decoder) Next(r *Reader) (*Instruction, error) {
	offset := r.Offset()

	opcode, err := r.read()
	if err != nil {
		return nil, err
	}

	var parse func(*Reader, *Instruction) error

	switch true {
	// register/memory to/from register
	case field(opcode, 2, 6) == 0b100010:
		parse = parseRegMemToFromReg
	// immediate to register/memory
	case field(opcode, 2, 6) == 0b110001:
		parse = parseImmToRegMem
	// immediate to register
	case field(opcode, 4, 4) == 0b1011:
		parse = parseImmToReg
	default:
		d.tracef("%08b: skipped at offset %d\n", opcode, offset)
		return nil, nil
	}

	inst := &Instruction{Op: "mov", Opcode: opcode, Offset: offset}
	if err := parse(r, inst); err != nil {
		return nil, fmt.Errorf("could not decode %08b at offset %d: %w", opcode, offset, err)
	}
	inst.Size = r.Offset() - offset

	d.traceInstruction(inst)

	return inst, nil
}

// Decode consumes src to the end and returns the full listing. On error
// nothing of the listing is returned.
func (d *Decoder) Decode(src io.ByteReader) (string, error) {
	r := NewReader(src)
	out := newOutput()

	for {
		inst, err := d.Next(r)
		if err == ErrEndOfStream {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to disassemble: %w", err)
		}

		out.append(inst)
	}

	return out.String(), nil
}

func DecodeBytes(buf []byte, opts ...Option) (string, error) {
	return New(opts...).Decode(bytes.NewReader(buf))
}
