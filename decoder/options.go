package decoder

import (
	"fmt"
	"io"

	"github.com/k0kubun/pp"
)

type Option func(*Decoder)

// WithTrace makes the decoder describe every byte it classifies and dump
// every decoded instruction to w.
func WithTrace(w io.Writer) Option {
	return func(d *Decoder) {
		d.trace = w
	}
}

func (d *Decoder) tracef(format string, args ...any) {
	if d.trace == nil {
		return
	}
	fmt.Fprintf(d.trace, format, args...)
}

func (d *Decoder) traceInstruction(inst *Instruction) {
	if d.trace == nil {
		return
	}

	d.tracef("opcode: %08b. direction %01b, wide: %01b\n", inst.Opcode, inst.D, inst.W)
	if inst.Form != FormImmToReg {
		d.tracef("mod: %02b. reg %03b, rm: %03b\n", inst.Mod, inst.Reg, inst.RM)
	}
	pp.Fprintln(d.trace, inst)
	d.tracef("add output: %s\n", inst.Disassemble())
}
