package decoder

import (
	"fmt"
	"strings"
)

const header = "bits 16\n"

func (o Operand) String() string {
	switch o.Kind {
	case OperandRegister:
		return o.Register
	case OperandImmediate:
		return fmt.Sprintf("%d", o.Imm)
	case OperandMemory:
		if o.Direct {
			return fmt.Sprintf("[%d]", o.Disp)
		}
		// the suffix follows the encoding, so a zero displacement still
		// prints "+ 0"
		if o.HasDisp {
			return fmt.Sprintf("[%s + %d]", o.Base, o.Disp)
		}
		return fmt.Sprintf("[%s]", o.Base)
	}

	unreachable("operand kind %d", o.Kind)
	return ""
}

func (inst *Instruction) Disassemble() string {
	return fmt.Sprintf("%s %s, %s", inst.Op, inst.Dst, inst.Src)
}

// output accumulates the listing: the header, then one line per
// instruction, each preceded by a line break.
type output struct {
	b strings.Builder
}

func newOutput() *output {
	o := &output{}
	o.b.WriteString(header)
	return o
}

// append adds inst to the listing. A nil instruction, i.e. a skipped byte,
// adds nothing.
func (o *output) append(inst *Instruction) {
	if inst == nil {
		return
	}
	o.b.WriteString("\n")
	o.b.WriteString(inst.Disassemble())
}

func (o *output) String() string {
	return o.b.String()
}
