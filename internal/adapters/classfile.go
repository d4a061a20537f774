package adapters

import (
	"encoding/binary"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depextract/internal/ports"
)

const classMagic = 0xCAFEBABE

// Constant pool tags.
const (
	cpUtf8               = 1
	cpInteger            = 3
	cpFloat              = 4
	cpLong               = 5
	cpDouble             = 6
	cpClass              = 7
	cpString             = 8
	cpFieldref           = 9
	cpMethodref          = 10
	cpInterfaceMethodref = 11
	cpNameAndType        = 12
	cpMethodHandle       = 15
	cpMethodType         = 16
	cpDynamic            = 17
	cpInvokeDynamic      = 18
	cpModule             = 19
	cpPackage            = 20
)

const (
	opLdc          = 0x12
	opLdcW         = 0x13
	opTableSwitch  = 0xaa
	opLookupSwitch = 0xab
	opWide         = 0xc4
	opIinc         = 0x84
)

type cpEntry struct {
	tag   byte
	index uint16
	text  string
}

// ClassFileAdapter reads just enough of a class file to find string
// constants loaded by a method: the constant pool and the Code attribute of
// the requested method.
type ClassFileAdapter struct{}

func NewClassFileAdapter() ClassFileAdapter {
	return ClassFileAdapter{}
}

func (a ClassFileAdapter) ReturnedStringConstant(code []byte, method string, descriptor string) (string, error) {
	r := &classReader{data: code}
	if r.u4() != classMagic {
		return "", classError("bad magic")
	}
	r.skip(4)
	pool, err := r.constantPool()
	if err != nil {
		return "", err
	}
	// access flags, this class, super class
	r.skip(6)
	r.skip(int(r.u2()) * 2)
	if err := r.skipMembers(); err != nil {
		return "", err
	}

	methodCount := int(r.u2())
	for i := 0; i < methodCount && r.err == nil; i++ {
		r.skip(2)
		name := pool.utf8(r.u2())
		desc := pool.utf8(r.u2())
		attrCount := int(r.u2())
		for j := 0; j < attrCount && r.err == nil; j++ {
			attrName := pool.utf8(r.u2())
			length := int(r.u4())
			body := r.bytes(length)
			if name != method || desc != descriptor || attrName != "Code" {
				continue
			}
			value, err := firstStringLoad(body, pool)
			if err != nil {
				return "", err
			}
			return value, nil
		}
		if name == method && desc == descriptor {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("method %s%s has no code", method, descriptor))
		}
	}
	if r.err != nil {
		return "", r.err
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("method %s%s not found", method, descriptor))
}

type constantPool []cpEntry

func (p constantPool) utf8(index uint16) string {
	if int(index) >= len(p) || p[index].tag != cpUtf8 {
		return ""
	}
	return p[index].text
}

func (p constantPool) stringAt(index int) (string, bool) {
	if index <= 0 || index >= len(p) || p[index].tag != cpString {
		return "", false
	}
	return p.utf8(p[index].index), true
}

// firstStringLoad walks the instructions of a Code attribute body and returns
// the first ldc/ldc_w operand that is a CONSTANT_String.
func firstStringLoad(body []byte, pool constantPool) (string, error) {
	r := &classReader{data: body}
	r.skip(4)
	length := int(r.u4())
	code := r.bytes(length)
	if r.err != nil {
		return "", r.err
	}
	for pc := 0; pc < len(code); {
		op := code[pc]
		switch op {
		case opLdc:
			if pc+1 < len(code) {
				if value, ok := pool.stringAt(int(code[pc+1])); ok {
					return value, nil
				}
			}
		case opLdcW:
			if pc+2 < len(code) {
				if value, ok := pool.stringAt(int(binary.BigEndian.Uint16(code[pc+1:]))); ok {
					return value, nil
				}
			}
		}
		size, err := instructionSize(code, pc)
		if err != nil {
			return "", err
		}
		pc += size
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("no string constant loaded")
}

func instructionSize(code []byte, pc int) (int, error) {
	op := code[pc]
	switch {
	case op == opTableSwitch:
		base := pc + 1 + (3 - pc%4)
		if base+12 > len(code) {
			return 0, classError("truncated tableswitch")
		}
		low := int32(binary.BigEndian.Uint32(code[base+4:]))
		high := int32(binary.BigEndian.Uint32(code[base+8:]))
		if high < low {
			return 0, classError("invalid tableswitch bounds")
		}
		return base + 12 + int(high-low+1)*4 - pc, nil
	case op == opLookupSwitch:
		base := pc + 1 + (3 - pc%4)
		if base+8 > len(code) {
			return 0, classError("truncated lookupswitch")
		}
		pairs := int(binary.BigEndian.Uint32(code[base+4:]))
		return base + 8 + pairs*8 - pc, nil
	case op == opWide:
		if pc+1 < len(code) && code[pc+1] == opIinc {
			return 6, nil
		}
		return 4, nil
	}
	return 1 + operandWidth(op), nil
}

func operandWidth(op byte) int {
	switch {
	case op == 0x10, op == opLdc, op >= 0x15 && op <= 0x19, op >= 0x36 && op <= 0x3a, op == 0xa9, op == 0xbc:
		return 1
	case op == 0x11, op == opLdcW, op == 0x14, op == opIinc, op >= 0x99 && op <= 0xa8,
		op >= 0xb2 && op <= 0xb8, op == 0xbb, op == 0xbd, op == 0xc0, op == 0xc1, op == 0xc6, op == 0xc7:
		return 2
	case op == 0xc5:
		return 3
	case op == 0xb9, op == 0xba, op == 0xc8, op == 0xc9:
		return 4
	default:
		return 0
	}
}

type classReader struct {
	data []byte
	pos  int
	err  error
}

func (r *classReader) need(n int) bool {
	if r.err != nil {
		return false
	}
	if n < 0 || r.pos+n > len(r.data) {
		r.err = classError("unexpected end of class file")
		return false
	}
	return true
}

func (r *classReader) u1() byte {
	if !r.need(1) {
		return 0
	}
	value := r.data[r.pos]
	r.pos++
	return value
}

func (r *classReader) u2() uint16 {
	if !r.need(2) {
		return 0
	}
	value := binary.BigEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return value
}

func (r *classReader) u4() uint32 {
	if !r.need(4) {
		return 0
	}
	value := binary.BigEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return value
}

func (r *classReader) bytes(n int) []byte {
	if !r.need(n) {
		return nil
	}
	value := r.data[r.pos : r.pos+n]
	r.pos += n
	return value
}

func (r *classReader) skip(n int) {
	if r.need(n) {
		r.pos += n
	}
}

func (r *classReader) constantPool() (constantPool, error) {
	count := int(r.u2())
	pool := make(constantPool, count)
	for i := 1; i < count && r.err == nil; i++ {
		tag := r.u1()
		entry := cpEntry{tag: tag}
		switch tag {
		case cpUtf8:
			entry.text = string(r.bytes(int(r.u2())))
		case cpClass, cpString, cpMethodType, cpModule, cpPackage:
			entry.index = r.u2()
		case cpMethodHandle:
			r.skip(3)
		case cpInteger, cpFloat, cpFieldref, cpMethodref, cpInterfaceMethodref, cpNameAndType, cpDynamic, cpInvokeDynamic:
			r.skip(4)
		case cpLong, cpDouble:
			r.skip(8)
			pool[i] = entry
			i++
			continue
		default:
			return nil, classError(fmt.Sprintf("unknown constant pool tag %d", tag))
		}
		pool[i] = entry
	}
	return pool, r.err
}

// skipMembers skips the field table, which precedes the methods.
func (r *classReader) skipMembers() error {
	count := int(r.u2())
	for i := 0; i < count && r.err == nil; i++ {
		r.skip(6)
		attrCount := int(r.u2())
		for j := 0; j < attrCount && r.err == nil; j++ {
			r.skip(2)
			r.skip(int(r.u4()))
		}
	}
	return r.err
}

func classError(reason string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("invalid class file: " + reason)
}

var _ ports.ClassFilePort = ClassFileAdapter{}
