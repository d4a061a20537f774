package testutil

import (
	"bytes"
	"encoding/binary"
)

// ClassFile assembles a minimal class file declaring one public method whose
// body is `ldc <constant>; areturn`.
func ClassFile(className string, method string, descriptor string, constant string) []byte {
	var buf bytes.Buffer
	u1 := func(v byte) { buf.WriteByte(v) }
	u2 := func(v uint16) { _ = binary.Write(&buf, binary.BigEndian, v) }
	u4 := func(v uint32) { _ = binary.Write(&buf, binary.BigEndian, v) }
	utf8 := func(s string) {
		u1(1)
		u2(uint16(len(s)))
		buf.WriteString(s)
	}

	u4(0xCAFEBABE)
	u2(0)
	u2(61)

	u2(11)
	utf8(className) // 1
	u1(7)           // 2 Class -> 1
	u2(1)
	utf8("java/lang/Object") // 3
	u1(7)                    // 4 Class -> 3
	u2(3)
	utf8(method)     // 5
	utf8(descriptor) // 6
	utf8("Code")     // 7
	utf8(constant)   // 8
	u1(8)            // 9 String -> 8
	u2(8)
	u1(3) // 10 Integer, exercised by the parser only
	u4(42)

	u2(0x0021)
	u2(2)
	u2(4)
	u2(0) // interfaces
	u2(0) // fields

	code := []byte{0x12, 9, 0xB0}
	u2(1)
	u2(0x0001)
	u2(5)
	u2(6)
	u2(1)
	u2(7)
	u4(uint32(2 + 2 + 4 + len(code) + 2 + 2))
	u2(1)
	u2(1)
	u4(uint32(len(code)))
	buf.Write(code)
	u2(0)
	u2(0)

	u2(0) // class attributes
	return buf.Bytes()
}
