package checksum

import (
	"os"
	"sync/atomic"
	"testing"

	"github.com/mirkobrombin/go-tbx/v1/assert"
)

var assertions atomic.Uint32

func TestMain(m *testing.M) {
	assert.SetHandler(func(file string, line int) {
		assertions.Add(1)
	})
	os.Exit(m.Run())
}

// refData is the 0x00..0x1F byte ramp used by the reference vectors.
func refData() []byte {
	data := make([]byte, 32)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func TestCrc16ReferenceVector(t *testing.T) {
	assertions.Store(0)
	if got := Crc16(refData()); got != 0x23B3 {
		t.Fatalf("crc16 = %#04x, want 0x23b3", got)
	}
	if assertions.Load() != 0 {
		t.Fatal("unexpected assertion")
	}
}

func TestCrc32ReferenceVector(t *testing.T) {
	assertions.Store(0)
	if got := Crc32(refData()); got != 0x8F819950 {
		t.Fatalf("crc32 = %#08x, want 0x8f819950", got)
	}
	if assertions.Load() != 0 {
		t.Fatal("unexpected assertion")
	}
}

func TestCrc16EmptyInputAsserts(t *testing.T) {
	assertions.Store(0)
	if got := Crc16(nil); got != 0 {
		t.Fatalf("crc16 of empty input = %#04x, want 0", got)
	}
	if assertions.Load() == 0 {
		t.Fatal("expected assertion on empty input")
	}
}

func TestCrc32EmptyInputAsserts(t *testing.T) {
	assertions.Store(0)
	if got := Crc32(nil); got != 0 {
		t.Fatalf("crc32 of empty input = %#08x, want 0", got)
	}
	if assertions.Load() == 0 {
		t.Fatal("expected assertion on empty input")
	}
}

func TestCrcSingleByte(t *testing.T) {
	if Crc16([]byte{0x00}) == Crc16([]byte{0x01}) {
		t.Fatal("crc16 does not distinguish inputs")
	}
	if Crc32([]byte{0x00}) == Crc32([]byte{0x01}) {
		t.Fatal("crc32 does not distinguish inputs")
	}
}
