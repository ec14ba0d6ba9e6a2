package checksum

import "github.com/mirkobrombin/go-tbx/v1/assert"

const (
	crc16Poly = 0x1021
	crc16Init = 0xFFFF

	crc32Poly = 0x04C11DB7
	crc32Init = 0xFFFFFFFF
)

// Crc16 computes the CRC-16/CCITT-FALSE checksum of data. Empty input is a
// usage error and yields zero.
func Crc16(data []byte) uint16 {
	if len(data) == 0 {
		assert.Trigger()
		return 0
	}
	crc := uint16(crc16Init)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ crc16Poly
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// Crc32 computes the CRC-32/MPEG-2 checksum of data. Empty input is a usage
// error and yields zero.
func Crc32(data []byte) uint32 {
	if len(data) == 0 {
		assert.Trigger()
		return 0
	}
	crc := uint32(crc32Init)
	for _, b := range data {
		crc ^= uint32(b) << 24
		for i := 0; i < 8; i++ {
			if crc&0x80000000 != 0 {
				crc = crc<<1 ^ crc32Poly
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
