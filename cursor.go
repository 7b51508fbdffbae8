package everytypes

import "io"

// cursor reads fixed-width little-endian fields off a byte slice, advancing
// its own position. Unlike a general decoder it never backtracks — headers
// are parsed strictly left to right.
type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) eatBytes(n int) ([]byte, error) {
	end := c.pos + n
	if end > len(c.buf) {
		return nil, io.ErrUnexpectedEOF
	}
	b := c.buf[c.pos:end]
	c.pos = end
	return b, nil
}

func (c *cursor) eatU8() (uint8, error) {
	b, err := c.eatBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) eatU16LE() (uint16, error) {
	b, err := c.eatBytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0]) | uint16(b[1])<<8, nil
}
