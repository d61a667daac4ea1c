package chess

import (
	"errors"
	"fmt"
)

// 0x88 式编码：低 4 位是列 (a..h)，高 4 位是行 (1..8)。
// 分配 128 格，实际只用 64 格。
const (
	BoardSize = 128
	Files     = 8
	Ranks     = 8
)

var (
	ErrInvalidSquare = errors.New("invalid square")
	ErrEmptySquare   = errors.New("no piece on square")
	ErrInvalidMove   = errors.New("invalid move")
)

type Square uint8

func NewSquare(file, rank int) Square {
	return Square(rank<<4 | file)
}

func (s Square) File() int { return int(s & 0x0F) }
func (s Square) Rank() int { return int(s >> 4) }

// Valid 用显式的行列比较判断，不依赖 0x88 掩码。
func (s Square) Valid() bool {
	return onBoard(s.File(), s.Rank())
}

func onBoard(file, rank int) bool {
	return file >= 0 && file < Files && rank >= 0 && rank < Ranks
}

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	file := int(s[0]) - 'a'
	rank := int(s[1]) - '1'
	if !onBoard(file, rank) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return NewSquare(file, rank), nil
}

func checkSquare(s Square) error {
	if !s.Valid() {
		return fmt.Errorf("%w: 0x%02x", ErrInvalidSquare, uint8(s))
	}
	return nil
}
