package game

import "strings"

const (
	// Size is the board edge length.
	Size = 9
	// Cells is the number of playable cells, indexed 0..Cells-1 row by row.
	Cells = Size * Size
)

// Board is a 9x9 NoGo position. The zero value is an empty board.
//
// NoGo legality: a placement must land on an empty cell, must not capture any
// opponent group, and must not be suicide. The first player without a legal
// placement loses.
type Board [Cells]Color

// Clone returns a deep copy of the position.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Cell returns the content of cell i.
func (b *Board) Cell(i int) Color {
	return b[i]
}

// Empties counts the unoccupied cells.
func (b *Board) Empties() int {
	n := 0
	for i := range b {
		if b[i] == None {
			n++
		}
	}
	return n
}

// Apply plays the move if it is legal and reports whether it was. On an
// illegal move the position is left unchanged.
func (b *Board) Apply(m Move) bool {
	if m.Cell < 0 || m.Cell >= Cells {
		return false
	}
	if m.Color != Black && m.Color != White {
		return false
	}
	if b[m.Cell] != None {
		return false
	}

	b[m.Cell] = m.Color
	if b.captures(m) || !b.hasLiberty(m.Cell) {
		b[m.Cell] = None
		return false
	}
	return true
}

// captures reports whether the just-placed stone removed the last liberty of
// an adjacent opponent group. Capturing is forbidden in NoGo.
func (b *Board) captures(m Move) bool {
	opponent := m.Color.Opponent()
	for _, n := range neighbors(m.Cell) {
		if b[n] == opponent && !b.hasLiberty(n) {
			return true
		}
	}
	return false
}

// hasLiberty reports whether the group containing cell touches an empty cell.
func (b *Board) hasLiberty(cell int) bool {
	color := b[cell]
	var seen [Cells]bool
	seen[cell] = true
	stack := []int{cell}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range neighbors(cur) {
			switch b[n] {
			case None:
				return true
			case color:
				if !seen[n] {
					seen[n] = true
					stack = append(stack, n)
				}
			}
		}
	}
	return false
}

// neighbors returns the orthogonally adjacent cell indices.
func neighbors(cell int) []int {
	adj := make([]int, 0, 4)
	x, y := cell%Size, cell/Size
	if x > 0 {
		adj = append(adj, cell-1)
	}
	if x < Size-1 {
		adj = append(adj, cell+1)
	}
	if y > 0 {
		adj = append(adj, cell-Size)
	}
	if y < Size-1 {
		adj = append(adj, cell+Size)
	}
	return adj
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := Size - 1; y >= 0; y-- {
		for x := 0; x < Size; x++ {
			switch b[y*Size+x] {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
			if x < Size-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
