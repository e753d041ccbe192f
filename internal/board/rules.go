package board

// bracket returns how many stones lie strictly between pos and the first
// stone of the given colour in direction d. It returns 0 when an empty
// square or the edge comes first, or when the neighbour is already that colour.
func (b *Board) bracket(pos Position, d Direction, color Cell) int {
	n := 0
	cur := pos

	for {
		next, ok := cur.Step(d)
		if !ok {
			return 0
		}

		switch b.Get(next) {
		case Empty:
			return 0
		case color:
			return n
		}

		n++
		cur = next
	}
}

// IsLegal reports whether placing color at pos would trap at least one run
// of opposing stones.
func IsLegal(b *Board, pos Position, color Cell) bool {
	if b.Get(pos) != Empty {
		return false
	}

	for _, dir := range Directions {
		if b.bracket(pos, dir, color) > 0 {
			return true
		}
	}

	return false
}

// LegalMoves returns every legal square for color in row-major order
func LegalMoves(b *Board, color Cell) []Position {
	var moves []Position

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			pos := Position{row: row, col: col}
			if IsLegal(b, pos, color) {
				moves = append(moves, pos)
			}
		}
	}

	return moves
}

// Propagate flips every run bracketed by the stone already sitting at pos
// and returns the number of flipped stones. It does not check legality.
func Propagate(b *Board, pos Position) int {
	color := b.Get(pos)
	if color == Empty {
		return 0
	}

	flipped := 0

	for _, dir := range Directions {
		n := b.bracket(pos, dir, color)

		cur := pos
		for i := 0; i < n; i++ {
			cur, _ = cur.Step(dir)
			b.Set(cur, color)
		}

		flipped += n
	}

	return flipped
}
