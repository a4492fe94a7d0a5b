package board

import "math/rand"

// Zobrist hash tables, initialized at package init time with
// deterministic values so the same position always hashes the same
// way, across runs and across processes.
var (
	// zobristPieces[pieceIndex][square] - random value for each piece
	// kind on each square. pieceIndex = color*6 + (kind-1), kind is
	// 1-6 (Pawn-King), giving 12 indices (0-5 White, 6-11 Black) x 64
	// squares.
	zobristPieces [12][64]uint64

	// zobristSideToMove is XORed in when it is Black's turn.
	zobristSideToMove uint64

	// zobristCastling[rights] - random value per castling-rights bit
	// combination (0-15).
	zobristCastling [16]uint64

	// zobristEnPassant[file] - random value for an en passant target
	// on that file, XORed in only when an en passant square exists.
	zobristEnPassant [8]uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x5D4E3C2B1A))

	for pieceIndex := 0; pieceIndex < 12; pieceIndex++ {
		for square := 0; square < 64; square++ {
			zobristPieces[pieceIndex][square] = rng.Uint64()
		}
	}

	zobristSideToMove = rng.Uint64()

	for rights := 0; rights < 16; rights++ {
		zobristCastling[rights] = rng.Uint64()
	}

	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.Uint64()
	}
}

// pieceZobristIndex returns the Zobrist table index for a piece.
// Returns -1 for an empty square.
func pieceZobristIndex(p Piece) int {
	if p.IsEmpty() {
		return -1
	}
	return int(p.Color())*6 + int(p.Type()) - 1
}

// ComputeHash computes the full Zobrist hash for the current position,
// including side to move, castling rights, and the en passant file.
// Used for History/repetition bookkeeping. It is distinct from
// Fingerprint, which the search's transposition cache keys on.
func (b *Board) ComputeHash() uint64 {
	var hash uint64

	for sq := Square(0); sq < 64; sq++ {
		if piece := b.Squares[sq]; !piece.IsEmpty() {
			hash ^= zobristPieces[pieceZobristIndex(piece)][sq]
		}
	}

	if b.ActiveColor == Black {
		hash ^= zobristSideToMove
	}

	hash ^= zobristCastling[b.CastlingRights]

	if b.EnPassantSq != NoSquare {
		hash ^= zobristEnPassant[b.EnPassantSq.File()]
	}

	return hash
}

// Fingerprint returns a stable identifier of the piece-placement
// component of the position only: it does not depend on castling
// rights, the en passant square, the half-move clock, or the full
// move number, and (matching the source this engine replicates)
// it does not depend on side to move either. This is the search
// package's transposition-cache key.
//
// This is an intentional trade-off, not an oversight: two otherwise
// different positions that share a piece layout collide in the
// transposition cache. A production engine would hash the full game
// state instead.
func (b *Board) Fingerprint() uint64 {
	var hash uint64
	for sq := Square(0); sq < 64; sq++ {
		if piece := b.Squares[sq]; !piece.IsEmpty() {
			hash ^= zobristPieces[pieceZobristIndex(piece)][sq]
		}
	}
	return hash
}
