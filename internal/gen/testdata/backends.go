package backends

// Buf is a mutable generic backend without ReplaceAt.
type Buf[T any] struct{ elems []T }

func (b *Buf[T]) Len() int             { return len(b.elems) }
func (b *Buf[T]) At(idx int) T         { return b.elems[idx] }
func (b *Buf[T]) SetAt(idx int, val T) { b.elems[idx] = val }

// Ints is a read-only backend with value receivers.
type Ints struct{ n int }

func (s Ints) Len() int       { return s.n }
func (s Ints) At(idx int) int { return idx }

type NoAt struct{}

func (NoAt) Len() int { return 0 }

type BadLen struct{}

func (BadLen) Len() uint     { return 0 }
func (BadLen) At(int) string { return "" }

type ReadOnly struct{}

func (ReadOnly) Len() int      { return 0 }
func (ReadOnly) At(int) string { return "" }

type PtrOnly struct{}

func (*PtrOnly) Len() int    { return 0 }
func (*PtrOnly) At(int) byte { return 0 }

type HasIter struct{}

func (HasIter) Len() int   { return 0 }
func (HasIter) At(int) int { return 0 }
func (HasIter) Iter()      {}

type BadReplace struct{ Buf[int] }

func (*BadReplace) ReplaceAt(int, int) {}

type Reader interface {
	Len() int
	At(int) int
}
